package ports

import "context"

// HealthChecker checks the health of an external dependency.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "platform", "redis").
	Name() string
}
