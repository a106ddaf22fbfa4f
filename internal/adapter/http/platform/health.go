package platform

import "context"

// HealthCheck implements ports.HealthChecker for the platform web API.
type HealthCheck struct {
	client *Client
}

// NewHealthCheck creates a platform health checker that reads the data endpoint.
func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping checks that the platform answers the data endpoint with JSON.
func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.client.FetchData(ctx)
	return err
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "platform"
}
