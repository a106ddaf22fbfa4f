package service

import (
	"context"

	"xrpl-payment-portal/internal/core/ports"
)

// DependencyStatus is the health of one dependency.
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthReport aggregates dependency health.
type HealthReport struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// Healthy reports whether every dependency answered.
func (r HealthReport) Healthy() bool {
	return r.Status == "healthy"
}

// CheckHealth pings every checker. One failing dependency degrades the report.
func CheckHealth(ctx context.Context, checkers ...ports.HealthChecker) HealthReport {
	report := HealthReport{Status: "healthy", Dependencies: make(map[string]DependencyStatus)}

	for _, checker := range checkers {
		if err := checker.Ping(ctx); err != nil {
			report.Dependencies[checker.Name()] = DependencyStatus{Status: "unhealthy", Error: err.Error()}
			report.Status = "degraded"
		} else {
			report.Dependencies[checker.Name()] = DependencyStatus{Status: "healthy"}
		}
	}
	return report
}
