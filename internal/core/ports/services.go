package ports

import (
	"context"
	"encoding/json"
	"time"

	"xrpl-payment-portal/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// --- Platform gateways (HTTP) ---

// InitiateRequest holds the optional payment details sent on initiate.
type InitiateRequest struct {
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Currency string           `json:"currency,omitempty"`
}

// PaymentGateway talks to the payment endpoints of the platform.
type PaymentGateway interface {
	// InitiatePayment asks the server for a new payment payload. The returned
	// request may lack its QR data or uuid; callers check both.
	InitiatePayment(ctx context.Context, req InitiateRequest) (*domain.PaymentRequest, error)
	// PaymentStatus fetches the resolution state of a payload.
	PaymentStatus(ctx context.Context, uuid string) (*domain.PaymentStatus, error)
}

// KeyLoginGateway posts a secret key to the key login endpoint.
type KeyLoginGateway interface {
	KeyLogin(ctx context.Context, secretKey string) (json.RawMessage, error)
}

// DataGateway reads the generic data endpoint.
type DataGateway interface {
	FetchData(ctx context.Context) (json.RawMessage, error)
}

// --- Rendering surfaces ---

// Surface is the rendering surface of the payment flow.
type Surface interface {
	ShowQR(imageData string)
	HideQR()
	SetMessage(msg domain.Message)
	SetLoading(visible bool)
	SetButtonEnabled(enabled bool)
}

// LoginSurface is the rendering surface of the key login form.
type LoginSurface interface {
	// ShowError displays message; an empty message hides the error line.
	ShowError(message string)
	SetButton(label string, enabled bool)
}

// --- Scheduling ---

// Task is a cancellable repeating task. Cancel is idempotent.
type Task interface {
	Cancel()
}

// Scheduler runs fn every interval until the returned Task is cancelled.
// Every never calls fn synchronously, and runs the ticks of one task
// sequentially.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// --- Journal & metrics ---

// AuditService journals flow events without blocking the caller.
type AuditService interface {
	Record(ctx context.Context, event *domain.FlowEvent)
}

// FlowMetrics receives flow measurements. Implementations must be safe for
// concurrent use.
type FlowMetrics interface {
	ObserveInitiate(result string, elapsed time.Duration)
	IncPollTick(result string)
	IncOutcome(state domain.FlowState)
	IncLogin(result string)
}
