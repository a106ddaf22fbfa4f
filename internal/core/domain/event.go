package domain

import (
	"time"

	"github.com/google/uuid"
)

// FlowEventKind is the type of a journaled flow event.
type FlowEventKind string

const (
	FlowEventInitiated      FlowEventKind = "INITIATED"
	FlowEventInitiateFailed FlowEventKind = "INITIATE_FAILED"
	FlowEventSigned         FlowEventKind = "SIGNED"
	FlowEventRejected       FlowEventKind = "REJECTED"
	FlowEventPollFailed     FlowEventKind = "POLL_FAILED"
	FlowEventSuperseded     FlowEventKind = "SUPERSEDED"
)

// FlowEvent records one transition of the payment request flow.
type FlowEvent struct {
	ID          uuid.UUID     `json:"id"`
	PaymentUUID string        `json:"payment_uuid,omitempty"` // empty when initiate failed
	Kind        FlowEventKind `json:"kind"`
	State       FlowState     `json:"state"`
	ErrorCode   string        `json:"error_code,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewFlowEvent stamps a new event with an ID and the current time.
func NewFlowEvent(kind FlowEventKind, paymentUUID string, state FlowState) *FlowEvent {
	return &FlowEvent{
		ID:          uuid.New(),
		PaymentUUID: paymentUUID,
		Kind:        kind,
		State:       state,
		CreatedAt:   time.Now().UTC(),
	}
}

// EventKindFor maps a terminal state reached by polling to its event kind.
func EventKindFor(s FlowState) FlowEventKind {
	switch s {
	case StateSigned:
		return FlowEventSigned
	case StateRejected:
		return FlowEventRejected
	default:
		return FlowEventPollFailed
	}
}
