package domain

import "time"

// PaymentRequest is a server-issued payload awaiting a sign/reject decision.
// UUID is opaque and assigned by the server.
type PaymentRequest struct {
	UUID        string    `json:"uuid"`
	QRImageData string    `json:"qr_png"` // data URI or URL
	Resolved    bool      `json:"resolved"`
	Signed      bool      `json:"signed"` // meaningful only once Resolved
	CreatedAt   time.Time `json:"created_at"`
}

// Resolve records the final decision on the request.
func (p *PaymentRequest) Resolve(signed bool) {
	p.Resolved = true
	p.Signed = signed
}

// PaymentStatus is one answer of the status endpoint.
type PaymentStatus struct {
	Resolved bool `json:"resolved"`
	Signed   bool `json:"signed"`
}

// Outcome maps a resolved status to its terminal state.
// Unresolved statuses map to StateAwaitingResolution.
func (s PaymentStatus) Outcome() FlowState {
	switch {
	case !s.Resolved:
		return StateAwaitingResolution
	case s.Signed:
		return StateSigned
	default:
		return StateRejected
	}
}
