package domain

// FlowState is the state of the payment request flow.
type FlowState string

const (
	StateIdle               FlowState = "IDLE"
	StateAwaitingResolution FlowState = "AWAITING_RESOLUTION"
	StateSigned             FlowState = "TERMINAL_SIGNED"
	StateRejected           FlowState = "TERMINAL_REJECTED"
	StateError              FlowState = "TERMINAL_ERROR"
)

// IsTerminal returns true if only a fresh initiate can leave this state.
func (s FlowState) IsTerminal() bool {
	return s == StateSigned || s == StateRejected || s == StateError
}

// Tone tints a status message.
type Tone string

const (
	ToneNeutral Tone = "NEUTRAL"
	ToneSuccess Tone = "SUCCESS"
	ToneFailure Tone = "FAILURE"
)

// Color returns the display color of the tone, empty for the default color.
func (t Tone) Color() string {
	switch t {
	case ToneSuccess:
		return "green"
	case ToneFailure:
		return "red"
	default:
		return ""
	}
}

// Message is a user-facing status line.
type Message struct {
	Text string
	Tone Tone
}

// IsEmpty reports whether the message clears the status line.
func (m Message) IsEmpty() bool {
	return m.Text == ""
}

// User-facing messages. Raw error detail never reaches these.
var (
	MessageNone           = Message{}
	MessageSigned         = Message{Text: "Success! Payment has been signed.", Tone: ToneSuccess}
	MessageRejected       = Message{Text: "Payment was rejected by the user.", Tone: ToneFailure}
	MessagePollFailed     = Message{Text: "Error checking payment status.", Tone: ToneNeutral}
	MessageQRUnavailable  = Message{Text: "Error: Could not retrieve QR code.", Tone: ToneNeutral}
	MessageInitiateFailed = Message{Text: "An error occurred. Please try again.", Tone: ToneNeutral}
	MessageLoginFailed    = Message{Text: "Login failed. Please try again.", Tone: ToneNeutral}
)

// TerminalMessage returns the message shown when the flow enters state s.
func TerminalMessage(s FlowState) Message {
	switch s {
	case StateSigned:
		return MessageSigned
	case StateRejected:
		return MessageRejected
	case StateError:
		return MessagePollFailed
	default:
		return MessageNone
	}
}
