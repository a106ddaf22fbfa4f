package domain

import (
	"strings"
	"testing"

	"xrpl-payment-portal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowState_IsTerminal(t *testing.T) {
	tests := []struct {
		name  string
		state FlowState
		want  bool
	}{
		{"idle", StateIdle, false},
		{"awaiting", StateAwaitingResolution, false},
		{"signed", StateSigned, true},
		{"rejected", StateRejected, true},
		{"error", StateError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.IsTerminal())
		})
	}
}

func TestPaymentStatus_Outcome(t *testing.T) {
	tests := []struct {
		name   string
		status PaymentStatus
		want   FlowState
	}{
		{"unresolved", PaymentStatus{Resolved: false}, StateAwaitingResolution},
		{"unresolved ignores signed", PaymentStatus{Resolved: false, Signed: true}, StateAwaitingResolution},
		{"signed", PaymentStatus{Resolved: true, Signed: true}, StateSigned},
		{"rejected", PaymentStatus{Resolved: true, Signed: false}, StateRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Outcome())
		})
	}
}

func TestPaymentRequest_Resolve(t *testing.T) {
	p := &PaymentRequest{UUID: "abc-123"}
	p.Resolve(true)
	assert.True(t, p.Resolved)
	assert.True(t, p.Signed)
}

func TestTerminalMessage(t *testing.T) {
	signed := TerminalMessage(StateSigned)
	assert.Equal(t, "Success! Payment has been signed.", signed.Text)
	assert.Equal(t, "green", signed.Tone.Color())

	rejected := TerminalMessage(StateRejected)
	assert.Equal(t, "Payment was rejected by the user.", rejected.Text)
	assert.Equal(t, "red", rejected.Tone.Color())

	failed := TerminalMessage(StateError)
	assert.Equal(t, "Error checking payment status.", failed.Text)
	assert.Empty(t, failed.Tone.Color())

	assert.True(t, TerminalMessage(StateIdle).IsEmpty())
}

func TestEventKindFor(t *testing.T) {
	assert.Equal(t, FlowEventSigned, EventKindFor(StateSigned))
	assert.Equal(t, FlowEventRejected, EventKindFor(StateRejected))
	assert.Equal(t, FlowEventPollFailed, EventKindFor(StateError))
}

func TestNewFlowEvent(t *testing.T) {
	ev := NewFlowEvent(FlowEventInitiated, "abc-123", StateAwaitingResolution)
	assert.NotEqual(t, uuid.Nil, ev.ID)
	assert.Equal(t, "abc-123", ev.PaymentUUID)
	assert.False(t, ev.CreatedAt.IsZero())
}

func words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = "word"
	}
	return strings.Join(w, " ")
}

func TestValidateSecretKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
	}{
		{"empty", "", "VAL_001"},
		{"whitespace only", "   \n\t ", "VAL_001"},
		{"one word", "alpha", "VAL_002"},
		{"twelve words", words(12), "VAL_002"},
		{"twenty-three words", words(23), "VAL_002"},
		{"twenty-five words", words(25), "VAL_002"},
		{"exactly twenty-four", words(24), ""},
		{"twenty-four with mixed whitespace", "  " + strings.Replace(words(24), " ", "\n\t ", 5) + "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ValidateSecretKey(tt.input)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(tt.input), key)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
			assert.Equal(t, tt.wantCode, apperror.CodeOf(err))
			assert.Empty(t, key)
		})
	}
}

func TestValidateSecretKey_ReportsWordCount(t *testing.T) {
	_, err := ValidateSecretKey(words(7))
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Please enter your 24-word key. You entered 7.", appErr.Message)
}
