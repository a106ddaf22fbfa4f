package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error by where it came from.
type Kind string

const (
	KindValidation Kind = "VALIDATION" // client-side input malformed, no network call made
	KindNetwork    Kind = "NETWORK"    // transport failure
	KindServer     Kind = "SERVER"     // non-2xx status
	KindProtocol   Kind = "PROTOCOL"   // 2xx but body missing or malformed
	KindInternal   Kind = "INTERNAL"
)

// AppError is a structured client error. Message is safe to show to a user;
// the wrapped Err carries the detail and only goes to the log.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"kind"`
	HTTPStatus int    `json:"-"` // upstream status for KindServer, 0 otherwise
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, kind Kind) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Kind:    kind,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, kind Kind, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Kind:    kind,
		Err:     err,
	}
}

// KindOf reports the Kind of err. Errors that are not AppErrors are internal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// CodeOf reports the code of err, or SYS_000 for foreign errors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "SYS_000"
}

// ---- Validation (VAL) ----

// ErrEmptySecretKey is returned for a blank secret key.
func ErrEmptySecretKey() *AppError {
	return New("VAL_001", "Secret key cannot be empty.", KindValidation)
}

// ErrSecretKeyWordCount reports a key with the wrong number of words.
func ErrSecretKeyWordCount(expected, got int) *AppError {
	return New("VAL_002", fmt.Sprintf("Please enter your %d-word key. You entered %d.", expected, got), KindValidation)
}

// ---- Transport (NET / SRV) ----

// ErrNetwork wraps a transport failure: no response was received.
func ErrNetwork(err error) *AppError {
	return Wrap("NET_001", "Network request failed", KindNetwork, err)
}

// ErrServerStatus reports a non-2xx response.
func ErrServerStatus(status int, statusText string) *AppError {
	return &AppError{
		Code:       "SRV_001",
		Message:    "Server returned an error status",
		Kind:       KindServer,
		HTTPStatus: status,
		Err:        fmt.Errorf("server error: %s", statusText),
	}
}

// ---- Protocol (PRO) ----

// ErrMalformedBody wraps a body that is not the expected JSON.
func ErrMalformedBody(err error) *AppError {
	return Wrap("PRO_001", "Response body could not be decoded", KindProtocol, err)
}

// ErrMissingFields reports required response fields that were absent or empty.
func ErrMissingFields(fields ...string) *AppError {
	return Wrap("PRO_002", "Response is missing required fields", KindProtocol, fmt.Errorf("missing: %v", fields))
}

// ---- System (SYS) ----

// InternalError wraps an unexpected error as SYS_001.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal client error", KindInternal, err)
}

// ErrCredentialStore wraps a failure of the shared cookie store.
func ErrCredentialStore(err error) *AppError {
	return Wrap("SYS_002", "Credential store failure", KindInternal, err)
}

// ErrSuperseded is returned by an initiate whose result was discarded
// because a newer initiate started meanwhile.
func ErrSuperseded() *AppError {
	return New("SYS_003", "Payment request superseded by a newer one", KindInternal)
}

// ErrJournal wraps a failure to reach or migrate the flow journal database.
func ErrJournal(err error) *AppError {
	return Wrap("SYS_004", "Flow journal unavailable", KindInternal, err)
}
