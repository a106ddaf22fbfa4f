package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"xrpl-payment-portal/internal/core/domain"
	"xrpl-payment-portal/internal/core/ports"
)

// manualScheduler fires ticks only when the test says so.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	interval time.Duration
	fn       func()

	mu        sync.Mutex
	cancelled bool
}

func (t *manualTask) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
}

func (t *manualTask) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

func (s *manualScheduler) Every(interval time.Duration, fn func()) ports.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTask{interval: interval, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Tick runs one tick of every live task and returns how many ran.
func (s *manualScheduler) Tick() int {
	s.mu.Lock()
	tasks := append([]*manualTask(nil), s.tasks...)
	s.mu.Unlock()

	n := 0
	for _, t := range tasks {
		if t.Cancelled() {
			continue
		}
		t.fn()
		n++
	}
	return n
}

func (s *manualScheduler) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.Cancelled() {
			n++
		}
	}
	return n
}

func (s *manualScheduler) Task(i int) *manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks[i]
}

func (s *manualScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// recordingSurface keeps the rendered state and the call log.
type recordingSurface struct {
	mu      sync.Mutex
	calls   []string
	qr      string
	qrShown bool
	message domain.Message
	loading bool
	enabled bool
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{enabled: true}
}

func (s *recordingSurface) ShowQR(imageData string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qr, s.qrShown = imageData, true
	s.calls = append(s.calls, "show_qr")
}

func (s *recordingSurface) HideQR() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qrShown = false
	s.calls = append(s.calls, "hide_qr")
}

func (s *recordingSurface) SetMessage(msg domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
	s.calls = append(s.calls, fmt.Sprintf("message:%s", msg.Text))
}

func (s *recordingSurface) SetLoading(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = visible
	s.calls = append(s.calls, fmt.Sprintf("loading:%t", visible))
}

func (s *recordingSurface) SetButtonEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
	s.calls = append(s.calls, fmt.Sprintf("button:%t", enabled))
}

func (s *recordingSurface) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *recordingSurface) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

func (s *recordingSurface) Message() domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func (s *recordingSurface) QRShown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.qrShown
}

func (s *recordingSurface) Idle() (loading, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading, s.enabled
}

// recordingLoginSurface keeps the login form state.
type recordingLoginSurface struct {
	errors  []string
	label   string
	enabled bool
}

func (s *recordingLoginSurface) ShowError(message string) {
	s.errors = append(s.errors, message)
}

func (s *recordingLoginSurface) SetButton(label string, enabled bool) {
	s.label, s.enabled = label, enabled
}

func (s *recordingLoginSurface) LastError() string {
	if len(s.errors) == 0 {
		return ""
	}
	return s.errors[len(s.errors)-1]
}

type fakeChecker struct {
	name string
	err  error
}

func (c fakeChecker) Name() string { return c.name }

func (c fakeChecker) Ping(_ context.Context) error { return c.err }
