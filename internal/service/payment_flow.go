package service

import (
	"context"
	"sync"
	"time"

	"xrpl-payment-portal/internal/core/domain"
	"xrpl-payment-portal/internal/core/ports"
	"xrpl-payment-portal/pkg/apperror"

	"github.com/rs/zerolog"
)

// DefaultPollInterval is the status polling period.
const DefaultPollInterval = 2000 * time.Millisecond

// PaymentFlowOptions configures a PaymentFlow. Zero values are usable.
type PaymentFlowOptions struct {
	Log          zerolog.Logger
	PollInterval time.Duration
	Audit        ports.AuditService
	Metrics      ports.FlowMetrics
	// OnTerminal is called under the flow lock when a session ends in a
	// terminal state. It must not block or call back into the flow.
	OnTerminal func(state domain.FlowState)
}

// pollingSession binds one repeating task to one payload uuid.
// Its pointer is its identity: a tick only applies while the flow's
// active session is the very session that scheduled it.
type pollingSession struct {
	uuid string
	task ports.Task
}

// PaymentFlow drives the payment request flow: initiate a request,
// show its QR payload, poll its status until resolved.
//
// All state and surface mutations happen under mu. Network calls run
// outside it, so a slow server never blocks Close or a new Initiate.
type PaymentFlow struct {
	gateway    ports.PaymentGateway
	surface    ports.Surface
	scheduler  ports.Scheduler
	audit      ports.AuditService
	metrics    ports.FlowMetrics
	onTerminal func(domain.FlowState)
	interval   time.Duration
	log        zerolog.Logger

	// ctx scopes status calls; Close cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	state      domain.FlowState
	active     *pollingSession
	current    *domain.PaymentRequest
	generation uint64
}

// NewPaymentFlow creates a PaymentFlow in the IDLE state.
func NewPaymentFlow(
	gateway ports.PaymentGateway,
	surface ports.Surface,
	scheduler ports.Scheduler,
	opts PaymentFlowOptions,
) *PaymentFlow {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Audit == nil {
		opts.Audit = nopAudit{}
	}
	if opts.Metrics == nil {
		opts.Metrics = nopMetrics{}
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &PaymentFlow{
		gateway:    gateway,
		surface:    surface,
		scheduler:  scheduler,
		audit:      opts.Audit,
		metrics:    opts.Metrics,
		onTerminal: opts.OnTerminal,
		interval:   opts.PollInterval,
		log:        opts.Log,
		ctx:        ctx,
		cancel:     cancel,
		state:      domain.StateIdle,
	}
}

// Initiate requests a new payment payload and, on success, shows its QR
// code and starts polling. Any previous session is cancelled before the
// network call. The returned error is an *apperror.AppError; the user only
// ever sees the catalogue message on the surface.
func (f *PaymentFlow) Initiate(ctx context.Context, req ports.InitiateRequest) (*domain.PaymentRequest, error) {
	gen := f.begin(ctx)
	defer f.finish(gen)

	start := time.Now()
	p, err := f.gateway.InitiatePayment(ctx, req)
	elapsed := time.Since(start)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		f.log.Debug().Msg("Discarding initiate result superseded by a newer request")
		f.metrics.ObserveInitiate("superseded", elapsed)
		return nil, apperror.ErrSuperseded()
	}

	if err == nil {
		err = missingInitiateFields(p)
		if err != nil {
			f.surface.SetMessage(domain.MessageQRUnavailable)
		}
	} else {
		f.surface.SetMessage(domain.MessageInitiateFailed)
	}
	if err != nil {
		f.log.Error().Err(err).
			Str("error_code", apperror.CodeOf(err)).
			Dur("elapsed", elapsed).
			Msg("Payment initiate failed")
		f.metrics.ObserveInitiate("error", elapsed)
		ev := domain.NewFlowEvent(domain.FlowEventInitiateFailed, "", domain.StateIdle)
		ev.ErrorCode = apperror.CodeOf(err)
		f.audit.Record(ctx, ev)
		return nil, err
	}

	f.current = p
	f.surface.ShowQR(p.QRImageData)
	f.startSession(p.UUID)
	f.state = domain.StateAwaitingResolution

	f.log.Info().Str("payment_uuid", p.UUID).Dur("elapsed", elapsed).Msg("Payment request initiated")
	f.metrics.ObserveInitiate("success", elapsed)
	f.audit.Record(ctx, domain.NewFlowEvent(domain.FlowEventInitiated, p.UUID, domain.StateAwaitingResolution))

	out := *p
	return &out, nil
}

// begin prepares the surface for a new request and returns its generation.
func (f *PaymentFlow) begin(ctx context.Context) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	if f.active != nil {
		f.log.Info().Str("payment_uuid", f.active.uuid).Msg("Superseding active payment request")
		f.audit.Record(ctx, domain.NewFlowEvent(domain.FlowEventSuperseded, f.active.uuid, domain.StateIdle))
		f.stopSession()
	}
	f.state = domain.StateIdle
	f.current = nil

	f.surface.SetButtonEnabled(false)
	f.surface.SetLoading(true)
	f.surface.HideQR()
	f.surface.SetMessage(domain.MessageNone)
	return f.generation
}

// finish restores the trigger controls. Only the latest request does so;
// an older one must not re-enable the button under a newer one's spinner.
func (f *PaymentFlow) finish(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		return
	}
	f.surface.SetLoading(false)
	f.surface.SetButtonEnabled(true)
}

func missingInitiateFields(p *domain.PaymentRequest) error {
	if p == nil {
		return apperror.ErrMissingFields("qr_png", "uuid")
	}
	var missing []string
	if p.QRImageData == "" {
		missing = append(missing, "qr_png")
	}
	if p.UUID == "" {
		missing = append(missing, "uuid")
	}
	if len(missing) > 0 {
		return apperror.ErrMissingFields(missing...)
	}
	return nil
}

// startSession must be called with mu held.
func (f *PaymentFlow) startSession(uuid string) {
	s := &pollingSession{uuid: uuid}
	s.task = f.scheduler.Every(f.interval, func() { f.poll(s) })
	f.active = s
}

// stopSession must be called with mu held.
func (f *PaymentFlow) stopSession() {
	if f.active == nil {
		return
	}
	f.active.task.Cancel()
	f.active = nil
}

// poll runs one status check of session s.
func (f *PaymentFlow) poll(s *pollingSession) {
	if !f.isActive(s) {
		return
	}

	status, err := f.gateway.PaymentStatus(f.ctx, s.uuid)
	if err == nil && status == nil {
		err = apperror.ErrMissingFields("resolved")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.active != s {
		f.log.Debug().Str("payment_uuid", s.uuid).Msg("Dropping status of inactive session")
		return
	}

	if err != nil {
		f.log.Error().Err(err).
			Str("payment_uuid", s.uuid).
			Str("error_code", apperror.CodeOf(err)).
			Msg("Payment status check failed")
		f.metrics.IncPollTick("error")
		ev := domain.NewFlowEvent(domain.FlowEventPollFailed, s.uuid, domain.StateError)
		ev.ErrorCode = apperror.CodeOf(err)
		f.terminate(domain.StateError, ev)
		return
	}

	outcome := status.Outcome()
	if outcome == domain.StateAwaitingResolution {
		f.log.Debug().Str("payment_uuid", s.uuid).Msg("Payment still pending")
		f.metrics.IncPollTick("pending")
		return
	}

	f.metrics.IncPollTick("resolved")
	if f.current != nil {
		f.current.Resolve(status.Signed)
	}
	f.surface.HideQR()
	f.log.Info().Str("payment_uuid", s.uuid).Str("state", string(outcome)).Msg("Payment request resolved")
	f.terminate(outcome, domain.NewFlowEvent(domain.EventKindFor(outcome), s.uuid, outcome))
}

// terminate ends the active session in state. Must be called with mu held.
func (f *PaymentFlow) terminate(state domain.FlowState, ev *domain.FlowEvent) {
	f.stopSession()
	f.state = state
	f.surface.SetMessage(domain.TerminalMessage(state))
	f.metrics.IncOutcome(state)
	f.audit.Record(f.ctx, ev)
	if f.onTerminal != nil {
		f.onTerminal(state)
	}
}

func (f *PaymentFlow) isActive(s *pollingSession) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active == s
}

// State returns the current flow state.
func (f *PaymentFlow) State() domain.FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// ActiveUUID returns the uuid of the active polling session, or "".
func (f *PaymentFlow) ActiveUUID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active == nil {
		return ""
	}
	return f.active.uuid
}

// Request returns a copy of the current payment request, or nil.
func (f *PaymentFlow) Request() *domain.PaymentRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return nil
	}
	out := *f.current
	return &out
}

// Close cancels the active session and aborts in-flight status calls.
// The flow keeps its last state.
func (f *PaymentFlow) Close() {
	f.mu.Lock()
	f.stopSession()
	f.mu.Unlock()
	f.cancel()
}

type nopAudit struct{}

func (nopAudit) Record(context.Context, *domain.FlowEvent) {}

type nopMetrics struct{}

func (nopMetrics) ObserveInitiate(string, time.Duration) {}
func (nopMetrics) IncPollTick(string)                    {}
func (nopMetrics) IncOutcome(domain.FlowState)           {}
func (nopMetrics) IncLogin(string)                       {}
