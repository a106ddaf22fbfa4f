package service

import (
	"context"
	"sync"

	"xrpl-payment-portal/internal/core/domain"
	"xrpl-payment-portal/internal/core/ports"

	"github.com/rs/zerolog"
)

// AuditService journals flow events without blocking the flow.
type AuditService struct {
	repo ports.FlowEventRepository
	log  zerolog.Logger
	wg   sync.WaitGroup
}

// NewAuditService creates a new audit service.
// If repo is nil, flow events are only written to the logger.
func NewAuditService(repo ports.FlowEventRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

// Record journals an event asynchronously (fire-and-forget).
func (s *AuditService) Record(_ context.Context, ev *domain.FlowEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.log.Info().
			Str("event_id", ev.ID.String()).
			Str("kind", string(ev.Kind)).
			Str("payment_uuid", ev.PaymentUUID).
			Str("state", string(ev.State)).
			Str("error_code", ev.ErrorCode).
			Msg("flow event")

		if s.repo != nil {
			if err := s.repo.Create(context.Background(), ev); err != nil {
				s.log.Warn().Err(err).Str("kind", string(ev.Kind)).Msg("failed to persist flow event")
			}
		}
	}()
}

// Wait blocks until every recorded event has been written.
func (s *AuditService) Wait() {
	s.wg.Wait()
}

// History returns the journal of one payment request.
func (s *AuditService) History(ctx context.Context, paymentUUID string) ([]domain.FlowEvent, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.ListByPayment(ctx, paymentUUID)
}
