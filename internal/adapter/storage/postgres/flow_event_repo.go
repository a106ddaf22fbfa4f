package postgres

import (
	"context"
	"fmt"

	"xrpl-payment-portal/internal/core/domain"
)

// FlowEventRepo implements ports.FlowEventRepository.
type FlowEventRepo struct {
	pool Pool
}

// NewFlowEventRepo creates a new FlowEventRepo.
func NewFlowEventRepo(pool Pool) *FlowEventRepo {
	return &FlowEventRepo{pool: pool}
}

// Create inserts a flow event. Empty payment uuid and error code are stored as NULL.
func (r *FlowEventRepo) Create(ctx context.Context, e *domain.FlowEvent) error {
	query := `INSERT INTO flow_events (id, payment_uuid, kind, state, error_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, nullable(e.PaymentUUID), string(e.Kind), string(e.State),
		nullable(e.ErrorCode), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert flow event: %w", err)
	}
	return nil
}

// ListByPayment returns the events of one payment request, oldest first.
func (r *FlowEventRepo) ListByPayment(ctx context.Context, paymentUUID string) ([]domain.FlowEvent, error) {
	query := `SELECT id, payment_uuid, kind, state, error_code, created_at
		FROM flow_events WHERE payment_uuid = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, paymentUUID)
	if err != nil {
		return nil, fmt.Errorf("list flow events: %w", err)
	}
	defer rows.Close()

	var events []domain.FlowEvent
	for rows.Next() {
		var (
			e             domain.FlowEvent
			payment, code *string
			kind, state   string
		)
		if err := rows.Scan(&e.ID, &payment, &kind, &state, &code, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan flow event: %w", err)
		}
		e.Kind = domain.FlowEventKind(kind)
		e.State = domain.FlowState(state)
		if payment != nil {
			e.PaymentUUID = *payment
		}
		if code != nil {
			e.ErrorCode = *code
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flow events: %w", err)
	}
	return events, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
