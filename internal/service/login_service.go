package service

import (
	"context"
	"encoding/json"
	"errors"

	"xrpl-payment-portal/internal/core/domain"
	"xrpl-payment-portal/internal/core/ports"
	"xrpl-payment-portal/pkg/apperror"

	"github.com/rs/zerolog"
)

// Login button labels.
const (
	LoginButtonIdle    = "Access Now"
	LoginButtonBusy    = "Accessing..."
	LoginButtonSuccess = "Success!"
)

// KeyLoginService validates a secret key and posts it to the key login endpoint.
type KeyLoginService struct {
	gateway ports.KeyLoginGateway
	surface ports.LoginSurface
	metrics ports.FlowMetrics
	log     zerolog.Logger
}

// NewKeyLoginService creates a new KeyLoginService. metrics may be nil.
func NewKeyLoginService(
	gateway ports.KeyLoginGateway,
	surface ports.LoginSurface,
	metrics ports.FlowMetrics,
	log zerolog.Logger,
) *KeyLoginService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &KeyLoginService{gateway: gateway, surface: surface, metrics: metrics, log: log}
}

// Submit validates raw and, when it is a 24-word key, logs in with it.
// Validation errors are shown inline and make no network call.
func (s *KeyLoginService) Submit(ctx context.Context, raw string) (json.RawMessage, error) {
	key, err := domain.ValidateSecretKey(raw)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			s.surface.ShowError(appErr.Message)
		}
		s.metrics.IncLogin("invalid")
		return nil, err
	}

	s.surface.ShowError("")
	s.surface.SetButton(LoginButtonBusy, false)

	body, err := s.gateway.KeyLogin(ctx, key)
	if err != nil {
		s.log.Error().Err(err).Str("error_code", apperror.CodeOf(err)).Msg("Key login failed")
		s.surface.ShowError(domain.MessageLoginFailed.Text)
		s.surface.SetButton(LoginButtonIdle, true)
		s.metrics.IncLogin("error")
		return nil, err
	}

	s.log.Info().RawJSON("response", body).Msg("Key login succeeded")
	s.surface.SetButton(LoginButtonSuccess, false)
	s.metrics.IncLogin("success")
	return body, nil
}
