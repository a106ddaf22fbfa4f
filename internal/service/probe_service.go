package service

import (
	"context"
	"encoding/json"

	"xrpl-payment-portal/internal/core/ports"
	"xrpl-payment-portal/pkg/apperror"

	"github.com/rs/zerolog"
)

// ProbeService fetches the generic data endpoint and logs what it gets.
type ProbeService struct {
	gateway ports.DataGateway
	log     zerolog.Logger
}

// NewProbeService creates a new ProbeService.
func NewProbeService(gateway ports.DataGateway, log zerolog.Logger) *ProbeService {
	return &ProbeService{gateway: gateway, log: log}
}

// Run performs one probe. It has no effect besides logging.
func (s *ProbeService) Run(ctx context.Context) (json.RawMessage, error) {
	body, err := s.gateway.FetchData(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("error_code", apperror.CodeOf(err)).Msg("Data probe failed")
		return nil, err
	}
	s.log.Info().RawJSON("data", body).Msg("Data probe succeeded")
	return body, nil
}
