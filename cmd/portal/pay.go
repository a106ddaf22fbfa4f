package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"xrpl-payment-portal/config"
	"xrpl-payment-portal/internal/adapter/surface"
	"xrpl-payment-portal/internal/core/domain"
	"xrpl-payment-portal/internal/core/ports"
	"xrpl-payment-portal/internal/service"
	"xrpl-payment-portal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var errNotSigned = errors.New("payment was not signed")

func newPayCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Request a payment and wait until it is signed or rejected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPay(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.String("amount", "", "payment amount (decimal)")
	flags.String("currency", "", "payment currency")
	flags.Duration("poll-interval", 0, "status polling interval (default 2s)")
	flags.String("qr-path", "", "where to write the QR image")

	bindFlag(opts.v, "payment.amount", flags.Lookup("amount"))
	bindFlag(opts.v, "payment.currency", flags.Lookup("currency"))
	bindFlag(opts.v, "payment.poll_interval", flags.Lookup("poll-interval"))
	bindFlag(opts.v, "ui.qr_path", flags.Lookup("qr-path"))
	return cmd
}

func runPay(cmd *cobra.Command, opts *rootOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	a, err := newApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	req, err := initiateRequest(a.cfg.Payment)
	if err != nil {
		return err
	}

	log := logger.Component(a.log, "payment")
	done := make(chan domain.FlowState, 1)
	term := surface.NewTerminal(cmd.OutOrStdout(), a.cfg.UI, log)
	flow := service.NewPaymentFlow(
		a.client,
		term,
		service.NewTickerScheduler(),
		service.PaymentFlowOptions{
			Log:          log,
			PollInterval: a.cfg.Payment.PollInterval,
			Audit:        a.audit,
			Metrics:      a.monitor,
			OnTerminal: func(s domain.FlowState) {
				select {
				case done <- s:
				default:
				}
			},
		},
	)
	defer flow.Close()

	p, err := flow.Initiate(ctx, req)
	if err != nil {
		return surfaced(err)
	}
	term.Notice(fmt.Sprintf("Waiting for payment %s...", p.UUID))

	select {
	case state := <-done:
		if state != domain.StateSigned {
			return surfaced(errNotSigned)
		}
		return nil
	case <-ctx.Done():
		log.Info().Str("payment_uuid", p.UUID).Msg("Interrupted while awaiting resolution")
		return ctx.Err()
	}
}

// initiateRequest builds the optional initiate body from configuration.
func initiateRequest(cfg config.PaymentConfig) (ports.InitiateRequest, error) {
	req := ports.InitiateRequest{Currency: cfg.Currency}
	if cfg.Amount == "" {
		return req, nil
	}
	amount, err := decimal.NewFromString(cfg.Amount)
	if err != nil {
		return req, fmt.Errorf("invalid payment.amount %q: %w", cfg.Amount, err)
	}
	if !amount.IsPositive() {
		return req, fmt.Errorf("payment.amount must be positive, got %s", amount)
	}
	req.Amount = &amount
	return req, nil
}
