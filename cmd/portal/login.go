package main

import (
	"fmt"
	"io"

	"xrpl-payment-portal/internal/adapter/surface"
	"xrpl-payment-portal/internal/service"
	"xrpl-payment-portal/pkg/logger"

	"github.com/spf13/cobra"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in with a 24-word secret key read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			fmt.Fprintln(cmd.ErrOrStderr(), "Enter your 24-word secret key, then EOF:")
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading secret key: %w", err)
			}

			svc := service.NewKeyLoginService(
				a.client,
				surface.NewLogin(cmd.OutOrStdout(), a.cfg.UI),
				a.monitor,
				logger.Component(a.log, "login"),
			)
			if _, err := svc.Submit(cmd.Context(), string(raw)); err != nil {
				return surfaced(err)
			}
			return nil
		},
	}
}
