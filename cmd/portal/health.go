package main

import (
	"encoding/json"
	"errors"

	"xrpl-payment-portal/internal/service"

	"github.com/spf13/cobra"
)

var errDegraded = errors.New("one or more dependencies are unhealthy")

func newHealthCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the platform and the configured stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			report := service.CheckHealth(cmd.Context(), a.checkers...)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
			if !report.Healthy() {
				return errDegraded
			}
			return nil
		},
	}
}
