package main

import (
	"xrpl-payment-portal/internal/service"
	"xrpl-payment-portal/pkg/logger"

	"github.com/spf13/cobra"
)

func newProbeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Fetch the generic data endpoint and log the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			_, err = service.NewProbeService(a.client, logger.Component(a.log, "probe")).Run(cmd.Context())
			return err
		},
	}
}
