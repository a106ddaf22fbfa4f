package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"xrpl-payment-portal/pkg/apperror"

	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history <payment-uuid>",
		Short: "Show the journaled flow events of a payment request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if !a.cfg.Database.Enabled {
				return errDatabaseDisabled
			}

			events, err := a.audit.History(cmd.Context(), args[0])
			if err != nil {
				return apperror.ErrJournal(err)
			}
			if len(events) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No events for %s\n", args[0])
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tKIND\tSTATE\tERROR")
			for _, ev := range events {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ev.CreatedAt.Format(time.RFC3339), ev.Kind, ev.State, ev.ErrorCode)
			}
			return w.Flush()
		},
	}
}
