package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"xrpl-payment-portal/pkg/apperror"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// run executes root and reports a failure on its error stream. The error
// detail is left to the log.
func run(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err != nil {
		reportError(root.ErrOrStderr(), err)
	}
	return err
}

// surfacedError marks an error whose message the surface already rendered.
type surfacedError struct {
	err error
}

func (e *surfacedError) Error() string { return e.err.Error() }

func (e *surfacedError) Unwrap() error { return e.err }

func surfaced(err error) error {
	return &surfacedError{err: err}
}

func reportError(w io.Writer, err error) {
	if msg := userMessage(err); msg != "" {
		fmt.Fprintln(w, msg)
	}
}

// userMessage returns the line shown for err, or "" when the surface
// already showed one.
func userMessage(err error) string {
	var shown *surfacedError
	if errors.As(err, &shown) {
		return ""
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return "Error: " + err.Error()
	}
	if apperror.KindOf(err) == apperror.KindValidation {
		return appErr.Message
	}
	return "Error: " + appErr.Message
}
