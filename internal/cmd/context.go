package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ArmisSecurity/beautify-cli/internal/cli"
)

// NewSignalContext creates a context that is cancelled when SIGINT or SIGTERM
// is received. The returned cancel function should be called to release resources.
func NewSignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// handleCancelled prints a notice when err was caused by an interrupt and
// returns err unchanged.
func handleCancelled(err error) error {
	if errors.Is(err, context.Canceled) {
		cli.PrintWarning("Cancelled, no output was written")
	}
	return err
}
