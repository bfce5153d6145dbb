package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Run executes the command selected by args and returns its exit code. An
// interrupt cancels the running command.
func (a *App) Run(args []string) int {
	ctx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.runner.Execute(ctx, args)
}

// Stop cancels in-flight work and closes resources.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", closer.name, "error", err)
		}
	}
}
