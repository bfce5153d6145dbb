package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/payloadguard/internal/payload"
	"github.com/shandysiswandi/payloadguard/internal/pkg/cli"
)

func (a *App) initModules() {
	if err := payload.New(payload.Dependency{
		Runner:     a.runner,
		Config:     a.config,
		Instrument: a.ins,
		Validator:  a.validator,
		Clock:      a.clock,
	}); err != nil {
		slog.Error("failed to init module payload", "error", err)
		os.Exit(cli.ExitFailure)
	}
}
