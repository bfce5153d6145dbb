package app

import (
	"context"

	"github.com/shandysiswandi/payloadguard/internal/pkg/cli"
	"github.com/shandysiswandi/payloadguard/internal/pkg/clock"
	"github.com/shandysiswandi/payloadguard/internal/pkg/config"
	"github.com/shandysiswandi/payloadguard/internal/pkg/instrument"
	"github.com/shandysiswandi/payloadguard/internal/pkg/uid"
	"github.com/shandysiswandi/payloadguard/internal/pkg/validator"
)

// Version is reported by the version command. It is set at build time with
// -ldflags "-X github.com/shandysiswandi/payloadguard/internal/app.Version=v1.0.0".
var Version = "dev"

// App wires dependencies and manages the command lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID

	// command line
	runner *cli.Runner

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initRunner()
	app.initModules()
	app.initClosers()

	return app
}
