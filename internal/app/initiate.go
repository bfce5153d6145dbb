package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/payloadguard/internal/pkg/cli"
	"github.com/shandysiswandi/payloadguard/internal/pkg/clock"
	"github.com/shandysiswandi/payloadguard/internal/pkg/config"
	"github.com/shandysiswandi/payloadguard/internal/pkg/instrument"
	"github.com/shandysiswandi/payloadguard/internal/pkg/uid"
	"github.com/shandysiswandi/payloadguard/internal/pkg/validator"
)

// defaults keeps the binary usable without a config file.
var defaults = map[string]any{
	"app.name":                           "payloadguard",
	"app.batch.max_workers":              0,
	"instrument.enabled":                 false,
	"instrument.service_name":            "payloadguard",
	"instrument.service_version":         Version,
	"instrument.env":                     "local",
	"instrument.otlp_endpoint":           "localhost:4317",
	"instrument.otlp_secure":             false,
	"instrument.trace_sample_ratio":      1.0,
	"instrument.metric_interval_seconds": 60,
	"instrument.log_level":               "info",
	"instrument.log_mask_fields":         []string{"password", "content"},
}

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}

	cfg, err := config.NewViper(path, defaults)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(cli.ExitFailure)
	}

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		LogOutput:        os.Stderr,
		LogLevel:         a.config.GetString("instrument.log_level"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(cli.ExitFailure)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(cli.ExitFailure)
	}
	a.validator = validator
}

func (a *App) initRunner() {
	a.runner = cli.NewRunner(cli.Config{
		Use:     a.config.GetString("app.name"),
		Short:   "Validate user and message payloads before they reach storage",
		Version: Version,
		UUID:    a.uuid,
	})
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
