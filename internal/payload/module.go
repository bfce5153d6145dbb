package payload

import (
	"github.com/shandysiswandi/payloadguard/internal/payload/inbound"
	"github.com/shandysiswandi/payloadguard/internal/payload/rule"
	"github.com/shandysiswandi/payloadguard/internal/payload/usecase"
	"github.com/shandysiswandi/payloadguard/internal/pkg/cli"
	"github.com/shandysiswandi/payloadguard/internal/pkg/clock"
	"github.com/shandysiswandi/payloadguard/internal/pkg/config"
	"github.com/shandysiswandi/payloadguard/internal/pkg/instrument"
	"github.com/shandysiswandi/payloadguard/internal/pkg/validator"
)

type Dependency struct {
	Runner     *cli.Runner                `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		Rules:      rule.New(dep.Validator),
		Instrument: dep.Instrument,
		Clock:      dep.Clock,
		MaxWorkers: dep.Config.GetInt("app.batch.max_workers"),
	})

	inbound.RegisterCommands(dep.Runner, uc)

	return nil
}
