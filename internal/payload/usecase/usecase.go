package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/payloadguard/internal/payload/entity"
	"github.com/shandysiswandi/payloadguard/internal/pkg/clock"
	"github.com/shandysiswandi/payloadguard/internal/pkg/goerror"
	"github.com/shandysiswandi/payloadguard/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "payload.usecase"

type payloadRules interface {
	ValidateUserPayload(in entity.UserPayload) error
	ValidateMessagePayload(in entity.MessagePayload) error
}

type Usecase struct {
	rules       payloadRules
	ins         instrument.Instrumentation
	clock       clock.Clocker
	validations metric.Int64Counter
	maxWorkers  int
}

type Dependency struct {
	Rules      payloadRules
	Instrument instrument.Instrumentation
	// Clock times batch runs. Nil means the system clock.
	Clock clock.Clocker
	// MaxWorkers bounds concurrent validations in ValidateBatch.
	MaxWorkers int
}

func New(dep Dependency) *Usecase {
	var counter metric.Int64Counter = metricnoop.Int64Counter{}
	c, err := dep.Instrument.Meter(scopeName).Int64Counter(
		"payload.validations",
		metric.WithDescription("Number of payloads validated, by kind, result and code"),
	)
	if err != nil {
		slog.Error("failed to create payload validation counter", "error", err)
	} else {
		counter = c
	}

	clk := dep.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Usecase{
		rules:       dep.Rules,
		ins:         dep.Instrument,
		clock:       clk,
		validations: counter,
		maxWorkers:  dep.MaxWorkers,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer(scopeName).Start(ctx, name)
}

// observe turns a rule result into the error returned to callers and records it.
func (s *Usecase) observe(ctx context.Context, span trace.Span, kind entity.Kind, err error) error {
	if err == nil {
		s.validations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("kind", string(kind)),
			attribute.String("result", "valid"),
		))
		return nil
	}

	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected rule failure")
		slog.ErrorContext(ctx, "unexpected rule failure", "kind", kind, "error", err)
		return goerror.NewServer(err)
	}

	span.SetAttributes(attribute.String("payload.code", verr.Code.String()))
	s.validations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("result", "invalid"),
		attribute.String("code", verr.Code.String()),
	))
	slog.DebugContext(ctx, "payload rejected", "kind", kind, "code", verr.Code, "reason", verr.Message)

	return verr.ToGoError()
}
