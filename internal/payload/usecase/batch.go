package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/payloadguard/internal/payload/entity"
	"github.com/shandysiswandi/payloadguard/internal/pkg/goerror"
	"github.com/shandysiswandi/payloadguard/internal/pkg/goroutine"
	"github.com/shandysiswandi/payloadguard/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/atomic"
)

type BatchItem struct {
	Kind    entity.Kind
	User    entity.UserPayload
	Message entity.MessagePayload
}

type BatchResult struct {
	Index int
	Kind  entity.Kind
	// Err is nil for a valid payload, otherwise a *goerror.Error.
	Err error
}

type BatchReport struct {
	Results []BatchResult
	Total   int
	Valid   int
	Invalid int
	// ByReason counts invalid results by goerror reason, or by goerror code when no reason is set.
	ByReason map[string]int
	// Duration is the wall time spent validating the batch.
	Duration time.Duration
}

// ValidateBatch validates items concurrently, bounded by MaxWorkers. Results
// keep the order of items. The returned error is only set when the batch
// could not run to completion.
func (s *Usecase) ValidateBatch(ctx context.Context, items []BatchItem) (*BatchReport, error) {
	ctx, span := s.startSpan(ctx, "ValidateBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("batch.size", len(items)))

	startedAt := s.clock.Now()
	results := make([]BatchResult, len(items))
	var valid, invalid atomic.Int64

	g := goroutine.NewManager(s.maxWorkers)
	cidPrefix := lo.CoalesceOrEmpty(instrument.GetCorrelationID(ctx), "batch")

	var scheduleErr error
	for i, item := range items {
		itemCtx := instrument.SetCorrelationID(ctx, fmt.Sprintf("%s#%d", cidPrefix, i+1))
		if err := g.Go(itemCtx, func(ctx context.Context) error {
			err := s.validateItem(ctx, item)
			results[i] = BatchResult{Index: i, Kind: item.Kind, Err: err}
			if err != nil {
				invalid.Inc()
			} else {
				valid.Inc()
			}
			return nil
		}); err != nil {
			scheduleErr = err
			break
		}
	}

	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "batch validation task failed", "error", err)
		return nil, goerror.NewServer(err)
	}

	if scheduleErr != nil {
		slog.WarnContext(ctx, "batch validation stopped early", "error", scheduleErr)
		if errors.Is(scheduleErr, context.Canceled) || errors.Is(scheduleErr, context.DeadlineExceeded) {
			return nil, goerror.NewTimeout(scheduleErr)
		}
		return nil, goerror.NewServer(scheduleErr)
	}

	rejected := lo.Filter(results, func(r BatchResult, _ int) bool { return r.Err != nil })

	return &BatchReport{
		Results:  results,
		Total:    len(items),
		Valid:    int(valid.Load()),
		Invalid:  int(invalid.Load()),
		ByReason: lo.CountValuesBy(rejected, func(r BatchResult) string { return Reason(r.Err) }),
		Duration: s.clock.Now().Sub(startedAt),
	}, nil
}

func (s *Usecase) validateItem(ctx context.Context, item BatchItem) error {
	switch item.Kind {
	case entity.KindUser:
		return s.ValidateUser(ctx, item.User)
	case entity.KindMessage:
		return s.ValidateMessage(ctx, item.Message)
	default:
		return goerror.NewInvalidFormat(fmt.Sprintf("unknown payload kind %q", item.Kind))
	}
}

// Reason returns the machine-readable reason of err, falling back to its
// goerror code name. It returns "" for nil and ERROR_CODE_INTERNAL for foreign errors.
func Reason(err error) string {
	if err == nil {
		return ""
	}

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		return goerror.CodeInternal.String()
	}
	if gerr.Reason() != "" {
		return gerr.Reason()
	}
	return gerr.Code().String()
}
