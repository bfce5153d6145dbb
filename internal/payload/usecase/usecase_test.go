package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/shandysiswandi/payloadguard/internal/payload/entity"
	"github.com/shandysiswandi/payloadguard/internal/payload/rule"
	"github.com/shandysiswandi/payloadguard/internal/pkg/goerror"
	"github.com/shandysiswandi/payloadguard/internal/pkg/instrument"
	"github.com/shandysiswandi/payloadguard/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

type meteredInstrumentation struct {
	mp *sdkmetric.MeterProvider
}

func (m *meteredInstrumentation) Tracer(name string) trace.Tracer {
	return tracenoop.NewTracerProvider().Tracer(name)
}

func (m *meteredInstrumentation) Meter(name string) metric.Meter {
	return m.mp.Meter(name)
}

func (m *meteredInstrumentation) Shutdown(ctx context.Context) error {
	return m.mp.Shutdown(ctx)
}

type brokenRules struct{ err error }

func (b brokenRules) ValidateUserPayload(entity.UserPayload) error       { return b.err }
func (b brokenRules) ValidateMessagePayload(entity.MessagePayload) error { return b.err }

func newUsecase(t *testing.T, ins instrument.Instrumentation) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	if ins == nil {
		ins = instrument.NewNoop()
	}

	return New(Dependency{Rules: rule.New(v), Instrument: ins, MaxWorkers: 4})
}

func requireGoError(t *testing.T, err error) *goerror.Error {
	t.Helper()

	var gerr *goerror.Error
	require.True(t, errors.As(err, &gerr), "expected *goerror.Error, got %v", err)
	return gerr
}

func TestUsecase_ValidateUser(t *testing.T) {
	uc := newUsecase(t, nil)

	tests := []struct {
		name       string
		in         entity.UserPayload
		wantReason string
		wantMsg    string
	}{
		{name: "valid", in: entity.UserPayload{Email: "user@example.com", Password: "password1", Username: "ab_cd"}},
		{name: "partial", in: entity.UserPayload{Password: "password1"}},
		{
			name:       "email first",
			in:         entity.UserPayload{Email: "not-an-email", Password: "short"},
			wantReason: "EMAIL_INVALID",
			wantMsg:    "The email format isn't valid",
		},
		{
			name:       "username charset",
			in:         entity.UserPayload{Username: "ab-cd"},
			wantReason: "USERNAME_INVALID",
			wantMsg:    "Username only can contains A-Z a-z 0-9 _.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := uc.ValidateUser(context.Background(), tt.in)

			// Assert
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			gerr := requireGoError(t, err)
			assert.Equal(t, tt.wantReason, gerr.Reason())
			assert.Equal(t, tt.wantMsg, gerr.Msg())
			assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
		})
	}
}

func TestUsecase_ValidateMessage(t *testing.T) {
	uc := newUsecase(t, nil)

	assert.NoError(t, uc.ValidateMessage(context.Background(), entity.MessagePayload{Content: strings.Repeat("a", 2000)}))

	gerr := requireGoError(t, uc.ValidateMessage(context.Background(), entity.MessagePayload{}))
	assert.Equal(t, "MESSAGE_CONTENT_TOO_LONG", gerr.Reason())
	assert.Equal(t, "Message length must be between 1 and 2000 characters.", gerr.Msg())
}

func TestUsecase_UnexpectedRuleErrorIsServerError(t *testing.T) {
	uc := New(Dependency{Rules: brokenRules{err: errors.New("tag panic")}, Instrument: instrument.NewNoop()})

	gerr := requireGoError(t, uc.ValidateUser(context.Background(), entity.UserPayload{}))
	assert.Equal(t, goerror.TypeServer, gerr.Type())
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
}

func TestUsecase_RecordsValidationMetric(t *testing.T) {
	// Arrange
	reader := sdkmetric.NewManualReader()
	ins := &meteredInstrumentation{mp: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))}
	uc := newUsecase(t, ins)
	ctx := context.Background()

	// Act
	require.NoError(t, uc.ValidateMessage(ctx, entity.MessagePayload{Content: "hi"}))
	require.Error(t, uc.ValidateUser(ctx, entity.UserPayload{Email: "nope"}))
	require.Error(t, uc.ValidateUser(ctx, entity.UserPayload{Email: "nope"}))

	// Assert
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	require.True(t, ok)

	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		result, _ := dp.Attributes.Value(attribute.Key("result"))
		code, _ := dp.Attributes.Value(attribute.Key("code"))
		counts[result.AsString()+"/"+code.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"valid/": 1, "invalid/EMAIL_INVALID": 2}, counts)
}
