package instrument

import (
	"context"
	"strings"
)

type correlationIDKey struct{}

// maxCorrelationIDLen bounds caller-provided IDs before they reach logs.
const maxCorrelationIDLen = 128

// SetCorrelationID returns a copy of ctx carrying cID. Blank IDs and IDs with
// line breaks leave ctx untouched.
func SetCorrelationID(ctx context.Context, cID string) context.Context {
	cID = NormalizeCorrelationID(cID)
	if cID == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationIDKey{}, cID)
}

// GetCorrelationID returns the correlation ID stored in ctx, or "".
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	cID, _ := ctx.Value(correlationIDKey{}).(string)
	return cID
}

// NormalizeCorrelationID trims v and truncates it to a safe length. It returns
// "" for values that could break a log line.
func NormalizeCorrelationID(v string) string {
	if strings.ContainsAny(v, "\r\n") {
		return ""
	}
	v = strings.TrimSpace(v)
	if len(v) > maxCorrelationIDLen {
		v = v[:maxCorrelationIDLen]
	}
	return v
}
