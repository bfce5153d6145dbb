package cli

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/payloadguard/internal/pkg/goerror"
	"github.com/shandysiswandi/payloadguard/internal/pkg/validator"
)

const (
	// ExitOK means the command succeeded and every payload was valid.
	ExitOK = 0
	// ExitFailure means the command could not run: bad input files, broken JSON, internal errors.
	ExitFailure = 1
	// ExitRejected means at least one payload was rejected by a rule.
	ExitRejected = 2
)

type errorResponse struct {
	Message string            `json:"message"`
	Error   map[string]string `json:"error,omitempty"`
}

type successResponse struct {
	Message string         `json:"message"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Error("failed to write json response", "error", err)
	}
}

// writeError renders err and returns the matching exit code.
func writeError(w io.Writer, err error) int {
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		writeJSON(w, errorResponse{Message: "Internal server error"})
		return ExitFailure
	}

	fields := map[string]string{"status": strconv.Itoa(gerr.StatusCode())}
	if gerr.Reason() != "" {
		fields["code"] = gerr.Reason()
	} else {
		fields["code"] = gerr.Code().String()
	}

	var errValidate validator.V10ValidationError
	if errors.As(err, &errValidate) {
		for k, v := range errValidate.Values() {
			fields[k] = v
		}
	}
	for k, v := range gerr.Fields() {
		fields[k] = v
	}

	writeJSON(w, errorResponse{Message: gerr.Msg(), Error: fields})

	if gerr.Code() == goerror.CodeBadRequest {
		return ExitRejected
	}
	return ExitFailure
}

// writeSuccess renders resp and returns its exit code. resp may implement
// Message() string, Meta() map[string]any and ExitCode() int.
func writeSuccess(w io.Writer, resp any) int {
	msg := "request has been successfully"
	if m, ok := resp.(interface{ Message() string }); ok {
		msg = m.Message()
	}

	var meta map[string]any
	if m, ok := resp.(interface{ Meta() map[string]any }); ok {
		meta = m.Meta()
	}

	writeJSON(w, successResponse{Message: msg, Data: resp, Meta: meta})

	if c, ok := resp.(interface{ ExitCode() int }); ok {
		return c.ExitCode()
	}
	return ExitOK
}
