package inbound

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/payloadguard/internal/payload/entity"
	"github.com/shandysiswandi/payloadguard/internal/payload/usecase"
	"github.com/shandysiswandi/payloadguard/internal/pkg/cli"
	"github.com/shandysiswandi/payloadguard/internal/pkg/goerror"
)

type CLIEndpoint struct {
	uc uc
}

// ValidateUser validates a user payload given as flags or as a JSON document.
//
//	payloadguard user --email user@example.com --password 's3cretPass'
//	echo '{"username":"ab_cd"}' | payloadguard user --json -
func (h *CLIEndpoint) ValidateUser(r *cli.Request) (any, error) {
	req := UserRequest{
		Email:    r.GetFlag("email"),
		Password: r.GetFlag("password"),
		Username: r.GetFlag("username"),
	}
	if r.FlagChanged(flagJSON) {
		req = UserRequest{}
		if err := r.DecodeJSON(r.GetFlag(flagJSON), &req); err != nil {
			return nil, err
		}
	}

	if err := h.uc.ValidateUser(r.Context(), entity.UserPayload{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	}); err != nil {
		return nil, err
	}

	return ValidResponse{Kind: entity.KindUser}, nil
}

// ValidateMessage validates a message payload given as a flag or as a JSON document.
func (h *CLIEndpoint) ValidateMessage(r *cli.Request) (any, error) {
	req := MessageRequest{Content: r.GetFlag("content")}
	if r.FlagChanged(flagJSON) {
		req = MessageRequest{}
		if err := r.DecodeJSON(r.GetFlag(flagJSON), &req); err != nil {
			return nil, err
		}
	}

	if err := h.uc.ValidateMessage(r.Context(), entity.MessagePayload{Content: req.Content}); err != nil {
		return nil, err
	}

	return ValidResponse{Kind: entity.KindMessage}, nil
}

// ValidateBatch validates every line of a JSON lines file. Each line looks like
// {"kind":"user","payload":{"email":"..."}}. A malformed line aborts the batch.
func (h *CLIEndpoint) ValidateBatch(r *cli.Request) (any, error) {
	var (
		items []usecase.BatchItem
		lines []int
	)

	err := r.EachLine(r.GetFlag("file"), func(line int, data []byte) error {
		item, err := decodeBatchLine(data)
		if err != nil {
			return lineError(line, err)
		}
		items = append(items, item)
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(r.Context(), "batch validation started", "items", len(items))

	report, err := h.uc.ValidateBatch(r.Context(), items)
	if err != nil {
		return nil, err
	}

	resp := BatchResponse{
		Results:  make([]BatchResultResponse, 0, len(report.Results)),
		total:    report.Total,
		valid:    report.Valid,
		invalid:  report.Invalid,
		byReason: report.ByReason,
		duration: report.Duration,
	}
	for _, res := range report.Results {
		resp.Results = append(resp.Results, BatchResultResponse{
			Line:  lines[res.Index],
			Kind:  res.Kind,
			Valid: res.Err == nil,
			Error: errorFields(res.Err),
		})
	}

	slog.InfoContext(r.Context(), "batch validation finished",
		"total", report.Total, "valid", report.Valid, "invalid", report.Invalid, "duration", report.Duration)

	return resp, nil
}

func decodeBatchLine(data []byte) (usecase.BatchItem, error) {
	var line BatchLine
	if err := cli.DecodeStrict(data, &line); err != nil {
		return usecase.BatchItem{}, err
	}

	payload := []byte(line.Payload)
	if len(payload) == 0 || string(payload) == "null" {
		payload = []byte("{}")
	}

	item := usecase.BatchItem{Kind: line.Kind}
	switch line.Kind {
	case entity.KindUser:
		var req UserRequest
		if err := cli.DecodeStrict(payload, &req); err != nil {
			return usecase.BatchItem{}, err
		}
		item.User = entity.UserPayload{Email: req.Email, Password: req.Password, Username: req.Username}
	case entity.KindMessage:
		var req MessageRequest
		if err := cli.DecodeStrict(payload, &req); err != nil {
			return usecase.BatchItem{}, err
		}
		item.Message = entity.MessagePayload{Content: req.Content}
	}

	return item, nil
}

func lineError(line int, err error) error {
	var gerr *goerror.Error
	if errors.As(err, &gerr) {
		return goerror.NewInvalidFormat(fmt.Sprintf("line %d: %s", line, gerr.Msg()))
	}
	return goerror.NewInvalidFormat(fmt.Sprintf("line %d: invalid payload", line))
}

func errorFields(err error) map[string]string {
	if err == nil {
		return nil
	}

	fields := map[string]string{"code": usecase.Reason(err)}

	var gerr *goerror.Error
	if errors.As(err, &gerr) {
		fields["message"] = gerr.Msg()
		fields["status"] = strconv.Itoa(gerr.StatusCode())
	}

	return fields
}
