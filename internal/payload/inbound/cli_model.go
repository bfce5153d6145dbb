package inbound

import (
	"encoding/json"
	"time"

	"github.com/shandysiswandi/payloadguard/internal/payload/entity"
	"github.com/shandysiswandi/payloadguard/internal/pkg/cli"
)

type UserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type MessageRequest struct {
	Content string `json:"content"`
}

type BatchLine struct {
	Kind    entity.Kind     `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

type ValidResponse struct {
	Kind entity.Kind `json:"kind"`
}

func (ValidResponse) Message() string {
	return "payload is valid"
}

type BatchResultResponse struct {
	Line  int               `json:"line"`
	Kind  entity.Kind       `json:"kind"`
	Valid bool              `json:"valid"`
	Error map[string]string `json:"error,omitempty"`
}

type BatchResponse struct {
	Results []BatchResultResponse `json:"results"`

	total    int
	valid    int
	invalid  int
	byReason map[string]int
	duration time.Duration
}

func (BatchResponse) Message() string {
	return "batch validated"
}

func (b BatchResponse) Meta() map[string]any {
	return map[string]any{
		"total":       b.total,
		"valid":       b.valid,
		"invalid":     b.invalid,
		"by_reason":   b.byReason,
		"duration_ms": b.duration.Milliseconds(),
	}
}

func (b BatchResponse) ExitCode() int {
	if b.invalid > 0 {
		return cli.ExitRejected
	}
	return cli.ExitOK
}
