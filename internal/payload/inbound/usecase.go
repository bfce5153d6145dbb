package inbound

import (
	"context"

	"github.com/shandysiswandi/payloadguard/internal/payload/entity"
	"github.com/shandysiswandi/payloadguard/internal/payload/usecase"
)

type uc interface {
	ValidateUser(ctx context.Context, in entity.UserPayload) error
	ValidateMessage(ctx context.Context, in entity.MessagePayload) error
	ValidateBatch(ctx context.Context, items []usecase.BatchItem) (*usecase.BatchReport, error)
}
