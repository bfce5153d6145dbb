package usecase

import (
	"context"

	"github.com/shandysiswandi/payloadguard/internal/payload/entity"
)

// ValidateUser checks a user create or update payload. A rejected payload
// yields a bad-request goerror whose Reason is the entity.Code.
func (s *Usecase) ValidateUser(ctx context.Context, in entity.UserPayload) error {
	ctx, span := s.startSpan(ctx, "ValidateUser")
	defer span.End()

	return s.observe(ctx, span, entity.KindUser, s.rules.ValidateUserPayload(in))
}

// ValidateMessage checks a message create or update payload.
func (s *Usecase) ValidateMessage(ctx context.Context, in entity.MessagePayload) error {
	ctx, span := s.startSpan(ctx, "ValidateMessage")
	defer span.End()

	return s.observe(ctx, span, entity.KindMessage, s.rules.ValidateMessagePayload(in))
}
