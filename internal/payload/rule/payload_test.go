package rule

import (
	"errors"
	"strings"
	"testing"

	"github.com/shandysiswandi/payloadguard/internal/payload/entity"
	"github.com/stretchr/testify/assert"
)

// recordingValidator fails every tag listed in fail and records each tag it sees.
type recordingValidator struct {
	fail map[string]bool
	seen []string
}

func (v *recordingValidator) Validate(any) error { return nil }

func (v *recordingValidator) Var(_ any, tag string) error {
	v.seen = append(v.seen, tag)
	if v.fail[tag] {
		return errors.New("failed " + tag)
	}
	return nil
}

func TestRules_ValidateUserPayload(t *testing.T) {
	r := newRules(t)

	tests := []struct {
		name     string
		in       entity.UserPayload
		wantCode entity.Code
	}{
		{name: "empty update payload", in: entity.UserPayload{}},
		{name: "full valid payload", in: entity.UserPayload{Email: "user@example.com", Password: "s3cretPass", Username: "ab_cd"}},
		{name: "partial valid payload", in: entity.UserPayload{Username: "new_name"}},
		{
			name:     "invalid email wins over invalid password",
			in:       entity.UserPayload{Email: "not-an-email", Password: "short"},
			wantCode: entity.CodeEmailInvalid,
		},
		{
			name:     "invalid password wins over invalid username",
			in:       entity.UserPayload{Email: "user@example.com", Password: "short", Username: "a-b"},
			wantCode: entity.CodePasswordInvalid,
		},
		{
			name:     "invalid username",
			in:       entity.UserPayload{Password: strings.Repeat("x", 10), Username: "ab-cd"},
			wantCode: entity.CodeUsernameInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.ValidateUserPayload(tt.in)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}

			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestRules_ValidateUserPayload_StopsAtFirstFailure(t *testing.T) {
	// Arrange
	v := &recordingValidator{fail: map[string]bool{"email": true, "min=8,max=256": true}}
	r := New(v)

	// Act
	err := r.ValidateUserPayload(entity.UserPayload{Email: "x", Password: "y", Username: "z"})

	// Assert
	assertCode(t, err, entity.CodeEmailInvalid)
	assert.Equal(t, []string{"email"}, v.seen)
}

func TestRules_ValidateUserPayload_SkipsEmptyFields(t *testing.T) {
	v := &recordingValidator{}
	r := New(v)

	assert.NoError(t, r.ValidateUserPayload(entity.UserPayload{Username: "ab_cd"}))
	assert.Equal(t, []string{"min=4,max=32", "username_charset"}, v.seen)
}

func TestRules_ValidateMessagePayload(t *testing.T) {
	r := newRules(t)

	assert.NoError(t, r.ValidateMessagePayload(entity.MessagePayload{Content: "hello"}))
	assertCode(t, r.ValidateMessagePayload(entity.MessagePayload{}), entity.CodeMessageContentTooLong)
	assertCode(t, r.ValidateMessagePayload(entity.MessagePayload{Content: strings.Repeat("a", 2001)}), entity.CodeMessageContentTooLong)
}
