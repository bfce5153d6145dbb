package rule

import (
	"errors"
	"strings"
	"testing"

	"github.com/shandysiswandi/payloadguard/internal/payload/entity"
	"github.com/shandysiswandi/payloadguard/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRules(t *testing.T) *Rules {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)
	return New(v)
}

func assertCode(t *testing.T, err error, want entity.Code) {
	t.Helper()

	var verr *entity.ValidationError
	require.True(t, errors.As(err, &verr), "expected *entity.ValidationError, got %v", err)
	assert.Equal(t, want, verr.Code)
}

func TestRules_Email(t *testing.T) {
	r := newRules(t)

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "empty is not provided", email: ""},
		{name: "valid", email: "user@example.com"},
		{name: "valid with subdomain and tag", email: "first.last+chat@mail.example.co"},
		{name: "missing at", email: "not-an-email", wantErr: true},
		{name: "missing domain", email: "user@", wantErr: true},
		{name: "spaces", email: "user name@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Email(tt.email)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			assertCode(t, err, entity.CodeEmailInvalid)
			assert.EqualError(t, err, "The email format isn't valid")
		})
	}
}

func TestRules_Password(t *testing.T) {
	r := newRules(t)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "empty is not provided", password: ""},
		{name: "lower bound", password: strings.Repeat("a", 8)},
		{name: "upper bound", password: strings.Repeat("a", 256)},
		{name: "multibyte counts characters", password: strings.Repeat("é", 8)},
		{name: "too short", password: strings.Repeat("a", 7), wantErr: true},
		{name: "too long", password: strings.Repeat("a", 257), wantErr: true},
		{name: "multibyte too short", password: strings.Repeat("é", 7), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Password(tt.password)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			assertCode(t, err, entity.CodePasswordInvalid)
			assert.EqualError(t, err, "Password length must be between 8 and 256 characters.")
		})
	}
}

func TestRules_Username(t *testing.T) {
	r := newRules(t)

	const (
		lengthMsg  = "Username length must be between 4 and 32 characters."
		charsetMsg = "Username only can contains A-Z a-z 0-9 _."
	)

	tests := []struct {
		name     string
		username string
		wantMsg  string
	}{
		{name: "empty is not provided", username: ""},
		{name: "underscores allowed", username: "ab_cd"},
		{name: "lower bound with underscore", username: "ab_c"},
		{name: "upper bound", username: strings.Repeat("a", 32)},
		{name: "digits", username: "user_2024"},
		{name: "too short", username: "abc", wantMsg: lengthMsg},
		{name: "too long", username: strings.Repeat("a", 33), wantMsg: lengthMsg},
		{name: "length checked before charset", username: "a-b", wantMsg: lengthMsg},
		{name: "dash", username: "ab-cd", wantMsg: charsetMsg},
		{name: "space", username: "ab cd", wantMsg: charsetMsg},
		{name: "only underscores", username: "____", wantMsg: charsetMsg},
		{name: "non ascii letter", username: "jürgen", wantMsg: charsetMsg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Username(tt.username)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			assertCode(t, err, entity.CodeUsernameInvalid)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestRules_MessageContent(t *testing.T) {
	r := newRules(t)

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "empty is required", content: "", wantErr: true},
		{name: "single character", content: "a"},
		{name: "upper bound", content: strings.Repeat("a", 2000)},
		{name: "upper bound multibyte", content: strings.Repeat("你", 2000)},
		{name: "too long", content: strings.Repeat("a", 2001), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.MessageContent(tt.content)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			assertCode(t, err, entity.CodeMessageContentTooLong)
			assert.EqualError(t, err, "Message length must be between 1 and 2000 characters.")
		})
	}
}

func TestRules_Run_RequiredWhenEmpty(t *testing.T) {
	r := newRules(t)

	optional := Field{Name: "nick", Checks: []Check{{Tag: "min=3", Message: "short", Code: "NICK_INVALID"}}}
	required := optional
	required.RequiredWhenEmpty = true

	assert.NoError(t, r.Run(optional, ""))
	assertCode(t, r.Run(required, ""), "NICK_INVALID")
}

func TestRules_Idempotent(t *testing.T) {
	r := newRules(t)

	for range 3 {
		assertCode(t, r.Username("ab-cd"), entity.CodeUsernameInvalid)
		assert.NoError(t, r.Email("user@example.com"))
	}
}
