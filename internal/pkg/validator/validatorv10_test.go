package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *V10Validator {
	t.Helper()

	v, err := NewV10Validator()
	require.NoError(t, err)
	return v
}

func TestV10Validator_Validate(t *testing.T) {
	type input struct {
		DisplayName string `validate:"required"`
		MaxWorkers  int    `validate:"gte=1"`
	}

	v := newTestValidator(t)

	t.Run("valid struct", func(t *testing.T) {
		assert.NoError(t, v.Validate(input{DisplayName: "guard", MaxWorkers: 2}))
	})

	t.Run("invalid struct uses snake case keys", func(t *testing.T) {
		// Act
		err := v.Validate(input{})

		// Assert
		var verr V10ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Values(), "display_name")
		assert.Contains(t, verr.Values(), "max_workers")
		assert.Equal(t, "DisplayName is a required field", verr["display_name"])
	})
}

func TestV10Validator_Var(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		value   string
		tag     string
		wantErr bool
	}{
		{name: "email ok", value: "user@example.com", tag: "email"},
		{name: "email bad", value: "not-an-email", tag: "email", wantErr: true},
		{name: "length counts runes", value: "ééééééé", tag: "min=7,max=7"},
		{name: "length too short", value: "abc", tag: "min=4,max=32", wantErr: true},
		{name: "charset ok", value: "ab_cd_9", tag: TagUsernameCharset},
		{name: "charset rejects dash", value: "ab-cd", tag: TagUsernameCharset, wantErr: true},
		{name: "charset rejects only underscores", value: "____", tag: TagUsernameCharset, wantErr: true},
		{name: "charset rejects non ascii", value: "abçd", tag: TagUsernameCharset, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var verr V10ValidationError
			require.True(t, errors.As(err, &verr))
			assert.NotEmpty(t, verr[varFieldKey])
		})
	}
}

func TestV10ValidationError_Error(t *testing.T) {
	assert.Equal(t, "validation error", V10ValidationError{}.Error())
	assert.JSONEq(t, `{"value":"bad"}`, V10ValidationError{"value": "bad"}.Error())
}
