// Package rule holds the field and payload rules applied to client input
// before it is persisted.
//
// Every rule is a pure function of its input: nil means valid, otherwise the
// result is a *entity.ValidationError describing the first failed check.
package rule

import (
	"github.com/shandysiswandi/payloadguard/internal/payload/entity"
	"github.com/shandysiswandi/payloadguard/internal/pkg/validator"
)

// Check is one constraint expressed as a validator tag.
type Check struct {
	Tag     string
	Message string
	Code    entity.Code
}

// Field describes how a single payload field is validated.
type Field struct {
	Name string
	// RequiredWhenEmpty runs the checks against an empty value too. When false
	// an empty value is treated as "not provided" and passes.
	RequiredWhenEmpty bool
	// Checks run in order; the first failing one decides the error.
	Checks []Check
}

var (
	// EmailField accepts an empty value or a well-formed email address.
	EmailField = Field{
		Name: "email",
		Checks: []Check{
			{Tag: "email", Message: "The email format isn't valid", Code: entity.CodeEmailInvalid},
		},
	}

	// PasswordField accepts an empty value or 8 to 256 characters.
	PasswordField = Field{
		Name: "password",
		Checks: []Check{
			{Tag: "min=8,max=256", Message: "Password length must be between 8 and 256 characters.", Code: entity.CodePasswordInvalid},
		},
	}

	// UsernameField accepts an empty value or 4 to 32 letters, digits and underscores.
	UsernameField = Field{
		Name: "username",
		Checks: []Check{
			{Tag: "min=4,max=32", Message: "Username length must be between 4 and 32 characters.", Code: entity.CodeUsernameInvalid},
			{Tag: validator.TagUsernameCharset, Message: "Username only can contains A-Z a-z 0-9 _.", Code: entity.CodeUsernameInvalid},
		},
	}

	// MessageContentField always requires 1 to 2000 characters.
	MessageContentField = Field{
		Name:              "content",
		RequiredWhenEmpty: true,
		Checks: []Check{
			{Tag: "min=1,max=2000", Message: "Message length must be between 1 and 2000 characters.", Code: entity.CodeMessageContentTooLong},
		},
	}
)

// Rules evaluates Fields with a Validator. It keeps no state between calls
// and is safe for concurrent use.
type Rules struct {
	validator validator.Validator
}

// New returns Rules backed by v.
func New(v validator.Validator) *Rules {
	return &Rules{validator: v}
}

// Run validates value against f.
func (r *Rules) Run(f Field, value string) error {
	if value == "" && !f.RequiredWhenEmpty {
		return nil
	}

	for _, c := range f.Checks {
		if err := r.validator.Var(value, c.Tag); err != nil {
			return entity.NewValidationError(c.Message, c.Code)
		}
	}

	return nil
}

// Email validates an email address.
func (r *Rules) Email(email string) error {
	return r.Run(EmailField, email)
}

// Password validates a password length.
func (r *Rules) Password(password string) error {
	return r.Run(PasswordField, password)
}

// Username validates a username length, then its characters.
func (r *Rules) Username(username string) error {
	return r.Run(UsernameField, username)
}

// MessageContent validates message content.
func (r *Rules) MessageContent(content string) error {
	return r.Run(MessageContentField, content)
}
