package entity

// Code is the machine-readable reason attached to a ValidationError.
// Values are a stable contract with clients that branch on them.
type Code string

const (
	// CodeEmailInvalid reports an email that is present but malformed.
	CodeEmailInvalid Code = "EMAIL_INVALID"
	// CodePasswordInvalid reports a password that is present but has the wrong length.
	CodePasswordInvalid Code = "PASSWORD_INVALID"
	// CodeUsernameInvalid reports a username with the wrong length or disallowed characters.
	CodeUsernameInvalid Code = "USERNAME_INVALID"
	// CodeMessageContentTooLong reports message content that is missing or outside [1, 2000] characters.
	CodeMessageContentTooLong Code = "MESSAGE_CONTENT_TOO_LONG"
)

// Codes lists every Code in declaration order.
func Codes() []Code {
	return []Code{CodeEmailInvalid, CodePasswordInvalid, CodeUsernameInvalid, CodeMessageContentTooLong}
}

func (c Code) String() string {
	return string(c)
}
