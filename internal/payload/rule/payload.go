package rule

import "github.com/shandysiswandi/payloadguard/internal/payload/entity"

// ValidateUserPayload checks email, password and username in that order and
// returns the first error. Fields after a failure are not evaluated.
func (r *Rules) ValidateUserPayload(in entity.UserPayload) error {
	checks := []func() error{
		func() error { return r.Email(in.Email) },
		func() error { return r.Password(in.Password) },
		func() error { return r.Username(in.Username) },
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}

	return nil
}

// ValidateMessagePayload checks the message content.
func (r *Rules) ValidateMessagePayload(in entity.MessagePayload) error {
	return r.MessageContent(in.Content)
}
