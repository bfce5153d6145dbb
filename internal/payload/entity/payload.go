package entity

// UserPayload is the body of a user create or update request. Every field is
// optional: an empty value means "not provided" and is not checked.
type UserPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// MessagePayload is the body of a message create or update request.
type MessagePayload struct {
	Content string `json:"content"`
}

// Kind names the payload shape of a batch item.
type Kind string

const (
	KindUser    Kind = "user"
	KindMessage Kind = "message"
)
