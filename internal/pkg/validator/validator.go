package validator

// Validator checks structs against their `validate` tags and single values
// against an ad-hoc tag expression.
type Validator interface {
	// Validate validates a struct and returns a field-to-message error on failure.
	Validate(data any) error
	// Var validates a single value against tag, e.g. "email" or "min=8,max=256".
	Var(value any, tag string) error
}
