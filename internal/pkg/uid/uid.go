// Package uid generates identifiers used to correlate log lines.
package uid

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}
