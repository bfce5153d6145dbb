// Package config exposes typed access to layered configuration values:
// built-in defaults, an optional YAML file and PAYLOADGUARD_* environment
// variables, in increasing order of precedence.
package config

import (
	"io"
	"time"
)

// Config defines a set of methods for retrieving configuration values of various types.
// Missing keys and failed conversions yield the zero value of the requested type.
type Config interface {
	io.Closer

	// GetBool retrieves the value associated with key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the value associated with key as an int.
	GetInt(key string) int

	// GetFloat64 retrieves the value associated with key as a float64.
	GetFloat64(key string) float64

	// GetSecond retrieves the value associated with key as a number of seconds.
	GetSecond(key string) time.Duration

	// GetString retrieves the value associated with key as a string.
	GetString(key string) string

	// GetArray retrieves the value associated with key as a slice of strings.
	// Values are stored either as a YAML list or with format <element1>,<element2>,...
	GetArray(key string) []string
}
