// Package validator provides a small validation abstraction for payload and
// dependency structs as well as single values.
//
// Business code should depend on the Validator interface so validation can be
// shared and tested consistently. The concrete implementation backed by
// go-playground/validator v10 lives in this package.
package validator
