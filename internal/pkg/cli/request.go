package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shandysiswandi/payloadguard/internal/pkg/goerror"
	"github.com/spf13/cobra"
)

// StdinPath selects standard input wherever a file path is expected.
const StdinPath = "-"

// maxLineBytes bounds a single JSON line read by EachLine.
const maxLineBytes = 1 << 20

// Request wraps a cobra invocation with helpers for inbound handlers.
type Request struct {
	cmd  *cobra.Command
	args []string
}

// NewRequest builds a Request for cmd and its positional args.
func NewRequest(cmd *cobra.Command, args []string) *Request {
	return &Request{cmd: cmd, args: args}
}

// Context returns the command context.
func (r *Request) Context() context.Context {
	if ctx := r.cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Args returns the positional arguments.
func (r *Request) Args() []string {
	return r.args
}

// GetFlag returns the string value of a flag, or "" when it is not defined.
func (r *Request) GetFlag(name string) string {
	v, err := r.cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}

// FlagChanged reports whether the user set the flag explicitly.
func (r *Request) FlagChanged(name string) bool {
	return r.cmd.Flags().Changed(name)
}

func (r *Request) open(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(r.cmd.InOrStdin()), nil
	}

	// #nosec G304 -- path is chosen by the operator running the command.
	f, err := os.Open(path)
	if err != nil {
		return nil, goerror.NewInvalidFormat(fmt.Sprintf("cannot open %s: %v", path, err))
	}
	return f, nil
}

// DecodeJSON decodes a single JSON document from path (or stdin for "-") into
// v. Unknown fields and trailing content are rejected.
func (r *Request) DecodeJSON(path string, v any) error {
	rc, err := r.open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	return decodeStrict(rc, v)
}

// EachLine calls fn for every non-blank line of path (or stdin for "-"). Line
// numbers start at 1. It stops at the first error returned by fn.
func (r *Request) EachLine(path string, fn func(line int, data []byte) error) error {
	rc, err := r.open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	n := 0
	for sc.Scan() {
		n++
		data := sc.Bytes()
		if len(strings.TrimSpace(string(data))) == 0 {
			continue
		}
		if err := fn(n, data); err != nil {
			return err
		}
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return goerror.NewInvalidFormat(fmt.Sprintf("line %d is longer than %d bytes", n+1, maxLineBytes))
		}
		return goerror.NewServer(err)
	}

	return nil
}

// DecodeStrict decodes exactly one JSON value from data into v.
func DecodeStrict(data []byte, v any) error {
	return decodeStrict(strings.NewReader(string(data)), v)
}

func decodeStrict(rd io.Reader, v any) error {
	dec := json.NewDecoder(rd)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return goerror.NewInvalidFormat(describeDecodeError(err))
	}

	if dec.More() {
		return goerror.NewInvalidFormat("Invalid request body: unexpected trailing content")
	}

	return nil
}

func describeDecodeError(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.EOF):
		return "Invalid request body: empty input"
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("Invalid request body: malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return fmt.Sprintf("Invalid request body: field %q must be %s", typeErr.Field, typeErr.Type)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return "Invalid request body: " + strings.TrimPrefix(err.Error(), "json: ")
	default:
		return "Invalid request body"
	}
}
