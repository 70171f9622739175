package clientmodels

import (
	"fmt"

	"github.com/pkg/errors"
)

// FailureKind classifies why a command invocation did not produce a usable
// response.
type FailureKind string

const (
	FailureClientUnavailable    FailureKind = "client_unavailable"
	FailureUnsupportedTransport FailureKind = "unsupported_transport"
	FailureConnection           FailureKind = "connection_failed"
	FailureEmptyResponse        FailureKind = "empty_response"
	FailureConfiguration        FailureKind = "configuration_missing"
	FailureUnexpectedStatus     FailureKind = "unexpected_status"
	FailureCommand              FailureKind = "command_failed"
)

var (
	ErrClientUnavailable    = errors.New("no command client available for the configured transport")
	ErrUnsupportedTransport = errors.New("secure transport is not supported for this url")
	ErrConnectionFailed     = errors.New("could not connect to the server")
	ErrEmptyResponse        = errors.New("no response from server")
	ErrConfigurationMissing = errors.New("configuration is incomplete")
	ErrUnexpectedStatus     = errors.New("unexpected http status")
	ErrCommandFailed        = errors.New("command returned a non zero code")
)

func (k FailureKind) Sentinel() error {
	switch k {
	case FailureClientUnavailable:
		return ErrClientUnavailable
	case FailureUnsupportedTransport:
		return ErrUnsupportedTransport
	case FailureConnection:
		return ErrConnectionFailed
	case FailureEmptyResponse:
		return ErrEmptyResponse
	case FailureConfiguration:
		return ErrConfigurationMissing
	case FailureUnexpectedStatus:
		return ErrUnexpectedStatus
	case FailureCommand:
		return ErrCommandFailed
	default:
		return nil
	}
}

// CommandError is returned for every failed invocation. It matches the
// sentinel of its Kind with errors.Is and unwraps to the underlying cause.
type CommandError struct {
	Kind       FailureKind
	Command    string
	ReturnCode ReturnCode
	StatusCode int
	Err        error
}

func NewCommandError(kind FailureKind, command string, err error) *CommandError {
	return &CommandError{
		Kind:    kind,
		Command: command,
		Err:     err,
	}
}

func (e *CommandError) Error() string {
	msg := string(e.Kind)
	if e.Command != "" {
		msg = fmt.Sprintf("%s: %s", e.Command, msg)
	}

	switch {
	case e.Kind == FailureCommand && e.ReturnCode >= 0:
		msg = fmt.Sprintf("%s, code %d %s: %s", msg, int(e.ReturnCode), e.ReturnCode.String(), e.ReturnCode.Description())
	case e.Kind == FailureUnexpectedStatus:
		msg = fmt.Sprintf("%s, status code: %d", msg, e.StatusCode)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s, err: %v", msg, e.Err)
	}

	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func (e *CommandError) Is(target error) bool {
	sentinel := e.Kind.Sentinel()
	return sentinel != nil && target == sentinel
}

// KindOf returns the failure kind carried by err, or an empty kind when err
// is not a CommandError.
func KindOf(err error) FailureKind {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Kind
	}
	return ""
}

// ReturnCodeOf returns the return code of a failed command and whether err
// carried one.
func ReturnCodeOf(err error) (ReturnCode, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Kind == FailureCommand && cmdErr.ReturnCode >= 0 {
		return cmdErr.ReturnCode, true
	}
	return 0, false
}

// IsNotExist reports whether err is the panel's E_NOTEXIST answer.
func IsNotExist(err error) bool {
	code, ok := ReturnCodeOf(err)
	return ok && code == ReturnCodeNotExist
}
