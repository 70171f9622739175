package clientmodels

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// CommandRequest is a single invocation of a panel command.
type CommandRequest struct {
	Command   string
	Arguments []string
	// Parameters are extra named form fields. They never replace the
	// credential, command or return code fields.
	Parameters map[string]string
	Method     string
	ReturnCode bool
}

func NewCommandRequest(command string, arguments ...string) CommandRequest {
	return CommandRequest{
		Command:   command,
		Arguments: arguments,
	}
}

type CommandResponse struct {
	Command       string
	Body          string
	StatusCode    int
	ReturnCode    ReturnCode
	HasReturnCode bool
}

func (r *CommandResponse) Text() string {
	if r == nil {
		return ""
	}
	return strings.TrimSuffix(r.Body, "\n")
}

func (r *CommandResponse) Success() bool {
	if r == nil {
		return false
	}
	if r.HasReturnCode {
		return r.ReturnCode.IsSuccess()
	}
	return true
}

// IsEmpty is true when the response carries neither a body nor a return code.
func (r *CommandResponse) IsEmpty() bool {
	return r == nil || (!r.HasReturnCode && strings.TrimSpace(r.Body) == "")
}

func (r *CommandResponse) DecodeJSON(destination interface{}) error {
	if r == nil || strings.TrimSpace(r.Body) == "" {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal([]byte(r.Body), destination); err != nil {
		return errors.Wrapf(err, "error unmarshalling %s response", r.Command)
	}

	return nil
}

// IsOkMessage is the answer the dispatcher prints for a successful command
// without output when return codes are not requested.
func IsOkMessage(body string) bool {
	return strings.TrimSpace(body) == "OK"
}

// IsNotExistMessage matches the text form of E_NOTEXIST.
func IsNotExistMessage(body string) bool {
	body = strings.TrimSpace(body)
	return strings.HasPrefix(body, "Error:") && strings.Contains(body, "doesn't exist")
}

// IsWrongPasswordMessage matches the text form of E_PASSWORD printed by
// v-check-user-password, such as "Error: password missmatch".
func IsWrongPasswordMessage(body string) bool {
	body = strings.ToLower(strings.TrimSpace(body))
	return strings.HasPrefix(body, "error:") && strings.Contains(body, "password")
}
