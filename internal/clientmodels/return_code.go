package clientmodels

import (
	"strconv"
	"strings"
)

// ReturnCode is the numeric status the panel answers with when the request
// carries returncode=yes, or the exit status of a command run over ssh.
type ReturnCode int

// ReturnCodeUnknown marks a failure reported as text instead of a code.
const ReturnCodeUnknown ReturnCode = -1

const (
	ReturnCodeOK ReturnCode = iota
	ReturnCodeArgs
	ReturnCodeInvalid
	ReturnCodeNotExist
	ReturnCodeExists
	ReturnCodeSuspended
	ReturnCodeUnsuspended
	ReturnCodeInUse
	ReturnCodeLimit
	ReturnCodePassword
	ReturnCodeForbidden
	ReturnCodeDisabled
	ReturnCodeParsing
	ReturnCodeDisk
	ReturnCodeLoadAverage
	ReturnCodeConnect
	ReturnCodeFtp
	ReturnCodeDb
	ReturnCodeRrd
	ReturnCodeUpdate
	ReturnCodeRestart
)

type returnCodeInfo struct {
	name        string
	description string
}

var returnCodes = map[ReturnCode]returnCodeInfo{
	ReturnCodeOK:          {"OK", "Command has been successfully performed"},
	ReturnCodeArgs:        {"E_ARGS", "Not enough arguments provided"},
	ReturnCodeInvalid:     {"E_INVALID", "Object or argument is not valid"},
	ReturnCodeNotExist:    {"E_NOTEXIST", "Object doesn't exist"},
	ReturnCodeExists:      {"E_EXISTS", "Object already exists"},
	ReturnCodeSuspended:   {"E_SUSPENDED", "Object is suspended"},
	ReturnCodeUnsuspended: {"E_UNSUSPENDED", "Object is already unsuspended"},
	ReturnCodeInUse:       {"E_INUSE", "Object can't be deleted because it is used by another object"},
	ReturnCodeLimit:       {"E_LIMIT", "Object cannot be created because of hosting package limits"},
	ReturnCodePassword:    {"E_PASSWORD", "Wrong password"},
	ReturnCodeForbidden:   {"E_FORBIDEN", "Object cannot be accessed by the user"},
	ReturnCodeDisabled:    {"E_DISABLED", "Subsystem is disabled"},
	ReturnCodeParsing:     {"E_PARSING", "Configuration is broken"},
	ReturnCodeDisk:        {"E_DISK", "Not enough disk space to complete the action"},
	ReturnCodeLoadAverage: {"E_LA", "Server is too busy to complete the action"},
	ReturnCodeConnect:     {"E_CONNECT", "Connection failed, host is unreachable"},
	ReturnCodeFtp:         {"E_FTP", "FTP server is not responding"},
	ReturnCodeDb:          {"E_DB", "Database server is not responding"},
	ReturnCodeRrd:         {"E_RRD", "RRDtool failed to update the database"},
	ReturnCodeUpdate:      {"E_UPDATE", "Update operation failed"},
	ReturnCodeRestart:     {"E_RESTART", "Service restart failed"},
}

func (c ReturnCode) String() string {
	if info, ok := returnCodes[c]; ok {
		return info.name
	}
	return "E_UNKNOWN(" + strconv.Itoa(int(c)) + ")"
}

func (c ReturnCode) Description() string {
	if info, ok := returnCodes[c]; ok {
		return info.description
	}
	return "Unknown return code"
}

func (c ReturnCode) IsSuccess() bool {
	return c == ReturnCodeOK
}

// ParseReturnCode reads a return code from a response body. The panel writes
// the bare number, sometimes followed by a newline.
func ParseReturnCode(body string) (ReturnCode, bool) {
	body = strings.TrimSpace(body)
	if body == "" {
		return 0, false
	}

	code, err := strconv.Atoi(body)
	if err != nil || code < 0 {
		return 0, false
	}

	return ReturnCode(code), true
}
