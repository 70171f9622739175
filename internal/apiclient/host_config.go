package apiclient

import (
	"fmt"
	"strings"
	"time"

	"terraform-provider-vestacp/internal/clientmodels"
	"terraform-provider-vestacp/internal/constants"
	"terraform-provider-vestacp/internal/helpers"
	"terraform-provider-vestacp/internal/ssh"

	"github.com/pkg/errors"
)

type Transport string

const (
	TransportApi   Transport = "api"
	TransportSsh   Transport = "ssh"
	TransportLocal Transport = "local"
)

var ListFormats = []string{"shell", "raw", "plain", "csv", "json"}

type SshConfig struct {
	Host          string `json:"host"`
	Port          string `json:"port"`
	Authorization ssh.SshAuthorization
}

// HostConfig is built once per provider or CLI run and passed by value.
type HostConfig struct {
	Host             string                   `json:"host"`
	Username         string                   `json:"username"`
	Password         string                   `json:"-"`
	ReturnCode       bool                     `json:"return_code"`
	ListFormat       string                   `json:"list_format"`
	HostVerification helpers.HostVerification `json:"host_verification"`
	Timeout          time.Duration            `json:"timeout"`
	Transport        Transport                `json:"transport"`
	ValidateCommands bool                     `json:"validate_commands"`
	Ssh              *SshConfig               `json:"ssh,omitempty"`
}

func NewHostConfig(host, username, password string) HostConfig {
	return HostConfig{
		Host:             host,
		Username:         username,
		Password:         password,
		ReturnCode:       true,
		ListFormat:       constants.DefaultListFormat,
		HostVerification: helpers.HostVerificationStrict,
		Timeout:          constants.DefaultRequestTimeout,
		Transport:        TransportApi,
	}
}

func (c HostConfig) Url() string {
	return helpers.GetHostUrl(c.Host)
}

func (c HostConfig) GetTransport() Transport {
	if c.Transport == "" {
		return TransportApi
	}
	return c.Transport
}

func (c HostConfig) GetListFormat() string {
	if c.ListFormat == "" {
		return constants.DefaultListFormat
	}
	return c.ListFormat
}

func (c HostConfig) IsStructured() bool {
	return c.GetListFormat() == "json"
}

// Validate fails before any network activity when the configuration cannot
// produce a request.
func (c HostConfig) Validate() error {
	missing := make([]string, 0)

	switch c.GetTransport() {
	case TransportApi:
		if strings.TrimSpace(c.Username) == "" {
			missing = append(missing, "username")
		}
		if c.Password == "" {
			missing = append(missing, "password")
		}
		if strings.TrimSpace(c.Host) == "" {
			missing = append(missing, "url")
		}
	case TransportSsh:
		if c.Ssh == nil || c.Ssh.Host == "" {
			missing = append(missing, "ssh_connection.host")
		}
		if c.Ssh == nil || c.Ssh.Authorization.User == "" {
			missing = append(missing, "ssh_connection.user")
		}
	case TransportLocal:
	default:
		return clientmodels.NewCommandError(clientmodels.FailureClientUnavailable, "", fmt.Errorf("unknown transport %q", c.Transport))
	}

	if len(missing) > 0 {
		return clientmodels.NewCommandError(clientmodels.FailureConfiguration, "", fmt.Errorf("set %s first", strings.Join(missing, ", ")))
	}

	format := c.GetListFormat()
	for _, known := range ListFormats {
		if known == format {
			return nil
		}
	}

	return clientmodels.NewCommandError(clientmodels.FailureConfiguration, "", errors.Errorf("unknown list format %q", format))
}

func (c HostConfig) returnCodeValue() string {
	if c.ReturnCode {
		return "yes"
	}
	return "no"
}
