package helpers

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"terraform-provider-vestacp/internal/constants"
)

var commandNameRegex = regexp.MustCompile(`^v-[a-z0-9]+(-[a-z0-9]+)*$`)

// GetHostUrl turns a bare host, host:port or partial url into the full api
// dispatcher url, defaulting to https on the panel port.
func GetHostUrl(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}

	lower := strings.ToLower(host)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		host = "https://" + host
	}

	hostUrl, err := url.Parse(host)
	if err != nil {
		return host
	}

	if hostUrl.Port() == "" {
		hostUrl.Host = net.JoinHostPort(hostUrl.Hostname(), constants.DefaultApiPort)
	}

	if CleanUrlSuffixAndPrefix(hostUrl.Path) == "" {
		hostUrl.Path = constants.API_PREFIX
	}

	return hostUrl.String()
}

func CleanUrlSuffixAndPrefix(url string) string {
	url = strings.TrimPrefix(url, "/")
	url = strings.TrimSuffix(url, "/")
	return url
}

// ShellQuote wraps every argument in single quotes so it reaches the remote
// command as one word.
func ShellQuote(arguments []string) string {
	quoted := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		quoted = append(quoted, "'"+strings.ReplaceAll(argument, "'", `'\''`)+"'")
	}

	return strings.Join(quoted, " ")
}

// IsValidCommandName reports whether name looks like a panel command, so it
// is safe to use as an executable name.
func IsValidCommandName(name string) bool {
	return commandNameRegex.MatchString(name)
}
