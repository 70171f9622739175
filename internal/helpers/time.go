package helpers

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ParseTimeout reads a request timeout written as a duration ("30s", "2m")
// or as a bare number of seconds. An empty value is zero.
func ParseTimeout(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds <= 0 {
			return 0, errors.Errorf("timeout %q must be positive", value)
		}
		return time.Duration(seconds) * time.Second, nil
	}

	timeout, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid timeout %q", value)
	}
	if timeout <= 0 {
		return 0, errors.Errorf("timeout %q must be positive", value)
	}

	return timeout, nil
}
