package telemetry

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"runtime"
)

type TelemetryItem struct {
	UserID     string
	DeviceId   string
	Type       string
	Properties map[string]interface{}
	Options    map[string]interface{}
}

// NewTelemetryItem never carries the panel user name in clear, only its hash.
func NewTelemetryItem(ctx context.Context, userId string, eventType TelemetryEvent, mode TelemetryEventMode, properties, options map[string]interface{}) TelemetryItem {
	item := TelemetryItem{
		Type:       fmt.Sprintf("%s::%s", string(eventType), string(mode)),
		Properties: properties,
		Options:    options,
	}
	if item.Properties == nil {
		item.Properties = make(map[string]interface{})
	}
	if item.Options == nil {
		item.Options = make(map[string]interface{})
	}

	item.Properties["os"] = runtime.GOOS
	item.Properties["architecture"] = runtime.GOARCH
	if VERSION != "" {
		item.Properties["version"] = VERSION
	}

	if userId != "" {
		hash := sha256.Sum256([]byte(userId))
		item.UserID = base64.StdEncoding.EncodeToString(hash[:])
		item.Properties["user_id"] = item.UserID
	}

	return item
}
