package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/amplitude/analytics-go/amplitude"
	"github.com/amplitude/analytics-go/amplitude/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

var (
	globalTelemetryService *TelemetryService
	lock                          = &sync.Mutex{}
	AMPLITUDE_API_KEY      string = ""
	VERSION                       = ""
)

// New builds the telemetry service. Without a built in api key every event
// is dropped.
func New(ctx context.Context) *TelemetryService {
	svc := &TelemetryService{
		EnableTelemetry: true,
		ctx:             ctx,
		CallBackChan:    make(chan types.ExecuteResult, 10),
	}

	if AMPLITUDE_API_KEY == "" {
		tflog.Debug(ctx, "[Telemetry] Telemetry disabled as no API key found")
		svc.EnableTelemetry = false
		return svc
	}

	config := amplitude.NewConfig(AMPLITUDE_API_KEY)
	config.FlushQueueSize = 100
	config.FlushInterval = time.Second * 3
	config.ExecuteCallback = func(result types.ExecuteResult) {
		svc.Callback(result)
	}

	svc.client = amplitude.NewClient(config)
	return svc
}

func Get(ctx context.Context) *TelemetryService {
	lock.Lock()
	defer lock.Unlock()

	if globalTelemetryService == nil {
		globalTelemetryService = New(ctx)
	}

	return globalTelemetryService
}

// Track records a lifecycle event for the panel user running the provider.
func Track(ctx context.Context, userId string, event TelemetryEvent, mode TelemetryEventMode, properties map[string]interface{}) {
	svc := Get(ctx)
	if !svc.EnableTelemetry {
		return
	}

	svc.TrackEvent(NewTelemetryItem(ctx, userId, event, mode, properties, nil))
}
