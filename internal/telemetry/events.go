package telemetry

type TelemetryEvent string

const (
	EventUser          TelemetryEvent = "VESTACP-TERRAFORM-PROVIDER::USER"
	EventCommand       TelemetryEvent = "VESTACP-TERRAFORM-PROVIDER::COMMAND"
	EventBackupRestore TelemetryEvent = "VESTACP-TERRAFORM-PROVIDER::BACKUP_RESTORE"
	EventCli           TelemetryEvent = "VESTACP-CLI::INVOKE"
)

type TelemetryEventMode string

const (
	ModeCreate  TelemetryEventMode = "CREATE"
	ModeUpdate  TelemetryEventMode = "UPDATE"
	ModeDestroy TelemetryEventMode = "DESTROY"
	ModeRead    TelemetryEventMode = "READ"
	ModeImport  TelemetryEventMode = "IMPORT"
)
