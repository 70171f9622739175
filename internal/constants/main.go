package constants

import "time"

const (
	API_PREFIX            = "/api/"
	DefaultApiPort        = "8083"
	DefaultSshPort        = "22"
	DefaultListFormat     = "json"
	VestaBinPath          = "/usr/local/vesta/bin"
	BackupPath            = "/backup"
	DefaultRequestTimeout = 15 * time.Second

	EnvUrl      = "VESTACP_URL"
	EnvUsername = "VESTACP_USERNAME"
	EnvPassword = "VESTACP_PASSWORD"
)
