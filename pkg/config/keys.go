package config

// EnvPrefix is empty because every variable carries the full EMOGO_ prefix in
// its envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv = "EMOGO_APP_ENV"
	EnvPort   = "EMOGO_APP_PORT"

	EnvDBDSN  = "EMOGO_DB_DSN"
	EnvDBHost = "EMOGO_DB_HOST"
	EnvDBUser = "EMOGO_DB_USER"
	EnvDBName = "EMOGO_DB_NAME"

	EnvBlobRoot = "EMOGO_BLOB_ROOT"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
