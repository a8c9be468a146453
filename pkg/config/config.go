package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Blob         BlobConfig
	Media        MediaConfig
	Export       ExportConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if !cfg.FeatureFlags.UseSQLite {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"EMOGO_APP_ENV" required:"true"`
	Port         string `envconfig:"EMOGO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"EMOGO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"EMOGO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"EMOGO_DB_DSN"`
	Driver string `envconfig:"EMOGO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"EMOGO_DB_HOST"`
	LegacyPort     int    `envconfig:"EMOGO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"EMOGO_DB_USER"`
	LegacyPassword string `envconfig:"EMOGO_DB_PASSWORD"`
	LegacyName     string `envconfig:"EMOGO_DB_NAME"`
	LegacySSLMode  string `envconfig:"EMOGO_DB_SSLMODE" default:"disable"`

	SQLitePath string `envconfig:"EMOGO_SQLITE_PATH" default:"emogo.db"`

	MaxOpenConns    int           `envconfig:"EMOGO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"EMOGO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"EMOGO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"EMOGO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// BlobConfig locates the on-disk blob container. The directory must survive
// process restarts; nothing in it is cached in memory.
type BlobConfig struct {
	Root string `envconfig:"EMOGO_BLOB_ROOT" default:"data/blobs"`
}

type MediaConfig struct {
	MaxUploadMB int `envconfig:"EMOGO_MAX_UPLOAD_MB" default:"200"`
}

// ExportConfig bounds how many rows any export query pulls at once.
type ExportConfig struct {
	ListLimit int `envconfig:"EMOGO_EXPORT_LIST_LIMIT" default:"1000"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"EMOGO_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"EMOGO_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
