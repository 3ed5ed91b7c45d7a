package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "DISPATCHBOARD"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Env var names used by tests and operational tooling.
const (
	EnvAppEnv   = "DISPATCHBOARD_APP_ENV"
	EnvPort     = "DISPATCHBOARD_APP_PORT"
	EnvLogLevel = "DISPATCHBOARD_LOG_LEVEL"
	EnvSeedDemo = "DISPATCHBOARD_SEED_DEMO"
)

type Config struct {
	App      AppConfig
	CORS     CORSConfig
	Schedule ScheduleConfig
	Seed     SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DISPATCHBOARD_APP_ENV" required:"true"`
	Port         string `envconfig:"DISPATCHBOARD_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DISPATCHBOARD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DISPATCHBOARD_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"DISPATCHBOARD_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}

// ScheduleConfig holds the default gantt window applied when a caller does not
// supply one: now-WindowBack .. now+WindowForward.
type ScheduleConfig struct {
	WindowBack    time.Duration `envconfig:"DISPATCHBOARD_SCHEDULE_WINDOW_BACK" default:"24h"`
	WindowForward time.Duration `envconfig:"DISPATCHBOARD_SCHEDULE_WINDOW_FORWARD" default:"72h"`
}

type SeedConfig struct {
	Demo bool `envconfig:"DISPATCHBOARD_SEED_DEMO" default:"true"`
}
