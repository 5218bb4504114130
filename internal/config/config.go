package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env    string `env:"ENV" env-required:"true"`
	HTTP   HTTPConfig
	SQLite SQLiteConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"localhost"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type SQLiteConfig struct {
	Path        string        `env:"SQLITE_PATH" env-default:"tasks.db"`
	BusyTimeout time.Duration `env:"SQLITE_BUSY_TIMEOUT" env-default:"5s"`
}
