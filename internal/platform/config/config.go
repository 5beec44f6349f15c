package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "LASTPROJECT_"

// Audit backends.
const (
	AuditBackendMemory   = "memory"
	AuditBackendSQLite   = "sqlite"
	AuditBackendPostgres = "postgres"
	AuditBackendRedis    = "redis"
)

// Server captures process level configuration.
type Server struct {
	Addr            string        `env:"ADDR"             envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT"       envDefault:"json"`

	// ProjectsConfig is the YAML registry of projects and environments.
	ProjectsConfig string `env:"PROJECTS_CONFIG" envDefault:"projects.yaml"`
	// VariablesFile optionally seeds the variable space from a flat YAML mapping of names to values.
	VariablesFile string `env:"VARIABLES_FILE"`

	Audit    AuditConfig    `envPrefix:"AUDIT_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Postgres PostgresConfig `envPrefix:"POSTGRES_"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// AuditConfig selects where audit history is read from.
type AuditConfig struct {
	Backend    string `env:"BACKEND"     envDefault:"memory"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/audit.db"`
	// SeedFile is a YAML list of events appended before startup resolution.
	SeedFile string `env:"SEED_FILE"`
}

// RedisConfig configures the Redis client.
type RedisConfig struct {
	URL          string        `env:"URL"`
	KeyPrefix    string        `env:"KEY_PREFIX"     envDefault:"audit"`
	PoolSize     int           `env:"POOL_SIZE"      envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT"   envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT"   envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"  envDefault:"3s"`
}

// PostgresConfig configures the database pool.
type PostgresConfig struct {
	DSN             string        `env:"DSN"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS"    envDefault:"10"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS"    envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
}

// FromEnv builds a Server config from LASTPROJECT_* environment variables.
func FromEnv() (Server, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// FromMap is FromEnv over an explicit environment, without the process one.
func FromMap(environment map[string]string) (Server, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: environment})
}

func parse(opts env.Options) (Server, error) {
	var cfg Server
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Audit.Backend = strings.ToLower(strings.TrimSpace(cfg.Audit.Backend))
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements.
func (s Server) Validate() error {
	switch s.Audit.Backend {
	case AuditBackendMemory, AuditBackendSQLite:
	case AuditBackendPostgres:
		if s.Postgres.DSN == "" {
			return fmt.Errorf("%sPOSTGRES_DSN is required for the postgres audit backend", EnvPrefix)
		}
	case AuditBackendRedis:
		if s.Redis.URL == "" {
			return fmt.Errorf("%sREDIS_URL is required for the redis audit backend", EnvPrefix)
		}
	default:
		return fmt.Errorf("unknown audit backend %q", s.Audit.Backend)
	}
	if strings.TrimSpace(s.ProjectsConfig) == "" {
		return fmt.Errorf("%sPROJECTS_CONFIG must not be empty", EnvPrefix)
	}
	return nil
}
