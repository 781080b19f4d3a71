package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Storage      StorageConfig
	Redis        RedisConfig
	DB           DBConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Auth         AuthConfig
	Seed         SeedConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	if cfg.Storage.Kind() == StorageBackendRedis && cfg.Redis.URL == "" && cfg.Redis.Address == "" {
		return nil, fmt.Errorf("%s or %s is required for the redis backend", EnvRedisURL, EnvRedisAddr)
	}
	if cfg.Storage.Kind() == StorageBackendSQL && cfg.DB.DSN == "" {
		return nil, fmt.Errorf("%s is required for the sql backend", EnvDBDSN)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RESTROBOOST_APP_ENV" default:"dev"`
	Port         string `envconfig:"RESTROBOOST_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"RESTROBOOST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RESTROBOOST_LOG_WARN_STACK" default:"false"`
	LogFormat    string `envconfig:"RESTROBOOST_LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects the key-value medium the record stores persist to.
type StorageConfig struct {
	Backend   string `envconfig:"RESTROBOOST_STORAGE_BACKEND" default:"memory"`
	Namespace string `envconfig:"RESTROBOOST_STORAGE_NAMESPACE" default:"rb"`
}

func (s StorageConfig) Kind() string {
	return strings.ToLower(strings.TrimSpace(s.Backend))
}

func (s StorageConfig) validate() error {
	switch s.Kind() {
	case StorageBackendMemory, StorageBackendRedis, StorageBackendSQL:
		return nil
	}
	return fmt.Errorf("unsupported storage backend %q", s.Backend)
}

type RedisConfig struct {
	URL          string        `envconfig:"RESTROBOOST_REDIS_URL"`
	Address      string        `envconfig:"RESTROBOOST_REDIS_ADDR"`
	Password     string        `envconfig:"RESTROBOOST_REDIS_PASSWORD"`
	DB           int           `envconfig:"RESTROBOOST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RESTROBOOST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RESTROBOOST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RESTROBOOST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RESTROBOOST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RESTROBOOST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	DSN    string `envconfig:"RESTROBOOST_DB_DSN"`
	Driver string `envconfig:"RESTROBOOST_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"RESTROBOOST_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"RESTROBOOST_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"RESTROBOOST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RESTROBOOST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsPostgres reports whether the configured driver targets Postgres.
func (d DBConfig) IsPostgres() bool {
	driver := strings.ToLower(strings.TrimSpace(d.Driver))
	return driver == "postgres" || driver == "postgresql"
}

type JWTConfig struct {
	Secret            string `envconfig:"RESTROBOOST_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"RESTROBOOST_JWT_ISSUER" default:"restroboost"`
	ExpirationMinutes int    `envconfig:"RESTROBOOST_JWT_EXPIRATION_MINUTES" default:"720"`
}

// TTL returns the access token lifetime.
func (j JWTConfig) TTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"RESTROBOOST_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"RESTROBOOST_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"RESTROBOOST_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"RESTROBOOST_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"RESTROBOOST_ARGON_KEY_LEN" default:"32"`
}

// AuthConfig controls credential checking. DemoMode accepts any password for
// a known email and must stay off anywhere real accounts exist.
type AuthConfig struct {
	DemoMode bool `envconfig:"RESTROBOOST_AUTH_DEMO_MODE" default:"true"`
}

type SeedConfig struct {
	OnStart bool `envconfig:"RESTROBOOST_SEED_ON_START" default:"false"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"RESTROBOOST_AUTO_MIGRATE" default:"false"`
}
