package config

const EnvPrefix = "RESTROBOOST"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	StorageBackendMemory = "memory"
	StorageBackendRedis  = "redis"
	StorageBackendSQL    = "sql"
)

const (
	EnvAppEnv         = "RESTROBOOST_APP_ENV"
	EnvPort           = "RESTROBOOST_APP_PORT"
	EnvLogLevel       = "RESTROBOOST_LOG_LEVEL"
	EnvStorageBackend = "RESTROBOOST_STORAGE_BACKEND"
	EnvRedisURL       = "RESTROBOOST_REDIS_URL"
	EnvRedisAddr      = "RESTROBOOST_REDIS_ADDR"
	EnvDBDSN          = "RESTROBOOST_DB_DSN"
	EnvDBDriver       = "RESTROBOOST_DB_DRIVER"
	EnvJWTSecret      = "RESTROBOOST_JWT_SECRET"
	EnvJWTIssuer      = "RESTROBOOST_JWT_ISSUER"
	EnvJWTExpMins     = "RESTROBOOST_JWT_EXPIRATION_MINUTES"
	EnvAuthDemoMode   = "RESTROBOOST_AUTH_DEMO_MODE"
	EnvSeedOnStart    = "RESTROBOOST_SEED_ON_START"
)
