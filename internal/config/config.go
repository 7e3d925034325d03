package config

import (
	"slices"
	"time"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	Applications ApplicationsConfig `yaml:"applications"`
	Notify       NotifyConfig       `yaml:"notify"`
	Reconcile    ReconcileConfig    `yaml:"reconcile"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"jobportal"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"1h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"              env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE"  env-default:"300"`
	AuthPerMinute     int           `yaml:"auth_per_minute"     env:"RATE_LIMIT_AUTH_PER_MINUTE"      env-default:"20"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"                env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"     env-default:"1m"`
}

// ApplicationsConfig holds application lifecycle settings.
type ApplicationsConfig struct {
	BulkLimit          int    `yaml:"bulk_limit"          env:"APPLICATIONS_BULK_LIMIT"          env-default:"50"`
	DefaultPageSize    int    `yaml:"default_page_size"   env:"APPLICATIONS_DEFAULT_PAGE_SIZE"   env-default:"20"`
	MaxPageSize        int    `yaml:"max_page_size"       env:"APPLICATIONS_MAX_PAGE_SIZE"       env-default:"100"`
	OpenJobStatusesRaw string `yaml:"open_job_statuses"   env:"APPLICATIONS_OPEN_JOB_STATUSES"   env-default:"active"`

	// OpenJobStatuses is parsed from OpenJobStatusesRaw during validation.
	OpenJobStatuses []domain.JobStatus `yaml:"-" env:"-"`
}

// AcceptsApplications reports whether a job in status s is open for applications.
func (c ApplicationsConfig) AcceptsApplications(s domain.JobStatus) bool {
	return slices.Contains(c.OpenJobStatuses, s)
}

// NotifyConfig holds notification dispatch settings. Redis fan-out is
// disabled when RedisAddr is empty.
type NotifyConfig struct {
	RedisAddr          string        `yaml:"redis_addr"          env:"NOTIFY_REDIS_ADDR"`
	RedisPassword      string        `yaml:"redis_password"      env:"NOTIFY_REDIS_PASSWORD"`
	RedisDB            int           `yaml:"redis_db"            env:"NOTIFY_REDIS_DB"             env-default:"0"`
	ChannelPrefix      string        `yaml:"channel_prefix"      env:"NOTIFY_CHANNEL_PREFIX"       env-default:"notifications"`
	DispatchTimeout    time.Duration `yaml:"dispatch_timeout"    env:"NOTIFY_DISPATCH_TIMEOUT"     env-default:"5s"`
	PublishConcurrency int           `yaml:"publish_concurrency" env:"NOTIFY_PUBLISH_CONCURRENCY"  env-default:"8"`
}

// RedisEnabled reports whether pub/sub fan-out is configured.
func (c NotifyConfig) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// ReconcileConfig holds counter reconciliation settings. The in-process
// scheduler is disabled when Schedule is empty.
type ReconcileConfig struct {
	Schedule string        `yaml:"schedule" env:"RECONCILE_SCHEDULE"`
	Timeout  time.Duration `yaml:"timeout"  env:"RECONCILE_TIMEOUT"  env-default:"2m"`
}
