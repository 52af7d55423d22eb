package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Tasks     TasksConfig     `yaml:"tasks"`
	Broker    BrokerConfig    `yaml:"broker"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
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
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// AuthConfig holds access token validation settings. Tokens are issued by
// the identity provider; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"leadflow"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"0"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// PipelineConfig holds lead pipeline settings.
type PipelineConfig struct {
	// PersistTimeout bounds the background write behind an optimistic stage move.
	PersistTimeout   time.Duration `yaml:"persist_timeout" env:"PIPELINE_PERSIST_TIMEOUT" env-default:"10s"`
	DefaultStagesRaw string        `yaml:"default_stages"  env:"PIPELINE_DEFAULT_STAGES"  env-default:"Capture,Qualification,Visit Scheduled,Negotiation"`
	// IdleTTL drops a user's in-memory board after this long without requests. Zero keeps boards forever.
	IdleTTL time.Duration `yaml:"idle_ttl" env:"PIPELINE_IDLE_TTL" env-default:"30m"`

	// DefaultStages is parsed from DefaultStagesRaw during validation.
	DefaultStages []string `yaml:"-" env:"-"`
}

// TasksConfig holds daily task list settings.
type TasksConfig struct {
	CompletedLimit         int `yaml:"completed_limit"          env:"TASKS_COMPLETED_LIMIT"          env-default:"50"`
	CompletedRetentionDays int `yaml:"completed_retention_days" env:"TASKS_COMPLETED_RETENTION_DAYS" env-default:"90"`
}

// BrokerConfig selects where committed lead events are published.
// An empty Driver disables publishing.
type BrokerConfig struct {
	Driver          string `yaml:"driver"        env:"BROKER_DRIVER"`
	AMQPURL         string `yaml:"amqp_url"      env:"BROKER_AMQP_URL"`
	Exchange        string `yaml:"exchange"      env:"BROKER_EXCHANGE"      env-default:"leadflow.events"`
	KafkaBrokersRaw string `yaml:"kafka_brokers" env:"BROKER_KAFKA_BROKERS"`
	Topic           string `yaml:"topic"         env:"BROKER_TOPIC"         env-default:"leadflow.lead-events"`
}

// KafkaBrokers returns the trimmed, non-empty broker addresses.
func (c BrokerConfig) KafkaBrokers() []string {
	return splitList(c.KafkaBrokersRaw)
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
