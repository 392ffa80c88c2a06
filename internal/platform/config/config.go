// Package config loads process configuration from the environment and an
// optional .env file using Viper.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	strutil "assurance/pkg/platform/strings"
)

// Broker kinds accepted by BROKER_KIND.
const (
	BrokerMemory = "memory"
	BrokerKafka  = "kafka"
	BrokerRedis  = "redis"
)

// Store kinds accepted by STORE_KIND.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds the settings shared by every binary. Sections a process does
// not use are simply ignored by it.
type Config struct {
	// ServiceName tags logs and metrics.
	ServiceName string `mapstructure:"SERVICE_NAME"`
	// Env is the deployment environment ("development", "production").
	Env string `mapstructure:"APP_ENV"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// MetricsAddr serves /metrics for worker processes; empty disables it.
	MetricsAddr string `mapstructure:"METRICS_ADDR"`

	Gateway  Gateway  `mapstructure:",squash"`
	Service  Service  `mapstructure:",squash"`
	Broker   Broker   `mapstructure:",squash"`
	RPC      RPC      `mapstructure:",squash"`
	Channels Channels `mapstructure:",squash"`
	Postgres Postgres `mapstructure:",squash"`
	Redis    Redis    `mapstructure:",squash"`
}

// Gateway captures edge HTTP server configuration.
type Gateway struct {
	Addr           string  `mapstructure:"GATEWAY_ADDR"`
	JWTSigningKey  string  `mapstructure:"JWT_SIGNING_KEY"`
	JWTIssuer      string  `mapstructure:"JWT_ISSUER"`
	JWTAudience    string  `mapstructure:"JWT_AUDIENCE"`
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
}

// Service captures settings for the command-handling services.
type Service struct {
	// Concurrency bounds in-flight commands per channel.
	Concurrency int `mapstructure:"SERVICE_CONCURRENCY"`
	// StoreKind selects the insurance store.
	StoreKind     string `mapstructure:"STORE_KIND"`
	UserSeedFile  string `mapstructure:"USER_SEED_FILE"`
	QuoteSeedFile string `mapstructure:"QUOTE_SEED_FILE"`
}

// Broker selects and configures the command channel transport.
type Broker struct {
	Kind         string `mapstructure:"BROKER_KIND"`
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// KafkaGroupPrefix prefixes consumer group names, one group per channel.
	KafkaGroupPrefix string `mapstructure:"KAFKA_GROUP_PREFIX"`
	// KafkaPartitions is used when channels are created at startup.
	KafkaPartitions int `mapstructure:"KAFKA_PARTITIONS"`
}

// RPC configures command clients.
type RPC struct {
	// Timeout bounds each call from publish to reply.
	Timeout time.Duration `mapstructure:"RPC_TIMEOUT"`
}

// Channels names the command channel of each downstream service.
type Channels struct {
	User      string `mapstructure:"USER_SERVICE_QUEUE"`
	Insurance string `mapstructure:"INSURANCE_SERVICE_QUEUE"`
	Quote     string `mapstructure:"QUOTE_SERVICE_QUEUE"`
}

// Postgres configures the insurance store connection.
type Postgres struct {
	URL             string        `mapstructure:"DATABASE_URL"`
	MaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
}

// Redis configures the Redis client used by the list-backed transport.
type Redis struct {
	URL          string        `mapstructure:"REDIS_URL"`
	PoolSize     int           `mapstructure:"REDIS_POOL_SIZE"`
	MinIdleConns int           `mapstructure:"REDIS_MIN_IDLE_CONNS"`
	DialTimeout  time.Duration `mapstructure:"REDIS_DIAL_TIMEOUT"`
	ReadTimeout  time.Duration `mapstructure:"REDIS_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"REDIS_WRITE_TIMEOUT"`
}

// Load reads .env (if present), then builds and validates Config from the
// environment. serviceName is used when SERVICE_NAME is unset.
func Load(serviceName string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // a missing .env is fine

	v.AutomaticEnv()
	setDefaults(v, serviceName)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, serviceName string) {
	v.SetDefault("SERVICE_NAME", serviceName)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("METRICS_ADDR", ":9090")

	v.SetDefault("GATEWAY_ADDR", ":8080")
	// Use a default for development - must be overridden in production
	v.SetDefault("JWT_SIGNING_KEY", "dev-secret-key-change-in-production")
	v.SetDefault("JWT_ISSUER", "assurance-user")
	v.SetDefault("JWT_AUDIENCE", "assurance-gateway")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)

	v.SetDefault("SERVICE_CONCURRENCY", 16)
	v.SetDefault("STORE_KIND", StoreMemory)
	v.SetDefault("USER_SEED_FILE", "")
	v.SetDefault("QUOTE_SEED_FILE", "")

	v.SetDefault("BROKER_KIND", BrokerMemory)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_GROUP_PREFIX", "assurance")
	v.SetDefault("KAFKA_PARTITIONS", 1)

	v.SetDefault("RPC_TIMEOUT", "5s")

	v.SetDefault("USER_SERVICE_QUEUE", "user_service_queue")
	v.SetDefault("INSURANCE_SERVICE_QUEUE", "insurance_service_queue")
	v.SetDefault("QUOTE_SERVICE_QUEUE", "quote_service_queue")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 2)
	v.SetDefault("REDIS_DIAL_TIMEOUT", "5s")
	v.SetDefault("REDIS_READ_TIMEOUT", "3s")
	v.SetDefault("REDIS_WRITE_TIMEOUT", "3s")
}

func (c *Config) validate() error {
	if c.RPC.Timeout <= 0 {
		return errors.New("config: RPC_TIMEOUT must be positive")
	}
	switch c.Broker.Kind {
	case BrokerMemory:
	case BrokerKafka:
		if len(c.Broker.KafkaBrokerList()) == 0 {
			return errors.New("config: KAFKA_BROKERS must be set when BROKER_KIND=kafka")
		}
	case BrokerRedis:
		if c.Redis.URL == "" {
			return errors.New("config: REDIS_URL must be set when BROKER_KIND=redis")
		}
	default:
		return fmt.Errorf("config: unknown BROKER_KIND %q", c.Broker.Kind)
	}
	switch c.Service.StoreKind {
	case StoreMemory:
	case StorePostgres:
		if c.Postgres.URL == "" {
			return errors.New("config: DATABASE_URL must be set when STORE_KIND=postgres")
		}
	default:
		return fmt.Errorf("config: unknown STORE_KIND %q", c.Service.StoreKind)
	}
	if c.Env == "production" && c.Gateway.JWTSigningKey == "dev-secret-key-change-in-production" {
		return errors.New("config: JWT_SIGNING_KEY must be set when APP_ENV=production")
	}
	return nil
}

// KafkaBrokerList returns the distinct broker addresses from the
// comma-separated setting.
func (b Broker) KafkaBrokerList() []string {
	return strutil.SplitList(b.KafkaBrokers, ",")
}

// All lists the configured channel names.
func (c Channels) All() []string {
	return []string{c.User, c.Insurance, c.Quote}
}
