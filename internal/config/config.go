package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	// Storage postgres или memory. memory - для локального запуска, данные теряются при остановке.
	Storage string `env:"STORAGE"`

	JWTSecret            string `env:"JWT_SECRET"`
	PaymentWebhookSecret string `env:"PAYMENT_WEBHOOK_SECRET"`
	StripeWebhookSecret  string `env:"STRIPE_WEBHOOK_SECRET"`

	// RedisAddr пустой адрес отключает кэш каталога.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`

	// KafkaBrokers пустой список отключает публикацию событий.
	KafkaBrokers    []string `env:"KAFKA_BROKERS"     envSeparator:","`
	KafkaOrderTopic string   `env:"KAFKA_ORDER_TOPIC" envDefault:"virtnum.orders"`
	KafkaTopupTopic string   `env:"KAFKA_TOPUP_TOPIC" envDefault:"virtnum.topups"`

	// ProviderAURL пустой адрес включает фейкового провайдера, то же для ProviderBURL.
	ProviderAURL string `env:"PROVIDER_A_URL"`
	ProviderAKey string `env:"PROVIDER_A_KEY"`
	ProviderBURL string `env:"PROVIDER_B_URL"`
	ProviderBKey string `env:"PROVIDER_B_KEY"`

	ProviderTimeout   time.Duration `env:"PROVIDER_TIMEOUT"    envDefault:"15s"`
	ProviderRetries   uint          `env:"PROVIDER_RETRIES"    envDefault:"3"`
	ProviderBackoff   time.Duration `env:"PROVIDER_BACKOFF"    envDefault:"500ms"`
	OrderTTL          time.Duration `env:"ORDER_TTL"           envDefault:"20m"`
	MaxPollErrors     uint          `env:"MAX_POLL_ERRORS"     envDefault:"10"`
	PollInterval      time.Duration `env:"POLL_INTERVAL"       envDefault:"5s"`
	PollWorkers       uint          `env:"POLL_WORKERS"        envDefault:"10"`
	PollLimit         uint          `env:"POLL_LIMIT"          envDefault:"100"`
	StalePendingAfter time.Duration `env:"STALE_PENDING_AFTER" envDefault:"5m"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(flag.CommandLine, os.Args[1:], &flagsConfig); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	switch c.Storage {
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			return errors.New("database DSN is not set")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.JWTSecret == "" {
		return errors.New("jwt secret is not set")
	}
	if c.PaymentWebhookSecret == "" {
		return errors.New("payment webhook secret is not set")
	}
	if c.StalePendingAfter <= 0 {
		return errors.New("stale pending timeout must be positive")
	}
	return nil
}

func loadFlags(fs *flag.FlagSet, args []string, flagConfig *Config) error {
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.Storage, "s", StoragePostgres, "Storage: postgres or memory")

	return fs.Parse(args) //nolint:wrapcheck
}

// mergeConfig значения из окружения приоритетнее флагов. Остальные параметры задаются только через окружение.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.Storage = defaultIfBlank(envConfig.Storage, flagsConfig.Storage)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
