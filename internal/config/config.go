package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Provider Provider `validate:"required"`

	Store Store `validate:"required"`

	Kafka Kafka

	Cache Cache

	CatalogFile string
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Provider struct {
	APIKey  string        `validate:"required"`
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

type Store struct {
	Driver     string `validate:"required,oneof=file sqlite postgres"`
	FilePath   string `validate:"required_if=Driver file"`
	SQLitePath string `validate:"required_if=Driver sqlite"`

	// Проверяется отдельно, только если выбран postgres
	Postgres Postgres `validate:"-"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

// Kafka без брокеров означает, что события не публикуются.
type Kafka struct {
	Brokers []string `validate:"omitempty,dive,hostname_port"`
	Topic   string   `validate:"required_with=Brokers"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

type Cache struct {
	BalanceTTL time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Provider: Provider{
			APIKey:  env("SMSHUB_API_KEY", ""),
			BaseURL: env("SMSHUB_BASE_URL", "https://smshub.org/stubs/handler_api.php"),
			Timeout: envDuration("SMSHUB_TIMEOUT", 15*time.Second),
		},

		Store: Store{
			Driver:     env("STORE_DRIVER", StoreFile),
			FilePath:   env("ORDERS_FILE", "orders.txt"),
			SQLitePath: env("SQLITE_PATH", "orders.db"),

			Postgres: Postgres{
				Port:     envInt("POSTGRES_PORT", 5432),
				Host:     env("POSTGRES_HOST", "localhost"),
				DBName:   env("POSTGRES_DB", "orders"),
				User:     env("POSTGRES_USER", ""),
				Password: env("POSTGRES_PASSWORD", ""),

				SSLMode: env("POSTGRES_SSL_MODE", "disable"),

				MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
			},
		},

		Kafka: Kafka{
			Brokers:      envList("KAFKA_BROKERS"),
			Topic:        env("KAFKA_TOPIC", "sms-orders"),
			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Cache: Cache{
			BalanceTTL: envDuration("BALANCE_CACHE_TTL", 30*time.Second),
		},

		CatalogFile: env("CATALOG_FILE", ""),
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Store.Driver == StorePostgres {
		return validate.Struct(c.Store.Postgres)
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envList(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
