package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Kafka    Kafka
	Calendar Calendar
	Member   Member
	Logger   Logger
	Metrics  Metrics
	Platform Platform
}

type Service struct {
	Port      string `env:"STREAM_SERVICE_PORT" env-default:"8080"`
	Name      string `env:"STREAM_SERVICE_NAME" env-default:"stream-service"`
	JWTSecret string `env:"STREAM_SERVICE_JWT_SECRET"`
}

type Postgres struct {
	User     string `env:"STREAM_SERVICE_POSTGRES_USER"`
	Password string `env:"STREAM_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"STREAM_SERVICE_POSTGRES_DB"`
	Host     string `env:"STREAM_SERVICE_POSTGRES_HOST"`
	Port     string `env:"STREAM_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Kafka struct {
	Host              string `env:"KAFKA_HOST"`
	Port              string `env:"KAFKA_PORT"`
	SyncTopic         string `env:"STREAM_SYNC_TOPIC" env-default:"stream.calendar.sync"`
	NotificationTopic string `env:"STREAM_NOTIFICATION_TOPIC" env-default:"stream.notification"`
}

type Calendar struct {
	BaseURL string        `env:"CALENDAR_PROVIDER_BASE_URL"`
	APIKey  string        `env:"CALENDAR_PROVIDER_API_KEY"`
	Timeout time.Duration `env:"CALENDAR_PROVIDER_TIMEOUT" env-default:"5s"`
}

type Member struct {
	BaseURL string        `env:"MEMBER_SERVICE_BASE_URL"`
	Timeout time.Duration `env:"MEMBER_SERVICE_TIMEOUT" env-default:"3s"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}

	return cfg
}
