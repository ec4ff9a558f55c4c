package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgconn"
)

type Config struct {
	Env        string `yaml:"env" env:"ENVIRONMENT" env-default:"development"`
	Database   `yaml:"database"`
	Telegram   `yaml:"telegram"`
	HTTPServer `yaml:"http_server"`
	GRPCServer `yaml:"grpc_server"`
	Dashboard  `yaml:"dashboard"`
	Kafka      `yaml:"kafka"`
	LogConfig  `yaml:"log_config"`
}

type Database struct {
	URL            string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

type Telegram struct {
	Token       string `yaml:"token" env:"TELEGRAM_BOT_TOKEN" env-required:"true"`
	PollTimeout int    `yaml:"poll_timeout" env:"TELEGRAM_POLL_TIMEOUT" env-default:"60"`
	Debug       bool   `yaml:"debug" env:"TELEGRAM_DEBUG" env-default:"false"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

type Dashboard struct {
	PageSize int `yaml:"page_size" env:"DASHBOARD_PAGE_SIZE" env-default:"10"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"order-events"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

var (
	ErrInvalidDatabaseURL = errors.New("DATABASE_URL is malformed")
	ErrInvalidBotToken    = errors.New("TELEGRAM_BOT_TOKEN is malformed")
)

var botTokenPattern = regexp.MustCompile(`^\d+:[A-Za-z0-9_-]{20,}$`)

// Load reads ORDER_CONFIG_PATH (when set) and the environment into a Config
// and checks the required settings.
func Load() (*Config, error) {
	var cfg Config

	if configPath := os.Getenv("ORDER_CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("failed to find config file: %w", err)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v\n", err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("%w: empty", ErrInvalidDatabaseURL)
	}
	if _, err := pgconn.ParseConfig(c.Database.URL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDatabaseURL, err)
	}
	if !botTokenPattern.MatchString(c.Telegram.Token) {
		return ErrInvalidBotToken
	}
	if c.Dashboard.PageSize < 1 {
		c.Dashboard.PageSize = 10
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.HTTPServer.Host, c.HTTPServer.Port)
}

func (c *Config) GRPCAddr() string {
	return fmt.Sprintf("%s:%s", c.GRPCServer.Host, c.GRPCServer.Port)
}
