package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr  = ":8080"
	defaultDBPath    = "employees.db"
	defaultWorkers   = 4
	defaultQueueSize = 32
)

type Config struct {
	HTTPAddr      string `yaml:"httpAddr,omitempty"`
	DBPath        string `yaml:"dbPath,omitempty"`
	TelegramToken string `yaml:"telegramToken,omitempty"`
	Workers       int    `yaml:"workers,omitempty"`
	QueueSize     int    `yaml:"queueSize,omitempty"`
}

// BotEnabled reports whether the Telegram admin bot should be started.
func (c *Config) BotEnabled() bool {
	return c.TelegramToken != ""
}

// LoadConfig reads .env (if any), then the YAML file named by CONFIG_FILE
// (if set), then lets the environment override individual values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.HTTPAddr = getenv("HTTP_ADDR", orDefault(cfg.HTTPAddr, defaultHTTPAddr))
	cfg.DBPath = getenv("DB_PATH", orDefault(cfg.DBPath, defaultDBPath))
	cfg.TelegramToken = getenv("TELEGRAM_TOKEN", cfg.TelegramToken)

	var err error
	if cfg.Workers, err = getenvPositive("WORKERS", orDefaultInt(cfg.Workers, defaultWorkers)); err != nil {
		return nil, err
	}
	if cfg.QueueSize, err = getenvPositive("QUEUE_SIZE", orDefaultInt(cfg.QueueSize, defaultQueueSize)); err != nil {
		return nil, err
	}
	return cfg, nil
}

type ErrBadEnv struct {
	Key   string
	Value string
}

func (e ErrBadEnv) Error() string {
	return fmt.Sprintf("%s: ожидается положительное целое, получено %q", e.Key, e.Value)
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvPositive(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, ErrBadEnv{Key: k, Value: v}
	}
	return n, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
