package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// Lock backends
const (
	LockBackendLocal = "local"
	LockBackendRedis = "redis"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Lock       LockConfig       `toml:"lock"`
	Redis      RedisConfig      `toml:"redis"`
	Policy     PolicyConfig     `toml:"policy"`
	Completion CompletionConfig `toml:"completion"`
	Seed       SeedConfig       `toml:"seed"`
}

// ServerConfig настройки HTTP сервера; таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// LockConfig настройки блокировки слотов
type LockConfig struct {
	Backend   string `toml:"backend"` // local | redis
	TTLMs     int    `toml:"ttl_ms"`
	RetryMs   int    `toml:"retry_ms"`
	TimeoutMs int    `toml:"timeout_ms"` // Максимальное ожидание блокировки в запросе
}

// RedisConfig подключение к Redis (используется при lock.backend = "redis")
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// PolicyConfig правила вычисления доступности
type PolicyConfig struct {
	HalfDayCutoff string `toml:"half_day_cutoff"` // "12:00"
	Timezone      string `toml:"timezone"`        // Определяет "сегодня"
}

// CompletionConfig фоновое завершение прошедших бронирований
type CompletionConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalSeconds int  `toml:"interval_seconds"`
}

// SeedConfig начальные данные; пустой path означает встроенный набор
type SeedConfig struct {
	Path string `toml:"path"`
}

// Load читает .env (если есть), затем TOML файл с подстановкой ${ENV} переменных
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if _, err := toml.Decode(os.ExpandEnv(string(data)), &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate проверяет значения и подставляет значения по умолчанию
func (c *Config) Validate() error {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "lab_booking_service"
	}

	c.Lock.Backend = strings.ToLower(strings.TrimSpace(c.Lock.Backend))
	switch c.Lock.Backend {
	case "":
		c.Lock.Backend = LockBackendLocal
	case LockBackendLocal:
	case LockBackendRedis:
		if c.Redis.Address == "" {
			return errors.New("redis.address is required for lock.backend = \"redis\"")
		}
	default:
		return fmt.Errorf("unknown lock.backend %q", c.Lock.Backend)
	}
	if c.Lock.TimeoutMs <= 0 {
		c.Lock.TimeoutMs = 3000
	}

	if c.Policy.HalfDayCutoff == "" {
		c.Policy.HalfDayCutoff = "12:00"
	}
	if _, err := types.NewTimeStringFromString(c.Policy.HalfDayCutoff); err != nil {
		return fmt.Errorf("policy.half_day_cutoff: %w", err)
	}
	if c.Policy.Timezone == "" {
		c.Policy.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(c.Policy.Timezone); err != nil {
		return fmt.Errorf("policy.timezone: %w", err)
	}

	if c.Completion.IntervalSeconds <= 0 {
		c.Completion.IntervalSeconds = 3600
	}

	return nil
}

// Location часовой пояс политики; после Validate ошибки быть не может
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Policy.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LockTTL время жизни блокировки в Redis
func (c *Config) LockTTL() time.Duration {
	return time.Duration(c.Lock.TTLMs) * time.Millisecond
}

// LockRetry пауза между попытками захвата блокировки в Redis
func (c *Config) LockRetry() time.Duration {
	return time.Duration(c.Lock.RetryMs) * time.Millisecond
}

// LockTimeout максимальное ожидание блокировки в одном запросе
func (c *Config) LockTimeout() time.Duration {
	return time.Duration(c.Lock.TimeoutMs) * time.Millisecond
}

// CompletionInterval период фонового завершения бронирований
func (c *Config) CompletionInterval() time.Duration {
	return time.Duration(c.Completion.IntervalSeconds) * time.Second
}
