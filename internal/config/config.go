package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Timetable TimetableConfig `toml:"timetable"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Resolver  ResolverConfig  `toml:"resolver"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TimetableConfig настройки клиента внешнего сервиса расписаний
type TimetableConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды, таймаут одного запроса
}

// CatalogConfig настройки статического каталога комнат
type CatalogConfig struct {
	File string `toml:"file"`
}

// ResolverConfig настройки поиска свободных комнат
// MaxConcurrentFetches = 1 означает последовательный обход комнат
// PacingDelayMs - пауза между запусками запросов, защита от rate limiting
// внешнего сервиса
type ResolverConfig struct {
	MaxConcurrentFetches int `toml:"max_concurrent_fetches"`
	PacingDelayMs        int `toml:"pacing_delay_ms"`
}

// Load загружает конфигурацию из TOML файла и применяет дефолты
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    60,
			IdleTimeout:     120,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "roomfinder",
		},
		Timetable: TimetableConfig{
			Timeout: 10,
		},
		Catalog: CatalogConfig{
			File: "valid_rooms.json",
		},
		Resolver: ResolverConfig{
			MaxConcurrentFetches: 1,
			PacingDelayMs:        0,
		},
	}
}

func (c *Config) validate() error {
	if c.Timetable.URL == "" {
		return fmt.Errorf("timetable.url is required")
	}
	if c.Catalog.File == "" {
		return fmt.Errorf("catalog.file is required")
	}
	if c.Resolver.MaxConcurrentFetches < 1 {
		return fmt.Errorf("resolver.max_concurrent_fetches must be >= 1")
	}
	if c.Resolver.PacingDelayMs < 0 {
		return fmt.Errorf("resolver.pacing_delay_ms must be >= 0")
	}
	return nil
}
