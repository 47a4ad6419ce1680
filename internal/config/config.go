// Package config loads the service configuration from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Mail     MailConfig     `toml:"mail"`
	Admin    AdminConfig    `toml:"admin"`
}

// ServerConfig настройки HTTP сервера. Таймауты в секундах.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// MailConfig настройки клиента почтового шлюза.
// При Enabled=false письма не отправляются (подтверждения остаются только
// в уведомлениях админ-панели).
type MailConfig struct {
	Enabled     bool   `toml:"enabled"`
	BaseURL     string `toml:"base_url"`
	APIKey      string `toml:"api_key"`
	SenderName  string `toml:"sender_name"`
	SenderEmail string `toml:"sender_email"`
	Timeout     int    `toml:"timeout"`
}

// AdminConfig настройки доступа к админ-панели.
// Код перечитывается только при перезапуске сервиса.
type AdminConfig struct {
	AccessCode string `toml:"access_code"`
}

const defaultAdminAccessCode = "1234"

// Load читает и валидирует конфигурацию из TOML файла.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Admin.AccessCode == "" {
		cfg.Admin.AccessCode = defaultAdminAccessCode
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}

	return &cfg, nil
}
