package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/echoassist/scheduling-service/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Business    BusinessConfig    `toml:"business"`
	Google      GoogleConfig      `toml:"google"`
	Twilio      TwilioConfig      `toml:"twilio"`
	SendGrid    SendGridConfig    `toml:"sendgrid"`
	Security    SecurityConfig    `toml:"security"`
	Handoff     HandoffConfig     `toml:"handoff"`
	Credentials CredentialsConfig `toml:"credentials"`
	Database    *DatabaseConfig   `toml:"database"`
}

// ServerConfig настройки HTTP-сервера
// Все таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessConfig профиль бизнеса
type BusinessConfig struct {
	Name       string `toml:"name"`
	Address    string `toml:"address"`
	Timezone   string `toml:"timezone"`
	OwnerPhone string `toml:"owner_phone"`
}

// GoogleConfig OAuth-параметры Google Calendar
type GoogleConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURL  string `toml:"redirect_url"`
	CalendarID   string `toml:"calendar_id"`
	Timeout      int    `toml:"timeout"` // секунды, на один запрос к Calendar API
}

// TwilioConfig параметры SMS-канала
// Канал выключен, если не заполнены все три поля
type TwilioConfig struct {
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
	Timeout    int    `toml:"timeout"`
}

// Enabled возвращает true, если SMS-канал сконфигурирован
func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// SendGridConfig параметры email-канала
type SendGridConfig struct {
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
	Timeout   int    `toml:"timeout"`
}

// Enabled возвращает true, если email-канал сконфигурирован
func (c SendGridConfig) Enabled() bool {
	return c.APIKey != "" && c.FromEmail != ""
}

// SecurityConfig защита маршрутов /vapi
// При пустом AppSecret маршруты открыты
type SecurityConfig struct {
	AppSecret string `toml:"app_secret"`
}

// HandoffConfig контакт для передачи разговора живому человеку
type HandoffConfig struct {
	ContactName  string `toml:"contact_name"`
	ContactPhone string `toml:"contact_phone"`
	Message      string `toml:"message"`
}

// CredentialsConfig расположение файла с OAuth-токенами
// Используется файловым хранилищем, когда секция [database] не задана
type CredentialsConfig struct {
	File string `toml:"file"`
}

// DatabaseConfig подключение к PostgreSQL для хранилища учетных данных
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "echo-scheduling",
		},
		Business: BusinessConfig{
			Timezone: domain.DefaultTimezone,
		},
		Google: GoogleConfig{
			CalendarID: "primary",
			Timeout:    10,
		},
		Twilio: TwilioConfig{
			Timeout: 10,
		},
		SendGrid: SendGridConfig{
			Timeout: 10,
		},
		Credentials: CredentialsConfig{
			File: "google_token.json",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}

	if c.Business.Timezone == "" {
		return fmt.Errorf("config: business.timezone is required")
	}

	if c.Google.ClientID == "" || c.Google.ClientSecret == "" {
		return fmt.Errorf("config: google.client_id and google.client_secret are required")
	}

	if c.Google.RedirectURL == "" {
		return fmt.Errorf("config: google.redirect_url is required")
	}

	return nil
}
