package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "TENNIS"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
	Payments PaymentsConfig `toml:"payments"`
	Seed     SeedConfig     `toml:"seed"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"HOST"`
	Port            int    `toml:"port" envconfig:"PORT"`
	User            string `toml:"user" envconfig:"USER"`
	Password        string `toml:"password" envconfig:"PASSWORD"`
	DBName          string `toml:"dbname" envconfig:"DBNAME"`
	SSLMode         string `toml:"sslmode" envconfig:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME"`
	AutoMigrate     bool   `toml:"auto_migrate" envconfig:"AUTO_MIGRATE"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level" envconfig:"LEVEL"`
	File  string `toml:"file" envconfig:"FILE"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"ENABLED"`
	Path        string `toml:"path" envconfig:"PATH"`
	ServiceName string `toml:"service_name" envconfig:"SERVICE_NAME"`
}

// AuthConfig параметры аутентификации
type AuthConfig struct {
	JWTSecret        string `toml:"jwt_secret" envconfig:"JWT_SECRET"`
	TokenTTLHours    int    `toml:"token_ttl_hours" envconfig:"TOKEN_TTL_HOURS"`
	LoginMaxAttempts int    `toml:"login_max_attempts" envconfig:"LOGIN_MAX_ATTEMPTS"`
	LoginWindowSec   int    `toml:"login_window_seconds" envconfig:"LOGIN_WINDOW_SECONDS"`
}

// TokenTTL время жизни токена
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// LoginWindow окно ограничения попыток входа
func (a AuthConfig) LoginWindow() time.Duration {
	return time.Duration(a.LoginWindowSec) * time.Second
}

// RedisConfig параметры Redis. Пустой Addr означает in-memory ограничитель.
type RedisConfig struct {
	Addr     string `toml:"addr" envconfig:"ADDR"`
	Password string `toml:"password" envconfig:"PASSWORD"`
	DB       int    `toml:"db" envconfig:"DB"`
}

// BookingConfig параметры правил бронирования. Нулевые значения заменяются дефолтами.
type BookingConfig struct {
	MinDurationHours       float64 `toml:"min_duration_hours" envconfig:"MIN_DURATION_HOURS"`
	MaxAttendees           int     `toml:"max_attendees" envconfig:"MAX_ATTENDEES"`
	ResidentAdvanceDays    int     `toml:"resident_advance_days" envconfig:"RESIDENT_ADVANCE_DAYS"`
	NonResidentAdvanceDays int     `toml:"non_resident_advance_days" envconfig:"NON_RESIDENT_ADVANCE_DAYS"`
	DiscountedHourlyRate   float64 `toml:"discounted_hourly_rate" envconfig:"DISCOUNTED_HOURLY_RATE"`
	StandardHourlyRate     float64 `toml:"standard_hourly_rate" envconfig:"STANDARD_HOURLY_RATE"`
}

// Rules собирает доменные правила бронирования
func (b BookingConfig) Rules() domain.BookingRules {
	rules := domain.DefaultBookingRules()
	if b.MinDurationHours > 0 {
		rules.MinDurationHours = b.MinDurationHours
	}
	if b.MaxAttendees > 0 {
		rules.MaxAttendees = b.MaxAttendees
	}
	if b.ResidentAdvanceDays > 0 {
		rules.ResidentAdvanceDays = b.ResidentAdvanceDays
	}
	if b.NonResidentAdvanceDays > 0 {
		rules.NonResidentAdvanceDays = b.NonResidentAdvanceDays
	}
	if b.DiscountedHourlyRate > 0 {
		rules.DiscountedHourlyRate = b.DiscountedHourlyRate
	}
	if b.StandardHourlyRate > 0 {
		rules.StandardHourlyRate = b.StandardHourlyRate
	}
	return rules
}

// PaymentsConfig параметры платежей
type PaymentsConfig struct {
	Mode             string `toml:"mode" envconfig:"MODE"`
	WebhookSecret    string `toml:"webhook_secret" envconfig:"WEBHOOK_SECRET"`
	HoldMinutes      int    `toml:"hold_minutes" envconfig:"HOLD_MINUTES"`
	SweepIntervalSec int    `toml:"sweep_interval_seconds" envconfig:"SWEEP_INTERVAL_SECONDS"`

	// Пустой GatewayURL включает демонстрационную заглушку
	GatewayURL     string `toml:"gateway_url" envconfig:"GATEWAY_URL"`
	GatewayAPIKey  string `toml:"gateway_api_key" envconfig:"GATEWAY_API_KEY"`
	GatewayTimeout int    `toml:"gateway_timeout" envconfig:"GATEWAY_TIMEOUT"`
}

// PaymentMode режим подтверждения бронирований
func (p PaymentsConfig) PaymentMode() domain.PaymentMode {
	return domain.PaymentMode(strings.ToLower(p.Mode))
}

// HoldTTL время жизни неоплаченного бронирования
func (p PaymentsConfig) HoldTTL() time.Duration {
	return time.Duration(p.HoldMinutes) * time.Minute
}

// SweepInterval период проверки просроченных бронирований
func (p PaymentsConfig) SweepInterval() time.Duration {
	return time.Duration(p.SweepIntervalSec) * time.Second
}

// SeedConfig параметры начального наполнения БД
type SeedConfig struct {
	Enabled bool   `toml:"enabled" envconfig:"ENABLED"`
	File    string `toml:"file" envconfig:"FILE"`
}

// Default возвращает конфигурацию по умолчанию
func Default() Config {
	return Config{
		Server: ServerConfig{
			HTTPPort:        8001,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "tennis",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "tennis-court-booking",
		},
		Auth: AuthConfig{
			TokenTTLHours:    24,
			LoginMaxAttempts: 10,
			LoginWindowSec:   300,
		},
		Payments: PaymentsConfig{
			Mode:             string(domain.PaymentModeAuto),
			HoldMinutes:      15,
			SweepIntervalSec: 60,
			GatewayTimeout:   10,
		},
		Seed: SeedConfig{Enabled: true, File: "seed.yaml"},
	}
}

// Load читает config.toml, затем .env и переменные окружения с префиксом TENNIS
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if len(c.Auth.JWTSecret) < 16 {
		return errors.New("config: auth.jwt_secret must be at least 16 characters")
	}
	if c.Auth.TokenTTLHours <= 0 {
		return errors.New("config: auth.token_ttl_hours must be positive")
	}
	if c.Auth.LoginMaxAttempts <= 0 || c.Auth.LoginWindowSec <= 0 {
		return errors.New("config: auth login limits must be positive")
	}
	switch c.Payments.PaymentMode() {
	case domain.PaymentModeAuto:
	case domain.PaymentModeHold:
		if c.Payments.HoldMinutes <= 0 || c.Payments.SweepIntervalSec <= 0 {
			return errors.New("config: payments.hold_minutes and payments.sweep_interval_seconds must be positive in hold mode")
		}
	default:
		return fmt.Errorf("config: unknown payments.mode %q", c.Payments.Mode)
	}
	return nil
}
