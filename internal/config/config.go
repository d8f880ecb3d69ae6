package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	WhatsApp WhatsAppConfig
	Work     WorkConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// SMTPConfig holds outgoing mail configuration. An empty Host disables
// email delivery (sends are logged and skipped).
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// WhatsAppConfig holds the messaging gateway configuration. An empty
// BaseURL disables WhatsApp delivery.
type WhatsAppConfig struct {
	BaseURL string
	APIKey  string
}

// WorkConfig holds company-wide attendance policy defaults.
type WorkConfig struct {
	// StandardDailyHours is the daily threshold beyond which worked
	// time counts as overtime and feeds the time bank.
	StandardDailyHours float64
	// Workdays are the default expected working days for employees
	// that have no explicit workday calendar.
	Workdays []time.Weekday
}

func Load() (*Config, error) {
	// Missing .env is fine in production; env vars take precedence anyway.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "25"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	dbMinConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "5"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ponto"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
		MinConns: int32(dbMinConns),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@ponto.local"),
		FromName: getEnv("SMTP_FROM_NAME", "Controle de Ponto"),
	}

	// WhatsApp gateway configuration
	config.WhatsApp = WhatsAppConfig{
		BaseURL: getEnv("WHATSAPP_API_URL", ""),
		APIKey:  getEnv("WHATSAPP_API_KEY", ""),
	}

	// Attendance policy defaults
	standardHours, err := strconv.ParseFloat(getEnv("WORK_STANDARD_DAILY_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_STANDARD_DAILY_HOURS: %w", err)
	}

	workdays, err := parseWorkdays(getEnv("WORK_DEFAULT_WORKDAYS", "mon,tue,wed,thu,fri"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_DEFAULT_WORKDAYS: %w", err)
	}

	config.Work = WorkConfig{
		StandardDailyHours: standardHours,
		Workdays:           workdays,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Database.MaxConns <= 0 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MAX_CONNS and DB_MIN_CONNS must satisfy 0 <= min <= max with max > 0")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Work.StandardDailyHours <= 0 {
		return fmt.Errorf("WORK_STANDARD_DAILY_HOURS must be positive")
	}
	if len(c.Work.Workdays) == 0 {
		return fmt.Errorf("WORK_DEFAULT_WORKDAYS must name at least one day")
	}
	return nil
}

// DSN returns the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
		c.SSLMode,
	)
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

func parseWorkdays(value string) ([]time.Weekday, error) {
	var result []time.Weekday
	for _, part := range strings.Split(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		day, ok := weekdayNames[part]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		result = append(result, day)
	}
	return result, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
