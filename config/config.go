package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
	SMTP   SMTPConfig
	Twilio TwilioConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// DBConfig holds database-related configuration. DB_URL, when set, wins over
// the individual fields.
type DBConfig struct {
	URL      string `envconfig:"DB_URL"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"sejenak"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// DSN returns the PostgreSQL connection string.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Pretty bool   `envconfig:"LOG_PRETTY" default:"false"`
}

// SMTPConfig holds the outgoing mail settings for campaign blasts.
type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"SMTP_FROM" default:"hello@sejenak.id"`
}

// TwilioConfig holds the SMS/WhatsApp sender settings.
type TwilioConfig struct {
	AccountSID     string `envconfig:"TWILIO_ACCOUNT_SID"`
	AuthToken      string `envconfig:"TWILIO_AUTH_TOKEN"`
	PhoneNumber    string `envconfig:"TWILIO_PHONE_NUMBER"`
	WhatsAppNumber string `envconfig:"TWILIO_WHATSAPP_NUMBER"`
}

// Load parses environment variables into the Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
