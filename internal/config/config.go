package config

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/currency"
)

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	Database    Database
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	Auth     Auth     `envPrefix:"AUTH_"`
	Razorpay Razorpay `envPrefix:"RAZORPAY_"`
	Mail     Mail     `envPrefix:"MAIL_"`
}

type Razorpay struct {
	BaseApiURL    string `env:"BASE_API_URL" envDefault:"https://api.razorpay.com"`
	KeyID         string `env:"KEY_ID"`
	KeySecret     string `env:"KEY_SECRET"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
	Currency      string `env:"CURRENCY" envDefault:"INR"`
}

type Mail struct {
	Host     string `env:"HOST" envDefault:"sandbox.smtp.mailtrap.io"`
	Port     int    `env:"PORT" envDefault:"2525"`
	Username string `env:"USER"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"wallaroo@wallaroo.com"`
}

type Auth struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Database struct {
	Driver string `env:"DATABASE_DRIVER" envDefault:"sqlite"` // sqlite, mysql, postgres
	URL    string `env:"DATABASE_URL" envDefault:"checkout.db"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment.Name == "development"
}

// Validate reports every problem at once. Secrets are only mandatory outside development.
func (c *Config) Validate() error {
	var errs []error

	if _, err := currency.ParseISO(c.Razorpay.Currency); err != nil {
		errs = append(errs, fmt.Errorf("RAZORPAY_CURRENCY[%s] is not valid: %w", c.Razorpay.Currency, err))
	}

	switch c.Database.Driver {
	case "sqlite", "mysql", "postgres":
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER[%s] is not supported", c.Database.Driver))
	}

	if !c.IsDevelopment() {
		required := map[string]string{
			"RAZORPAY_KEY_ID":         c.Razorpay.KeyID,
			"RAZORPAY_KEY_SECRET":     c.Razorpay.KeySecret,
			"RAZORPAY_WEBHOOK_SECRET": c.Razorpay.WebhookSecret,
			"AUTH_JWT_SECRET":         c.Auth.JWTSecret,
		}
		for name, value := range required {
			if value == "" {
				errs = append(errs, fmt.Errorf("%s is required", name))
			}
		}
	}

	return errors.Join(errs...)
}
