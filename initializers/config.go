package initializers

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Env            string
	Port           string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	JWTSecret      string
	AllowedOrigins []string
	TrustedProxies []string
	S3Bucket       string
	SMTPAddress    string
	FromEmail      string
	FromPassword   string
	FromSMTPHost   string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "5000"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBHost:         getEnv("DB_HOST", "127.0.0.1"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		SMTPAddress:    os.Getenv("SMTP_ADDRESS"),
		FromEmail:      os.Getenv("FROM_EMAIL"),
		FromPassword:   os.Getenv("FROM_EMAIL_PASSWORD"),
		FromSMTPHost:   os.Getenv("FROM_EMAIL_SMTP"),
	}

	if cfg.DBUser == "" || cfg.DBName == "" {
		return nil, errors.New("database config incomplete: DB_USER and DB_NAME are required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN builds the MySQL data source name.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func (c *Config) MailEnabled() bool {
	return c.SMTPAddress != "" && c.FromEmail != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(strings.TrimSuffix(part, "/")); p != "" {
			out = append(out, p)
		}
	}
	return out
}
