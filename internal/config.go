package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16
	BaseURL  string

	// AdminToken guards the operator-only email diagnostic endpoint.
	// When empty, the endpoint is disabled.
	AdminToken string

	// WebDir is the root of templates and static assets.
	WebDir string

	Site  SiteConfig
	Email EmailConfig
}

// SiteConfig holds the identity rendered into the portfolio pages.
type SiteConfig struct {
	OwnerName    string
	Tagline      string
	ContactEmail string
	ContactPhone string
	Location     string
	GitHubURL    string
	LinkedInURL  string
}

// EmailConfig holds the outbound mail transport settings.
// Provider selects the sender backend: "smtp", "resend", or "log".
type EmailConfig struct {
	Provider string `validate:"oneof=smtp resend log"`

	Host     string `validate:"required_if=Provider smtp"`
	Port     uint16
	Username string
	Password string

	ResendAPIKey string `validate:"required_if=Provider resend"`

	From      string `validate:"required_unless=Provider log,omitempty,email"`
	FromName  string
	Recipient string `validate:"required_unless=Provider log,omitempty,email"`
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:        getEnv("ENV", "dev"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Port:       getEnvInt("PORT", 3000),
		BaseURL:    getEnv("BASE_URL", "http://localhost:3000"),
		AdminToken: getEnv("ADMIN_TOKEN", ""),
		WebDir:     getEnv("WEB_DIR", "web"),
		Site: SiteConfig{
			OwnerName:    getEnv("SITE_OWNER_NAME", "Vikrant Kumar"),
			Tagline:      getEnv("SITE_TAGLINE", "Full-Stack Developer & Cybersecurity Enthusiast"),
			ContactEmail: getEnv("SITE_CONTACT_EMAIL", "vikrantkrd@gmail.com"),
			ContactPhone: getEnv("SITE_CONTACT_PHONE", "+91 8306721779"),
			Location:     getEnv("SITE_LOCATION", "IIITDM Jabalpur"),
			GitHubURL:    getEnv("SITE_GITHUB_URL", "https://github.com/vikrantwiz02"),
			LinkedInURL:  getEnv("SITE_LINKEDIN_URL", ""),
		},
		Email: EmailConfig{
			Provider:     getEnv("EMAIL_PROVIDER", "smtp"),
			Host:         getEnv("SMTP_HOST", ""),
			Port:         getEnvInt("SMTP_PORT", 465),
			Username:     getEnv("SMTP_USER", ""),
			Password:     getEnv("SMTP_PASSWORD", ""),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("SMTP_FROM_EMAIL", ""),
			FromName:     getEnv("SMTP_FROM_NAME", "Contact Form"),
			Recipient:    getEnv("CONTACT_RECIPIENT_EMAIL", ""),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fails fast on an unusable mail configuration so a broken
// deployment is caught at startup rather than on the first submission.
// Error text names the missing setting but never echoes secret values.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c.Email); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("email configuration invalid: %w", err)
		}
		for _, fe := range verrs {
			return fmt.Errorf("email configuration invalid: %s fails %q (provider %s)", fe.Field(), fe.Tag(), c.Email.Provider)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}
