// Package config loads the immutable service configuration from environment
// variables. It is constructed once in main and injected everywhere else; no
// other package reads the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// Config contains all settings of the application.
type Config struct {
	// --- HTTP ---
	Port    int    `envconfig:"PORT" default:"5000"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`
	// Comma-separated list of origins allowed by CORS.
	AllowedOriginsRaw string   `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:4200"`
	AllowedOrigins    []string `envconfig:"-"`

	// --- Database ---
	DatabaseDSN string `envconfig:"DATABASE_DSN" required:"true"`

	// --- Admin identity (fixed per deployment, never taken from requests) ---
	AdminUsername string `envconfig:"ADMIN_USERNAME" required:"true"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" required:"true"`

	// --- Session token ---
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTIssuer string        `envconfig:"JWT_ISSUER" default:"kubereshwar-backend"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	// --- OTP engine ---
	OTPTTL         time.Duration `envconfig:"OTP_TTL" default:"5m"`
	OTPLength      int           `envconfig:"OTP_LENGTH" default:"6"`
	OTPCooldown    time.Duration `envconfig:"OTP_COOLDOWN" default:"30s"`
	OTPMaxAttempts int           `envconfig:"OTP_MAX_ATTEMPTS" default:"5"`

	// --- Password hashing ---
	BcryptCost int `envconfig:"BCRYPT_COST" default:"10"`

	// --- Outbound mail ---
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER"`
	SMTPPass     string `envconfig:"SMTP_PASS"`
	MailFrom     string `envconfig:"MAIL_FROM"`
	MailFromName string `envconfig:"MAIL_FROM_NAME" default:"Kubereshwar Website"`

	// --- Logging ---
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads and validates the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.AdminUsername = domain.NormalizeUsername(cfg.AdminUsername)
	if cfg.AdminUsername == "" {
		return nil, fmt.Errorf("config: ADMIN_USERNAME must not be blank")
	}

	if cfg.OTPLength < 4 || cfg.OTPLength > 10 {
		return nil, fmt.Errorf("config: OTP_LENGTH %d out of range [4,10]", cfg.OTPLength)
	}
	if cfg.OTPMaxAttempts < 1 {
		return nil, fmt.Errorf("config: OTP_MAX_ATTEMPTS must be at least 1")
	}

	for _, origin := range strings.Split(cfg.AllowedOriginsRaw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	// Fall back to the SMTP account as the envelope sender.
	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUser
	}

	return &cfg, nil
}
