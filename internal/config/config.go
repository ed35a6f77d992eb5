package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Config holds all configuration from environment variables.
type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`
	Debug   bool   `envconfig:"DEBUG" default:"false"`

	DatabasePath string `envconfig:"DATABASE_PATH" default:"portfolio.db"`
	ContentFile  string `envconfig:"CONTENT_FILE" default:"content.toml"`
	ResumePath   string `envconfig:"RESUME_PATH" default:""`

	// Contact form delivery
	SMTPHost string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort string `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser string `envconfig:"SMTP_USER"`
	SMTPPass string `envconfig:"SMTP_PASS"`
	ToEmail  string `envconfig:"TO_EMAIL"`

	// Admin dashboard; an empty password disables login entirely
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	AllowedOrigins   []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000,http://127.0.0.1:5173"`
	VisitorRetention time.Duration `envconfig:"VISITOR_RETENTION" default:"8760h"`
	ReadTimeout      time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout     time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
}

// LoadEnv loads the configuration from environment variables.
func (c Config) LoadEnv() (Config, error) {
	cfg := c

	if err := envconfig.Process("", &cfg); err != nil {
		return c, errors.Wrap(err, "process environment")
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// MailEnabled reports whether SMTP credentials and a recipient are configured.
func (c *Config) MailEnabled() bool {
	return c.SMTPUser != "" && c.SMTPPass != "" && c.ToEmail != ""
}

func (c *Config) AdminEnabled() bool {
	return c.AdminPassword != ""
}

// NewConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	loaded, err := cfg.LoadEnv()
	if err != nil {
		return nil, err
	}
	return &loaded, nil
}

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(
			NewConfig,
		),
	)
}
