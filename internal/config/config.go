package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the API process.
type Config struct {
	AppAddr     string        `envconfig:"APP_ADDR" default:":8080"`
	DatabaseURL string        `envconfig:"DATABASE_URL" default:"stayhub.db"`
	JWTSecret   string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL      time.Duration `envconfig:"JWT_TTL" default:"168h"`
	UploadDir   string        `envconfig:"UPLOAD_DIR" default:"./uploads"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &cfg, nil
}
