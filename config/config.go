package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ServerAddr         string   `env:"SERVER_ADDR" envDefault:":3000"`
	MysqlDSN           string   `env:"MYSQL_DSN" envDefault:"root:root@tcp(localhost:3306)/socialword?charset=utf8mb4&parseTime=True&loc=Local"`
	JWTSecret          string   `env:"JWT_SECRET" envDefault:"socialword-secret-key-change-in-production"`
	ResendAPIKey       string   `env:"RESEND_API_KEY"`
	MailFrom           string   `env:"MAIL_FROM" envDefault:"SocialWord <no-reply@socialword.shop>"`
	CloudinaryURL      string   `env:"CLOUDINARY_URL"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,https://social-worlds.vercel.app"`
}

var Cfg *Config

func Load() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	Cfg = cfg
	return nil
}
