package zeptomail

import "time"

// Config holds client configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey  string        `env:"ZEPTOMAIL_API_KEY"`
	BaseURL string        `env:"ZEPTOMAIL_BASE_URL" envDefault:"https://api.zeptomail.com/v1.1/email"`
	Timeout time.Duration `env:"ZEPTOMAIL_TIMEOUT" envDefault:"10s"`
}

// NewFromConfig creates a client from Config.
// Options are applied after the config values and take precedence.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	base := []Option{WithBaseURL(cfg.BaseURL), WithDefaultTimeout(cfg.Timeout)}
	return New(cfg.APIKey, append(base, opts...)...)
}
