package mailer

import (
	"time"

	zeptomail "github.com/SLVNV015/zeptomail-client"
)

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	FromAddress     string        `env:"MAILER_FROM_ADDRESS"`
	FromName        string        `env:"MAILER_FROM_NAME"`
	FallbackSubject string        `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Notification"`
	DefaultLayout   string        `env:"MAILER_DEFAULT_LAYOUT" envDefault:"base.html"`
	Timeout         time.Duration `env:"MAILER_TIMEOUT"` // Per send; zero uses the client default
	// DeriveText fills an empty text body from the HTML body in SendRaw.
	DeriveText bool `env:"MAILER_DERIVE_TEXT" envDefault:"true"`
}

// From returns the configured default sender.
func (c Config) From() zeptomail.EmailAddress {
	return zeptomail.Address(c.FromAddress, c.FromName)
}
