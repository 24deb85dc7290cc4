package mailer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	texttemplate "text/template"

	zeptomail "github.com/SLVNV015/zeptomail-client"
	"github.com/SLVNV015/zeptomail-client/pkg/logger"
	"github.com/SLVNV015/zeptomail-client/pkg/sanitizer"
)

// Mailer renders local templates and sends them through a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	logger   *slog.Logger
	config   Config
}

// Option configures the Mailer.
type Option func(*Mailer)

// WithLogger sets the mailer logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a new Mailer. The renderer may be nil when only
// SendTemplate and SendRaw are used.
func New(sender Sender, renderer *Renderer, cfg Config, opts ...Option) *Mailer {
	m := &Mailer{
		sender:   sender,
		renderer: renderer,
		logger:   logger.NewNope(),
		config:   cfg,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// SendParams contains parameters for sending a locally rendered template.
type SendParams struct {
	Data     any                      // Template data
	Template string                   // Template filename (e.g., "welcome.md")
	To       []zeptomail.EmailAddress // At least one required

	// Optional overrides
	Subject     string                 // Override template subject
	Layout      string                 // Override default layout
	From        zeptomail.EmailAddress // Override default sender
	Attachments []zeptomail.Attachment
}

// TemplateParams contains parameters for sending a template stored in ZeptoMail.
type TemplateParams struct {
	MergeInfo   map[string]any
	TemplateKey string
	Subject     string // Optional when the hosted template defines one
	To          []zeptomail.EmailAddress
	From        zeptomail.EmailAddress // Override default sender
	Attachments []zeptomail.Attachment
}

// Send renders a template and sends it.
// Subject resolution: params.Subject > template metadata > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) (*zeptomail.SendResult, error) {
	if len(params.To) == 0 {
		return nil, ErrNoRecipient
	}
	if m.renderer == nil {
		return nil, errors.Join(ErrRenderFailed, errors.New("mailer: no renderer configured"))
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		subject = result.Subject(m.config.FallbackSubject)
	}

	subject, err = processSubject(subject, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	return m.SendRaw(ctx, zeptomail.SendRequest{
		From:        m.fromOrDefault(params.From),
		To:          params.To,
		Subject:     subject,
		HTMLBody:    result.HTML,
		TextBody:    result.Text,
		Attachments: params.Attachments,
	})
}

// SendTemplate sends a template stored in ZeptoMail with the given merge info.
func (m *Mailer) SendTemplate(ctx context.Context, params TemplateParams) (*zeptomail.SendResult, error) {
	if params.TemplateKey == "" {
		return nil, ErrNoContent
	}

	return m.SendRaw(ctx, zeptomail.SendRequest{
		From:        m.fromOrDefault(params.From),
		To:          params.To,
		Subject:     params.Subject,
		TemplateKey: params.TemplateKey,
		MergeInfo:   params.MergeInfo,
		Attachments: params.Attachments,
	})
}

// SendRaw validates and sends a prepared request without rendering.
// A missing sender falls back to the configured one, and with DeriveText an
// empty text body is derived from the HTML body.
func (m *Mailer) SendRaw(ctx context.Context, req zeptomail.SendRequest) (*zeptomail.SendResult, error) {
	req.From = m.fromOrDefault(req.From)

	if err := validate(req); err != nil {
		return nil, err
	}

	if m.config.DeriveText && req.TextBody == "" && req.HTMLBody != "" {
		req.TextBody = sanitizer.PlainText(req.HTMLBody)
	}
	if req.Timeout == 0 {
		req.Timeout = m.config.Timeout
	}

	res, err := m.sender.Send(ctx, req)
	if err != nil {
		m.logger.ErrorContext(ctx, "mailer: send failed",
			slog.Int("recipients", len(req.To)),
			slog.String("error", err.Error()),
		)
		return nil, errors.Join(ErrSendFailed, err)
	}

	m.logger.InfoContext(ctx, "mailer: email sent",
		slog.Int("recipients", len(req.To)),
		slog.String("request_id", res.RequestID),
	)
	return res, nil
}

// fromOrDefault returns from, or the configured sender when from has no address.
func (m *Mailer) fromOrDefault(from zeptomail.EmailAddress) zeptomail.EmailAddress {
	if from.Address != "" {
		return from
	}
	return m.config.From()
}

func validate(req zeptomail.SendRequest) error {
	if len(req.To) == 0 {
		return ErrNoRecipient
	}
	if req.From.Address == "" {
		return ErrNoSender
	}
	if req.TemplateKey == "" {
		if req.Subject == "" {
			return ErrNoSubject
		}
		if req.HTMLBody == "" && req.TextBody == "" {
			return ErrNoContent
		}
	}
	return nil
}

func processSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
