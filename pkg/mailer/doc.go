// Package mailer sends application emails through ZeptoMail, either rendered
// from local markdown templates or from templates hosted in ZeptoMail.
//
// # Architecture
//
//   - Sender: the transport, satisfied by *zeptomail.Client
//   - Renderer: converts markdown templates with YAML frontmatter to HTML
//   - Mailer: validates requests, applies defaults and logs outcomes
//
// # Usage
//
//	client := zeptomail.New(os.Getenv("ZEPTOMAIL_API_KEY"))
//	renderer := mailer.NewRenderer(emails.FS)
//
//	m := mailer.New(client, renderer, mailer.Config{
//		FromAddress:     "team@example.com",
//		FromName:        "Team",
//		FallbackSubject: "Notification",
//		DefaultLayout:   "base.html",
//		DeriveText:      true,
//	})
//
//	res, err := m.Send(ctx, mailer.SendParams{
//		To:       []zeptomail.EmailAddress{zeptomail.Address("user@example.com", "User")},
//		Template: "welcome.md",
//		Data:     map[string]any{"Name": "John"},
//	})
//
// Hosted templates skip rendering and pass merge info through:
//
//	res, err := m.SendTemplate(ctx, mailer.TemplateParams{
//		TemplateKey: "2d6f.117fe6ec4fda4841.k1.example",
//		To:          []zeptomail.EmailAddress{zeptomail.Address("user@example.com", "")},
//		MergeInfo:   map[string]any{"name": "John"},
//	})
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: Welcome {{.Name}}!
//	---
//
//	# Welcome
//
//	Hello {{.Name}}, welcome to our service!
//
//	[!button|Get Started]({{.URL}})
//
// The subject supports Go template syntax. Resolution order is
// SendParams.Subject, then frontmatter, then Config.FallbackSubject.
//
// # Errors
//
// Validation failures return ErrNoRecipient, ErrNoSender, ErrNoSubject or
// ErrNoContent before anything is sent. Transport failures are joined with
// ErrSendFailed and keep the client error, so errors.As still reaches
// *zeptomail.APIError, *zeptomail.TimeoutError and *zeptomail.NetworkError.
package mailer
