// Package logger builds the slog loggers used by the ZeptoMail client and mailer.
//
// Loggers produced here share three traits:
//   - attributes attached to a context with ContextWithAttrs (or produced by
//     any ContextExtractor) are added to every ...Context log call
//   - attributes that may hold credentials (authorization, api_key, token, ...)
//     are masked before they reach a handler
//   - Sentry is optional and degrades to stdout when no DSN is configured
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: slog.LevelDebug})
//	client := zeptomail.New(apiKey, zeptomail.WithLogger(log))
//
//	ctx := logger.ContextWithAttrs(ctx, slog.String("campaign", "welcome"))
//	client.Send(ctx, req) // client logs carry campaign=welcome
//
// # Sentry
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	})
//
// Failed sends are logged at warn level, so MinLevel warn forwards them to
// Sentry as logs; errors become Sentry issues.
//
// # Discarding
//
// NewNope returns a logger that writes nothing. The client uses it when no
// logger is configured.
package logger
