package logger

import (
	"log/slog"
	"strings"
)

// Redacted replaces the value of attributes that may carry credentials.
const Redacted = "[REDACTED]"

var secretKeys = map[string]struct{}{
	"authorization": {},
	"api_key":       {},
	"apikey":        {},
	"token":         {},
	"password":      {},
	"secret":        {},
}

// IsSecretKey reports whether an attribute key names a credential.
// The match ignores case and treats '-' like '_'.
func IsSecretKey(key string) bool {
	k := strings.ToLower(strings.ReplaceAll(key, "-", "_"))
	_, ok := secretKeys[k]
	return ok
}

// RedactSecrets is a slog ReplaceAttr func masking credential attributes.
func RedactSecrets(_ []string, a slog.Attr) slog.Attr {
	if IsSecretKey(a.Key) {
		return slog.String(a.Key, Redacted)
	}
	return a
}
