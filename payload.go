package zeptomail

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AuthScheme is the token prefix the API expects in the Authorization header.
const AuthScheme = "Zoho-enczapikey"

// NormalizeAPIKey prefixes the key with AuthScheme unless it already starts with it.
// The key itself is not validated.
func NormalizeAPIKey(key string) string {
	if strings.HasPrefix(key, AuthScheme) {
		return key
	}
	return AuthScheme + " " + key
}

// BuildPayload converts a SendRequest into the wire payload.
// It is pure: the request is not modified and equal requests produce equal payloads.
//
// Optional fields follow the API's presence rules: empty bodies are omitted,
// merge info is sent only together with a template key (as {} when no merge
// data was given) and attachments only when there is at least one.
func BuildPayload(req SendRequest) WirePayload {
	to := make([]Recipient, 0, len(req.To))
	for _, addr := range req.To {
		to = append(to, Recipient{EmailAddress: addr})
	}

	p := WirePayload{
		From:     req.From,
		To:       to,
		Subject:  req.Subject,
		HTMLBody: req.HTMLBody,
		TextBody: req.TextBody,
	}

	if req.TemplateKey != "" {
		p.TemplateKey = req.TemplateKey
		p.MergeInfo = req.MergeInfo
		if p.MergeInfo == nil {
			p.MergeInfo = map[string]any{}
		}
	}

	if len(req.Attachments) > 0 {
		p.Attachments = req.Attachments
	}

	return p
}

// encodePayload serializes the payload for the request body.
func encodePayload(p WirePayload) ([]byte, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return body, nil
}
