package zeptomail

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// EmailAddress is a mail address with an optional display name.
type EmailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

// Address builds an EmailAddress. Name may be empty.
func Address(address, name string) EmailAddress {
	return EmailAddress{Address: address, Name: name}
}

// Attachment is a file sent along with the email.
// Content must already be base64-encoded; it is passed to the API verbatim.
type Attachment struct {
	Name     string `json:"name"`      // File name shown to the recipient
	MimeType string `json:"mime_type"` // e.g. "application/pdf"
	Content  string `json:"content"`   // Base64-encoded file content
}

// NewAttachment encodes raw file bytes into an Attachment.
func NewAttachment(name, mimeType string, data []byte) Attachment {
	return Attachment{
		Name:     name,
		MimeType: mimeType,
		Content:  base64.StdEncoding.EncodeToString(data),
	}
}

// SendRequest holds the parameters of a single email.
// Whether a body or a template key is present is not checked locally;
// the API rejects incomplete requests.
type SendRequest struct {
	MergeInfo   map[string]any // Template substitutions, used only with TemplateKey
	From        EmailAddress
	Subject     string
	HTMLBody    string
	TextBody    string
	TemplateKey string // Key of a template stored in ZeptoMail
	To          []EmailAddress
	Attachments []Attachment
	Timeout     time.Duration // Zero means the client default (10s)
}

// Recipient is a single element of the "to" list on the wire.
type Recipient struct {
	EmailAddress EmailAddress `json:"email_address"`
}

// WirePayload is the exact JSON body posted to the API.
// Fields are declared in wire order.
type WirePayload struct {
	From        EmailAddress   `json:"from"`
	To          []Recipient    `json:"to"`
	Subject     string         `json:"subject"`
	HTMLBody    string         `json:"htmlbody,omitempty"`
	TextBody    string         `json:"textbody,omitempty"`
	TemplateKey string         `json:"template_key,omitempty"`
	MergeInfo   map[string]any `json:"merge_info,omitzero"` // nil is omitted, empty map is sent as {}
	Attachments []Attachment   `json:"attachments,omitempty"`
}

// SendResult is the body of a successful response.
// RequestID and Message are the documented fields; everything the service
// returned is available untouched in Raw.
type SendResult struct {
	RequestID string          `json:"request_id"`
	Message   string          `json:"message"`
	Object    string          `json:"object,omitempty"`
	Data      []ResultData    `json:"data,omitempty"`
	Raw       json.RawMessage `json:"-"`
}

// ResultData is a per-request status entry reported by the API.
type ResultData struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	AdditionalInfo []any  `json:"additional_info,omitempty"`
}
