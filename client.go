package zeptomail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SLVNV015/zeptomail-client/pkg/logger"
)

const (
	// DefaultBaseURL is the ZeptoMail send endpoint.
	DefaultBaseURL = "https://api.zeptomail.com/v1.1/email"

	// DefaultTimeout applies to requests that do not set their own timeout.
	DefaultTimeout = 10 * time.Second
)

// Client sends transactional email through the ZeptoMail API.
// It holds no mutable state after construction and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string // normalized, never logged
	baseURL    string
	timeout    time.Duration
}

// New creates a client for the given API key.
// The key is normalized with NormalizeAPIKey; it is not validated, a bad key
// surfaces as an APIError on the first send.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		logger:     logger.NewNope(),
		apiKey:     NormalizeAPIKey(apiKey),
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// Send posts a single email and returns the API's response.
//
// Exactly one request is made. Failures are classified as *TimeoutError,
// *NetworkError or *APIError (matching ErrTimeout, ErrNetwork and ErrAPI).
// The per-request timer covers the request and reading of the response body,
// and is released on every return path.
func (c *Client) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	body, err := encodePayload(BuildPayload(req))
	if err != nil {
		return nil, c.fail(ctx, err)
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}

	c.logger.DebugContext(ctx, "sending email",
		slog.Int("recipients", len(req.To)),
		slog.Bool("template", req.TemplateKey != ""),
		slog.Int("attachments", len(req.Attachments)),
		slog.Duration("timeout", timeout),
	)

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, c.fail(ctx, &NetworkError{Err: err})
	}
	httpReq.Header.Set("Authorization", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.fail(ctx, transportError(ctx, reqCtx, err, timeout))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(ctx, transportError(ctx, reqCtx, err, timeout))
	}

	result, err := classifyResponse(resp.StatusCode, raw)
	if err != nil {
		return nil, c.fail(ctx, err)
	}

	c.logger.DebugContext(ctx, "email accepted",
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", result.RequestID),
	)

	return result, nil
}

func (c *Client) fail(ctx context.Context, err error) error {
	attrs := []any{slog.String("error", err.Error())}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		attrs = append(attrs, slog.Int("status", apiErr.StatusCode))
		if apiErr.RequestID != "" {
			attrs = append(attrs, slog.String("request_id", apiErr.RequestID))
		}
	}

	c.logger.WarnContext(ctx, "email send failed", attrs...)
	return err
}

// transportError tells our own timer firing apart from every other failure.
// Cancellation or expiry of the caller's context is a network error.
func transportError(parent, reqCtx context.Context, err error, timeout time.Duration) error {
	if parent.Err() == nil && errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Timeout: timeout}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}

	return &NetworkError{Err: err}
}

// classifyResponse maps status and body to a result or an *APIError.
// Success depends on the status only; the body shape is not validated.
func classifyResponse(status int, raw []byte) (*SendResult, error) {
	if status < 200 || status > 299 {
		return nil, newAPIError(status, raw)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: status %d", ErrDecodeFailed, status)
	}

	result := &SendResult{Raw: json.RawMessage(raw)}

	// A field of an unexpected type leaves the rest decoded; Raw keeps everything.
	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(raw, result); err != nil && !errors.As(err, &typeErr) {
		return nil, errors.Join(ErrDecodeFailed, err)
	}

	return result, nil
}

type errorBody struct {
	Message string `json:"message"`
	Error   *struct {
		Code      string `json:"code"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: raw}

	var body errorBody
	_ = json.Unmarshal(raw, &body) // partial decode is fine
	if body.Error != nil {
		apiErr.Code = body.Error.Code
		apiErr.RequestID = body.Error.RequestID
	}

	switch {
	case body.Message != "":
		apiErr.Message = body.Message
	case json.Valid(raw):
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err == nil {
			apiErr.Message = buf.String()
		}
	default:
		apiErr.Message = strings.TrimSpace(string(raw))
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}
