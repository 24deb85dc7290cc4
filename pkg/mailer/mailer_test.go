package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	zeptomail "github.com/SLVNV015/zeptomail-client"
)

// MockSender is a mock implementation of Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, req zeptomail.SendRequest) (*zeptomail.SendResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*zeptomail.SendResult)
	return res, args.Error(1)
}

var (
	alice = zeptomail.Address("alice@example.com", "Alice")
	team  = zeptomail.Address("team@example.com", "Team")
)

func testConfig() Config {
	return Config{
		FromAddress:     team.Address,
		FromName:        team.Name,
		FallbackSubject: "Notification",
		DefaultLayout:   "base.html",
		DeriveText:      true,
	}
}

func accepted() *zeptomail.SendResult {
	return &zeptomail.SendResult{RequestID: "req-1", Message: "OK"}
}

func TestMailer_Send(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, NewRenderer(testTemplates()), testConfig())

	sender.On("Send", mock.Anything, mock.MatchedBy(func(req zeptomail.SendRequest) bool {
		return req.From == team &&
			len(req.To) == 1 && req.To[0] == alice &&
			req.Subject == "Welcome Alice" &&
			strings.Contains(req.HTMLBody, "<strong>Alice</strong>") &&
			strings.Contains(req.TextBody, "Hello **Alice**!") &&
			req.TemplateKey == ""
	})).Return(accepted(), nil).Once()

	res, err := m.Send(context.Background(), SendParams{
		To:       []zeptomail.EmailAddress{alice},
		Template: "welcome.md",
		Data:     map[string]string{"Name": "Alice", "URL": "https://example.com"},
	})

	require.NoError(t, err)
	require.Equal(t, "req-1", res.RequestID)
	sender.AssertExpectations(t)
}

func TestMailer_Send_Overrides(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	fs := testTemplates()
	fs["layouts/alt.html"] = &fstest.MapFile{Data: []byte(`<main>{{.Content}}</main>`)}
	m := New(sender, NewRenderer(fs), testConfig())

	from := zeptomail.Address("billing@example.com", "Billing")
	attachment := zeptomail.NewAttachment("invoice.txt", "text/plain", []byte("total: 10"))

	sender.On("Send", mock.Anything, mock.MatchedBy(func(req zeptomail.SendRequest) bool {
		return req.From == from &&
			req.Subject == "Invoice for Alice" &&
			strings.HasPrefix(req.HTMLBody, "<main>") &&
			len(req.Attachments) == 1 && req.Attachments[0] == attachment
	})).Return(accepted(), nil).Once()

	_, err := m.Send(context.Background(), SendParams{
		To:          []zeptomail.EmailAddress{alice},
		Template:    "welcome.md",
		Data:        map[string]string{"Name": "Alice", "URL": "https://example.com"},
		Subject:     "Invoice for {{.Name}}",
		Layout:      "alt.html",
		From:        from,
		Attachments: []zeptomail.Attachment{attachment},
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailer_Send_FallbackSubject(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, NewRenderer(testTemplates()), testConfig())

	sender.On("Send", mock.Anything, mock.MatchedBy(func(req zeptomail.SendRequest) bool {
		return req.Subject == "Notification"
	})).Return(accepted(), nil).Once()

	_, err := m.Send(context.Background(), SendParams{
		To:       []zeptomail.EmailAddress{alice},
		Template: "plain.md",
		Data:     map[string]string{"Name": "Alice"},
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailer_Send_RenderErrors(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, NewRenderer(testTemplates()), testConfig())
	to := []zeptomail.EmailAddress{alice}

	_, err := m.Send(context.Background(), SendParams{To: to, Template: "missing.md"})
	require.ErrorIs(t, err, ErrRenderFailed)
	require.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = m.Send(context.Background(), SendParams{To: to, Template: "plain.md", Subject: "{{.Broken"})
	require.ErrorIs(t, err, ErrRenderFailed)

	_, err = m.Send(context.Background(), SendParams{Template: "plain.md"})
	require.ErrorIs(t, err, ErrNoRecipient)

	_, err = New(sender, nil, testConfig()).Send(context.Background(), SendParams{To: to, Template: "plain.md"})
	require.ErrorIs(t, err, ErrRenderFailed)

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestMailer_SendTemplate(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, nil, testConfig())

	merge := map[string]any{"name": "Alice", "code": 4821}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(req zeptomail.SendRequest) bool {
		return req.TemplateKey == "tmpl-key" &&
			req.From == team &&
			req.Subject == "" &&
			req.HTMLBody == "" &&
			req.MergeInfo["code"] == 4821
	})).Return(accepted(), nil).Once()

	res, err := m.SendTemplate(context.Background(), TemplateParams{
		TemplateKey: "tmpl-key",
		To:          []zeptomail.EmailAddress{alice},
		MergeInfo:   merge,
	})

	require.NoError(t, err)
	require.Equal(t, "req-1", res.RequestID)
	sender.AssertExpectations(t)
}

func TestMailer_SendTemplate_RequiresKey(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, nil, testConfig())

	_, err := m.SendTemplate(context.Background(), TemplateParams{To: []zeptomail.EmailAddress{alice}})

	require.ErrorIs(t, err, ErrNoContent)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestMailer_SendRaw_Validation(t *testing.T) {
	t.Parallel()

	to := []zeptomail.EmailAddress{alice}

	tests := []struct {
		name string
		cfg  Config
		req  zeptomail.SendRequest
		want error
	}{
		{
			name: "no recipient",
			cfg:  testConfig(),
			req:  zeptomail.SendRequest{Subject: "Hi", HTMLBody: "<p>Hi</p>"},
			want: ErrNoRecipient,
		},
		{
			name: "no sender",
			cfg:  Config{},
			req:  zeptomail.SendRequest{To: to, Subject: "Hi", HTMLBody: "<p>Hi</p>"},
			want: ErrNoSender,
		},
		{
			name: "no subject",
			cfg:  testConfig(),
			req:  zeptomail.SendRequest{To: to, HTMLBody: "<p>Hi</p>"},
			want: ErrNoSubject,
		},
		{
			name: "no content",
			cfg:  testConfig(),
			req:  zeptomail.SendRequest{To: to, Subject: "Hi"},
			want: ErrNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &MockSender{}
			_, err := New(sender, nil, tt.cfg).SendRaw(context.Background(), tt.req)

			require.ErrorIs(t, err, tt.want)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestMailer_SendRaw_Defaults(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	cfg := testConfig()
	cfg.Timeout = 3 * time.Second
	m := New(sender, nil, cfg)

	sender.On("Send", mock.Anything, mock.MatchedBy(func(req zeptomail.SendRequest) bool {
		return req.From == team &&
			req.TextBody == "Hello\nWorld" &&
			req.Timeout == 3*time.Second
	})).Return(accepted(), nil).Once()

	_, err := m.SendRaw(context.Background(), zeptomail.SendRequest{
		To:       []zeptomail.EmailAddress{alice},
		Subject:  "Hi",
		HTMLBody: "<p>Hello</p><p>World</p>",
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailer_SendRaw_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	cfg := testConfig()
	cfg.Timeout = 3 * time.Second
	m := New(sender, nil, cfg)

	sender.On("Send", mock.Anything, mock.MatchedBy(func(req zeptomail.SendRequest) bool {
		return req.TextBody == "custom text" && req.Timeout == time.Second
	})).Return(accepted(), nil).Once()

	_, err := m.SendRaw(context.Background(), zeptomail.SendRequest{
		To:       []zeptomail.EmailAddress{alice},
		Subject:  "Hi",
		HTMLBody: "<p>Hello</p>",
		TextBody: "custom text",
		Timeout:  time.Second,
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailer_SendRaw_NoDerivedText(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	cfg := testConfig()
	cfg.DeriveText = false
	m := New(sender, nil, cfg)

	sender.On("Send", mock.Anything, mock.MatchedBy(func(req zeptomail.SendRequest) bool {
		return req.TextBody == ""
	})).Return(accepted(), nil).Once()

	_, err := m.SendRaw(context.Background(), zeptomail.SendRequest{
		To:       []zeptomail.EmailAddress{alice},
		Subject:  "Hi",
		HTMLBody: "<p>Hello</p>",
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailer_SendRaw_SenderError(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, nil, testConfig())

	apiErr := &zeptomail.APIError{StatusCode: 422, Message: "Invalid sender"}
	sender.On("Send", mock.Anything, mock.Anything).Return(nil, apiErr).Once()

	res, err := m.SendRaw(context.Background(), zeptomail.SendRequest{
		To:       []zeptomail.EmailAddress{alice},
		Subject:  "Hi",
		TextBody: "Hello",
	})

	require.Nil(t, res)
	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, zeptomail.ErrAPI)

	var target *zeptomail.APIError
	require.True(t, errors.As(err, &target))
	require.Equal(t, 422, target.StatusCode)
	sender.AssertExpectations(t)
}

func TestMailer_SendRaw_TimeoutError(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, nil, testConfig())

	sender.On("Send", mock.Anything, mock.Anything).
		Return(nil, &zeptomail.TimeoutError{Timeout: time.Second}).Once()

	_, err := m.SendRaw(context.Background(), zeptomail.SendRequest{
		To:       []zeptomail.EmailAddress{alice},
		Subject:  "Hi",
		TextBody: "Hello",
	})

	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, zeptomail.ErrTimeout)
}

func TestNew_NilOptionIgnored(t *testing.T) {
	t.Parallel()

	m := New(&MockSender{}, nil, testConfig(), nil, WithLogger(nil))
	require.NotNil(t, m.logger)
}
