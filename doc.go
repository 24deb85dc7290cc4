// Package zeptomail is a small client for the ZeptoMail transactional email API.
//
// A Client holds an API key and posts one email per call to the send
// endpoint. There is no retry, batching or state beyond the key.
//
// # Quick Start
//
//	client := zeptomail.New(os.Getenv("ZEPTOMAIL_API_KEY"))
//
//	res, err := client.Send(ctx, zeptomail.SendRequest{
//	    From:     zeptomail.Address("noreply@example.com", "Example"),
//	    To:       []zeptomail.EmailAddress{zeptomail.Address("user@example.com", "")},
//	    Subject:  "Welcome",
//	    HTMLBody: "<p>Hello!</p>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Println(res.RequestID)
//
// # API Key
//
// The Authorization header must carry the "Zoho-enczapikey" scheme. Keys
// copied from the ZeptoMail console usually include it; bare tokens are
// prefixed automatically:
//
//	zeptomail.NormalizeAPIKey("abc")                 // "Zoho-enczapikey abc"
//	zeptomail.NormalizeAPIKey("Zoho-enczapikey abc") // unchanged
//
// # Templates
//
// Set TemplateKey to send a template stored in ZeptoMail. MergeInfo supplies
// the template variables; it is ignored when no template key is set.
//
//	client.Send(ctx, zeptomail.SendRequest{
//	    From:        from,
//	    To:          to,
//	    Subject:     "Your order",
//	    TemplateKey: "2d6f.117fe6ec4fda4841.k1.order",
//	    MergeInfo:   map[string]any{"order_id": 42},
//	})
//
// # Timeouts
//
// Each call runs under its own timer: SendRequest.Timeout if set, otherwise
// the client default of 10 seconds (see WithDefaultTimeout). The caller's
// context still applies and can end the call earlier.
//
// # Errors
//
// Send fails with one of three classified errors:
//
//   - *TimeoutError (ErrTimeout): the timer fired, carries the timeout used
//   - *NetworkError (ErrNetwork): transport failure, carries the cause
//   - *APIError (ErrAPI): non-2xx status, carries status code and message
//
// Check them with errors.Is or errors.As:
//
//	var apiErr *zeptomail.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnprocessableEntity {
//	    // fix the request
//	}
//
// Two local failures exist as well: ErrEncodeFailed when MergeInfo holds a
// value that cannot be encoded as JSON, and ErrDecodeFailed when a 2xx
// response body is not JSON.
//
// # Higher-level sending
//
// Package pkg/mailer renders markdown templates into HTML and text bodies and
// sends them through a Client.
package zeptomail
