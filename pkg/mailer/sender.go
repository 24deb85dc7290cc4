package mailer

import (
	"context"

	zeptomail "github.com/SLVNV015/zeptomail-client"
)

// Sender delivers a prepared request. *zeptomail.Client implements it.
type Sender interface {
	Send(ctx context.Context, req zeptomail.SendRequest) (*zeptomail.SendResult, error)
}

var _ Sender = (*zeptomail.Client)(nil)
