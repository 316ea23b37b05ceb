package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// SyncCommand triggers one sync run over the listed dealer storefronts.
type SyncCommand struct {
	DealerURLs []string `json:"dealerUrls"`
}

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SyncCommander sends sync commands.
type SyncCommander struct {
	sender Sender
}

// NewSyncCommander returns new SyncCommander using provided sender for sending messages.
func NewSyncCommander(sender Sender) SyncCommander {
	return SyncCommander{
		sender: sender,
	}
}

// SendSyncCommand sends sync command with provided dealer storefront URLs.
func (c SyncCommander) SendSyncCommand(ctx context.Context, dealerURLs []string) error {
	cmd := SyncCommand{
		DealerURLs: dealerURLs,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal sync command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
