package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dealersync/dealersync/internal/platform/rabbitmq"
	"github.com/dealersync/dealersync/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// Syncer runs one sync pass over dealer storefronts.
type Syncer interface {
	Sync(ctx context.Context, dealers []string) error
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq    *rabbitmq.RabbitMQ
	syncer Syncer
	logger *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, syncer Syncer, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:    rmq,
		syncer: syncer,
		logger: logger,
	}
}

// Start starts consuming and handling sync commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Strs("dealerUrls", cmd.DealerURLs).
			Msg("sync started")

		err = h.syncer.Sync(ctx, cmd.DealerURLs)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		h.logger.Debug().
			Strs("dealerUrls", cmd.DealerURLs).
			Msg("sync finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeMessage(msg []byte) (*commander.SyncCommand, error) {
	var cmd commander.SyncCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode sync command: %w", err)
	}

	return &cmd, err
}
