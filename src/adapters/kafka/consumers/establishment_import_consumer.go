package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"placedir/src/domain"
	"placedir/src/infra/kafka"
	"placedir/src/services/directory"
)

// ImportMessage is the schema of a bulk-import payload: a draft
// establishment without an id. The store assigns ids on insert, same
// as the HTTP create path.
type ImportMessage struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// EstablishmentImportConsumer ingests establishment drafts in batches
// for bulk loading the directory. A malformed message fails the whole
// batch so the broker redelivers it.
type EstablishmentImportConsumer struct {
	logger           *slog.Logger
	directoryService *directory.DirectoryService
}

func NewEstablishmentImportConsumer(
	logger *slog.Logger,
	directoryService *directory.DirectoryService,
) *EstablishmentImportConsumer {
	return &EstablishmentImportConsumer{
		logger:           logger,
		directoryService: directoryService,
	}
}

func (c *EstablishmentImportConsumer) Start(ctx context.Context, kafkaClient *kafka.KafkaClient, topic string) error {
	c.logger.Info("Starting establishment import consumer", "topic", topic)

	handler := func(messages []kafka.Message) error {
		return c.handleMessages(ctx, messages)
	}

	return kafkaClient.Consumer(ctx, handler, topic)
}

func (c *EstablishmentImportConsumer) handleMessages(ctx context.Context, messages []kafka.Message) error {
	if len(messages) == 0 {
		return nil
	}

	c.logger.Info("Processing import batch", "count", len(messages))

	drafts := make([]domain.EstablishmentDraft, 0, len(messages))
	for _, msg := range messages {
		var importMessage ImportMessage
		if err := json.Unmarshal(msg.Value, &importMessage); err != nil {
			c.logger.Error("Failed to unmarshal import message",
				"error", err,
				"key", msg.Key,
				"value", string(msg.Value))
			return fmt.Errorf("failed to unmarshal message with key %s: %w", msg.Key, err)
		}

		drafts = append(drafts, domain.EstablishmentDraft{
			Name:        importMessage.Name,
			Category:    importMessage.Category,
			Rating:      importMessage.Rating,
			Description: importMessage.Description,
			Lat:         importMessage.Lat,
			Lng:         importMessage.Lng,
		})
	}

	for _, draft := range drafts {
		if _, err := c.directoryService.Create(ctx, draft); err != nil {
			c.logger.Error("Failed to insert imported establishment",
				"name", draft.Name,
				"error", err)
			return fmt.Errorf("failed to insert imported establishment %q: %w", draft.Name, err)
		}
	}

	c.logger.Info("Import batch committed", "count", len(drafts))
	return nil
}
