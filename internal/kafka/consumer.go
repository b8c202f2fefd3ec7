package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads signup events until the context is canceled or the handler
// fails. Messages that do not decode are logged and skipped so a single bad
// payload cannot wedge the consumer group.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, SignupEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := decodeSignupEvent(msg.Value)
		if err != nil {
			log.Printf("skipping message at offset %d: %v", msg.Offset, err)
			continue
		}

		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func decodeSignupEvent(data []byte) (SignupEvent, error) {
	var event SignupEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return SignupEvent{}, fmt.Errorf("failed to decode signup event: %w", err)
	}
	return event, nil
}
