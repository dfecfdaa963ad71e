package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventType names what happened to the papers table.
type EventType string

const (
	EventSeeded  EventType = "papers.seeded"
	EventCleared EventType = "papers.cleared"
	EventDropped EventType = "papers.dropped"
)

// SeedEvent is the payload placed on the papers topic.
type SeedEvent struct {
	Type        EventType `json:"type"`
	Database    string    `json:"database"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	Count       int       `json:"count"`
	PaperIDs    []string  `json:"paper_ids,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Writer is the subset of *kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewMessage encodes ev. Events for the same database share a key so they
// land on one partition in order.
func NewMessage(ev SeedEvent) (kafka.Message, error) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal %s event: %w", ev.Type, err)
	}
	return kafka.Message{
		Key:   []byte(ev.Database),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(ev.Type)},
		},
		Time: ev.OccurredAt,
	}, nil
}

func PublishSeedEvent(ctx context.Context, writer Writer, ev SeedEvent) error {
	if writer == nil {
		return nil
	}
	msg, err := NewMessage(ev)
	if err != nil {
		return err
	}
	return writer.WriteMessages(ctx, msg)
}
