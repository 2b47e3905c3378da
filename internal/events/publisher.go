// Package events publishes roster change notifications to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"example.com/activities/internal/domain"
)

// rosterChangedPayload is the wire shape of a roster change event.
type rosterChangedPayload struct {
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	Action     string    `json:"action"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaPublisher writes roster change events to a single topic, keyed by
// activity name so changes to one roster stay ordered within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
	}
}

// RosterChanged implements domain.RosterPublisher.
func (p *KafkaPublisher) RosterChanged(ctx context.Context, change domain.RosterChange) error {
	value, err := json.Marshal(rosterChangedPayload{
		Activity:   change.Activity,
		Email:      change.Email,
		Action:     string(change.Action),
		RosterSize: change.RosterSize,
		OccurredAt: change.OccurredAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(change.Activity),
		Value: value,
		Time:  change.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("roster." + string(change.Action))},
		},
	})
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

// RosterChanged implements domain.RosterPublisher.
func (NopPublisher) RosterChanged(context.Context, domain.RosterChange) error {
	return nil
}
