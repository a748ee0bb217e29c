package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"reziro/config"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	headerEventType = "event-type"

	eventSyncReport = "sync-report"
	writeTimeout    = 10 * time.Second
)

// Event is one keyed JSON record. Events sharing a key land on the same
// partition, so per-account order is kept.
type Event struct {
	Topic string
	Key   string
	Type  string
	Value any
}

func (e Event) encode(at time.Time) (kafkaGo.Message, error) {
	payload, err := json.Marshal(e.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode %s event: %w", e.Type, err)
	}

	return kafkaGo.Message{
		Topic: e.Topic,
		Key:   []byte(e.Key),
		Value: payload,
		Time:  at,
		Headers: []kafkaGo.Header{
			{Key: headerEventType, Value: []byte(e.Type)},
		},
	}, nil
}

type Client interface {
	Produce(ctx context.Context, events ...Event) (err error)
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
}

// New builds one long-lived writer; the topic travels with each event.
func New(cfg *config.Config) Client {
	writer := &kafkaGo.Writer{
		Addr:     kafkaGo.TCP(cfg.Kafka.Brokers...),
		Balancer: &kafkaGo.Hash{},
		Transport: &kafkaGo.Transport{
			SASL: plain.Mechanism{
				Username: cfg.Kafka.SASL.Username,
				Password: cfg.Kafka.SASL.Password,
			},
		},
		RequiredAcks:           kafkaGo.RequireOne,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka writer ready")

	return &kafkaClientImpl{writer: writer}
}

func (k *kafkaClientImpl) Produce(ctx context.Context, events ...Event) (err error) {
	now := time.Now()
	msgs := make([]kafkaGo.Message, 0, len(events))

	for _, event := range events {
		msg, err := event.encode(now)
		if err != nil {
			log.Error().Err(err).Str("topic", event.Topic).Msg("kafka: dropping unencodable event")

			return err
		}

		msgs = append(msgs, msg)
	}

	if err = k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Int("events", len(msgs)).Msg("kafka: write failed")

		return fmt.Errorf("failed to write kafka events: %w", err)
	}

	log.Debug().Int("events", len(msgs)).Msg("kafka: events written")

	return nil
}

// Publisher sends keyed sync reports to one topic.
type Publisher struct {
	client Client
	topic  string
}

// NewSyncReportPublisher returns nil when Kafka is disabled; callers treat a
// nil publisher as "log only".
func NewSyncReportPublisher(cfg *config.Config, client Client) *Publisher {
	if !cfg.Kafka.Enabled || client == nil {
		return nil
	}

	return &Publisher{client: client, topic: cfg.Kafka.SyncReportTopic}
}

func (p *Publisher) Publish(ctx context.Context, key string, value any) error {
	return p.client.Produce(ctx, Event{
		Topic: p.topic,
		Key:   key,
		Type:  eventSyncReport,
		Value: value,
	})
}
