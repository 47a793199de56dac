package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/peertrade/escrow-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

// DefaultKafkaPublisher is the shared transport: one writer, topic chosen per
// message. The topic-bound publishers below all delegate to it.
type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	batch := make([]kafka.Message, 0, len(msgs))
	for _, msg := range msgs {
		batch = append(batch, kafka.Message{
			Topic: topic,
			Key:   msg.Key,
			Value: msg.Value,
			Time:  time.Now(),
		})
	}

	return p.writer.WriteMessages(context.Background(), batch...)
}

// KafkaPublisher binds one event topic over the shared transport. Keys are
// chosen so that events for the same aggregate land in one partition, in
// order.
type KafkaPublisher struct {
	transport domain.PublisherPort
	topic     string
}

func NewKafkaPublisher(transport domain.PublisherPort, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		transport: transport,
		topic:     topic,
	}
}

func (k *KafkaPublisher) PublishEscrow(event EscrowEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.transport.Publish(k.topic, domain.Message{Key: []byte(event.EscrowID), Value: v})
}

func (k *KafkaPublisher) PublishReview(event ReviewEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.transport.Publish(k.topic, domain.Message{Key: []byte(event.SellerID), Value: v})
}

func (k *KafkaPublisher) PublishTrust(event TrustEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.transport.Publish(k.topic, domain.Message{Key: []byte(event.SellerID), Value: v})
}
