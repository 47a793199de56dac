package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peertrade/escrow-service/internal/domain"
)

type capturedPublish struct {
	topic string
	msgs  []domain.Message
}

type fakeTransport struct {
	published []capturedPublish
	err       error
}

func (f *fakeTransport) Publish(topic string, msgs ...domain.Message) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, capturedPublish{topic: topic, msgs: msgs})
	return nil
}

func TestPublishEscrow_UsesBoundTopicAndEscrowKey(t *testing.T) {
	transport := &fakeTransport{}
	publisher := NewKafkaPublisher(transport, "escrow-events")

	event := EscrowEvent{
		EventType: EventEscrowFunded,
		EscrowID:  "esc-1",
		OrderID:   "order-1",
		SellerID:  "seller-1",
		State:     "FUNDED",
		Amount:    150,
		Currency:  "USD",
	}
	require.NoError(t, publisher.PublishEscrow(event))

	require.Len(t, transport.published, 1)
	publish := transport.published[0]
	assert.Equal(t, "escrow-events", publish.topic)
	require.Len(t, publish.msgs, 1)
	assert.Equal(t, []byte("esc-1"), publish.msgs[0].Key)

	var decoded EscrowEvent
	require.NoError(t, json.Unmarshal(publish.msgs[0].Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestPublishReviewAndTrust_KeyBySeller(t *testing.T) {
	transport := &fakeTransport{}
	reviews := NewKafkaPublisher(transport, "review-events")
	trust := NewKafkaPublisher(transport, "trust-events")

	require.NoError(t, reviews.PublishReview(ReviewEvent{
		EventType: EventReviewAdded,
		ReviewID:  "rev-1",
		SellerID:  "seller-1",
		Rating:    5,
	}))
	require.NoError(t, trust.PublishTrust(TrustEvent{
		EventType: EventTrustScoreUpdated,
		SellerID:  "seller-1",
		Value:     0.85,
	}))

	require.Len(t, transport.published, 2)
	assert.Equal(t, "review-events", transport.published[0].topic)
	assert.Equal(t, "trust-events", transport.published[1].topic)
	for _, publish := range transport.published {
		assert.Equal(t, []byte("seller-1"), publish.msgs[0].Key)
	}
}

func TestTypedPublishersShareOneTransport(t *testing.T) {
	transport := &fakeTransport{}
	escrows := NewKafkaPublisher(transport, "escrow-events")
	reviews := NewKafkaPublisher(transport, "review-events")

	require.NoError(t, escrows.PublishEscrow(EscrowEvent{EscrowID: "esc-1"}))
	require.NoError(t, reviews.PublishReview(ReviewEvent{SellerID: "seller-1"}))

	assert.Len(t, transport.published, 2, "both topics ride the same writer")
}

func TestPublishEscrow_TransportErrorPropagates(t *testing.T) {
	transport := &fakeTransport{err: assert.AnError}
	publisher := NewKafkaPublisher(transport, "escrow-events")

	assert.Error(t, publisher.PublishEscrow(EscrowEvent{EscrowID: "esc-1"}))
}
