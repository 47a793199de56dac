package domain

import "context"

// PaymentGateway executes the actual fund movement. Both calls are fallible,
// retryable and idempotent by reference id; they are the only operations of
// the core expected to block on external I/O.
type PaymentGateway interface {
	Capture(ctx context.Context, amount float64, currency, paymentMethod string) (gatewayPaymentID string, err error)
	Refund(ctx context.Context, gatewayPaymentID string, amount float64) error
}

// VerificationProvider is the external KYC signal.
type VerificationProvider interface {
	IsVerified(ctx context.Context, sellerID string) (bool, error)
}

// ResponseTimeProvider supplies the seller response-time signal, already
// normalized to [0,1].
type ResponseTimeProvider interface {
	AverageResponseScore(ctx context.Context, sellerID string) (float64, error)
}

type Message struct {
	Key 	[]byte
	Value 	[]byte
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}
