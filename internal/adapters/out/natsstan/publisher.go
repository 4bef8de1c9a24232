// Package natsstan publishes payment events to NATS Streaming. Consumers
// (notification service, accounting export) subscribe to the payment.*
// subjects; this service only publishes.
package natsstan

import (
	"context"
	"encoding/json"

	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/ports"

	stan "github.com/nats-io/stan.go"
)

// Publisher implements ports.PaymentEventPublisher over a NATS Streaming
// connection. Events are JSON-encoded; the subject is the event name.
type Publisher struct {
	sc stan.Conn
}

// Connect dials the NATS Streaming cluster and returns a publisher bound to
// the connection. Close the publisher on shutdown.
func Connect(clusterID, clientID, url string) (*Publisher, error) {
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, err
	}
	return &Publisher{sc: sc}, nil
}

// NewPublisher wraps an existing connection, useful for tests.
func NewPublisher(sc stan.Conn) *Publisher {
	return &Publisher{sc: sc}
}

// completedMessage is the wire form of a completed payment event. Identifiers
// travel as canonical UUID strings and amounts as decimal strings.
type completedMessage struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Amount    string `json:"amount"`
	Method    string `json:"method"`
	Provider  string `json:"provider"`
}

// failedMessage is the wire form of a failed payment event.
type failedMessage struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Reason    string `json:"reason"`
}

// PublishCompleted announces a settled payment on the payment.completed subject.
func (p *Publisher) PublishCompleted(_ context.Context, event payment.CompletedEvent) error {
	return p.publish(payment.EventCompleted, completedMessage{
		PaymentID: event.PaymentID.String(),
		OrderID:   event.OrderID.String(),
		Amount:    event.Amount.String(),
		Method:    event.Method,
		Provider:  event.Provider,
	})
}

// PublishFailed announces a failed attempt on the payment.failed subject.
func (p *Publisher) PublishFailed(_ context.Context, event payment.FailedEvent) error {
	return p.publish(payment.EventFailed, failedMessage{
		PaymentID: event.PaymentID.String(),
		OrderID:   event.OrderID.String(),
		Reason:    event.Reason,
	})
}

func (p *Publisher) publish(subject string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.sc.Publish(subject, data)
}

// Close releases the streaming connection.
func (p *Publisher) Close() error {
	return p.sc.Close()
}

var _ ports.PaymentEventPublisher = (*Publisher)(nil)
