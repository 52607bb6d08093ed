// Package queue_publisher publishes domain events to RabbitMQ.  Errors are
// logged and returned so callers can ignore failures without interrupting
// the request flow: a dead broker must never lose a reservation, only its
// email.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/maisonlila/restaurant-booking/internal/model"
	"github.com/maisonlila/restaurant-booking/internal/queue"
)

// publish serializes the event and delivers it to the named durable queue
// on the default exchange.  A fresh connection per publish keeps the
// publisher stateless and trivially safe for concurrent use; the volumes
// here (a few messages a minute at peak) do not justify pooling.
func publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(queue.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish to %s failed: %v", queueName, err)
		return err
	}
	return nil
}

// PublishReservationCancelled announces a staff cancellation.
func PublishReservationCancelled(ctx context.Context, res *model.Reservation) error {
	return publish(ctx, queue.ReservationCancelledQueue, queue.NewReservationCancelledEvent(res))
}

// PublishContactReceived announces a stored contact-form message.
func PublishContactReceived(ctx context.Context, ev queue.ContactReceivedEvent) error {
	return publish(ctx, queue.ContactReceivedQueue, ev)
}

// EventNotifier adapts the publisher to the booking workflow's Notifier
// interface.
type EventNotifier struct{}

// ReservationCreated publishes the reservation-created event.  The workflow
// swallows any error after logging; the booking stands either way.
func (EventNotifier) ReservationCreated(ctx context.Context, res *model.Reservation) error {
	return publish(ctx, queue.ReservationCreatedQueue, queue.NewReservationCreatedEvent(res))
}
