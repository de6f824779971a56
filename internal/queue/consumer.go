// Package queue also contains the background consumer that listens to
// the reservation.confirmed and order.placed queues and appends
// human-friendly lines to logs/activity.log.
package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartActivityConsumer connects to RabbitMQ, declares both activity
// queues (durable) and starts consuming. Each message is appended to
// logs/activity.log as a single line. The function runs a reconnect
// loop with exponential backoff and never returns under normal
// operation; failed messages are rejected without requeue so a bad
// payload cannot wedge the queue.
func StartActivityConsumer(brokerURL string) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL)
		if err != nil {
			log.Printf("activity-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeAll(conn); err != nil {
			log.Printf("activity-consumer: consume loop ended: %v; reconnecting", err)
			_ = conn.Close()
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

// consumeAll runs one consume loop per queue on a shared connection
// and returns when either loop dies, forcing a full reconnect.
func consumeAll(conn *amqp.Connection) error {
	var wg sync.WaitGroup
	errCh := make(chan error, 2)
	for _, name := range []string{ReservationConfirmedQueue, OrderPlacedQueue} {
		wg.Add(1)
		go func(queueName string) {
			defer wg.Done()
			errCh <- consumeLoop(conn, queueName)
		}(name)
	}
	err := <-errCh
	_ = conn.Close() // tears down the sibling loop too
	wg.Wait()
	return err
}

func consumeLoop(conn *amqp.Connection, queueName string) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("activity-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(queueName, d.Body); err != nil {
			log.Printf("activity-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(queueName string, body []byte) error {
	var line string
	switch queueName {
	case ReservationConfirmedQueue:
		var ev ReservationConfirmedEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("unmarshal: %w", err)
		}
		line = fmt.Sprintf("[%s] Reservation confirmed | reservation_id=%d | user_id=%d | date=%s | status=%s\n",
			ev.CreatedAt, ev.ReservationID, ev.UserID, ev.Date, ev.Status)
	case OrderPlacedQueue:
		var ev OrderPlacedEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("unmarshal: %w", err)
		}
		line = fmt.Sprintf("[%s] Order placed | order_id=%d | user_id=%d | item_id=%d | item=%q | quantity=%d | checked=%t\n",
			ev.PlacedAt, ev.OrderID, ev.UserID, ev.ItemID, ev.ItemName, ev.Quantity, ev.Checked)
	default:
		return fmt.Errorf("unknown queue %q", queueName)
	}

	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "activity.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
