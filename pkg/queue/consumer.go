package queue

import (
	"time"

	"moviehub/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes one message body. A best-effort single attempt: the
// message is acked whether or not the handler succeeds, and failures are
// only logged.
type Handler func(body []byte) error

// StartConsumer connects to RabbitMQ, declares the queue (durable), and
// consumes messages until the process exits. It runs a reconnect loop with
// exponential backoff so a broker restart does not kill the worker.
func StartConsumer(url, queueName string, handler Handler) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			logger.Errorf(err, "consumer %s: failed to dial broker, retrying in %s", queueName, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		err = consumeLoop(conn, queueName, handler)
		_ = conn.Close()
		if err != nil {
			logger.Errorf(err, "consumer %s: consume loop ended, reconnecting", queueName)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, queueName string, handler Handler) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	err = ch.Qos(10, 0, false)
	if err != nil {
		logger.Errorf(err, "consumer %s: set QoS failed", queueName)
	}

	_, err = ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for d := range msgs {
		err = handler(d.Body)
		if err != nil {
			logger.Errorf(err, "consumer %s: handle message failed", queueName)
		}
		// no retry contract: ack regardless
		_ = d.Ack(false)
	}

	return nil
}
