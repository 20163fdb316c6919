package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lshigami/assessflow/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const AttemptRecordedKey = "attempt.recorded"

// AttemptRecorded is published after a submission is stored.
type AttemptRecorded struct {
	SubmissionID  uint      `json:"submissionId"`
	AssessmentID  uint      `json:"assessmentId"`
	StudentID     string    `json:"studentId"`
	AttemptNumber int       `json:"attemptNumber"`
	Marks         int       `json:"marks"`
	MaxMarks      int       `json:"maxMarks"`
	Weight        float64   `json:"weight"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

type Publisher interface {
	PublishAttemptRecorded(ctx context.Context, event AttemptRecorded) error
	Close() error
}

// NewPublisher dials RabbitMQ and declares the topic exchange. With no
// RABBITMQ_URL configured events are dropped.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	if cfg.RabbitMQ.URL == "" {
		log.Info().Msg("RABBITMQ_URL not set, attempt events disabled")
		return Noop{}, nil
	}
	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		cfg.RabbitMQ.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.RabbitMQ.Exchange, err)
	}
	log.Info().Str("exchange", cfg.RabbitMQ.Exchange).Msg("Connected to RabbitMQ")
	return &amqpPublisher{conn: conn, channel: ch, exchange: cfg.RabbitMQ.Exchange}, nil
}

type amqpPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func (p *amqpPublisher) PublishAttemptRecorded(ctx context.Context, event AttemptRecorded) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return p.channel.PublishWithContext(ctx, p.exchange, AttemptRecordedKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.SubmittedAt,
		Body:         body,
	})
}

func (p *amqpPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close RabbitMQ channel")
	}
	return p.conn.Close()
}

type Noop struct{}

func (Noop) PublishAttemptRecorded(context.Context, AttemptRecorded) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
