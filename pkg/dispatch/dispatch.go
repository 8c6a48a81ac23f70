package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/QuangTung97/promo-engagement/config"
	"github.com/QuangTung97/promo-engagement/pkg/otellib"
	"github.com/QuangTung97/promo-engagement/service/engagement"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Payload is the JSON body published for each composed notification
type Payload struct {
	MessageID    string    `json:"message_id"`
	UserID       int64     `json:"user_id"`
	AssignmentID int64     `json:"assignment_id"`
	CampaignID   int64     `json:"campaign_id"`
	StepSeq      int       `json:"step_seq"`
	CardType     string    `json:"card_type"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Push         bool      `json:"push"`
	Calendar     bool      `json:"calendar"`
	MultiSelect  bool      `json:"multi_select,omitempty"`
	Choices      []Choice  `json:"choices,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Choice ...
type Choice struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// NewPayload converts a message to its wire form
func NewPayload(msg engagement.Message) Payload {
	var choices []Choice
	for _, c := range msg.Choices {
		choices = append(choices, Choice{Key: c.Key, Label: c.Label})
	}

	return Payload{
		MessageID:    messageID(msg),
		UserID:       msg.UserID,
		AssignmentID: msg.AssignmentID,
		CampaignID:   msg.CampaignID,
		StepSeq:      msg.StepSeq,
		CardType:     msg.CardType.String(),
		Title:        msg.Title,
		Body:         msg.Body,
		Push:         msg.Push,
		Calendar:     msg.Calendar,
		MultiSelect:  msg.MultiSelect,
		Choices:      choices,
		ExpiresAt:    msg.ExpiresAt.UTC(),
	}
}

// messageID is stable for one delivery of a step, consumers deduplicate on it
func messageID(msg engagement.Message) string {
	return fmt.Sprintf("%d-%d-%d", msg.AssignmentID, msg.StepSeq, msg.ExpiresAt.Unix())
}

type publishChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type dialFunc func() (publishChannel, func() error, error)

// Publisher implements engagement.Dispatcher on top of an AMQP queue
type Publisher struct {
	conf config.AMQPConfig
	dial dialFunc

	mut       sync.Mutex
	ch        publishChannel
	closeConn func() error
}

var _ engagement.Dispatcher = &Publisher{}

// NewPublisher creates a publisher, the connection is opened lazily on first Send
func NewPublisher(conf config.AMQPConfig) *Publisher {
	return newPublisher(conf, func() (publishChannel, func() error, error) {
		return dialAMQP(conf)
	})
}

func newPublisher(conf config.AMQPConfig, dial dialFunc) *Publisher {
	return &Publisher{
		conf: conf,
		dial: dial,
	}
}

func dialAMQP(conf config.AMQPConfig) (publishChannel, func() error, error) {
	conn, err := amqp.Dial(conf.URL)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	_, err = ch.QueueDeclare(
		conf.Queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}

	if conf.Exchange != "" {
		err = ch.QueueBind(conf.Queue, conf.RoutingKeyOrQueue(), conf.Exchange, false, nil)
		if err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, nil, err
		}
	}

	return ch, conn.Close, nil
}

func (p *Publisher) channel() (publishChannel, error) {
	if p.ch != nil {
		return p.ch, nil
	}

	ch, closeConn, err := p.dial()
	if err != nil {
		return nil, err
	}
	p.ch = ch
	p.closeConn = closeConn
	return ch, nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.closeConn != nil {
		_ = p.closeConn()
	}
	p.ch = nil
	p.closeConn = nil
}

// Send publishes a persistent JSON message to the notification queue
func (p *Publisher) Send(ctx context.Context, msg engagement.Message) error {
	body, err := json.Marshal(NewPayload(msg))
	if err != nil {
		return err
	}

	p.mut.Lock()
	defer p.mut.Unlock()

	ch, err := p.channel()
	if err != nil {
		return fmt.Errorf("amqp connect: %w", err)
	}

	err = ch.Publish(
		p.conf.Exchange,
		p.conf.RoutingKeyOrQueue(),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID(msg),
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		otellib.Extract(ctx).Warn("Publish notification failed, reconnect on next send",
			zap.Int64("assignmentID", msg.AssignmentID), zap.Error(err))
		p.reset()
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

// Close ...
func (p *Publisher) Close() {
	p.mut.Lock()
	defer p.mut.Unlock()
	p.reset()
}
