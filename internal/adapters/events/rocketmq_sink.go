package events

import (
	"context"
	"fmt"
	"strings"
	"sync"

	rocketmq "github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsevents "github.com/agarrido2001/XaveMarket/internal/core/ports/events"
)

// RocketMQConfig configures the RocketMQ publisher.
type RocketMQConfig struct {
	NameServers []string
	Topic       string
	Group       string
}

// messageSender is the part of rocketmq.Producer the sink uses.
type messageSender interface {
	SendSync(ctx context.Context, mq ...*primitive.Message) (*primitive.SendResult, error)
	Shutdown() error
}

// RocketMQSink publishes every notification to one topic, tagged with the
// event name.
type RocketMQSink struct {
	topic string
	mu    sync.Mutex
	prod  messageSender
}

var _ portsevents.Sink = (*RocketMQSink)(nil)

// NewRocketMQSink creates and starts a producer.
func NewRocketMQSink(cfg RocketMQConfig) (*RocketMQSink, error) {
	if len(cfg.NameServers) == 0 {
		return nil, fmt.Errorf("no rocketmq name servers configured")
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		return nil, fmt.Errorf("rocketmq topic required")
	}
	opts := []producer.Option{
		producer.WithNameServer(cfg.NameServers),
		producer.WithRetry(2),
	}
	if cfg.Group != "" {
		opts = append(opts, producer.WithGroupName(cfg.Group))
	}
	prod, err := rocketmq.NewProducer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create rocketmq producer: %w", err)
	}
	if err := prod.Start(); err != nil {
		return nil, fmt.Errorf("start rocketmq producer: %w", err)
	}
	return newRocketMQSink(cfg.Topic, prod), nil
}

func newRocketMQSink(topic string, prod messageSender) *RocketMQSink {
	return &RocketMQSink{topic: topic, prod: prod}
}

// Close shuts the producer down. Later publishes fail.
func (s *RocketMQSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prod == nil {
		return nil
	}
	err := s.prod.Shutdown()
	s.prod = nil
	return err
}

func (s *RocketMQSink) send(ctx context.Context, env Envelope, collection domain.Address) error {
	body, err := encode(env)
	if err != nil {
		return err
	}
	s.mu.Lock()
	prod := s.prod
	s.mu.Unlock()
	if prod == nil {
		return fmt.Errorf("rocketmq producer not ready")
	}

	msg := &primitive.Message{Topic: s.topic, Body: body}
	msg.WithTag(env.Event)
	msg.WithKeys([]string{collection.String()})
	msg.WithProperty("event", env.Event)
	msg.WithProperty("collection", collection.String())

	if _, err := prod.SendSync(ctx, msg); err != nil {
		return fmt.Errorf("rocketmq send: %w", err)
	}
	return nil
}

func (s *RocketMQSink) ListingChanged(ctx context.Context, ev domain.ListingChanged) error {
	return s.send(ctx, listingEnvelope(ev), ev.Collection)
}

func (s *RocketMQSink) Purchased(ctx context.Context, ev domain.Purchased) error {
	return s.send(ctx, purchaseEnvelope(ev), ev.Collection)
}
