// Package events публикация событий заказов и пополнений в kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher пишет события в два топика: заказы и пополнения. Ключ сообщения - id пользователя,
// поэтому события одного пользователя попадают в одну партицию по порядку.
type KafkaPublisher struct {
	writer     messageWriter
	orderTopic string
	topupTopic string
}

type KafkaPublisherArgs struct {
	Brokers    []string
	OrderTopic string
	TopupTopic string
	// WriteTimeout по умолчанию 10s.
	WriteTimeout time.Duration
}

func NewKafkaPublisher(args KafkaPublisherArgs) *KafkaPublisher {
	timeout := args.WriteTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(args.Brokers...),
			Balancer:     &kafka.Hash{},
			WriteTimeout: timeout,
			RequiredAcks: kafka.RequireOne,
		},
		orderTopic: args.OrderTopic,
		topupTopic: args.TopupTopic,
	}
}

func (k *KafkaPublisher) PublishOrderEvent(ctx context.Context, ev domain.OrderEvent) error {
	return k.publish(ctx, k.orderTopic, ev.UserID, ev)
}

func (k *KafkaPublisher) PublishTopupEvent(ctx context.Context, ev domain.TopupEvent) error {
	return k.publish(ctx, k.topupTopic, ev.UserID, ev)
}

func (k *KafkaPublisher) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}

func (k *KafkaPublisher) publish(ctx context.Context, topic string, userID int64, event any) error {
	v, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for topic %s: %w", topic, err)
	}
	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(strconv.FormatInt(userID, 10)),
		Value: v,
		Time:  time.Now(),
	}); err != nil {
		return fmt.Errorf("write message to topic %s: %w", topic, err)
	}
	return nil
}
