package pkg

import (
	"context"
	"strconv"

	"github.com/segmentio/kafka-go"
)

// 举报审核事件的默认主题
const DefaultModerationTopic = "moderation.report"

// ModerationEvent 投给审核端的举报事件。
// Payload 是 outbox 落库时生成的 JSON 原文，事件种类放在消息头里。
type ModerationEvent struct {
	ReportID uint64
	Kind     string // report / cancel
	Payload  []byte
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// ModerationProducer key 用举报 id，同一条举报的事件落在同一分区按序消费
type ModerationProducer struct {
	writer *kafka.Writer
}

func NewModerationProducer(cfg KafkaConfig) *ModerationProducer {
	topic := cfg.Topic
	if topic == "" {
		topic = DefaultModerationTopic
	}
	return &ModerationProducer{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}}
}

func (p *ModerationProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *ModerationProducer) Publish(ctx context.Context, ev ModerationEvent) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:     strconv.AppendUint(nil, ev.ReportID, 10),
		Value:   ev.Payload,
		Headers: []kafka.Header{{Key: "event", Value: []byte(ev.Kind)}},
	})
}
