package publisher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	sharedkafka "github.com/radieske/sports-ledger/internal/shared/kafka"
	"github.com/radieske/sports-ledger/pkg/contracts/events"
)

// KafkaPublisher publica eventos bet_classified
type KafkaPublisher struct {
	writer sharedkafka.MessageWriter
	log    *zap.Logger
}

func NewKafkaPublisher(w sharedkafka.MessageWriter, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, log: log}
}

// Publish serializa o evento e usa o BetID como chave, mantendo as
// classificações de uma aposta na mesma partição.
func (p *KafkaPublisher) Publish(ctx context.Context, e events.BetClassified) error {
	if err := sharedkafka.WriteJSON(ctx, p.writer, e.BetID, e); err != nil {
		p.log.Error("failed to publish bet classified", zap.String("bet_id", e.BetID), zap.Error(err))
		return err
	}
	p.log.Debug("published bet classified",
		zap.String("bet_id", e.BetID),
		zap.String("sport", e.Sport),
		zap.String("source", e.Source),
	)
	return nil
}

// DLQ reenvia a mensagem original com o motivo da falha no header "error"
type DLQ struct {
	writer sharedkafka.MessageWriter
}

func NewDLQ(w sharedkafka.MessageWriter) *DLQ { return &DLQ{writer: w} }

func (d *DLQ) Send(ctx context.Context, original kafka.Message, reason string) error {
	msg := kafka.Message{
		Key:   original.Key,
		Value: original.Value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "error", Value: []byte(reason)},
			{Key: "source_topic", Value: []byte(original.Topic)},
		},
	}
	if err := d.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write dlq: %w", err)
	}
	return nil
}

// EnsureTopics cria os tópicos via controller do cluster; tópicos já
// existentes não são erro. Usado apenas em ambientes local/dev.
func EnsureTopics(ctx context.Context, broker string, log *zap.Logger, topics ...string) error {
	conn, err := kafka.DialContext(ctx, "tcp", broker)
	if err != nil {
		return fmt.Errorf("dial kafka: %w", err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("kafka controller: %w", err)
	}

	controllerAddr := fmt.Sprintf("%s:%d", controller.Host, controller.Port)
	cconn, err := kafka.DialContext(ctx, "tcp", controllerAddr)
	if err != nil {
		return fmt.Errorf("dial controller: %w", err)
	}
	defer cconn.Close()

	// particionamento e replicação compatíveis com single-broker
	for _, topic := range topics {
		if topic == "" {
			continue
		}
		cfg := kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}
		if err := cconn.CreateTopics(cfg); err != nil && !strings.Contains(err.Error(), "already exists") {
			log.Warn("failed to create kafka topic", zap.String("topic", topic), zap.Error(err))
		} else if err == nil {
			log.Info("kafka topic ready", zap.String("topic", topic))
		}
	}
	return nil
}

var _ sharedkafka.MessageWriter = (*kafka.Writer)(nil)
