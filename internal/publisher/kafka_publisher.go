package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/hudumapay/settlement-service/config"
	"github.com/hudumapay/settlement-service/internal/models"
	"github.com/sirupsen/logrus"

	kafka "github.com/segmentio/kafka-go"
)

// messageWriter is the slice of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher writes events for the notifier and the anomaly review queue.
// Delivery is retried with exponential backoff; a message that exhausts its
// retries is spilled to the DLQ topic before the error is surfaced.
type KafkaPublisher struct {
	Writers     map[string]messageWriter
	DLQTopic    string
	RetryConfig config.RetryConfig
}

func NewKafkaPublisher(kafkaURL string, topics []string, dlqTopic string, retryConfig config.RetryConfig) *KafkaPublisher {
	writers := make(map[string]messageWriter)
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}
	if dlqTopic == "" {
		dlqTopic = models.PaymentsDLQTopic
	}

	for _, t := range topics {
		writers[t] = &kafka.Writer{
			Addr:     kafka.TCP(kafkaURL),
			Topic:    t,
			Balancer: &kafka.LeastBytes{},
		}
	}

	return &KafkaPublisher{
		Writers:     writers,
		DLQTopic:    dlqTopic,
		RetryConfig: retryConfig,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := kafka.Message{
		Value: data,
	}

	if err := p.publishWithRetry(ctx, writer, msg, topic); err != nil {
		if topic != p.DLQTopic {
			p.sendToDLQ(ctx, topic, data)
		}
		return err
	}
	return nil
}

func (p *KafkaPublisher) publishWithRetry(ctx context.Context, writer messageWriter, msg kafka.Message, topic string) error {
	var lastErr error

	for attempt := 0; attempt < p.RetryConfig.MaxAttempts; attempt++ {
		err := writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				logrus.Infof("message published to topic '%s' after %d attempts", topic, attempt+1)
			}
			return nil
		}

		lastErr = err

		if attempt == p.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := p.calculateBackoff(attempt)

		logrus.Warnf("publish retry %d/%d for topic '%s' after %v: %v",
			attempt+1, p.RetryConfig.MaxAttempts, topic, delay, err)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
		topic, p.RetryConfig.MaxAttempts, lastErr)
}

// sendToDLQ parks a message that exhausted its retries so it can be replayed
// once the broker recovers. The spill itself is a single write; if it also
// fails the message is lost and logged as such.
func (p *KafkaPublisher) sendToDLQ(ctx context.Context, originalTopic string, payload []byte) {
	writer, ok := p.Writers[p.DLQTopic]
	if !ok {
		logrus.Errorf("no DLQ writer configured, message lost: topic=%s", originalTopic)
		return
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: originalTopic,
		Value:         string(payload),
		Timestamp:     time.Now().UTC(),
		Attempts:      p.RetryConfig.MaxAttempts,
	}
	data, err := json.Marshal(dlqMessage)
	if err != nil {
		logrus.Errorf("error marshaling DLQ message for topic %s: %v", originalTopic, err)
		return
	}

	if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
		logrus.Errorf("failed to send message to DLQ, message lost: topic=%s: %v", originalTopic, err)
		return
	}
	logrus.Warnf("message sent to DLQ: original topic=%s", originalTopic)
}

func (p *KafkaPublisher) calculateBackoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * p.RetryConfig.BaseDelay

	if delay > p.RetryConfig.MaxDelay {
		delay = p.RetryConfig.MaxDelay
	}

	if p.RetryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
