package kafka

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

type KafkaClient struct {
	consumer  sarama.ConsumerGroup
	brokers   []string
	batchSize int
}

type Message struct {
	Key      string
	Value    []byte
	internal *sarama.ConsumerMessage
}

// Handler processes one batch. An error leaves the whole batch
// unmarked so the broker redelivers it.
type Handler func(messages []Message) error

func NewKafkaClient(brokers string, groupID string, batchSize int) (*KafkaClient, error) {
	brokerList := strings.Split(brokers, ",")

	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0

	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Group.Session.Timeout = 30 * time.Second
	config.Consumer.Group.Heartbeat.Interval = 10 * time.Second
	config.Consumer.MaxProcessingTime = 60 * time.Second
	config.Consumer.Fetch.Default = 4 * 1024 * 1024
	config.Consumer.MaxWaitTime = 100 * time.Millisecond
	config.ChannelBufferSize = batchSize * 2

	consumer, err := sarama.NewConsumerGroup(brokerList, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	log.Printf("Kafka client initialized with batch size: %d", batchSize)

	return &KafkaClient{
		consumer:  consumer,
		brokers:   brokerList,
		batchSize: batchSize,
	}, nil
}

func (k *KafkaClient) Consumer(ctx context.Context, handler Handler, topic string) error {
	consumerHandler := &consumerGroupHandler{
		handler:   handler,
		batchSize: k.batchSize,
	}

	for {
		select {
		case <-ctx.Done():
			log.Println("Kafka consumer context cancelled")
			return nil
		default:
			if err := k.consumer.Consume(ctx, []string{topic}, consumerHandler); err != nil {
				log.Printf("Error consuming from topic %s: %v", topic, err)
				time.Sleep(5 * time.Second) // Retry delay
				continue
			}
		}
	}
}

func (k *KafkaClient) Close() error {
	return k.consumer.Close()
}

// consumerGroupHandler implements sarama.ConsumerGroupHandler.
type consumerGroupHandler struct {
	handler   Handler
	batchSize int
}

func (h *consumerGroupHandler) Setup(session sarama.ConsumerGroupSession) error {
	log.Printf("Kafka consumer group session setup - batch size: %d", h.batchSize)
	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Println("Kafka consumer group session cleanup")
	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	batchSize := h.batchSize
	batchTimeout := 2 * time.Second

	log.Printf("Starting consumer for partition %d (batch: %d, timeout: %v)",
		claim.Partition(), batchSize, batchTimeout)

	messages := make([]Message, 0, batchSize)
	timer := time.NewTimer(batchTimeout)
	defer timer.Stop()

	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				// Channel closed, flush what we have
				if len(messages) > 0 {
					h.processBatch(session, messages)
				}
				return nil
			}

			messages = append(messages, Message{
				Key:      string(message.Key),
				Value:    message.Value,
				internal: message,
			})

			if len(messages) >= batchSize {
				h.processBatch(session, messages)
				messages = messages[:0]
				timer.Reset(batchTimeout)
			}

		case <-timer.C:
			if len(messages) > 0 {
				h.processBatch(session, messages)
				messages = messages[:0]
			}
			timer.Reset(batchTimeout)

		case <-session.Context().Done():
			if len(messages) > 0 {
				h.processBatch(session, messages)
			}
			return nil
		}
	}
}

func (h *consumerGroupHandler) processBatch(session sarama.ConsumerGroupSession, messages []Message) {
	if len(messages) == 0 {
		return
	}

	err := h.handler(messages)
	if err != nil {
		log.Printf("Handler error for batch: %v", err)
		// Don't mark messages - they will be redelivered
		return
	}

	for _, msg := range messages {
		if msg.internal != nil {
			session.MarkMessage(msg.internal, "")
		}
	}
}
