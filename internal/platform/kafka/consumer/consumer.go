package consumer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Message represents a received Kafka message.
type Message struct {
	Topic     string
	Partition int32
	Offset    int64
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
	// Attempt counts deliveries of this record within the current session,
	// starting at 1.
	Attempt int
}

// Handler processes consumed messages.
type Handler interface {
	// Handle processes a message. Return error to skip commit (message will be redelivered).
	Handle(ctx context.Context, msg *Message) error
}

// DeadLetterProducer publishes records that exhausted their delivery attempts.
type DeadLetterProducer interface {
	Produce(ctx context.Context, topic string, key, value []byte) error
}

// Consumer wraps the franz-go client with manual commits for at-least-once delivery.
type Consumer struct {
	client  *kgo.Client
	handler Handler
	logger  *slog.Logger

	maxAttempts int
	deadLetter  DeadLetterProducer
	attempts    map[recordID]int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

type recordID struct {
	topic     string
	partition int32
	offset    int64
}

// Config holds consumer configuration.
type Config struct {
	Brokers string
	GroupID string
	Topics  []string
	// MaxDeliveryAttempts caps redeliveries before a record is routed to the
	// dead-letter topic. Zero disables the dead-letter path entirely.
	MaxDeliveryAttempts int
}

// Option configures the Consumer.
type Option func(*Consumer)

// WithDeadLetter sets the producer used for records that exhausted their attempts.
func WithDeadLetter(p DeadLetterProducer) Option {
	return func(c *Consumer) {
		c.deadLetter = p
	}
}

// New creates a new Kafka consumer.
func New(cfg Config, handler Handler, logger *slog.Logger, opts ...Option) (*Consumer, error) {
	if cfg.Brokers == "" {
		return nil, fmt.Errorf("kafka brokers not configured")
	}
	if cfg.GroupID == "" {
		return nil, fmt.Errorf("kafka consumer group ID not configured")
	}
	if len(cfg.Topics) == 0 {
		return nil, fmt.Errorf("kafka topics not configured")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(strings.Split(cfg.Brokers, ",")...),
		kgo.ConsumerGroup(cfg.GroupID),
		kgo.ConsumeTopics(cfg.Topics...),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Consumer{
		client:      client,
		handler:     handler,
		logger:      logger,
		maxAttempts: cfg.MaxDeliveryAttempts,
		attempts:    make(map[recordID]int),
		ctx:         ctx,
		cancel:      cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start begins the consumption loop in a background goroutine.
func (c *Consumer) Start() {
	c.wg.Add(1)
	go c.run()
}

// run is the main consumption loop.
func (c *Consumer) run() {
	defer c.wg.Done()

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
			c.poll()
		}
	}
}

// poll reads and processes one batch of records.
func (c *Consumer) poll() {
	fetches := c.client.PollRecords(c.ctx, 100)
	if fetches.IsClientClosed() || c.ctx.Err() != nil {
		return
	}

	fetches.EachError(func(topic string, partition int32, err error) {
		if c.logger != nil {
			c.logger.Error("kafka fetch error",
				"topic", topic,
				"partition", partition,
				"error", err,
			)
		}
	})

	fetches.EachRecord(func(rec *kgo.Record) {
		c.handleRecord(rec)
	})
}

// disposition is what dispatch decided should happen to a record's offset.
type disposition int

const (
	// dispositionCommit marks the record consumed.
	dispositionCommit disposition = iota
	// dispositionRewind resets the partition so the record is redelivered.
	dispositionRewind
)

// handleRecord processes a single Kafka record. Records within a partition are
// handled strictly in order; a failed record rewinds the partition so the next
// poll redelivers it.
func (c *Consumer) handleRecord(rec *kgo.Record) {
	headers := make(map[string]string)
	for _, h := range rec.Headers {
		headers[h.Key] = string(h.Value)
	}

	msg := &Message{
		Topic:     rec.Topic,
		Partition: rec.Partition,
		Offset:    rec.Offset,
		Key:       rec.Key,
		Value:     rec.Value,
		Headers:   headers,
		Timestamp: rec.Timestamp,
	}

	if c.dispatch(c.ctx, msg) == dispositionCommit {
		c.commit(rec)
		return
	}
	c.rewind(rec)
}

// dispatch runs the handler and applies the delivery-attempt policy: a
// handler failure rewinds until the attempt limit is reached, after which the
// record goes to "<topic>.dlq" and commits. A dead-letter publish failure
// keeps the record in place so the next delivery retries the dead-letter
// path.
func (c *Consumer) dispatch(ctx context.Context, msg *Message) disposition {
	id := recordID{topic: msg.Topic, partition: msg.Partition, offset: msg.Offset}
	c.attempts[id]++
	msg.Attempt = c.attempts[id]

	err := c.handler.Handle(ctx, msg)
	if err == nil {
		delete(c.attempts, id)
		return dispositionCommit
	}

	if c.logger != nil {
		c.logger.Error("failed to handle message",
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"attempt", msg.Attempt,
			"error", err,
		)
	}

	if c.deadLetter != nil && c.maxAttempts > 0 && msg.Attempt >= c.maxAttempts {
		dlqTopic := msg.Topic + ".dlq"
		if dlqErr := c.deadLetter.Produce(ctx, dlqTopic, msg.Key, msg.Value); dlqErr != nil {
			if c.logger != nil {
				c.logger.Error("failed to dead-letter message",
					"topic", dlqTopic,
					"offset", msg.Offset,
					"error", dlqErr,
				)
			}
			return dispositionRewind
		}
		if c.logger != nil {
			c.logger.Warn("message routed to dead-letter topic",
				"topic", dlqTopic,
				"offset", msg.Offset,
				"attempts", msg.Attempt,
			)
		}
		delete(c.attempts, id)
		return dispositionCommit
	}

	return dispositionRewind
}

// commit marks the record consumed.
func (c *Consumer) commit(rec *kgo.Record) {
	if err := c.client.CommitRecords(c.ctx, rec); err != nil {
		if c.logger != nil {
			c.logger.Error("failed to commit offset",
				"topic", rec.Topic,
				"partition", rec.Partition,
				"offset", rec.Offset,
				"error", err,
			)
		}
	}
}

// rewind resets the partition to the failed record so the next poll redelivers it.
func (c *Consumer) rewind(rec *kgo.Record) {
	c.client.SetOffsets(map[string]map[int32]kgo.EpochOffset{
		rec.Topic: {
			rec.Partition: {
				Epoch:  rec.LeaderEpoch,
				Offset: rec.Offset,
			},
		},
	})
}

// Stop gracefully stops the consumer.
func (c *Consumer) Stop(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.client.Close()
		return nil
	case <-ctx.Done():
		c.client.Close()
		return ctx.Err()
	}
}

// Healthy checks if the consumer can communicate with brokers.
func (c *Consumer) Healthy(ctx context.Context) bool {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return false
	}
	c.mu.RUnlock()

	return c.client.Ping(ctx) == nil
}
