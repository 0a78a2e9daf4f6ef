package service

import (
	"context"
	"encoding/json"
	"log/slog"

	consentmodels "hiu/internal/consent/models"
	"hiu/internal/dataflow/models"
	"hiu/internal/platform/kafka/producer"
	"hiu/internal/platform/metrics"
	pkgerrors "hiu/pkg/domain-errors"
)

// Producer publishes messages to the queue boundary.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// RequestPublisher queues data-flow requests for the pipeline. It is the
// downstream trigger invoked when a consent artefact is stored.
type RequestPublisher struct {
	producer    Producer
	topic       string
	dataPushURL string
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

func NewRequestPublisher(p Producer, topic, dataPushURL string, m *metrics.Metrics, logger *slog.Logger) *RequestPublisher {
	return &RequestPublisher{
		producer:    p,
		topic:       topic,
		dataPushURL: dataPushURL,
		metrics:     m,
		logger:      logger,
	}
}

// Initiate queues one data-flow request for the given artefact. Key material
// is attached later by the pipeline, never at publish time.
func (p *RequestPublisher) Initiate(ctx context.Context, consentID string, dateRange consentmodels.DateRange, signature string) error {
	if p.topic == "" {
		return pkgerrors.New(pkgerrors.CodeQueueNotFound, "data flow request topic is not configured")
	}
	request := models.DataFlowRequest{
		Consent:     models.Consent{ID: consentID, DigitalSignature: signature},
		DateRange:   dateRange,
		DataPushURL: p.dataPushURL,
	}
	value, err := json.Marshal(request)
	if err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to encode data flow request")
	}
	msg := &producer.Message{
		Topic: p.topic,
		Key:   []byte(consentID),
		Value: value,
	}
	if err := p.producer.Produce(ctx, msg); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to queue data flow request")
	}
	if p.logger != nil {
		p.logger.InfoContext(ctx, "data flow request queued", "consent_artefact_id", consentID)
	}
	return nil
}

// DeletePublisher broadcasts data-flow teardown events.
type DeletePublisher struct {
	producer Producer
	topic    string
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewDeletePublisher(p Producer, topic string, m *metrics.Metrics, logger *slog.Logger) *DeletePublisher {
	return &DeletePublisher{producer: p, topic: topic, metrics: m, logger: logger}
}

// Publish emits one deletion message for an artefact. Publish failures are
// surfaced to the caller, not retried here.
func (p *DeletePublisher) Publish(ctx context.Context, consentID, consentRequestID string) error {
	if p.topic == "" {
		return pkgerrors.New(pkgerrors.CodeQueueNotFound, "data flow delete topic is not configured")
	}
	value, err := json.Marshal(models.DataFlowDelete{
		ConsentID:        consentID,
		ConsentRequestID: consentRequestID,
	})
	if err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to encode data flow delete")
	}
	msg := &producer.Message{
		Topic: p.topic,
		Key:   []byte(consentID),
		Value: value,
	}
	if err := p.producer.Produce(ctx, msg); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to broadcast data flow delete")
	}
	if p.metrics != nil {
		p.metrics.IncrementDataFlowDeletesPublished()
	}
	return nil
}

// RetractionPublisher broadcasts health-information retraction events for
// revoked artefacts.
type RetractionPublisher struct {
	producer Producer
	topic    string
	logger   *slog.Logger
}

func NewRetractionPublisher(p Producer, topic string, logger *slog.Logger) *RetractionPublisher {
	return &RetractionPublisher{producer: p, topic: topic, logger: logger}
}

func (p *RetractionPublisher) Retract(ctx context.Context, consentID, consentRequestID string) error {
	if p.topic == "" {
		return pkgerrors.New(pkgerrors.CodeQueueNotFound, "health information topic is not configured")
	}
	value, err := json.Marshal(models.HealthInfoRetraction{
		ConsentID:        consentID,
		ConsentRequestID: consentRequestID,
	})
	if err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to encode retraction")
	}
	msg := &producer.Message{
		Topic: p.topic,
		Key:   []byte(consentID),
		Value: value,
	}
	if err := p.producer.Produce(ctx, msg); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to broadcast retraction")
	}
	if p.logger != nil {
		p.logger.InfoContext(ctx, "health information retraction queued",
			"consent_artefact_id", consentID,
			"consent_request_id", consentRequestID,
		)
	}
	return nil
}
