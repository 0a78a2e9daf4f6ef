package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"hiu/internal/dataflow/models"
	"hiu/internal/platform/kafka/consumer"
	"hiu/internal/platform/metrics"
	pkgerrors "hiu/pkg/domain-errors"
)

// KeyGenerator produces fresh session key material per transaction.
type KeyGenerator interface {
	Generate() (*models.SessionKeyMaterial, error)
}

// TokenSource supplies a bearer token for outbound data source calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// DataSourceClient forwards a data-flow request to the remote data source and
// returns the transaction id it assigned.
type DataSourceClient interface {
	InitiateDataFlowRequest(ctx context.Context, token string, request *models.DataFlowRequest) (*models.DataFlowRequestResponse, error)
}

// Store is the subset of the data-flow store the processor writes to.
type Store interface {
	SaveDataFlowRequest(ctx context.Context, transactionID string, request *models.DataFlowRequest) error
	SaveKeyMaterial(ctx context.Context, transactionID string, keys *models.SessionKeyMaterial) error
}

// Processor consumes queued data-flow-request events. For each event it
// generates fresh key material, forwards the augmented request to the data
// source and persists the transaction bindings. A failure anywhere leaves the
// message uncommitted; redelivery is the queue's concern.
type Processor struct {
	keys    KeyGenerator
	tokens  TokenSource
	client  DataSourceClient
	store   Store
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewProcessor(keys KeyGenerator, tokens TokenSource, client DataSourceClient, store Store, m *metrics.Metrics, logger *slog.Logger) *Processor {
	return &Processor{
		keys:    keys,
		tokens:  tokens,
		client:  client,
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

func (p *Processor) Handle(ctx context.Context, msg *consumer.Message) error {
	var request models.DataFlowRequest
	if err := json.Unmarshal(msg.Value, &request); err != nil {
		p.fail(ctx, "undecodable data flow request", err)
		return pkgerrors.Wrap(err, pkgerrors.CodeInvalidInput, "failed to decode data flow request")
	}

	session, err := p.keys.Generate()
	if err != nil {
		p.fail(ctx, "key material generation failed", err)
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to generate key material")
	}
	// Only the outward half travels with the request.
	outward := session.KeyMaterial
	request.KeyMaterial = &outward

	token, err := p.tokens.Token(ctx)
	if err != nil {
		p.fail(ctx, "token acquisition failed", err)
		return pkgerrors.Wrap(err, pkgerrors.CodeAuthenticationFailed, "failed to acquire gateway token")
	}

	response, err := p.client.InitiateDataFlowRequest(ctx, token, &request)
	if err != nil {
		p.fail(ctx, "data source rejected data flow request", err)
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to forward data flow request")
	}
	if response == nil || response.TransactionID == "" {
		p.fail(ctx, "data source response carries no transaction id", nil)
		return pkgerrors.New(pkgerrors.CodeInvalidDataFromGateway, "data source response carries no transaction id")
	}

	if err := p.store.SaveDataFlowRequest(ctx, response.TransactionID, &request); err != nil {
		p.fail(ctx, "failed to persist data flow request", err)
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to persist data flow request")
	}
	if err := p.store.SaveKeyMaterial(ctx, response.TransactionID, session); err != nil {
		p.fail(ctx, "failed to persist key material", err)
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to persist key material")
	}

	if p.metrics != nil {
		p.metrics.IncrementDataFlowRequestsInitiated()
	}
	if p.logger != nil {
		p.logger.InfoContext(ctx, "data flow request forwarded",
			"transaction_id", response.TransactionID,
			"consent_artefact_id", request.Consent.ID,
		)
	}
	return nil
}

func (p *Processor) fail(ctx context.Context, msg string, err error) {
	if p.metrics != nil {
		p.metrics.IncrementDataFlowRequestsFailed()
	}
	if p.logger != nil {
		p.logger.ErrorContext(ctx, msg, "error", err)
	}
}
