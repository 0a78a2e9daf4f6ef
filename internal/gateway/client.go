// Package gateway implements the outbound HTTP boundary towards the Consent
// Manager gateway and data sources. Every call carries a correlation id and a
// bearer token; answers arrive asynchronously via callbacks.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	consentmodels "hiu/internal/consent/models"
	dataflowmodels "hiu/internal/dataflow/models"
	"hiu/internal/platform/metrics"
	pkgerrors "hiu/pkg/domain-errors"
)

const (
	pathConsentRequestInit = "/consent-requests/init"
	pathConsentFetch       = "/consents/fetch"
	pathConsentOnNotify    = "/consents/hiu/on-notify"
	pathDataFlowRequest    = "/health-information/cm/request"
	pathPatientFind        = "/patients/find"

	headerCMID          = "X-CM-ID"
	headerCorrelationID = "X-CORRELATION-ID"
)

// TokenSource supplies bearer tokens for outbound calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the HTTP client for gateway calls.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithMetrics sets the metrics instance for the client.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendConsentRequest posts a consent creation request, routed to the
// patient's Consent Manager.
func (c *Client) SendConsentRequest(ctx context.Context, cmSuffix string, request *consentmodels.CMConsentRequest) error {
	return c.post(ctx, pathConsentRequestInit, cmSuffix, request)
}

// SendConsentOnNotify acknowledges a consent notification.
func (c *Client) SendConsentOnNotify(ctx context.Context, cmSuffix string, ack *consentmodels.ConsentOnNotifyRequest) error {
	return c.post(ctx, pathConsentOnNotify, cmSuffix, ack)
}

// FetchConsentArtefact asks the gateway for a full consent artefact; the
// artefact arrives later on the callback surface.
func (c *Client) FetchConsentArtefact(ctx context.Context, cmSuffix string, request *consentmodels.ConsentFetchRequest) error {
	return c.post(ctx, pathConsentFetch, cmSuffix, request)
}

func (c *Client) post(ctx context.Context, path, cmSuffix string, payload any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeAuthenticationFailed, "failed to acquire gateway token")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to encode gateway payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to create gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(headerCorrelationID, correlationID(ctx))
	if cmSuffix != "" {
		req.Header.Set(headerCMID, cmSuffix)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe(path, time.Since(start))
	if err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to reach gateway")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusAccepted:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return pkgerrors.New(pkgerrors.CodeAuthenticationFailed, "gateway rejected the bearer token")
	case resp.StatusCode == http.StatusBadRequest:
		return pkgerrors.New(pkgerrors.CodeInvalidInput,
			fmt.Sprintf("gateway rejected the payload on %s", path))
	default:
		return pkgerrors.New(pkgerrors.CodeUnavailable,
			fmt.Sprintf("gateway returned status %d on %s", resp.StatusCode, path))
	}
}

// InitiateDataFlowRequest forwards a data-flow request to the data source and
// returns the transaction id it assigned. The token is supplied by the caller
// because the pipeline acquires one per event.
func (c *Client) InitiateDataFlowRequest(ctx context.Context, token string, request *dataflowmodels.DataFlowRequest) (*dataflowmodels.DataFlowRequestResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to encode data flow request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathDataFlowRequest, bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to create data flow request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(headerCorrelationID, correlationID(ctx))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe(pathDataFlowRequest, time.Since(start))
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to reach data source")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, pkgerrors.New(pkgerrors.CodeUnavailable,
			fmt.Sprintf("data source returned status %d", resp.StatusCode))
	}

	var response dataflowmodels.DataFlowRequestResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeInvalidDataFromGateway, "failed to decode data source response")
	}
	return &response, nil
}

type patientFindRequest struct {
	Query struct {
		Patient consentmodels.Patient `json:"patient"`
	} `json:"query"`
}

type patientFindResponse struct {
	Patient consentmodels.PatientRepresentation `json:"patient"`
}

// FindPatient resolves a patient's display data at their Consent Manager.
func (c *Client) FindPatient(ctx context.Context, patientID string) (*consentmodels.PatientRepresentation, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeAuthenticationFailed, "failed to acquire gateway token")
	}

	var payload patientFindRequest
	payload.Query.Patient = consentmodels.Patient{ID: patientID}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to encode patient query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathPatientFind, bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to create patient query")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(headerCorrelationID, correlationID(ctx))
	if suffix := (consentmodels.Patient{ID: patientID}).CMSuffix(); suffix != "" {
		req.Header.Set(headerCMID, suffix)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe(pathPatientFind, time.Since(start))
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to reach gateway")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("unknown patient %s", patientID))
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, pkgerrors.New(pkgerrors.CodeUnavailable,
			fmt.Sprintf("gateway returned status %d on %s", resp.StatusCode, pathPatientFind))
	}

	var response patientFindResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeInvalidDataFromGateway, "failed to decode patient response")
	}
	return &response.Patient, nil
}

func (c *Client) observe(path string, elapsed time.Duration) {
	if c.metrics != nil {
		c.metrics.ObserveGatewayCallLatency(path, elapsed.Seconds())
	}
}

type correlationKey struct{}

// WithCorrelationID stamps the context with the correlation id propagated
// from an inbound trigger.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// correlationID returns the propagated correlation id, or a fresh one when
// the chain started here.
func correlationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
