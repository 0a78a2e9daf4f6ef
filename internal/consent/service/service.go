package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hiu/internal/consent/models"
	"hiu/internal/platform/cache"
	"hiu/internal/platform/metrics"
	"hiu/internal/sentinel"
	pkgerrors "hiu/pkg/domain-errors"
)

// Store defines the persistence interface for consent requests and artefacts.
// Error Contract:
// - Lookups return sentinel.ErrNotFound when no record exists
// - Other methods return nil on success or wrapped errors on failure
type Store interface {
	InsertConsentRequest(ctx context.Context, request *models.ConsentRequest) error
	StatusOf(ctx context.Context, gatewayRequestID uuid.UUID) (models.Status, error)
	StatusByConsentRequestID(ctx context.Context, consentRequestID string) (models.Status, error)
	UpdateStatus(ctx context.Context, gatewayRequestID uuid.UUID, status models.Status, consentRequestID string) error
	UpdateStatusByConsentRequestID(ctx context.Context, consentRequestID string, status models.Status) error
	RequestsOf(ctx context.Context, requesterID string, limit int) ([]*models.ConsentRequest, error)
	InsertConsentArtefact(ctx context.Context, artefact *models.ConsentArtefact) error
	GetConsentArtefact(ctx context.Context, artefactID string, status models.Status) (*models.ConsentArtefact, error)
	UpdateArtefactStatus(ctx context.Context, artefactID string, status models.Status, at time.Time) error
	ArtefactStatusFor(ctx context.Context, consentRequestID string) (models.Status, error)
}

// Gateway sends signed requests towards the Consent Manager. Every call is
// routed by the patient's CM suffix and answered asynchronously via callbacks.
type Gateway interface {
	SendConsentRequest(ctx context.Context, cmSuffix string, request *models.CMConsentRequest) error
	SendConsentOnNotify(ctx context.Context, cmSuffix string, ack *models.ConsentOnNotifyRequest) error
	FetchConsentArtefact(ctx context.Context, cmSuffix string, request *models.ConsentFetchRequest) error
}

// PatientProvider resolves patient display data for request listings.
type PatientProvider interface {
	FindPatients(ctx context.Context, ids []string) (map[string]models.PatientRepresentation, error)
}

// DataFlowInitiator starts health-information transfer for a stored artefact.
type DataFlowInitiator interface {
	Initiate(ctx context.Context, consentID string, dateRange models.DateRange, signature string) error
}

// Task reacts to one consent status notification.
type Task interface {
	Perform(ctx context.Context, notification models.ConsentNotification, timestamp time.Time, requestID uuid.UUID) error
}

type Option func(*Service)

const (
	defaultPageSize = 20
	defaultCacheTTL = 30 * time.Minute
)

// Service orchestrates consent request creation, gateway callback ingestion
// and notification dispatch. It owns the correlation caches bridging
// asynchronous gateway responses back to originating requests.
type Service struct {
	store     Store
	gateway   Gateway
	validator ConceptValidator
	tasks     map[models.Status]Task
	patients  PatientProvider
	dataFlow  DataFlowInitiator
	metrics   *metrics.Metrics
	logger    *slog.Logger

	// responseCache maps an artefact-fetch gateway request id to the consent
	// request id it was issued for. patientRequestCache maps a gateway request
	// id to the client-visible request id that triggered it, and later the
	// client request id to the CM-assigned consent request id.
	responseCache       cache.Adapter
	patientRequestCache cache.Adapter

	hiuID    string
	pageSize int
}

func NewService(store Store, gateway Gateway, validator ConceptValidator, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		store:     store,
		gateway:   gateway,
		validator: validator,
		logger:    logger,
		tasks:     map[models.Status]Task{},
		pageSize:  defaultPageSize,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.pageSize <= 0 {
		svc.pageSize = defaultPageSize
	}
	if svc.responseCache == nil {
		svc.responseCache = cache.NewInMemory(defaultCacheTTL)
	}
	if svc.patientRequestCache == nil {
		svc.patientRequestCache = cache.NewInMemory(defaultCacheTTL)
	}
	return svc
}

// WithTasks registers the status dispatch table.
func WithTasks(tasks map[models.Status]Task) Option {
	return func(s *Service) {
		s.tasks = tasks
	}
}

// WithMetrics sets the metrics instance for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithHIUID sets the identity stamped on outbound consent requests.
func WithHIUID(id string) Option {
	return func(s *Service) {
		s.hiuID = id
	}
}

// WithPageSize bounds request listings. Non-positive values keep the default.
func WithPageSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithResponseCache sets the artefact-fetch correlation cache. The granted
// task writes to the same instance.
func WithResponseCache(c cache.Adapter) Option {
	return func(s *Service) {
		s.responseCache = c
	}
}

// WithPatientRequestCache sets the client-request correlation cache.
func WithPatientRequestCache(c cache.Adapter) Option {
	return func(s *Service) {
		s.patientRequestCache = c
	}
}

// WithPatients sets the patient display-data provider used by listings.
func WithPatients(p PatientProvider) Option {
	return func(s *Service) {
		s.patients = p
	}
}

// WithDataFlow sets the initiator triggered when an artefact is stored.
func WithDataFlow(d DataFlowInitiator) Option {
	return func(s *Service) {
		s.dataFlow = d
	}
}

// CreateRequest validates the purpose of use, persists an outgoing consent
// request keyed by a freshly generated gateway request id and sends it to the
// gateway. The returned id is the key later callbacks correlate on.
func (s *Service) CreateRequest(ctx context.Context, requesterID string, data *models.ConsentRequestData) (uuid.UUID, error) {
	if requesterID == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing requester context")
	}
	if data == nil || data.Consent.Patient.ID == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidInput, "patient id is required")
	}
	if !s.validator.IsValidPurpose(data.Consent.Purpose.Code) {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidPurposeOfUse,
			fmt.Sprintf("unknown purpose of use: %s", data.Consent.Purpose.Code))
	}

	now := time.Now().UTC()
	request := &models.ConsentRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		Patient:     data.Consent.Patient,
		Purpose:     data.Consent.Purpose,
		HIUID:       s.hiuID,
		Permission:  data.Consent.Permission,
		Status:      models.StatusPosted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.InsertConsentRequest(ctx, request); err != nil {
		return uuid.Nil, pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to save consent request")
	}

	outbound := &models.CMConsentRequest{
		RequestID: request.ID,
		Timestamp: now,
		Consent: models.CMConsentSpec{
			Purpose:    data.Consent.Purpose,
			Patient:    data.Consent.Patient,
			HIU:        models.HIURef{ID: s.hiuID},
			Requester:  data.Consent.Requester,
			Permission: data.Consent.Permission,
		},
	}
	if err := s.gateway.SendConsentRequest(ctx, data.Consent.Patient.CMSuffix(), outbound); err != nil {
		return uuid.Nil, pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to send consent request to gateway")
	}

	s.incrementRequestsCreated()
	s.log(ctx, slog.LevelInfo, "consent request posted",
		"gateway_request_id", request.ID,
		"purpose", data.Consent.Purpose.Code,
	)
	return request.ID, nil
}

// CreatePatientRequest creates a consent request on behalf of a patient-facing
// client, remembering the client request id so the posted acknowledgement can
// bind it to the CM-assigned consent request id.
func (s *Service) CreatePatientRequest(ctx context.Context, requesterID, clientRequestID string, data *models.ConsentRequestData) (uuid.UUID, error) {
	gatewayRequestID, err := s.CreateRequest(ctx, requesterID, data)
	if err != nil {
		return uuid.Nil, err
	}
	if clientRequestID != "" {
		if err := s.patientRequestCache.Put(ctx, gatewayRequestID.String(), clientRequestID); err != nil {
			s.log(ctx, slog.LevelWarn, "failed to record client request correlation",
				"gateway_request_id", gatewayRequestID, "error", err)
		}
	}
	return gatewayRequestID, nil
}

// UpdatePostedRequest handles the gateway's asynchronous acknowledgement of a
// previously sent consent request. An error block marks the request ERRORED;
// a consent request id advances POSTED to REQUESTED and records the
// CM-assigned id. Anything else is invalid data from the gateway.
func (s *Service) UpdatePostedRequest(ctx context.Context, response *models.ConsentRequestInitResponse) error {
	if response == nil || response.Resp.RequestID == "" {
		return pkgerrors.New(pkgerrors.CodeInvalidDataFromGateway, "callback carries no request id")
	}
	gatewayRequestID, err := uuid.Parse(response.Resp.RequestID)
	if err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInvalidDataFromGateway, "malformed request id in callback")
	}

	if response.Error != nil {
		s.log(ctx, slog.LevelWarn, "consent request rejected by consent manager",
			"gateway_request_id", gatewayRequestID,
			"cm_error_code", response.Error.Code,
			"cm_error_message", response.Error.Message,
		)
		if err := s.store.UpdateStatus(ctx, gatewayRequestID, models.StatusErrored, ""); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return pkgerrors.New(pkgerrors.CodeConsentRequestNotFound,
					fmt.Sprintf("no consent request for gateway request id %s", gatewayRequestID))
			}
			return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to mark consent request errored")
		}
		s.incrementStatusTransition(models.StatusErrored)
		return nil
	}

	if response.ConsentRequest == nil || response.ConsentRequest.ID == "" {
		return pkgerrors.New(pkgerrors.CodeInvalidDataFromGateway, "callback carries neither error nor consent request")
	}

	current, err := s.store.StatusOf(ctx, gatewayRequestID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return pkgerrors.New(pkgerrors.CodeConsentRequestNotFound,
				fmt.Sprintf("no consent request for gateway request id %s", gatewayRequestID))
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to read consent request status")
	}
	if current != models.StatusPosted {
		// Duplicate or late acknowledgement. The request already advanced.
		s.log(ctx, slog.LevelDebug, "ignoring acknowledgement for non-posted request",
			"gateway_request_id", gatewayRequestID, "status", current)
		return nil
	}

	consentRequestID := response.ConsentRequest.ID
	if err := s.store.UpdateStatus(ctx, gatewayRequestID, models.StatusRequested, consentRequestID); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to advance consent request")
	}
	s.incrementStatusTransition(models.StatusRequested)

	clientRequestID, err := s.patientRequestCache.Get(ctx, gatewayRequestID.String())
	if err == nil && clientRequestID != "" {
		if err := s.patientRequestCache.Put(ctx, clientRequestID, consentRequestID); err != nil {
			s.log(ctx, slog.LevelWarn, "failed to bind client request to consent request",
				"client_request_id", clientRequestID, "error", err)
		}
	}
	return nil
}

// ConsentRequestIDFor resolves a client-visible request id to the CM-assigned
// consent request id, once the posted acknowledgement has bound it.
func (s *Service) ConsentRequestIDFor(ctx context.Context, clientRequestID string) (string, error) {
	id, err := s.patientRequestCache.Get(ctx, clientRequestID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", pkgerrors.New(pkgerrors.CodeConsentRequestNotFound,
				"no consent request bound to client request id")
		}
		return "", pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to read correlation cache")
	}
	return id, nil
}

// RequestsOf lists a requester's consent requests enriched with patient
// display data and the latest merged status. Patient lookups are pre-warmed
// in one batch; the artefact status wins once an artefact exists.
func (s *Service) RequestsOf(ctx context.Context, requesterID string) ([]*models.ConsentRequestRepresentation, error) {
	if requesterID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing requester context")
	}
	requests, err := s.store.RequestsOf(ctx, requesterID, s.pageSize)
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to list consent requests")
	}

	patients := s.warmPatients(ctx, requests)

	var result []*models.ConsentRequestRepresentation
	for _, request := range requests {
		status := request.Status
		if request.ConsentRequestID != "" {
			artefactStatus, err := s.store.ArtefactStatusFor(ctx, request.ConsentRequestID)
			switch {
			case err == nil:
				status = artefactStatus
			case errors.Is(err, sentinel.ErrNotFound):
				// No artefact yet; the request's own status is authoritative.
			default:
				return nil, pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to read artefact status")
			}
		}

		patient, ok := patients[request.Patient.ID]
		if !ok {
			patient = models.PatientRepresentation{ID: request.Patient.ID}
		}
		result = append(result, &models.ConsentRequestRepresentation{
			ID:               request.ID,
			ConsentRequestID: request.ConsentRequestID,
			Patient:          patient,
			Purpose:          request.Purpose,
			Permission:       request.Permission,
			Status:           status,
			CreatedAt:        request.CreatedAt,
		})
	}
	return result, nil
}

func (s *Service) warmPatients(ctx context.Context, requests []*models.ConsentRequest) map[string]models.PatientRepresentation {
	if s.patients == nil || len(requests) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(requests))
	var ids []string
	for _, request := range requests {
		if _, ok := seen[request.Patient.ID]; ok {
			continue
		}
		seen[request.Patient.ID] = struct{}{}
		ids = append(ids, request.Patient.ID)
	}
	patients, err := s.patients.FindPatients(ctx, ids)
	if err != nil {
		// Listings degrade to bare patient ids rather than failing outright.
		s.log(ctx, slog.LevelWarn, "failed to warm patient cache", "error", err)
		return nil
	}
	return patients
}

// HandleNotification dispatches a consent notification to the handler
// registered for its status.
func (s *Service) HandleNotification(ctx context.Context, notification *models.HiuConsentNotification) error {
	if notification == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "notification is required")
	}
	status := notification.Notification.Status
	s.incrementNotification(status)

	task, ok := s.tasks[status]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("no handler registered for consent status %s", status))
	}
	return task.Perform(ctx, notification.Notification, notification.Timestamp, notification.RequestID)
}

// HandleConsentArtefact processes the artefact-fetch callback. Gateway errors
// and unknown correlation ids complete without escalation; a resolved
// artefact is persisted and handed to data-flow initiation.
func (s *Service) HandleConsentArtefact(ctx context.Context, response *models.GatewayConsentArtefactResponse) error {
	if response == nil || response.Resp.RequestID == "" {
		return nil
	}
	if response.Error != nil {
		s.log(ctx, slog.LevelWarn, "consent artefact fetch failed at consent manager",
			"gateway_request_id", response.Resp.RequestID,
			"cm_error_code", response.Error.Code,
			"cm_error_message", response.Error.Message,
		)
		return nil
	}

	consentRequestID, err := s.responseCache.Get(ctx, response.Resp.RequestID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			// Duplicate delivery or expired correlation entry.
			s.log(ctx, slog.LevelDebug, "dropping artefact callback with unknown correlation id",
				"gateway_request_id", response.Resp.RequestID)
			return nil
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to read response cache")
	}
	if response.Consent == nil {
		s.log(ctx, slog.LevelWarn, "unusual artefact callback from consent manager",
			"gateway_request_id", response.Resp.RequestID)
		return nil
	}

	artefact := &models.ConsentArtefact{
		ID:               response.Consent.ConsentDetail.ConsentID,
		ConsentRequestID: consentRequestID,
		Detail:           response.Consent.ConsentDetail,
		Signature:        response.Consent.Signature,
		Status:           response.Consent.Status,
		UpdatedAt:        time.Now().UTC(),
	}
	if err := s.store.InsertConsentArtefact(ctx, artefact); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to save consent artefact")
	}

	if s.dataFlow != nil {
		if err := s.dataFlow.Initiate(ctx, artefact.ID, artefact.Detail.Permission.DateRange, artefact.Signature); err != nil {
			return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to initiate data flow")
		}
	}
	return nil
}

// HandleConsentRequestStatus processes the consent-status callback. The write
// is skipped when the persisted status already matches, so duplicate
// deliveries are no-ops.
func (s *Service) HandleConsentRequestStatus(ctx context.Context, response *models.ConsentStatusResponse) error {
	if response == nil {
		return nil
	}
	if response.Error != nil {
		s.log(ctx, slog.LevelWarn, "consent status lookup failed at consent manager",
			"gateway_request_id", response.Resp.RequestID,
			"cm_error_code", response.Error.Code,
			"cm_error_message", response.Error.Message,
		)
		return nil
	}
	if response.ConsentRequest == nil {
		s.log(ctx, slog.LevelWarn, "unusual status callback from consent manager",
			"gateway_request_id", response.Resp.RequestID)
		return nil
	}

	current, err := s.store.StatusByConsentRequestID(ctx, response.ConsentRequest.ID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return pkgerrors.New(pkgerrors.CodeConsentRequestNotFound,
				fmt.Sprintf("unknown consent request %s", response.ConsentRequest.ID))
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to read consent request status")
	}
	if current == response.ConsentRequest.Status {
		return nil
	}

	if err := s.store.UpdateStatusByConsentRequestID(ctx, response.ConsentRequest.ID, response.ConsentRequest.Status); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to update consent request status")
	}
	s.incrementStatusTransition(response.ConsentRequest.Status)
	return nil
}

func (s *Service) incrementRequestsCreated() {
	if s.metrics != nil {
		s.metrics.IncrementConsentRequestsCreated()
	}
}

func (s *Service) incrementNotification(status models.Status) {
	if s.metrics != nil {
		s.metrics.IncrementConsentNotifications(string(status))
	}
}

func (s *Service) incrementStatusTransition(status models.Status) {
	if s.metrics != nil {
		s.metrics.IncrementConsentStatusTransitions(string(status))
	}
}

func (s *Service) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Log(ctx, level, msg, args...)
}
