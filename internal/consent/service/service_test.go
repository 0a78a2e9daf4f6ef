package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"hiu/internal/consent/models"
	"hiu/internal/consent/service/mocks"
	"hiu/internal/platform/cache"
	"hiu/internal/sentinel"
	pkgerrors "hiu/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	store               *mocks.MockStore
	gateway             *mocks.MockGateway
	dataFlow            *mocks.MockDataFlowInitiator
	grantedTask         *mocks.MockTask
	responseCache       *cache.InMemory
	patientRequestCache *cache.InMemory
	service             *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.gateway = mocks.NewMockGateway(s.ctrl)
	s.dataFlow = mocks.NewMockDataFlowInitiator(s.ctrl)
	s.grantedTask = mocks.NewMockTask(s.ctrl)
	s.responseCache = cache.NewInMemory(time.Minute)
	s.patientRequestCache = cache.NewInMemory(time.Minute)
	s.service = NewService(
		s.store,
		s.gateway,
		NewStaticConceptValidator(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithHIUID("10000002"),
		WithTasks(map[models.Status]Task{models.StatusGranted: s.grantedTask}),
		WithDataFlow(s.dataFlow),
		WithResponseCache(s.responseCache),
		WithPatientRequestCache(s.patientRequestCache),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func requestData(purposeCode string) *models.ConsentRequestData {
	return &models.ConsentRequestData{
		Consent: models.ConsentSpec{
			Purpose:   models.Purpose{Code: purposeCode, Text: "Care Management"},
			Patient:   models.Patient{ID: "aruna@ncg"},
			Requester: models.Requester{Name: "Dr. Lakshmi"},
			Permission: models.Permission{
				DateRange: models.DateRange{
					From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
					To:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
				},
			},
		},
	}
}

// TestCreateRequest_ValidPurpose verifies that a recognised purpose of use
// yields exactly one persisted POSTED request and one gateway send keyed by a
// freshly generated request id.
func (s *ServiceSuite) TestCreateRequest_ValidPurpose() {
	var persisted *models.ConsentRequest
	s.store.EXPECT().
		InsertConsentRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *models.ConsentRequest) error {
			persisted = request
			return nil
		})

	var sent *models.CMConsentRequest
	s.gateway.EXPECT().
		SendConsentRequest(gomock.Any(), "ncg", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, request *models.CMConsentRequest) error {
			sent = request
			return nil
		}).
		Times(1)

	id, err := s.service.CreateRequest(context.Background(), "dr-lakshmi", requestData("CAREMGT"))
	s.Require().NoError(err)
	s.Require().NotEqual(uuid.Nil, id)

	s.Require().NotNil(persisted)
	s.Equal(models.StatusPosted, persisted.Status)
	s.Equal(id, persisted.ID)
	s.Equal("dr-lakshmi", persisted.RequesterID)

	s.Require().NotNil(sent)
	s.Equal(id, sent.RequestID)
	s.Equal("10000002", sent.Consent.HIU.ID)
}

// TestCreateRequest_InvalidPurpose verifies fail-fast validation: no store
// write and no gateway call happen for an unrecognised purpose code.
func (s *ServiceSuite) TestCreateRequest_InvalidPurpose() {
	_, err := s.service.CreateRequest(context.Background(), "dr-lakshmi", requestData("BOGUS"))
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.HasCode(err, pkgerrors.CodeInvalidPurposeOfUse),
		"expected CodeInvalidPurposeOfUse for unknown purpose code")
}

func (s *ServiceSuite) TestCreateRequest_GatewayFailure() {
	s.store.EXPECT().InsertConsentRequest(gomock.Any(), gomock.Any()).Return(nil)
	s.gateway.EXPECT().
		SendConsentRequest(gomock.Any(), "ncg", gomock.Any()).
		Return(assert.AnError)

	_, err := s.service.CreateRequest(context.Background(), "dr-lakshmi", requestData("CAREMGT"))
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.HasCode(err, pkgerrors.CodeUnavailable))
}

// TestUpdatePostedRequest_Error verifies that a consent manager error block
// marks the request ERRORED without touching the consent request id.
func (s *ServiceSuite) TestUpdatePostedRequest_Error() {
	gatewayRequestID := uuid.New()
	s.store.EXPECT().
		UpdateStatus(gomock.Any(), gatewayRequestID, models.StatusErrored, "").
		Return(nil)

	err := s.service.UpdatePostedRequest(context.Background(), &models.ConsentRequestInitResponse{
		Resp:  models.GatewayResponse{RequestID: gatewayRequestID.String()},
		Error: &models.GatewayError{Code: 1000, Message: "patient not found"},
	})
	s.NoError(err)
}

// TestUpdatePostedRequest_ErrorForUnknownRequest verifies that an error block
// referencing a gateway request id this HIU never issued resolves to a
// not-found code rather than an internal failure.
func (s *ServiceSuite) TestUpdatePostedRequest_ErrorForUnknownRequest() {
	gatewayRequestID := uuid.New()
	s.store.EXPECT().
		UpdateStatus(gomock.Any(), gatewayRequestID, models.StatusErrored, "").
		Return(sentinel.ErrNotFound)

	err := s.service.UpdatePostedRequest(context.Background(), &models.ConsentRequestInitResponse{
		Resp:  models.GatewayResponse{RequestID: gatewayRequestID.String()},
		Error: &models.GatewayError{Code: 1000, Message: "patient not found"},
	})
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.HasCode(err, pkgerrors.CodeConsentRequestNotFound))
}

func (s *ServiceSuite) TestUpdatePostedRequest_AdvancesPostedToRequested() {
	gatewayRequestID := uuid.New()
	s.store.EXPECT().StatusOf(gomock.Any(), gatewayRequestID).Return(models.StatusPosted, nil)
	s.store.EXPECT().
		UpdateStatus(gomock.Any(), gatewayRequestID, models.StatusRequested, "cm-consent-9").
		Return(nil)

	err := s.service.UpdatePostedRequest(context.Background(), &models.ConsentRequestInitResponse{
		Resp:           models.GatewayResponse{RequestID: gatewayRequestID.String()},
		ConsentRequest: &models.ConsentRequestReference{ID: "cm-consent-9"},
	})
	s.NoError(err)
}

// TestUpdatePostedRequest_BindsClientRequest verifies the correlation-cache
// binding: when a client request id was recorded at creation, the
// acknowledgement binds it to the CM-assigned consent request id.
func (s *ServiceSuite) TestUpdatePostedRequest_BindsClientRequest() {
	gatewayRequestID := uuid.New()
	ctx := context.Background()
	s.Require().NoError(s.patientRequestCache.Put(ctx, gatewayRequestID.String(), "client-req-7"))

	s.store.EXPECT().StatusOf(gomock.Any(), gatewayRequestID).Return(models.StatusPosted, nil)
	s.store.EXPECT().
		UpdateStatus(gomock.Any(), gatewayRequestID, models.StatusRequested, "cm-consent-9").
		Return(nil)

	err := s.service.UpdatePostedRequest(ctx, &models.ConsentRequestInitResponse{
		Resp:           models.GatewayResponse{RequestID: gatewayRequestID.String()},
		ConsentRequest: &models.ConsentRequestReference{ID: "cm-consent-9"},
	})
	s.Require().NoError(err)

	bound, err := s.service.ConsentRequestIDFor(ctx, "client-req-7")
	s.Require().NoError(err)
	s.Equal("cm-consent-9", bound)
}

func (s *ServiceSuite) TestUpdatePostedRequest_IgnoresNonPosted() {
	gatewayRequestID := uuid.New()
	s.store.EXPECT().StatusOf(gomock.Any(), gatewayRequestID).Return(models.StatusRequested, nil)

	err := s.service.UpdatePostedRequest(context.Background(), &models.ConsentRequestInitResponse{
		Resp:           models.GatewayResponse{RequestID: gatewayRequestID.String()},
		ConsentRequest: &models.ConsentRequestReference{ID: "cm-consent-9"},
	})
	s.NoError(err)
}

// TestUpdatePostedRequest_Malformed verifies that a callback carrying neither
// an error nor a consent request id is rejected as invalid gateway data.
func (s *ServiceSuite) TestUpdatePostedRequest_Malformed() {
	err := s.service.UpdatePostedRequest(context.Background(), &models.ConsentRequestInitResponse{
		Resp: models.GatewayResponse{RequestID: uuid.NewString()},
	})
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.HasCode(err, pkgerrors.CodeInvalidDataFromGateway))
}

// TestHandleNotification_Dispatch verifies status dispatch: a registered
// status delegates to its task, an unregistered one fails validation.
func (s *ServiceSuite) TestHandleNotification_Dispatch() {
	requestID := uuid.New()
	timestamp := time.Now().UTC()
	notification := models.ConsentNotification{
		Status:           models.StatusGranted,
		ConsentRequestID: "cm-consent-1",
		ConsentArtefacts: []models.ConsentArtefactReference{{ID: "artefact-1"}},
	}

	s.grantedTask.EXPECT().
		Perform(gomock.Any(), notification, timestamp, requestID).
		Return(nil)

	err := s.service.HandleNotification(context.Background(), &models.HiuConsentNotification{
		RequestID:    requestID,
		Timestamp:    timestamp,
		Notification: notification,
	})
	s.Require().NoError(err)

	err = s.service.HandleNotification(context.Background(), &models.HiuConsentNotification{
		RequestID:    requestID,
		Timestamp:    timestamp,
		Notification: models.ConsentNotification{Status: models.StatusDenied},
	})
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

// TestHandleConsentArtefact_UnknownCorrelation verifies the silent-drop path:
// an artefact callback with no matching cache entry performs no persistence
// and completes without error.
func (s *ServiceSuite) TestHandleConsentArtefact_UnknownCorrelation() {
	err := s.service.HandleConsentArtefact(context.Background(), &models.GatewayConsentArtefactResponse{
		Resp: models.GatewayResponse{RequestID: uuid.NewString()},
		Consent: &models.ConsentArtefactPayload{
			Status: models.StatusGranted,
		},
	})
	s.NoError(err)
}

func (s *ServiceSuite) TestHandleConsentArtefact_PersistsAndInitiatesDataFlow() {
	ctx := context.Background()
	fetchRequestID := uuid.NewString()
	s.Require().NoError(s.responseCache.Put(ctx, fetchRequestID, "cm-consent-1"))

	dateRange := models.DateRange{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	var persisted *models.ConsentArtefact
	s.store.EXPECT().
		InsertConsentArtefact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, artefact *models.ConsentArtefact) error {
			persisted = artefact
			return nil
		})
	s.dataFlow.EXPECT().
		Initiate(gomock.Any(), "artefact-1", dateRange, "sig").
		Return(nil)

	err := s.service.HandleConsentArtefact(ctx, &models.GatewayConsentArtefactResponse{
		Resp: models.GatewayResponse{RequestID: fetchRequestID},
		Consent: &models.ConsentArtefactPayload{
			Status: models.StatusGranted,
			ConsentDetail: models.ConsentDetail{
				ConsentID:  "artefact-1",
				Patient:    models.Patient{ID: "aruna@ncg"},
				Permission: models.Permission{DateRange: dateRange},
			},
			Signature: "sig",
		},
	})
	s.Require().NoError(err)
	s.Require().NotNil(persisted)
	s.Equal("cm-consent-1", persisted.ConsentRequestID)
	s.Equal(models.StatusGranted, persisted.Status)
}

func (s *ServiceSuite) TestHandleConsentArtefact_GatewayError() {
	err := s.service.HandleConsentArtefact(context.Background(), &models.GatewayConsentArtefactResponse{
		Resp:  models.GatewayResponse{RequestID: uuid.NewString()},
		Error: &models.GatewayError{Code: 1510, Message: "artefact fetch failed"},
	})
	s.NoError(err)
}

// TestHandleConsentRequestStatus_Idempotent verifies that a duplicate status
// callback carrying the persisted status performs no write.
func (s *ServiceSuite) TestHandleConsentRequestStatus_Idempotent() {
	s.store.EXPECT().
		StatusByConsentRequestID(gomock.Any(), "cm-consent-1").
		Return(models.StatusGranted, nil)

	err := s.service.HandleConsentRequestStatus(context.Background(), &models.ConsentStatusResponse{
		Resp:           models.GatewayResponse{RequestID: uuid.NewString()},
		ConsentRequest: &models.ConsentRequestStatusDetail{ID: "cm-consent-1", Status: models.StatusGranted},
	})
	s.NoError(err)
}

func (s *ServiceSuite) TestHandleConsentRequestStatus_Advances() {
	s.store.EXPECT().
		StatusByConsentRequestID(gomock.Any(), "cm-consent-1").
		Return(models.StatusRequested, nil)
	s.store.EXPECT().
		UpdateStatusByConsentRequestID(gomock.Any(), "cm-consent-1", models.StatusGranted).
		Return(nil)

	err := s.service.HandleConsentRequestStatus(context.Background(), &models.ConsentStatusResponse{
		Resp:           models.GatewayResponse{RequestID: uuid.NewString()},
		ConsentRequest: &models.ConsentRequestStatusDetail{ID: "cm-consent-1", Status: models.StatusGranted},
	})
	s.NoError(err)
}

func (s *ServiceSuite) TestHandleConsentRequestStatus_UnknownRequest() {
	s.store.EXPECT().
		StatusByConsentRequestID(gomock.Any(), "cm-missing").
		Return(models.Status(""), sentinel.ErrNotFound)

	err := s.service.HandleConsentRequestStatus(context.Background(), &models.ConsentStatusResponse{
		Resp:           models.GatewayResponse{RequestID: uuid.NewString()},
		ConsentRequest: &models.ConsentRequestStatusDetail{ID: "cm-missing", Status: models.StatusGranted},
	})
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.HasCode(err, pkgerrors.CodeConsentRequestNotFound))
}

// TestRequestsOf_MergedStatus verifies that the artefact status overrides the
// request status once an artefact exists, and requests without artefacts keep
// their own status.
func (s *ServiceSuite) TestRequestsOf_MergedStatus() {
	granted := &models.ConsentRequest{
		ID:               uuid.New(),
		ConsentRequestID: "cm-consent-1",
		RequesterID:      "dr-lakshmi",
		Patient:          models.Patient{ID: "aruna@ncg"},
		Status:           models.StatusGranted,
	}
	pending := &models.ConsentRequest{
		ID:          uuid.New(),
		RequesterID: "dr-lakshmi",
		Patient:     models.Patient{ID: "vikram@ncg"},
		Status:      models.StatusRequested,
	}

	s.store.EXPECT().
		RequestsOf(gomock.Any(), "dr-lakshmi", defaultPageSize).
		Return([]*models.ConsentRequest{granted, pending}, nil)
	s.store.EXPECT().
		ArtefactStatusFor(gomock.Any(), "cm-consent-1").
		Return(models.StatusRevoked, nil)

	result, err := s.service.RequestsOf(context.Background(), "dr-lakshmi")
	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal(models.StatusRevoked, result[0].Status)
	s.Equal(models.StatusRequested, result[1].Status)
}

func TestStaticConceptValidator(t *testing.T) {
	v := NewStaticConceptValidator()
	assert.True(t, v.IsValidPurpose("CAREMGT"))
	assert.True(t, v.IsValidPurpose("BTG"))
	assert.False(t, v.IsValidPurpose("BOGUS"))
	assert.False(t, v.IsValidPurpose(""))

	custom := NewStaticConceptValidator("X")
	assert.True(t, custom.IsValidPurpose("X"))
	assert.False(t, custom.IsValidPurpose("CAREMGT"))
}
