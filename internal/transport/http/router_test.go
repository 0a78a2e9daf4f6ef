package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	consentModel "hiu/internal/consent/models"
	"hiu/internal/transport/http/mocks"
	"hiu/internal/user"
	pkgerrors "hiu/pkg/domain-errors"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mocks.go -package=mocks

type RouterSuite struct {
	suite.Suite

	ctrl     *gomock.Controller
	consents *mocks.MockConsentService
	users    *user.Service
	tokens   *user.TokenIssuer
	router   http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.consents = mocks.NewMockConsentService(s.ctrl)

	s.tokens = user.NewTokenIssuer("test-signing-key")
	s.users = user.NewService(user.NewMemoryStore(), s.tokens, nil)
	s.Require().NoError(s.users.Create(context.Background(), "drlakshmi", "s3cret", user.RoleDoctor))
	s.Require().NoError(s.users.Create(context.Background(), "root", "adm1n", user.RoleAdmin))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(s.consents, s.users, logger)
	s.router = NewRouter(handler, NewTokenValidator(s.tokens), nil, nil, logger)
}

func (s *RouterSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) login(username, password string) string {
	w := s.do(http.MethodPost, "/sessions", "", SessionRequest{Username: username, Password: password})
	s.Require().Equal(http.StatusOK, w.Code)

	var session SessionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &session))
	s.Require().NotEmpty(session.Token)
	return session.Token
}

func (s *RouterSuite) TestSessionRejectsBadCredentials() {
	w := s.do(http.MethodPost, "/sessions", "", SessionRequest{Username: "drlakshmi", Password: "wrong"})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterSuite) TestCreateConsentRequestRequiresToken() {
	w := s.do(http.MethodPost, "/consent-requests", "", CreateConsentRequest{})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterSuite) TestCreateConsentRequest() {
	id := uuid.New()
	s.consents.EXPECT().
		CreateRequest(gomock.Any(), "drlakshmi", gomock.Any()).
		Return(id, nil).
		Times(1)

	token := s.login("drlakshmi", "s3cret")
	w := s.do(http.MethodPost, "/consent-requests", token, CreateConsentRequest{
		Consent: consentModel.ConsentSpec{
			Purpose: consentModel.Purpose{Code: "CAREMGT"},
			Patient: consentModel.Patient{ID: "aruna@ncg"},
		},
	})

	s.Require().Equal(http.StatusCreated, w.Code)
	var created ConsentRequestCreated
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Equal(id.String(), created.ID)
}

func (s *RouterSuite) TestCreateConsentRequestWithClientRequestID() {
	id := uuid.New()
	s.consents.EXPECT().
		CreatePatientRequest(gomock.Any(), "drlakshmi", "client-req-1", gomock.Any()).
		Return(id, nil).
		Times(1)

	token := s.login("drlakshmi", "s3cret")
	w := s.do(http.MethodPost, "/consent-requests", token, CreateConsentRequest{
		RequestID: "client-req-1",
		Consent:   consentModel.ConsentSpec{Purpose: consentModel.Purpose{Code: "CAREMGT"}},
	})
	s.Equal(http.StatusCreated, w.Code)
}

func (s *RouterSuite) TestCreateConsentRequestInvalidPurpose() {
	s.consents.EXPECT().
		CreateRequest(gomock.Any(), "drlakshmi", gomock.Any()).
		Return(uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidPurposeOfUse, "invalid purpose of use"))

	token := s.login("drlakshmi", "s3cret")
	w := s.do(http.MethodPost, "/consent-requests", token, CreateConsentRequest{})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "invalid_purpose_of_use")
}

func (s *RouterSuite) TestListConsentRequests() {
	s.consents.EXPECT().
		RequestsOf(gomock.Any(), "drlakshmi").
		Return([]*consentModel.ConsentRequestRepresentation{}, nil)

	token := s.login("drlakshmi", "s3cret")
	w := s.do(http.MethodGet, "/consent-requests", token, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestConsentRequestLookupMiss() {
	s.consents.EXPECT().
		ConsentRequestIDFor(gomock.Any(), "client-req-9").
		Return("", pkgerrors.New(pkgerrors.CodeConsentRequestNotFound, "cannot find consent request"))

	token := s.login("drlakshmi", "s3cret")
	w := s.do(http.MethodGet, "/consent-requests/client-req-9", token, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestCreateUserRequiresAdmin() {
	token := s.login("drlakshmi", "s3cret")
	w := s.do(http.MethodPost, "/users", token, CreateUserRequest{Username: "new", Password: "pw"})
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterSuite) TestCreateUserAsAdmin() {
	token := s.login("root", "adm1n")
	w := s.do(http.MethodPost, "/users", token, CreateUserRequest{
		Username: "drkumar",
		Password: "pw12345",
		Role:     "DOCTOR",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	s.login("drkumar", "pw12345")
}

func (s *RouterSuite) TestChangePassword() {
	token := s.login("drlakshmi", "s3cret")
	w := s.do(http.MethodPut, "/users/password", token, ChangePasswordRequest{
		OldPassword: "s3cret",
		NewPassword: "n3w-secret",
	})
	s.Require().Equal(http.StatusNoContent, w.Code)

	s.login("drlakshmi", "n3w-secret")
}

func (s *RouterSuite) TestOnInitCallback() {
	s.consents.EXPECT().
		UpdatePostedRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, response *consentModel.ConsentRequestInitResponse) error {
			s.Equal("consent-request-1", response.ConsentRequest.ID)
			return nil
		})

	w := s.do(http.MethodPost, "/v0.5/consent-requests/on-init", "", consentModel.ConsentRequestInitResponse{
		Resp:           consentModel.GatewayResponse{RequestID: uuid.NewString()},
		ConsentRequest: &consentModel.ConsentRequestReference{ID: "consent-request-1"},
	})
	s.Equal(http.StatusAccepted, w.Code)
}

func (s *RouterSuite) TestOnInitCallbackFailureStillAccepted() {
	s.consents.EXPECT().
		UpdatePostedRequest(gomock.Any(), gomock.Any()).
		Return(pkgerrors.New(pkgerrors.CodeConsentRequestNotFound, "cannot find consent request"))

	w := s.do(http.MethodPost, "/v0.5/consent-requests/on-init", "", consentModel.ConsentRequestInitResponse{})
	s.Equal(http.StatusAccepted, w.Code)
}

func (s *RouterSuite) TestCallbackRejectsMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/v0.5/consents/hiu/notify", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestNotifyCallbackDispatches() {
	s.consents.EXPECT().
		HandleNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notification *consentModel.HiuConsentNotification) error {
			s.Equal(consentModel.StatusGranted, notification.Notification.Status)
			return nil
		})

	w := s.do(http.MethodPost, "/v0.5/consents/hiu/notify", "", consentModel.HiuConsentNotification{
		RequestID:    uuid.New(),
		Notification: consentModel.ConsentNotification{Status: consentModel.StatusGranted},
	})
	s.Equal(http.StatusAccepted, w.Code)
}

func (s *RouterSuite) TestOnFetchCallbackDispatches() {
	s.consents.EXPECT().
		HandleConsentArtefact(gomock.Any(), gomock.Any()).
		Return(nil)

	w := s.do(http.MethodPost, "/v0.5/consents/on-fetch", "", consentModel.GatewayConsentArtefactResponse{
		Resp: consentModel.GatewayResponse{RequestID: uuid.NewString()},
	})
	s.Equal(http.StatusAccepted, w.Code)
}

func (s *RouterSuite) TestOnStatusCallbackDispatches() {
	s.consents.EXPECT().
		HandleConsentRequestStatus(gomock.Any(), gomock.Any()).
		Return(nil)

	w := s.do(http.MethodPost, "/v0.5/consent-requests/on-status", "", consentModel.ConsentStatusResponse{
		ConsentRequest: &consentModel.ConsentRequestStatusDetail{ID: "consent-request-1", Status: consentModel.StatusGranted},
	})
	s.Equal(http.StatusAccepted, w.Code)
}
