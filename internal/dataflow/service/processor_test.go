package service

//go:generate mockgen -source=processor.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	consentmodels "hiu/internal/consent/models"
	"hiu/internal/dataflow/keymaterial"
	"hiu/internal/dataflow/models"
	"hiu/internal/dataflow/service/mocks"
	"hiu/internal/platform/kafka/consumer"
	pkgerrors "hiu/pkg/domain-errors"
)

type ProcessorSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	tokens    *mocks.MockTokenSource
	client    *mocks.MockDataSourceClient
	store     *mocks.MockStore
	processor *Processor
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorSuite))
}

func (s *ProcessorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokens = mocks.NewMockTokenSource(s.ctrl)
	s.client = mocks.NewMockDataSourceClient(s.ctrl)
	s.store = mocks.NewMockStore(s.ctrl)
	s.processor = NewProcessor(
		keymaterial.New(2),
		s.tokens,
		s.client,
		s.store,
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *ProcessorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func queuedRequest(t *testing.T) *consumer.Message {
	t.Helper()
	request := models.DataFlowRequest{
		Consent: models.Consent{ID: "C1", DigitalSignature: "sig"},
		DateRange: consentmodels.DateRange{
			From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		DataPushURL: "https://hiu.example/data/notification",
	}
	value, err := json.Marshal(request)
	require.NoError(t, err)
	return &consumer.Message{Topic: "hiu.dataflow.request", Value: value, Attempt: 1}
}

// TestHandle_BindsKeyMaterialToTransaction verifies the full pipeline: the
// forwarded request carries fresh outward key material and no private key,
// and exactly one key material record is persisted under the transaction id
// the data source assigned.
func (s *ProcessorSuite) TestHandle_BindsKeyMaterialToTransaction() {
	s.tokens.EXPECT().Token(gomock.Any()).Return("bearer-token", nil)

	var forwarded *models.DataFlowRequest
	s.client.EXPECT().
		InitiateDataFlowRequest(gomock.Any(), "bearer-token", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, request *models.DataFlowRequest) (*models.DataFlowRequestResponse, error) {
			forwarded = request
			return &models.DataFlowRequestResponse{TransactionID: "txn-42"}, nil
		})

	var savedKeys *models.SessionKeyMaterial
	s.store.EXPECT().
		SaveDataFlowRequest(gomock.Any(), "txn-42", gomock.Any()).
		Return(nil)
	s.store.EXPECT().
		SaveKeyMaterial(gomock.Any(), "txn-42", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, keys *models.SessionKeyMaterial) error {
			savedKeys = keys
			return nil
		}).
		Times(1)

	err := s.processor.Handle(context.Background(), queuedRequest(s.T()))
	s.Require().NoError(err)

	s.Require().NotNil(forwarded)
	s.Require().NotNil(forwarded.KeyMaterial)
	s.Equal(models.CryptoAlgECDH, forwarded.KeyMaterial.CryptoAlg)

	s.Require().NotNil(savedKeys)
	s.NotEmpty(savedKeys.PrivateKey)
	s.Equal(forwarded.KeyMaterial.DHPublicKey.KeyValue, savedKeys.DHPublicKey.KeyValue)

	payload, marshalErr := json.Marshal(forwarded)
	s.Require().NoError(marshalErr)
	s.NotContains(string(payload), savedKeys.PrivateKey,
		"outbound payload must never carry the private key")
}

func (s *ProcessorSuite) TestHandle_UndecodableEvent() {
	err := s.processor.Handle(context.Background(), &consumer.Message{Value: []byte("{"), Attempt: 1})
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.HasCode(err, pkgerrors.CodeInvalidInput))
}

func (s *ProcessorSuite) TestHandle_TokenFailure() {
	s.tokens.EXPECT().Token(gomock.Any()).Return("", assert.AnError)

	err := s.processor.Handle(context.Background(), queuedRequest(s.T()))
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.HasCode(err, pkgerrors.CodeAuthenticationFailed))
}

func (s *ProcessorSuite) TestHandle_DataSourceFailure() {
	s.tokens.EXPECT().Token(gomock.Any()).Return("bearer-token", nil)
	s.client.EXPECT().
		InitiateDataFlowRequest(gomock.Any(), "bearer-token", gomock.Any()).
		Return(nil, assert.AnError)

	err := s.processor.Handle(context.Background(), queuedRequest(s.T()))
	require.Error(s.T(), err, "a failed forward must leave the message uncommitted")
	assert.True(s.T(), pkgerrors.HasCode(err, pkgerrors.CodeUnavailable))
}

func (s *ProcessorSuite) TestHandle_MissingTransactionID() {
	s.tokens.EXPECT().Token(gomock.Any()).Return("bearer-token", nil)
	s.client.EXPECT().
		InitiateDataFlowRequest(gomock.Any(), "bearer-token", gomock.Any()).
		Return(&models.DataFlowRequestResponse{}, nil)

	err := s.processor.Handle(context.Background(), queuedRequest(s.T()))
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.HasCode(err, pkgerrors.CodeInvalidDataFromGateway))
}
