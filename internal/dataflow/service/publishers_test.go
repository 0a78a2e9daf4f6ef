package service

//go:generate mockgen -source=publishers.go -destination=mocks/publishers.go -package=mocks

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	consentmodels "hiu/internal/consent/models"
	"hiu/internal/dataflow/models"
	"hiu/internal/dataflow/service/mocks"
	"hiu/internal/platform/kafka/producer"
	pkgerrors "hiu/pkg/domain-errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestPublisherInitiate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kafka := mocks.NewMockProducer(ctrl)

	p := NewRequestPublisher(kafka, "hiu.dataflow.request", "https://hiu.example/data/notification", nil, discardLogger())

	dateRange := consentmodels.DateRange{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	var published *producer.Message
	kafka.EXPECT().
		Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *producer.Message) error {
			published = msg
			return nil
		})

	require.NoError(t, p.Initiate(context.Background(), "artefact-1", dateRange, "sig"))

	require.NotNil(t, published)
	assert.Equal(t, "hiu.dataflow.request", published.Topic)
	assert.Equal(t, []byte("artefact-1"), published.Key)

	var request models.DataFlowRequest
	require.NoError(t, json.Unmarshal(published.Value, &request))
	assert.Equal(t, "artefact-1", request.Consent.ID)
	assert.Equal(t, "sig", request.Consent.DigitalSignature)
	assert.Equal(t, "https://hiu.example/data/notification", request.DataPushURL)
	assert.Nil(t, request.KeyMaterial, "key material is attached by the pipeline, not at publish time")
}

func TestRequestPublisherUnconfiguredTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := NewRequestPublisher(mocks.NewMockProducer(ctrl), "", "https://hiu.example", nil, discardLogger())

	err := p.Initiate(context.Background(), "artefact-1", consentmodels.DateRange{}, "sig")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeQueueNotFound))
}

func TestDeletePublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kafka := mocks.NewMockProducer(ctrl)

	p := NewDeletePublisher(kafka, "hiu.dataflow.delete", nil, discardLogger())

	var published *producer.Message
	kafka.EXPECT().
		Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *producer.Message) error {
			published = msg
			return nil
		})

	require.NoError(t, p.Publish(context.Background(), "artefact-1", "cm-consent-1"))

	require.NotNil(t, published)
	assert.Equal(t, "hiu.dataflow.delete", published.Topic)

	var event models.DataFlowDelete
	require.NoError(t, json.Unmarshal(published.Value, &event))
	assert.Equal(t, "artefact-1", event.ConsentID)
	assert.Equal(t, "cm-consent-1", event.ConsentRequestID)
}

func TestDeletePublisherUnconfiguredTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := NewDeletePublisher(mocks.NewMockProducer(ctrl), "", nil, discardLogger())

	err := p.Publish(context.Background(), "artefact-1", "cm-consent-1")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeQueueNotFound))
}

func TestDeletePublisherSurfacesProduceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kafka := mocks.NewMockProducer(ctrl)
	kafka.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(assert.AnError)

	p := NewDeletePublisher(kafka, "hiu.dataflow.delete", nil, discardLogger())

	err := p.Publish(context.Background(), "artefact-1", "cm-consent-1")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeUnavailable))
}

func TestRetractionPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kafka := mocks.NewMockProducer(ctrl)

	p := NewRetractionPublisher(kafka, "hiu.healthinfo.retract", discardLogger())

	var published *producer.Message
	kafka.EXPECT().
		Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *producer.Message) error {
			published = msg
			return nil
		})

	require.NoError(t, p.Retract(context.Background(), "artefact-1", "cm-consent-1"))

	require.NotNil(t, published)
	var event models.HealthInfoRetraction
	require.NoError(t, json.Unmarshal(published.Value, &event))
	assert.Equal(t, "artefact-1", event.ConsentID)
	assert.Equal(t, "cm-consent-1", event.ConsentRequestID)
}
