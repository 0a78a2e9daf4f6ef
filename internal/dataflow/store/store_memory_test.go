package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	consentmodels "hiu/internal/consent/models"
	"hiu/internal/dataflow/models"
	"hiu/internal/sentinel"
)

func TestMemoryStoreBindings(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	request := &models.DataFlowRequest{
		Consent:     models.Consent{ID: "artefact-1", DigitalSignature: "sig"},
		DateRange:   consentmodels.DateRange{},
		DataPushURL: "https://hiu.example/data/notification",
	}
	keys := &models.SessionKeyMaterial{
		KeyMaterial: models.KeyMaterial{
			CryptoAlg: models.CryptoAlgECDH,
			Curve:     models.CurveX25519,
			Nonce:     "bm9uY2U=",
		},
		PrivateKey: "cHJpdmF0ZQ==",
	}

	require.NoError(t, s.SaveDataFlowRequest(ctx, "txn-1", request))
	require.NoError(t, s.SaveKeyMaterial(ctx, "txn-1", keys))

	gotRequest, err := s.RequestFor(ctx, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, "artefact-1", gotRequest.Consent.ID)

	gotKeys, err := s.KeyMaterialFor(ctx, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, keys.PrivateKey, gotKeys.PrivateKey)
	assert.Equal(t, keys.Nonce, gotKeys.Nonce)
}

func TestMemoryStoreMisses(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, err := s.KeyMaterialFor(ctx, "missing")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	_, err = s.RequestFor(ctx, "missing")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
