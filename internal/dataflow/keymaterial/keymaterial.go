// Package keymaterial generates per-transaction Diffie-Hellman key material.
package keymaterial

import (
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"hiu/internal/dataflow/models"
)

const nonceLength = 32

type Option func(*Generator)

// Generator produces an X25519 key pair, a random nonce and an expiry
// timestamp for one data-flow transaction. Pure apart from randomness; every
// call yields a fresh pair.
type Generator struct {
	expiryOffsetDays int
	now              func() time.Time
	rand             io.Reader
}

func New(expiryOffsetDays int, opts ...Option) *Generator {
	g := &Generator{
		expiryOffsetDays: expiryOffsetDays,
		now:              time.Now,
		rand:             rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// Generate returns fresh session key material. The expiry is a UTC instant
// truncated to seconds, offset by the configured number of days.
func (g *Generator) Generate() (*models.SessionKeyMaterial, error) {
	private, err := ecdh.X25519().GenerateKey(g.rand)
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}

	nonce := make([]byte, nonceLength)
	if _, err := io.ReadFull(g.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	expiry := g.now().UTC().AddDate(0, 0, g.expiryOffsetDays).Truncate(time.Second)
	return &models.SessionKeyMaterial{
		KeyMaterial: models.KeyMaterial{
			CryptoAlg: models.CryptoAlgECDH,
			Curve:     models.CurveX25519,
			DHPublicKey: models.KeyStructure{
				Expiry:     expiry.Format(time.RFC3339),
				Parameters: fmt.Sprintf("%s/%s", models.CurveX25519, models.CryptoAlgECDH),
				KeyValue:   base64.StdEncoding.EncodeToString(private.PublicKey().Bytes()),
			},
			Nonce: base64.StdEncoding.EncodeToString(nonce),
		},
		PrivateKey: base64.StdEncoding.EncodeToString(private.Bytes()),
	}, nil
}
