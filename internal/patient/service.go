// Package patient resolves patient display data for request listings,
// caching lookups so repeated listings do not hammer the gateway.
package patient

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"hiu/internal/consent/models"
	"hiu/internal/platform/cache"
	"hiu/internal/sentinel"
	pkgerrors "hiu/pkg/domain-errors"
)

// batchConcurrency bounds parallel gateway lookups during a warm-up.
const batchConcurrency = 4

// Finder resolves one patient at their Consent Manager.
type Finder interface {
	FindPatient(ctx context.Context, patientID string) (*models.PatientRepresentation, error)
}

// Service is a caching façade over the gateway's patient lookup.
type Service struct {
	finder Finder
	cache  cache.Adapter
	logger *slog.Logger
}

func NewService(finder Finder, c cache.Adapter, logger *slog.Logger) *Service {
	return &Service{finder: finder, cache: c, logger: logger}
}

// FindPatients resolves a batch of patient ids concurrently, serving from the
// cache where possible. Unresolvable patients are omitted from the result
// rather than failing the whole batch.
func (s *Service) FindPatients(ctx context.Context, ids []string) (map[string]models.PatientRepresentation, error) {
	result := make(map[string]models.PatientRepresentation, len(ids))
	var mu sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(batchConcurrency)
	for _, id := range ids {
		group.Go(func() error {
			patient, err := s.findOne(ctx, id)
			if err != nil {
				if errors.Is(err, sentinel.ErrNotFound) || pkgerrors.HasCode(err, pkgerrors.CodeNotFound) {
					return nil
				}
				return err
			}
			mu.Lock()
			result[id] = *patient
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) findOne(ctx context.Context, id string) (*models.PatientRepresentation, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil {
		var patient models.PatientRepresentation
		if err := json.Unmarshal([]byte(cached), &patient); err == nil {
			return &patient, nil
		}
		// Undecodable entry, fall through to a fresh lookup.
	}

	patient, err := s.finder.FindPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(patient)
	if err == nil {
		if err := s.cache.Put(ctx, id, string(encoded)); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "failed to cache patient", "patient_id", id, "error", err)
		}
	}
	return patient, nil
}
