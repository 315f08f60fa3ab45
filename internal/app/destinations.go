package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travelhub/internal/domain"
)

// DestinationService implements destination CRUD. It owns the bilingual
// defaults and validation; the repository only moves documents.
type DestinationService struct {
	repo     domain.DestinationRepository
	hotels   domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewDestinationService wires a destination service. cache may be nil, in
// which case reads always hit the store. The hotel repository is needed for
// the read-time hotelsCount aggregation.
func NewDestinationService(r domain.DestinationRepository, hotels domain.HotelRepository, c domain.Cache, ttl time.Duration) *DestinationService {
	return &DestinationService{repo: r, hotels: hotels, cache: c, cacheTTL: ttl}
}

func destinationKey(id string) string { return "destination:" + id }

// List returns all destinations newest first, each with its hotelsCount.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	ds, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.hotels.CountsByDestination(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ds {
		n := counts[ds[i].ID]
		ds[i].HotelsCount = &n
	}
	return ds, nil
}

// Get returns one destination with its hotelsCount. The count is aggregated
// fresh on every read, it is never cached with the record.
func (s *DestinationService) Get(ctx context.Context, id string) (domain.Destination, error) {
	var d domain.Destination
	hit := false
	if s.cache != nil {
		hit, _ = s.cache.Get(ctx, destinationKey(id), &d)
	}
	if !hit {
		var err error
		d, err = s.repo.Get(ctx, id)
		if err != nil {
			return domain.Destination{}, err
		}
		if s.cache != nil {
			_ = s.cache.Set(ctx, destinationKey(id), d, int(s.cacheTTL.Seconds()))
		}
	}
	n, err := s.hotels.CountByDestination(ctx, id)
	if err != nil {
		return domain.Destination{}, err
	}
	d.HotelsCount = &n
	return d, nil
}

// Create validates the payload, fills the bilingual defaults, assigns id and
// timestamps, and persists the record.
func (s *DestinationService) Create(ctx context.Context, p domain.DestinationPatch) (domain.Destination, error) {
	d, err := domain.NewDestination(p)
	if err != nil {
		return domain.Destination{}, err
	}
	d.Language = domain.ApplyLanguageDefaults(d.Language, d.Name, d.Description)
	d.ID = uuid.NewString()
	now := time.Now().UTC()
	d.CreatedAt, d.UpdatedAt = now, now
	if err := s.repo.Insert(ctx, d); err != nil {
		return domain.Destination{}, err
	}
	return d, nil
}

// Update applies a partial document over the stored record. Absent keys keep
// their stored values; the bilingual defaults are re-applied only when name
// or description was part of the payload.
func (s *DestinationService) Update(ctx context.Context, id string, p domain.DestinationPatch) (domain.Destination, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Destination{}, err
	}
	p.Apply(&d)
	if err := d.Validate(); err != nil {
		return domain.Destination{}, err
	}
	if p.Name != nil || p.Description != nil {
		d.Language = domain.ApplyLanguageDefaults(d.Language, d.Name, d.Description)
	}
	d.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, d); err != nil {
		return domain.Destination{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, destinationKey(id))
	}
	return d, nil
}

// Delete removes a destination by id. Hotels referencing it are left in
// place; their reads simply stop attaching a destination view.
func (s *DestinationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, destinationKey(id))
	}
	return nil
}
