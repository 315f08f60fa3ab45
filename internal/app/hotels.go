package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"travelhub/internal/domain"
)

// HotelService implements hotel CRUD and the filter path. It verifies the
// destination reference on create and on reference change, and attaches the
// reduced destination view when the call site asks for it.
type HotelService struct {
	repo         domain.HotelRepository
	destinations domain.DestinationRepository
	cache        domain.Cache
	cacheTTL     time.Duration
}

// NewHotelService wires a hotel service. cache may be nil.
func NewHotelService(r domain.HotelRepository, destinations domain.DestinationRepository, c domain.Cache, ttl time.Duration) *HotelService {
	return &HotelService{repo: r, destinations: destinations, cache: c, cacheTTL: ttl}
}

func hotelKey(id string) string { return "hotel:" + id }

// List returns all hotels newest first.
func (s *HotelService) List(ctx context.Context, includeDestination bool) ([]domain.Hotel, error) {
	hs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeDestination {
		if err := s.attachDestinations(ctx, hs); err != nil {
			return nil, err
		}
	}
	return hs, nil
}

// ListByDestination returns the hotels of one destination newest first. The
// destination itself is not required to exist.
func (s *HotelService) ListByDestination(ctx context.Context, destinationID string, includeDestination bool) ([]domain.Hotel, error) {
	hs, err := s.repo.ListByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if includeDestination {
		if err := s.attachDestinations(ctx, hs); err != nil {
			return nil, err
		}
	}
	return hs, nil
}

// Filter returns hotels matching the filter in the requested order.
func (s *HotelService) Filter(ctx context.Context, q domain.HotelFilter, includeDestination bool) ([]domain.Hotel, error) {
	hs, err := s.repo.Filter(ctx, q)
	if err != nil {
		return nil, err
	}
	if includeDestination {
		if err := s.attachDestinations(ctx, hs); err != nil {
			return nil, err
		}
	}
	return hs, nil
}

// Get returns one hotel, optionally with its reduced destination view. An
// orphaned destinationId yields a hotel without the view, never an error.
func (s *HotelService) Get(ctx context.Context, id string, includeDestination bool) (domain.Hotel, error) {
	var h domain.Hotel
	hit := false
	if s.cache != nil {
		hit, _ = s.cache.Get(ctx, hotelKey(id), &h)
	}
	if !hit {
		var err error
		h, err = s.repo.Get(ctx, id)
		if err != nil {
			return domain.Hotel{}, err
		}
		if s.cache != nil {
			_ = s.cache.Set(ctx, hotelKey(id), h, int(s.cacheTTL.Seconds()))
		}
	}
	if includeDestination {
		if err := s.attachDestination(ctx, &h); err != nil {
			return domain.Hotel{}, err
		}
	}
	return h, nil
}

// Create validates the payload, requires destinationId to resolve to an
// existing destination, fills the bilingual defaults, assigns id and
// timestamps, and persists the record.
func (s *HotelService) Create(ctx context.Context, p domain.HotelPatch) (domain.Hotel, error) {
	h, err := domain.NewHotel(p)
	if err != nil {
		return domain.Hotel{}, err
	}
	if err := s.checkDestination(ctx, h.DestinationID); err != nil {
		return domain.Hotel{}, err
	}
	h.Language = domain.ApplyLanguageDefaults(h.Language, h.Name, h.Description)
	h.ID = uuid.NewString()
	now := time.Now().UTC()
	h.CreatedAt, h.UpdatedAt = now, now
	if err := s.repo.Insert(ctx, h); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

// Update applies a partial document over the stored record. destinationId is
// re-verified only when the payload actually changes it; the bilingual
// defaults are re-applied only when name or description was in the payload.
func (s *HotelService) Update(ctx context.Context, id string, p domain.HotelPatch) (domain.Hotel, error) {
	h, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	prevDestination := h.DestinationID
	p.Apply(&h)
	if err := h.Validate(); err != nil {
		return domain.Hotel{}, err
	}
	if h.DestinationID != prevDestination {
		if err := s.checkDestination(ctx, h.DestinationID); err != nil {
			return domain.Hotel{}, err
		}
	}
	if p.Name != nil || p.Description != nil {
		h.Language = domain.ApplyLanguageDefaults(h.Language, h.Name, h.Description)
	}
	h.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, h); err != nil {
		return domain.Hotel{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, hotelKey(id))
	}
	if err := s.attachDestination(ctx, &h); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

// Delete removes a hotel by id.
func (s *HotelService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, hotelKey(id))
	}
	return nil
}

// checkDestination maps a missing destination to a validation failure; the
// hotel request is bad, no resource the caller addressed is missing.
func (s *HotelService) checkDestination(ctx context.Context, destinationID string) error {
	if _, err := s.destinations.Get(ctx, destinationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrDestinationNotFound
		}
		return err
	}
	return nil
}

func (s *HotelService) attachDestination(ctx context.Context, h *domain.Hotel) error {
	d, err := s.destinations.Get(ctx, h.DestinationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil // orphaned reference: no view attached
		}
		return err
	}
	h.Destination = d.Ref()
	return nil
}

// attachDestinations resolves each distinct destination once and attaches the
// reduced views in place.
func (s *HotelService) attachDestinations(ctx context.Context, hs []domain.Hotel) error {
	refs := make(map[string]*domain.DestinationRef)
	for i := range hs {
		id := hs[i].DestinationID
		ref, seen := refs[id]
		if !seen {
			d, err := s.destinations.Get(ctx, id)
			switch {
			case err == nil:
				ref = d.Ref()
			case errors.Is(err, domain.ErrNotFound):
				ref = nil
			default:
				return err
			}
			refs[id] = ref
		}
		hs[i].Destination = ref
	}
	return nil
}
