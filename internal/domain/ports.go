package domain

import "context"

// DestinationRepository is the persistence port for destination documents.
// Update is a full-document replacement; partial-update semantics live in the
// service layer, which loads, applies the patch, and writes back.
type DestinationRepository interface {
	Insert(ctx context.Context, d Destination) error
	Update(ctx context.Context, d Destination) error
	Get(ctx context.Context, id string) (Destination, error)
	List(ctx context.Context) ([]Destination, error) // newest first
	Delete(ctx context.Context, id string) error
}

// HotelFilter is the query accepted by the dedicated hotel filter path.
// Price bounds apply to pricePerNight; Amenities matches when the stored set
// intersects the requested set. SortBy is whitelisted by the store; unknown
// keys fall back to creation time.
type HotelFilter struct {
	DestinationID *string
	MinPrice      *float64
	MaxPrice      *float64
	MinRating     *float64
	MaxRating     *float64
	Amenities     []string
	SortBy        string
	SortOrder     string // "asc" or "desc"
}

// HotelRepository is the persistence port for hotel documents, plus the
// read-time aggregations destinations need (hotelsCount).
type HotelRepository interface {
	Insert(ctx context.Context, h Hotel) error
	Update(ctx context.Context, h Hotel) error
	Get(ctx context.Context, id string) (Hotel, error)
	List(ctx context.Context) ([]Hotel, error) // newest first
	ListByDestination(ctx context.Context, destinationID string) ([]Hotel, error)
	Filter(ctx context.Context, q HotelFilter) ([]Hotel, error)
	Delete(ctx context.Context, id string) error

	CountByDestination(ctx context.Context, destinationID string) (int64, error)
	CountsByDestination(ctx context.Context) (map[string]int64, error)
}

// Cache is a read-through record cache. Implementations must treat a miss as
// (false, nil); callers never fail a read on cache errors.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
