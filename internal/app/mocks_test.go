package app

import (
	"context"

	"travelhub/internal/domain"
)

// function-field fakes; a nil field means "not expected in this test"

type fakeDestinationRepo struct {
	insert func(ctx context.Context, d domain.Destination) error
	update func(ctx context.Context, d domain.Destination) error
	get    func(ctx context.Context, id string) (domain.Destination, error)
	list   func(ctx context.Context) ([]domain.Destination, error)
	delete func(ctx context.Context, id string) error
}

func (f *fakeDestinationRepo) Insert(ctx context.Context, d domain.Destination) error {
	return f.insert(ctx, d)
}
func (f *fakeDestinationRepo) Update(ctx context.Context, d domain.Destination) error {
	return f.update(ctx, d)
}
func (f *fakeDestinationRepo) Get(ctx context.Context, id string) (domain.Destination, error) {
	return f.get(ctx, id)
}
func (f *fakeDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	return f.list(ctx)
}
func (f *fakeDestinationRepo) Delete(ctx context.Context, id string) error {
	return f.delete(ctx, id)
}

type fakeHotelRepo struct {
	insert            func(ctx context.Context, h domain.Hotel) error
	update            func(ctx context.Context, h domain.Hotel) error
	get               func(ctx context.Context, id string) (domain.Hotel, error)
	list              func(ctx context.Context) ([]domain.Hotel, error)
	listByDestination func(ctx context.Context, destinationID string) ([]domain.Hotel, error)
	filter            func(ctx context.Context, q domain.HotelFilter) ([]domain.Hotel, error)
	delete            func(ctx context.Context, id string) error
	count             func(ctx context.Context, destinationID string) (int64, error)
	counts            func(ctx context.Context) (map[string]int64, error)
}

func (f *fakeHotelRepo) Insert(ctx context.Context, h domain.Hotel) error { return f.insert(ctx, h) }
func (f *fakeHotelRepo) Update(ctx context.Context, h domain.Hotel) error { return f.update(ctx, h) }
func (f *fakeHotelRepo) Get(ctx context.Context, id string) (domain.Hotel, error) {
	return f.get(ctx, id)
}
func (f *fakeHotelRepo) List(ctx context.Context) ([]domain.Hotel, error) { return f.list(ctx) }
func (f *fakeHotelRepo) ListByDestination(ctx context.Context, destinationID string) ([]domain.Hotel, error) {
	return f.listByDestination(ctx, destinationID)
}
func (f *fakeHotelRepo) Filter(ctx context.Context, q domain.HotelFilter) ([]domain.Hotel, error) {
	return f.filter(ctx, q)
}
func (f *fakeHotelRepo) Delete(ctx context.Context, id string) error { return f.delete(ctx, id) }
func (f *fakeHotelRepo) CountByDestination(ctx context.Context, destinationID string) (int64, error) {
	return f.count(ctx, destinationID)
}
func (f *fakeHotelRepo) CountsByDestination(ctx context.Context) (map[string]int64, error) {
	return f.counts(ctx)
}

func strp(s string) *string { return &s }

func f64p(v float64) *float64 { return &v }

func intp(v int) *int { return &v }
