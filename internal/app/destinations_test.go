package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelhub/internal/domain"
)

func TestDestinationCreateFillsDefaults(t *testing.T) {
	var inserted domain.Destination
	repo := &fakeDestinationRepo{
		insert: func(_ context.Context, d domain.Destination) error {
			inserted = d
			return nil
		},
	}
	svc := NewDestinationService(repo, nil, nil, 0)

	d, err := svc.Create(context.Background(), domain.DestinationPatch{
		Name:        strp("Rome"),
		Country:     strp("Italy"),
		Description: strp("Eternal City"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, d.ID, inserted.ID)
	assert.False(t, d.CreatedAt.IsZero())
	assert.Equal(t, d.CreatedAt, d.UpdatedAt)

	require.NotNil(t, d.Language)
	require.NotNil(t, d.Language.EN)
	require.NotNil(t, d.Language.AR)
	assert.Equal(t, "Rome", d.Language.EN.Name)
	assert.Equal(t, "Rome", d.Language.AR.Name)
	assert.Equal(t, "Eternal City", d.Language.AR.Description)
}

func TestDestinationCreateKeepsProvidedTranslations(t *testing.T) {
	repo := &fakeDestinationRepo{
		insert: func(_ context.Context, d domain.Destination) error { return nil },
	}
	svc := NewDestinationService(repo, nil, nil, 0)

	d, err := svc.Create(context.Background(), domain.DestinationPatch{
		Name:        strp("Rome"),
		Country:     strp("Italy"),
		Description: strp("Eternal City"),
		Language:    &domain.LanguageMap{AR: &domain.LanguageContent{Name: "روما"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "روما", d.Language.AR.Name)
	assert.Equal(t, "Eternal City", d.Language.AR.Description)
}

func TestDestinationCreateRejectsInvalid(t *testing.T) {
	svc := NewDestinationService(nil, nil, nil, 0)
	_, err := svc.Create(context.Background(), domain.DestinationPatch{Name: strp("Rome")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDestinationListAttachesCounts(t *testing.T) {
	repo := &fakeDestinationRepo{
		list: func(_ context.Context) ([]domain.Destination, error) {
			return []domain.Destination{{ID: "d1"}, {ID: "d2"}}, nil
		},
	}
	hotels := &fakeHotelRepo{
		counts: func(_ context.Context) (map[string]int64, error) {
			return map[string]int64{"d1": 3}, nil
		},
	}
	svc := NewDestinationService(repo, hotels, nil, 0)

	ds, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ds, 2)
	require.NotNil(t, ds[0].HotelsCount)
	assert.EqualValues(t, 3, *ds[0].HotelsCount)
	// a destination with no hotels still reports an explicit zero
	require.NotNil(t, ds[1].HotelsCount)
	assert.EqualValues(t, 0, *ds[1].HotelsCount)
}

func TestDestinationGetAggregatesFreshCount(t *testing.T) {
	repo := &fakeDestinationRepo{
		get: func(_ context.Context, id string) (domain.Destination, error) {
			return domain.Destination{ID: id, Name: "Rome"}, nil
		},
	}
	hotels := &fakeHotelRepo{
		count: func(_ context.Context, id string) (int64, error) { return 7, nil },
	}
	svc := NewDestinationService(repo, hotels, nil, 0)

	d, err := svc.Get(context.Background(), "d1")
	require.NoError(t, err)
	require.NotNil(t, d.HotelsCount)
	assert.EqualValues(t, 7, *d.HotelsCount)
}

func TestDestinationGetNotFound(t *testing.T) {
	repo := &fakeDestinationRepo{
		get: func(_ context.Context, id string) (domain.Destination, error) {
			return domain.Destination{}, domain.ErrNotFound
		},
	}
	svc := NewDestinationService(repo, nil, nil, 0)
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationUpdateKeepsAbsentFields(t *testing.T) {
	stored := domain.Destination{
		ID: "d1", Name: "Rome", Country: "Italy", Description: "Eternal City",
		Language: domain.ApplyLanguageDefaults(nil, "Rome", "Eternal City"),
	}
	var updated domain.Destination
	repo := &fakeDestinationRepo{
		get: func(_ context.Context, id string) (domain.Destination, error) { return stored, nil },
		update: func(_ context.Context, d domain.Destination) error {
			updated = d
			return nil
		},
	}
	svc := NewDestinationService(repo, nil, nil, 0)

	d, err := svc.Update(context.Background(), "d1", domain.DestinationPatch{Country: strp("Italia")})
	require.NoError(t, err)
	assert.Equal(t, "Rome", d.Name)
	assert.Equal(t, "Italia", d.Country)
	assert.Equal(t, "Italia", updated.Country)
	// name untouched, so existing translations are not rewritten
	assert.Equal(t, "Rome", d.Language.AR.Name)
}

func TestDestinationUpdateReappliesDefaultsOnNameChange(t *testing.T) {
	stored := domain.Destination{
		ID: "d1", Name: "Rome", Country: "Italy", Description: "Eternal City",
		Language: &domain.LanguageMap{
			EN: &domain.LanguageContent{Name: "Rome", Description: "Eternal City"},
		},
	}
	repo := &fakeDestinationRepo{
		get:    func(_ context.Context, id string) (domain.Destination, error) { return stored, nil },
		update: func(_ context.Context, d domain.Destination) error { return nil },
	}
	svc := NewDestinationService(repo, nil, nil, 0)

	d, err := svc.Update(context.Background(), "d1", domain.DestinationPatch{Name: strp("Roma")})
	require.NoError(t, err)
	require.NotNil(t, d.Language.AR)
	assert.Equal(t, "Roma", d.Language.AR.Name)
}

func TestDestinationDeleteNotFound(t *testing.T) {
	repo := &fakeDestinationRepo{
		delete: func(_ context.Context, id string) error { return domain.ErrNotFound },
	}
	svc := NewDestinationService(repo, nil, nil, 0)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), domain.ErrNotFound)
}
