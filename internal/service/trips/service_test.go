package trips

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	tripItemRepo "github.com/5n10sndkts-eng/Pulau-sub002/internal/infra/storage/tripitem"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/integrations/experiencecatalog"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/trips/models"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

type fakeTripItemRepo struct {
	items map[int64]*domain.TripItem

	updatedID   int64
	updatedTime types.TimeString
	deletedID   int64
}

func newFakeTripItemRepo(items ...*domain.TripItem) *fakeTripItemRepo {
	m := make(map[int64]*domain.TripItem)
	for _, it := range items {
		m[it.ID] = it
	}
	return &fakeTripItemRepo{items: m}
}

func (f *fakeTripItemRepo) GetByID(_ context.Context, id int64) (*domain.TripItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, tripItemRepo.ErrItemNotFound
	}
	return it, nil
}

func (f *fakeTripItemRepo) UpdateStartTime(_ context.Context, id int64, startTime types.TimeString) error {
	if _, ok := f.items[id]; !ok {
		return tripItemRepo.ErrItemNotFound
	}
	f.updatedID = id
	f.updatedTime = startTime
	return nil
}

func (f *fakeTripItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return tripItemRepo.ErrItemNotFound
	}
	delete(f.items, id)
	f.deletedID = id
	return nil
}

type fakeCatalogClient struct {
	duration string
}

func (f *fakeCatalogClient) GetExperience(_ context.Context, id int64) (*experiencecatalog.Experience, error) {
	if f.duration == "" {
		return nil, experiencecatalog.ErrExperienceNotFound
	}
	return &experiencecatalog.Experience{ID: id, Title: "test", Duration: f.duration}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func tripItem(id, tripID int64) *domain.TripItem {
	ts := types.TimeString("10:00")
	return &domain.TripItem{ID: id, TripID: tripID, ExperienceID: 42, StartTime: &ts}
}

func TestRescheduleItem(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the item", func(t *testing.T) {
		repo := newFakeTripItemRepo(tripItem(1, 7))
		svc := NewService(repo, &fakeCatalogClient{duration: "2 hours"}, noopLogger{})

		err := svc.RescheduleItem(ctx, &models.RescheduleRequest{
			TripID:       7,
			ItemID:       1,
			NewStartTime: types.TimeString("14:00"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), repo.updatedID)
		assert.Equal(t, "14:00", repo.updatedTime.String())
	})

	t.Run("item from another trip is reported as missing", func(t *testing.T) {
		repo := newFakeTripItemRepo(tripItem(1, 7))
		svc := NewService(repo, &fakeCatalogClient{duration: "1 hour"}, noopLogger{})

		err := svc.RescheduleItem(ctx, &models.RescheduleRequest{
			TripID:       8,
			ItemID:       1,
			NewStartTime: types.TimeString("14:00"),
		})
		assert.ErrorIs(t, err, ErrItemNotFound)
		assert.Zero(t, repo.updatedID)
	})

	t.Run("new time must fit the day window", func(t *testing.T) {
		repo := newFakeTripItemRepo(tripItem(1, 7))
		svc := NewService(repo, &fakeCatalogClient{duration: "2 hours"}, noopLogger{})

		// 22:00 + 2 часа выходит за 23:00
		err := svc.RescheduleItem(ctx, &models.RescheduleRequest{
			TripID:       7,
			ItemID:       1,
			NewStartTime: types.TimeString("22:00"),
		})
		assert.ErrorIs(t, err, ErrOutsideDayWindow)

		// До 06:00 тоже нельзя
		err = svc.RescheduleItem(ctx, &models.RescheduleRequest{
			TripID:       7,
			ItemID:       1,
			NewStartTime: types.TimeString("05:00"),
		})
		assert.ErrorIs(t, err, ErrOutsideDayWindow)
	})

	t.Run("invalid time string", func(t *testing.T) {
		repo := newFakeTripItemRepo(tripItem(1, 7))
		svc := NewService(repo, &fakeCatalogClient{duration: "1 hour"}, noopLogger{})

		err := svc.RescheduleItem(ctx, &models.RescheduleRequest{
			TripID:       7,
			ItemID:       1,
			NewStartTime: types.TimeString("25:99"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing experience", func(t *testing.T) {
		repo := newFakeTripItemRepo(tripItem(1, 7))
		svc := NewService(repo, &fakeCatalogClient{}, noopLogger{})

		err := svc.RescheduleItem(ctx, &models.RescheduleRequest{
			TripID:       7,
			ItemID:       1,
			NewStartTime: types.TimeString("14:00"),
		})
		assert.ErrorIs(t, err, ErrExperienceNotFound)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the item", func(t *testing.T) {
		repo := newFakeTripItemRepo(tripItem(1, 7))
		svc := NewService(repo, &fakeCatalogClient{duration: "1 hour"}, noopLogger{})

		require.NoError(t, svc.RemoveItem(ctx, &models.RemoveRequest{TripID: 7, ItemID: 1}))
		assert.Equal(t, int64(1), repo.deletedID)
	})

	t.Run("unknown item", func(t *testing.T) {
		repo := newFakeTripItemRepo()
		svc := NewService(repo, &fakeCatalogClient{duration: "1 hour"}, noopLogger{})

		err := svc.RemoveItem(ctx, &models.RemoveRequest{TripID: 7, ItemID: 1})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("item from another trip is reported as missing", func(t *testing.T) {
		repo := newFakeTripItemRepo(tripItem(1, 7))
		svc := NewService(repo, &fakeCatalogClient{duration: "1 hour"}, noopLogger{})

		err := svc.RemoveItem(ctx, &models.RemoveRequest{TripID: 8, ItemID: 1})
		assert.ErrorIs(t, err, ErrItemNotFound)
		assert.Zero(t, repo.deletedID)
	})
}
