package detect_conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/integrations/experiencecatalog"
)

type fakeTripItemRepo struct {
	items []*domain.TripItem
	err   error
}

func (f *fakeTripItemRepo) GetByTripAndDate(context.Context, int64, time.Time) ([]*domain.TripItem, error) {
	return f.items, f.err
}

type fakeCatalogClient struct {
	experiences map[int64]*experiencecatalog.Experience
	calls       int
}

func (f *fakeCatalogClient) GetExperience(_ context.Context, id int64) (*experiencecatalog.Experience, error) {
	f.calls++
	exp, ok := f.experiences[id]
	if !ok {
		return nil, experiencecatalog.ErrExperienceNotFound
	}
	return exp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func experienceWithDuration(id int64, duration string) *experiencecatalog.Experience {
	return &experiencecatalog.Experience{ID: id, Title: "test", Duration: duration}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("overlapping pair is reported", func(t *testing.T) {
		repo := &fakeTripItemRepo{items: []*domain.TripItem{
			scheduledTripItem(1, 10, "10:00"),
			scheduledTripItem(2, 11, "11:00"),
		}}
		catalog := &fakeCatalogClient{experiences: map[int64]*experiencecatalog.Experience{
			10: experienceWithDuration(10, "2 hours"),
			11: experienceWithDuration(11, "1 hour"),
		}}
		uc := NewUseCase(repo, catalog, noopLogger{})

		resp, err := uc.Execute(ctx, &Request{TripID: 1, Date: date})
		require.NoError(t, err)
		require.Len(t, resp.Conflicts, 1)
		assert.Equal(t, int64(1), resp.Conflicts[0].ItemID1)
		assert.Equal(t, int64(2), resp.Conflicts[0].ItemID2)
		assert.Equal(t, 60, resp.Conflicts[0].OverlapMinutes)
	})

	t.Run("clean schedule yields empty list", func(t *testing.T) {
		repo := &fakeTripItemRepo{items: []*domain.TripItem{
			scheduledTripItem(1, 10, "08:00"),
			scheduledTripItem(2, 11, "12:00"),
		}}
		catalog := &fakeCatalogClient{experiences: map[int64]*experiencecatalog.Experience{
			10: experienceWithDuration(10, "2 hours"),
			11: experienceWithDuration(11, "1 hour"),
		}}
		uc := NewUseCase(repo, catalog, noopLogger{})

		resp, err := uc.Execute(ctx, &Request{TripID: 1, Date: date})
		require.NoError(t, err)
		assert.Empty(t, resp.Conflicts)
	})

	t.Run("one catalog call per distinct experience", func(t *testing.T) {
		repo := &fakeTripItemRepo{items: []*domain.TripItem{
			scheduledTripItem(1, 10, "08:00"),
			scheduledTripItem(2, 10, "12:00"),
			scheduledTripItem(3, 10, "15:00"),
		}}
		catalog := &fakeCatalogClient{experiences: map[int64]*experiencecatalog.Experience{
			10: experienceWithDuration(10, "1 hour"),
		}}
		uc := NewUseCase(repo, catalog, noopLogger{})

		_, err := uc.Execute(ctx, &Request{TripID: 1, Date: date})
		require.NoError(t, err)
		assert.Equal(t, 1, catalog.calls)
	})

	t.Run("unscheduled items never participate", func(t *testing.T) {
		repo := &fakeTripItemRepo{items: []*domain.TripItem{
			scheduledTripItem(1, 10, "10:00"),
			{ID: 2, TripID: 1, ExperienceID: 10, StartTime: nil},
		}}
		catalog := &fakeCatalogClient{experiences: map[int64]*experiencecatalog.Experience{
			10: experienceWithDuration(10, "8 hours"),
		}}
		uc := NewUseCase(repo, catalog, noopLogger{})

		resp, err := uc.Execute(ctx, &Request{TripID: 1, Date: date})
		require.NoError(t, err)
		assert.Empty(t, resp.Conflicts)
	})

	t.Run("missing experience", func(t *testing.T) {
		repo := &fakeTripItemRepo{items: []*domain.TripItem{scheduledTripItem(1, 99, "10:00")}}
		catalog := &fakeCatalogClient{experiences: map[int64]*experiencecatalog.Experience{}}
		uc := NewUseCase(repo, catalog, noopLogger{})

		_, err := uc.Execute(ctx, &Request{TripID: 1, Date: date})
		assert.ErrorIs(t, err, ErrExperienceNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewUseCase(&fakeTripItemRepo{}, &fakeCatalogClient{}, noopLogger{})

		_, err := uc.Execute(ctx, &Request{TripID: 0, Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{TripID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
