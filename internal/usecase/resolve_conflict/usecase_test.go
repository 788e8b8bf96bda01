package resolve_conflict

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/integrations/experiencecatalog"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

type fakeTripItemRepo struct {
	items []*domain.TripItem
}

func (f *fakeTripItemRepo) GetByTripAndDate(context.Context, int64, time.Time) ([]*domain.TripItem, error) {
	return f.items, nil
}

type fakeCatalogClient struct {
	experiences map[int64]*experiencecatalog.Experience
}

func (f *fakeCatalogClient) GetExperience(_ context.Context, id int64) (*experiencecatalog.Experience, error) {
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

func item(id, experienceID int64, startTime string) *domain.TripItem {
	ts := types.TimeString(startTime)
	return &domain.TripItem{ID: id, TripID: 1, ExperienceID: experienceID, StartTime: &ts}
}

func experience(id int64, duration string) *experiencecatalog.Experience {
	return &experiencecatalog.Experience{ID: id, Title: "test", Duration: duration}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("both parties get earliest fitting slots", func(t *testing.T) {
		// Две двухчасовые позиции в 10:00; для каждой самое раннее окно,
		// не задевающее вторую - 06:00
		repo := &fakeTripItemRepo{items: []*domain.TripItem{
			item(1, 10, "10:00"),
			item(2, 11, "10:00"),
		}}
		catalog := &fakeCatalogClient{experiences: map[int64]*experiencecatalog.Experience{
			10: experience(10, "2 hours"),
			11: experience(11, "2 hours"),
		}}
		uc := NewUseCase(repo, catalog, noopLogger{})

		resp, err := uc.Execute(ctx, &Request{TripID: 1, Date: date, ItemID1: 1, ItemID2: 2})
		require.NoError(t, err)
		require.Len(t, resp.Suggestions, 2)

		for _, s := range resp.Suggestions {
			require.NotNil(t, s.ProposedStartTime)
			assert.Equal(t, "06:00", s.ProposedStartTime.String())
		}
	})

	t.Run("moved item is excluded from its own occupancy", func(t *testing.T) {
		// Позиция 1 занимает весь день кроме хвоста; для нее самой
		// предложение обязано игнорировать ее текущий интервал
		repo := &fakeTripItemRepo{items: []*domain.TripItem{
			item(1, 10, "06:00"),
			item(2, 11, "08:00"),
		}}
		catalog := &fakeCatalogClient{experiences: map[int64]*experiencecatalog.Experience{
			10: experience(10, "16 hours"),
			11: experience(11, "1 hour"),
		}}
		uc := NewUseCase(repo, catalog, noopLogger{})

		resp, err := uc.Execute(ctx, &Request{TripID: 1, Date: date, ItemID1: 1, ItemID2: 2})
		require.NoError(t, err)

		// Для шестнадцатичасовой позиции окна нет: день с чужим часом
		// в 08:00 ее не вмещает
		assert.Nil(t, resp.Suggestions[0].ProposedStartTime)

		// Для часовой позиции шестнадцатичасовая остается на месте
		// и занимает 06:00-22:00, свободен только хвост в 22:00
		require.NotNil(t, resp.Suggestions[1].ProposedStartTime)
		assert.Equal(t, "22:00", resp.Suggestions[1].ProposedStartTime.String())
	})

	t.Run("tight schedule reuses the freed interval", func(t *testing.T) {
		repo := &fakeTripItemRepo{items: []*domain.TripItem{
			item(1, 10, "06:00"),
			item(2, 10, "10:00"),
			item(3, 11, "14:00"),
			item(4, 11, "18:00"),
		}}
		catalog := &fakeCatalogClient{experiences: map[int64]*experiencecatalog.Experience{
			10: experience(10, "4 hours"),
			11: experience(11, "4 hours"),
		}}
		uc := NewUseCase(repo, catalog, noopLogger{})

		resp, err := uc.Execute(ctx, &Request{TripID: 1, Date: date, ItemID1: 1, ItemID2: 2})
		require.NoError(t, err)

		// День уложен плотно с 06:00 до 22:00; после исключения двигаемой
		// позиции свободен ровно ее бывший интервал
		require.NotNil(t, resp.Suggestions[0].ProposedStartTime)
		assert.Equal(t, "06:00", resp.Suggestions[0].ProposedStartTime.String())
	})

	t.Run("item missing on the date", func(t *testing.T) {
		repo := &fakeTripItemRepo{items: []*domain.TripItem{item(1, 10, "10:00")}}
		catalog := &fakeCatalogClient{experiences: map[int64]*experiencecatalog.Experience{
			10: experience(10, "1 hour"),
		}}
		uc := NewUseCase(repo, catalog, noopLogger{})

		_, err := uc.Execute(ctx, &Request{TripID: 1, Date: date, ItemID1: 1, ItemID2: 2})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("unscheduled item cannot be resolved", func(t *testing.T) {
		repo := &fakeTripItemRepo{items: []*domain.TripItem{
			item(1, 10, "10:00"),
			{ID: 2, TripID: 1, ExperienceID: 10, StartTime: nil},
		}}
		catalog := &fakeCatalogClient{experiences: map[int64]*experiencecatalog.Experience{
			10: experience(10, "1 hour"),
		}}
		uc := NewUseCase(repo, catalog, noopLogger{})

		_, err := uc.Execute(ctx, &Request{TripID: 1, Date: date, ItemID1: 1, ItemID2: 2})
		assert.ErrorIs(t, err, ErrItemNotScheduled)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewUseCase(&fakeTripItemRepo{}, &fakeCatalogClient{}, noopLogger{})

		cases := []*Request{
			{TripID: 0, Date: date, ItemID1: 1, ItemID2: 2},
			{TripID: 1, ItemID1: 1, ItemID2: 2},
			{TripID: 1, Date: date, ItemID1: 1, ItemID2: 1},
			{TripID: 1, Date: date, ItemID1: -1, ItemID2: 2},
		}
		for _, req := range cases {
			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})
}
