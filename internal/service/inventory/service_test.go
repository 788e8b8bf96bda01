package inventory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	slotRepo "github.com/5n10sndkts-eng/Pulau-sub002/internal/infra/storage/slot"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory/models"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// fakeSlotRepo in-memory репозиторий, повторяющий семантику атомарных
// условных UPDATE: предикат и запись выполняются под одним мьютексом
type fakeSlotRepo struct {
	mu     sync.Mutex
	slots  map[int64]*domain.Slot
	nextID int64
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[int64]*domain.Slot), nextID: 1}
}

func (f *fakeSlotRepo) put(s *domain.Slot) *domain.Slot {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = f.nextID
	f.nextID++
	f.slots[s.ID] = s
	return s
}

func (f *fakeSlotRepo) Create(_ context.Context, s *domain.Slot) (*domain.Slot, error) {
	s.AvailableCount = s.TotalCapacity
	return f.put(s), nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSlotRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeSlotRepo) DecrementAvailable(_ context.Context, id int64, count int) (int, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return 0, 0, slotRepo.ErrSlotNotFound
	}
	if s.AvailableCount < count {
		return 0, 0, slotRepo.ErrInsufficientCapacity
	}
	s.AvailableCount -= count
	return s.AvailableCount, s.ExperienceID, nil
}

func (f *fakeSlotRepo) IncrementAvailableCapped(_ context.Context, id int64, count int) (int, int, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return 0, 0, 0, slotRepo.ErrSlotNotFound
	}
	prev := s.AvailableCount
	s.AvailableCount = min(s.TotalCapacity, s.AvailableCount+count)
	return s.AvailableCount, prev, s.ExperienceID, nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.slots[id]; !ok {
		return slotRepo.ErrSlotNotFound
	}
	delete(f.slots, id)
	return nil
}

type fakeBookingRepo struct {
	hasActive bool
}

func (f *fakeBookingRepo) ExistsActiveForSlot(context.Context, int64, time.Time, types.TimeString) (bool, error) {
	return f.hasActive, nil
}

type fakeAuditRecorder struct {
	mu      sync.Mutex
	entries []*domain.AuditLogEntry
}

func (f *fakeAuditRecorder) Record(entry *domain.AuditLogEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
}

func (f *fakeAuditRecorder) all() []*domain.AuditLogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.AuditLogEntry(nil), f.entries...)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(slots *fakeSlotRepo, bookings *fakeBookingRepo, audit *fakeAuditRecorder) *Service {
	return NewService(slots, bookings, audit, fakeTxManager{}, noopLogger{}, nil)
}

func seedSlot(repo *fakeSlotRepo, capacity, available int) *domain.Slot {
	return repo.put(&domain.Slot{
		ExperienceID:   42,
		SlotDate:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("10:00"),
		TotalCapacity:  capacity,
		AvailableCount: available,
	})
}

func TestDecrementAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		repo := newFakeSlotRepo()
		audit := &fakeAuditRecorder{}
		svc := newTestService(repo, &fakeBookingRepo{}, audit)
		slot := seedSlot(repo, 10, 10)

		result, err := svc.DecrementAvailability(ctx, &models.MutationRequest{SlotID: slot.ID, Count: 3, Actor: "user:1"})
		require.NoError(t, err)
		assert.Equal(t, 7, result.AvailableCount)

		entries := audit.all()
		require.Len(t, entries, 1)
		assert.Equal(t, -3, entries[0].Delta)
		assert.Equal(t, 7, entries[0].ResultingAvailableCount)
		assert.Equal(t, domain.AuditReasonCheckout, entries[0].Reason)
	})

	t.Run("non positive count is rejected", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := newTestService(repo, &fakeBookingRepo{}, &fakeAuditRecorder{})
		slot := seedSlot(repo, 10, 10)

		for _, count := range []int{0, -1} {
			_, err := svc.DecrementAvailability(ctx, &models.MutationRequest{SlotID: slot.ID, Count: count})
			assert.ErrorIs(t, err, ErrInvalidCount)
		}

		current, err := repo.GetByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, current.AvailableCount)
	})

	t.Run("insufficient inventory leaves state unchanged", func(t *testing.T) {
		repo := newFakeSlotRepo()
		audit := &fakeAuditRecorder{}
		svc := newTestService(repo, &fakeBookingRepo{}, audit)
		slot := seedSlot(repo, 10, 2)

		_, err := svc.DecrementAvailability(ctx, &models.MutationRequest{SlotID: slot.ID, Count: 3})
		assert.ErrorIs(t, err, ErrInsufficientInventory)
		assert.Empty(t, audit.all())

		// Декремент ровно на остаток после отказа проходит до нуля
		result, err := svc.DecrementAvailability(ctx, &models.MutationRequest{SlotID: slot.ID, Count: 2})
		require.NoError(t, err)
		assert.Equal(t, 0, result.AvailableCount)
	})

	t.Run("unknown slot", func(t *testing.T) {
		svc := newTestService(newFakeSlotRepo(), &fakeBookingRepo{}, &fakeAuditRecorder{})

		_, err := svc.DecrementAvailability(ctx, &models.MutationRequest{SlotID: 99, Count: 1})
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("concurrent callers never oversell", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := newTestService(repo, &fakeBookingRepo{}, &fakeAuditRecorder{})
		slot := seedSlot(repo, 10, 10)

		const callers = 30
		var wg sync.WaitGroup
		var successes int64
		var successMu sync.Mutex

		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := svc.DecrementAvailability(ctx, &models.MutationRequest{SlotID: slot.ID, Count: 1}); err == nil {
					successMu.Lock()
					successes++
					successMu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(10), successes)

		current, err := repo.GetByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, current.AvailableCount)
	})
}

func TestDecrementAvailabilityWithLock(t *testing.T) {
	ctx := context.Background()

	t.Run("returns slot metadata with new count", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := newTestService(repo, &fakeBookingRepo{}, &fakeAuditRecorder{})
		slot := seedSlot(repo, 5, 5)

		result, err := svc.DecrementAvailabilityWithLock(ctx, &models.MutationRequest{SlotID: slot.ID, Count: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, result.AvailableCount)
		assert.Equal(t, slot.ExperienceID, result.Slot.ExperienceID)
	})

	t.Run("insufficient inventory inside transaction", func(t *testing.T) {
		repo := newFakeSlotRepo()
		audit := &fakeAuditRecorder{}
		svc := newTestService(repo, &fakeBookingRepo{}, audit)
		slot := seedSlot(repo, 5, 1)

		_, err := svc.DecrementAvailabilityWithLock(ctx, &models.MutationRequest{SlotID: slot.ID, Count: 2})
		assert.ErrorIs(t, err, ErrInsufficientInventory)
		assert.Empty(t, audit.all())
	})
}

func TestIncrementAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("plain increment", func(t *testing.T) {
		repo := newFakeSlotRepo()
		audit := &fakeAuditRecorder{}
		svc := newTestService(repo, &fakeBookingRepo{}, audit)
		slot := seedSlot(repo, 10, 5)

		result, err := svc.IncrementAvailability(ctx, &models.MutationRequest{SlotID: slot.ID, Count: 3})
		require.NoError(t, err)
		assert.Equal(t, 8, result.AvailableCount)
		assert.Equal(t, 3, result.AppliedDelta)
	})

	t.Run("capped at total capacity", func(t *testing.T) {
		repo := newFakeSlotRepo()
		audit := &fakeAuditRecorder{}
		svc := newTestService(repo, &fakeBookingRepo{}, audit)
		slot := seedSlot(repo, 10, 9)

		result, err := svc.IncrementAvailability(ctx, &models.MutationRequest{SlotID: slot.ID, Count: 5})
		require.NoError(t, err)
		assert.Equal(t, 10, result.AvailableCount)
		assert.Equal(t, 1, result.AppliedDelta)

		// В журнал уходит фактическая дельта, не запрошенная
		entries := audit.all()
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].Delta)
		assert.Equal(t, domain.AuditReasonRestore, entries[0].Reason)
	})

	t.Run("increment at full capacity is a no-op without audit", func(t *testing.T) {
		repo := newFakeSlotRepo()
		audit := &fakeAuditRecorder{}
		svc := newTestService(repo, &fakeBookingRepo{}, audit)
		slot := seedSlot(repo, 10, 10)

		result, err := svc.IncrementAvailability(ctx, &models.MutationRequest{SlotID: slot.ID, Count: 4})
		require.NoError(t, err)
		assert.Equal(t, 10, result.AvailableCount)
		assert.Equal(t, 0, result.AppliedDelta)
		assert.Empty(t, audit.all())
	})

	t.Run("non positive count is rejected", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := newTestService(repo, &fakeBookingRepo{}, &fakeAuditRecorder{})
		slot := seedSlot(repo, 10, 5)

		_, err := svc.IncrementAvailability(ctx, &models.MutationRequest{SlotID: slot.ID, Count: 0})
		assert.ErrorIs(t, err, ErrInvalidCount)
	})
}

func TestCreateSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("available equals capacity on creation", func(t *testing.T) {
		repo := newFakeSlotRepo()
		audit := &fakeAuditRecorder{}
		svc := newTestService(repo, &fakeBookingRepo{}, audit)

		result, err := svc.CreateSlot(ctx, &models.CreateSlotRequest{
			ExperienceID:  42,
			SlotDate:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			StartTime:     types.TimeString("10:00"),
			TotalCapacity: 12,
			Actor:         "user:7",
		})
		require.NoError(t, err)
		assert.Equal(t, 12, result.AvailableCount)
		assert.Equal(t, 12, result.TotalCapacity)

		entries := audit.all()
		require.Len(t, entries, 1)
		assert.Equal(t, domain.AuditReasonSlotCreated, entries[0].Reason)
	})

	t.Run("negative capacity is rejected", func(t *testing.T) {
		svc := newTestService(newFakeSlotRepo(), &fakeBookingRepo{}, &fakeAuditRecorder{})

		_, err := svc.CreateSlot(ctx, &models.CreateSlotRequest{
			ExperienceID:  42,
			SlotDate:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			StartTime:     types.TimeString("10:00"),
			TotalCapacity: -1,
		})
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})
}

func TestDeleteSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("slot without bookings is deleted", func(t *testing.T) {
		repo := newFakeSlotRepo()
		audit := &fakeAuditRecorder{}
		svc := newTestService(repo, &fakeBookingRepo{hasActive: false}, audit)
		slot := seedSlot(repo, 10, 4)

		require.NoError(t, svc.DeleteSlot(ctx, &models.DeleteSlotRequest{SlotID: slot.ID, Actor: "user:7"}))

		_, err := repo.GetByID(ctx, slot.ID)
		assert.ErrorIs(t, err, slotRepo.ErrSlotNotFound)

		entries := audit.all()
		require.Len(t, entries, 1)
		assert.Equal(t, domain.AuditReasonSlotDeleted, entries[0].Reason)
		assert.Equal(t, -4, entries[0].Delta)
		assert.Equal(t, 0, entries[0].ResultingAvailableCount)
	})

	t.Run("active bookings block deletion", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := newTestService(repo, &fakeBookingRepo{hasActive: true}, &fakeAuditRecorder{})
		slot := seedSlot(repo, 10, 4)

		err := svc.DeleteSlot(ctx, &models.DeleteSlotRequest{SlotID: slot.ID})
		assert.ErrorIs(t, err, ErrHasExistingBookings)

		// Слот остался на месте
		_, getErr := repo.GetByID(ctx, slot.ID)
		assert.NoError(t, getErr)
	})

	t.Run("unknown slot", func(t *testing.T) {
		svc := newTestService(newFakeSlotRepo(), &fakeBookingRepo{}, &fakeAuditRecorder{})

		err := svc.DeleteSlot(ctx, &models.DeleteSlotRequest{SlotID: 99})
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})
}
