package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
)

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLogEntry
	err     error
}

func (f *fakeAuditRepo) Append(_ context.Context, entry *domain.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func entry(slotID int64) *domain.AuditLogEntry {
	return &domain.AuditLogEntry{
		SlotID:       slotID,
		ExperienceID: 42,
		Delta:        -1,
		Actor:        "user:1",
		Reason:       domain.AuditReasonCheckout,
	}
}

func TestRecorder(t *testing.T) {
	t.Run("entries are written by the worker", func(t *testing.T) {
		repo := &fakeAuditRepo{}
		recorder := NewRecorder(repo, 16, noopLogger{}, nil)

		for i := int64(1); i <= 5; i++ {
			recorder.Record(entry(i))
		}
		recorder.Close()

		assert.Equal(t, 5, repo.count())
	})

	t.Run("record never blocks on a full queue", func(t *testing.T) {
		repo := &fakeAuditRepo{}
		recorder := NewRecorder(repo, 1, noopLogger{}, nil)

		// Очередь размера 1: при шквале записей часть теряется,
		// но вызовы возвращаются сразу
		for i := int64(1); i <= 100; i++ {
			recorder.Record(entry(i))
		}
		recorder.Close()

		assert.LessOrEqual(t, repo.count(), 100)
		assert.Greater(t, repo.count(), 0)
	})

	t.Run("storage failure does not escape", func(t *testing.T) {
		repo := &fakeAuditRepo{err: errors.New("db down")}
		recorder := NewRecorder(repo, 16, noopLogger{}, nil)

		require.NotPanics(t, func() {
			recorder.Record(entry(1))
			recorder.Close()
		})
		assert.Equal(t, 0, repo.count())
	})

	t.Run("record after close drops the entry", func(t *testing.T) {
		repo := &fakeAuditRepo{}
		recorder := NewRecorder(repo, 16, noopLogger{}, nil)
		recorder.Close()

		require.NotPanics(t, func() {
			recorder.Record(entry(1))
		})
		assert.Equal(t, 0, repo.count())
	})

	t.Run("double close is safe", func(t *testing.T) {
		recorder := NewRecorder(&fakeAuditRepo{}, 16, noopLogger{}, nil)
		recorder.Close()
		require.NotPanics(t, recorder.Close)
	})
}
