package audit

import (
	"context"
	"sync"
	"time"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
)

// Таймаут одной попытки записи audit-записи в хранилище
const appendTimeout = 5 * time.Second

// Recorder асинхронный писатель audit-журнала
//
// Мутация инвентаря не ждет записи в журнал и не откатывается при её неудаче:
// Record кладет запись в буферизованную очередь и сразу возвращает управление.
// Фоновый воркер пишет записи в хранилище; неудачи уходят в лог ошибок и
// метрики, но никогда не наружу
type Recorder struct {
	repo    AuditRepository
	logger  Logger
	metrics Metrics // может быть nil, если метрики выключены

	queue chan *domain.AuditLogEntry

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewRecorder создает писатель и запускает фоновый воркер
func NewRecorder(repo AuditRepository, queueSize int, logger Logger, metrics Metrics) *Recorder {
	r := &Recorder{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		queue:   make(chan *domain.AuditLogEntry, queueSize),
	}

	r.wg.Add(1)
	go r.worker()

	return r
}

// Record ставит запись в очередь на запись
// Никогда не блокируется: при переполненной очереди запись теряется,
// потеря логируется и учитывается в метриках
func (r *Recorder) Record(entry *domain.AuditLogEntry) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		r.logger.Error("audit: recorder closed, entry dropped: slot=%d reason=%s", entry.SlotID, entry.Reason)
		r.observeDropped()
		return
	}

	select {
	case r.queue <- entry:
		r.mu.Unlock()
	default:
		r.mu.Unlock()
		r.logger.Error("audit: queue full, entry dropped: slot=%d reason=%s", entry.SlotID, entry.Reason)
		r.observeDropped()
	}
}

// Close останавливает прием новых записей и дожидается записи оставшихся
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Recorder) worker() {
	defer r.wg.Done()

	for entry := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
		err := r.repo.Append(ctx, entry)
		cancel()

		if err != nil {
			// Журнал - best effort: фиксируем неудачу в операционном канале,
			// не трогая уже примененную мутацию инвентаря
			r.logger.Error("audit: failed to append entry: slot=%d delta=%d reason=%s: %v",
				entry.SlotID, entry.Delta, entry.Reason, err)
			r.observeWrite("error")
			continue
		}

		r.observeWrite("ok")
	}
}

func (r *Recorder) observeWrite(result string) {
	if r.metrics != nil {
		r.metrics.ObserveAuditWrite(result)
	}
}

func (r *Recorder) observeDropped() {
	if r.metrics != nil {
		r.metrics.ObserveAuditDropped()
	}
}
