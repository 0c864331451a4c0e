package journal

import (
	"context"

	"github.com/GlebRadaev/suilottery/internal/domain"
)

type Store interface {
	Record(ctx context.Context, o domain.Outcome) error
	Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}

// Writer records outcomes on a worker pool so a slow database never holds
// up the operation that produced them.
type Writer struct {
	store Store
	pool  WorkerPoolI
}

func NewWriter(store Store, workers int) *Writer {
	return &Writer{
		store: store,
		pool:  NewWorkerPool(workers),
	}
}

func (w *Writer) Record(ctx context.Context, o domain.Outcome) error {
	detached := context.WithoutCancel(ctx)
	return w.pool.AddTask(ctx, func() error {
		return w.store.Record(detached, o)
	})
}

func (w *Writer) Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	return w.store.Recent(ctx, limit)
}

// Close flushes pending writes.
func (w *Writer) Close() {
	w.pool.Close()
}
