// Package journal keeps a local record of every transaction-then-mirror
// outcome so that a chain/backend divergence stays visible. It never retries.
package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/suilottery/internal/domain"
	"github.com/GlebRadaev/suilottery/internal/pg"
)

const defaultLimit = 50

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Record(ctx context.Context, o domain.Outcome) error {
	if o.At.IsZero() {
		o.At = time.Now()
	}
	e := o.Entry(uuid.NewString())
	query := `
		INSERT INTO operation_journal (id, kind, lottery_id, digest, chain_error, mirror_attempted, mirror_error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, e.ID, string(e.Kind), e.LotteryID, e.Digest, e.ChainError, e.MirrorAttempted, e.MirrorError, e.CreatedAt)
	if err != nil {
		zap.L().Error("can't save journal entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	query := `
		SELECT id, kind, lottery_id, digest, chain_error, mirror_attempted, mirror_error, created_at
		FROM operation_journal
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch journal", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var (
			e    domain.JournalEntry
			kind string
		)
		if err := rows.Scan(&e.ID, &kind, &e.LotteryID, &e.Digest, &e.ChainError, &e.MirrorAttempted, &e.MirrorError, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan journal row", zap.Error(err))
			return nil, err
		}
		e.Kind = domain.OperationKind(kind)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Nop is used when no database is configured.
type Nop struct{}

func (Nop) Record(context.Context, domain.Outcome) error {
	return nil
}

func (Nop) Recent(context.Context, int) ([]domain.JournalEntry, error) {
	return nil, nil
}
