package history

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository implements Repository on a bun database.
type BunRepository struct {
	db   *bun.DB
	repo repository.Repository[*PublishRecord]
}

// NewBunRepository creates a publish history repository.
func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{
		db:   db,
		repo: NewPublishRecordRepository(db),
	}
}

// EnsureSchema creates the publish_records table when it does not exist.
func (r *BunRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.NewCreateTable().
		Model((*PublishRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("history: ensure schema: %w", err)
	}
	return nil
}

func (r *BunRepository) Record(ctx context.Context, record *PublishRecord) (*PublishRecord, error) {
	if record == nil {
		return nil, nil
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("history repository error: %w", err)
	}
	return created, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*PublishRecord, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "publish record", id.String())
	}
	return record, nil
}

func (r *BunRepository) Recent(ctx context.Context, limit int) ([]*PublishRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("pr.created_at DESC")
		}),
		repository.SelectPaginate(limit, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("history repository error: %w", err)
	}
	return records, nil
}

// Prune removes all but the newest keep records and reports how many rows
// were deleted.
func (r *BunRepository) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := r.db.NewDelete().
		Model((*PublishRecord)(nil)).
		Where("id NOT IN (SELECT id FROM publish_records ORDER BY created_at DESC LIMIT ?)", keep).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("history: prune: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return int(affected), nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
