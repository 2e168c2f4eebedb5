package history

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository stores publish records.
type Repository interface {
	Record(ctx context.Context, record *PublishRecord) (*PublishRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PublishRecord, error)
	Recent(ctx context.Context, limit int) ([]*PublishRecord, error)
	Prune(ctx context.Context, keep int) (int, error)
}

// NewPublishRecordRepository creates the generic bun repository for publish records.
func NewPublishRecordRepository(db *bun.DB) repository.Repository[*PublishRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PublishRecord]{
		NewRecord:          func() *PublishRecord { return &PublishRecord{} },
		GetID:              func(record *PublishRecord) uuid.UUID { return record.ID },
		SetID:              func(record *PublishRecord, id uuid.UUID) { record.ID = id },
		GetIdentifier:      func() string { return "checksum" },
		GetIdentifierValue: func(record *PublishRecord) string { return record.Checksum },
	})
}
