// Package history keeps a local log of publish runs so operators can audit
// what was deployed and when.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PublishRecord captures one publish run.
type PublishRecord struct {
	bun.BaseModel `bun:"table:publish_records,alias:pr"`

	ID         uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	GuideID    uuid.UUID `bun:"guide_id,notnull,type:uuid" json:"guide_id"`
	InputPath  string    `bun:"input_path,notnull" json:"input_path"`
	OutputPath string    `bun:"output_path,notnull" json:"output_path"`
	Checksum   string    `bun:"checksum,notnull" json:"checksum"`
	Theme      string    `bun:"theme,notnull" json:"theme"`
	Skipped    bool      `bun:"skipped" json:"skipped"`
	DurationMS int64     `bun:"duration_ms" json:"duration_ms"`
	CreatedAt  time.Time `bun:"created_at,notnull" json:"created_at"`
}

// NotFoundError signals a missing history record.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}
