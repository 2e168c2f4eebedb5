package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newBunTestRepo(t *testing.T) *BunRepository {
	t.Helper()

	db, err := OpenMemorySQLite()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	repo := NewBunRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return repo
}

func TestBunRepositoryRecordAndGet(t *testing.T) {
	repo := newBunTestRepo(t)
	ctx := context.Background()

	created, err := repo.Record(ctx, &PublishRecord{
		GuideID:    uuid.New(),
		InputPath:  "GUIDE.md",
		OutputPath: "docs/index.html",
		Checksum:   "deadbeef",
		Theme:      "calm",
		DurationMS: 12,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if fetched.Checksum != "deadbeef" {
		t.Fatalf("expected checksum, got %q", fetched.Checksum)
	}
}

func TestBunRepositoryGetMissing(t *testing.T) {
	repo := newBunTestRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBunRepositoryRecentAndPrune(t *testing.T) {
	repo := newBunTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 6; i++ {
		_, err := repo.Record(ctx, &PublishRecord{
			GuideID:    uuid.New(),
			InputPath:  "GUIDE.md",
			OutputPath: "docs/index.html",
			Checksum:   "sum",
			Theme:      "calm",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].CreatedAt.Before(recent[1].CreatedAt) {
		t.Fatal("expected newest-first ordering")
	}

	removed, err := repo.Prune(ctx, 3)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}

	remaining, err := repo.Recent(ctx, 100)
	if err != nil {
		t.Fatalf("recent after prune: %v", err)
	}
	if len(remaining) != 3 {
		t.Fatalf("expected 3 remaining, got %d", len(remaining))
	}
}
