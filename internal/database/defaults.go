package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/nmarks/rolo/internal/database/repository"
)

// SeedDefaults ensures baseline tags exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	tagRepo := repository.NewTagRepo(db)
	existing, err := tagRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	defaults := []string{
		"family",
		"friends",
		"work",
		"imported",
	}
	for _, name := range defaults {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("tag:"+name)).String()
		if err := tagRepo.Upsert(ctx, repository.Tag{ID: id, Name: name}); err != nil {
			return err
		}
	}
	return nil
}
