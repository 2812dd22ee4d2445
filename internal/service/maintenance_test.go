package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nmarks/rolo/internal/database"
	"github.com/nmarks/rolo/internal/database/repository"
)

func newTestSQL(t *testing.T) (*sql.DB, *repository.ContactRepo, *repository.TagRepo) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, repository.NewContactRepo(db), repository.NewTagRepo(db)
}

func TestResetWipesData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, contacts, tags := newTestSQL(t)
	require.NoError(t, database.SeedDefaults(ctx, db))
	c := insertContact(t, contacts, repository.Contact{Name: "Pete Mitchell", Email: "maverick@miramar.edu"})

	work, err := tags.GetByName(ctx, "work")
	require.NoError(t, err)
	require.NotNil(t, work)
	require.NoError(t, contacts.SetTags(ctx, c.ID, []string{work.ID}))

	m := &MaintenanceService{DB: db}
	require.NoError(t, m.Reset(ctx))

	list, err := contacts.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	left, err := tags.List(ctx)
	require.NoError(t, err)
	require.Empty(t, left)
}

func TestPruneTags(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, contacts, tags := newTestSQL(t)
	require.NoError(t, database.SeedDefaults(ctx, db))
	c := insertContact(t, contacts, repository.Contact{Name: "Nick Bradshaw", Email: "goose@miramar.edu"})

	work, err := tags.GetByName(ctx, "work")
	require.NoError(t, err)
	require.NoError(t, contacts.SetTags(ctx, c.ID, []string{work.ID}))

	m := &MaintenanceService{DB: db}
	pruned, err := m.PruneTags(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, pruned) // family, friends, imported

	left, err := tags.List(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, "work", left[0].Name)
}
