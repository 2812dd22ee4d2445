package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nmarks/rolo/internal/database"
	"github.com/nmarks/rolo/internal/database/repository"
)

func newTestDB(t *testing.T) (*repository.ContactRepo, *repository.TagRepo) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return repository.NewContactRepo(db), repository.NewTagRepo(db)
}

func TestImportCSV(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	contacts, tags := newTestDB(t)
	svc := &ImportService{Contacts: contacts, Tags: tags, DefaultTag: "imported"}

	data := strings.Join([]string{
		"name,email,phone,company",
		"Pete Mitchell,maverick@miramar.edu,555-0100,US Navy",
		"Nick Bradshaw,goose@miramar.edu,,US Navy",
		"Charlie Blackwood,cblackwood@civiliancontractor.com,,",
	}, "\n")

	res, err := svc.ImportCSV(ctx, strings.NewReader(data))
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Equal(t, 3, res.Imported)
	require.Equal(t, 0, res.Skipped)

	list, err := contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for _, c := range list {
		require.NotEmpty(t, c.ID)
		require.NotNil(t, c.SourceHash)
		require.Len(t, c.Tags, 1)
		require.Equal(t, "imported", c.Tags[0].Name)
	}

	byEmail, err := contacts.FindByEmail(ctx, "Maverick@Miramar.EDU")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	require.Equal(t, "Pete Mitchell", byEmail[0].Name)
	require.NotNil(t, byEmail[0].Phone)
	require.Equal(t, "555-0100", *byEmail[0].Phone)

	// Re-import skips every row via source hash.
	res2, err := svc.ImportCSV(ctx, strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 0, res2.Imported)
	require.Equal(t, 3, res2.Skipped)
	require.Empty(t, res2.Errors)
}

func TestImportCSVBadRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	contacts, tags := newTestDB(t)
	svc := &ImportService{Contacts: contacts, Tags: tags}

	data := strings.Join([]string{
		"Tom Kazansky,iceman@miramar.edu",
		"lonely-field",
		",",
	}, "\n")

	res, err := svc.ImportCSV(ctx, strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 1, res.Imported)
	require.Len(t, res.Errors, 2)

	list, err := contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Empty(t, list[0].Tags)
}
