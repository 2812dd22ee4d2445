package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nmarks/rolo/internal/database/repository"
)

func fixture() []repository.Contact {
	navy := "US Navy"
	return []repository.Contact{
		{ID: "1", Name: "Pete Mitchell", Email: "maverick@miramar.edu", Company: &navy},
		{ID: "2", Name: "Nick Bradshaw", Email: "goose@miramar.edu", Tags: []repository.Tag{{ID: "t", Name: "wingman"}}},
		{ID: "3", Name: "Charlie Blackwood", Email: "cblackwood@civiliancontractor.com"},
		{ID: "4", Name: "Tom Kazansky", Email: "iceman@miramar.edu"},
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	t.Parallel()

	contacts := fixture()
	require.Equal(t, contacts, Search(contacts, ""))
	require.Equal(t, contacts, Search(contacts, "   "))
}

func TestSearchSubstring(t *testing.T) {
	t.Parallel()

	contacts := fixture()

	got := Search(contacts, "mitchell")
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].ID)

	// email matches too
	got = Search(contacts, "goose")
	require.Len(t, got, 1)
	require.Equal(t, "2", got[0].ID)

	// company and tag
	require.Len(t, Search(contacts, "navy"), 1)
	require.Len(t, Search(contacts, "wingman"), 1)

	// shared domain hits several
	require.Len(t, Search(contacts, "miramar"), 3)
}

func TestSearchFuzzyFallback(t *testing.T) {
	t.Parallel()

	contacts := fixture()

	// one transposition away from "iceman"
	got := Search(contacts, "icemna")
	require.NotEmpty(t, got)
	require.Equal(t, "4", got[0].ID)

	// nothing within range
	require.Empty(t, Search(contacts, "zzzzzzzzzz"))
}

func TestSearchFuzzyOrdersByDistance(t *testing.T) {
	t.Parallel()

	contacts := []repository.Contact{
		{ID: "far", Name: "Peet"},
		{ID: "near", Name: "Pete"},
	}
	got := Search(contacts, "pety")
	require.Len(t, got, 2)
	// "pete" is distance 1 from "pety", "peet" is distance 2
	require.Equal(t, "near", got[0].ID)
	require.Equal(t, "far", got[1].ID)
}
