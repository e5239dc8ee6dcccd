package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perillat/noteshare/notes"
)

// TestNoteRepository runs the repository contract against any
// implementation.
func TestNoteRepository(t *testing.T, repo notes.Repository) {
	fixtures := []*notes.Note{
		{Title: "groceries", Body: "eggs, flour", Type: "list", OwnerID: 1},
		{Title: "ideas", Body: "", Type: "", OwnerID: 1},
		{Title: "standup", Body: "yesterday, today", Type: "work", OwnerID: 2},
	}

	for _, note := range fixtures {
		err := repo.Insert(note)
		require.NoError(t, err, "insert should not fail")
		assert.NotZero(t, note.ID, "insert should assign an id")
		assert.False(t, note.CreatedAt.IsZero(), "insert should assign a creation time")
	}

	got, err := repo.Get(fixtures[0].ID)
	require.NoError(t, err, "get should not fail")
	require.NotNil(t, got, "note should be found")
	assert.Equal(t, "groceries", got.Title)
	assert.Equal(t, 1, got.OwnerID)

	got, err = repo.Get(12312)
	require.NoError(t, err, "get on an unknown id should not fail")
	assert.Nil(t, got, "unknown id should yield nil")

	owned, err := repo.ListByOwner(1)
	require.NoError(t, err, "list by owner should not fail")
	assert.Len(t, owned, 2)

	owned, err = repo.ListByOwner(42)
	require.NoError(t, err, "list by owner should not fail")
	assert.NotNil(t, owned, "no notes should be an empty list, not nil")
	assert.Len(t, owned, 0)

	// Share the first note with user 2.
	grant := &notes.ShareGrant{NoteID: fixtures[0].ID, GranteeID: 2}
	err = repo.InsertGrant(grant)
	require.NoError(t, err, "insert grant should not fail")
	assert.NotZero(t, grant.ID, "insert should assign an id")

	found, err := repo.GetGrant(fixtures[0].ID, 2)
	require.NoError(t, err, "get grant should not fail")
	require.NotNil(t, found, "grant should be found")
	assert.Equal(t, grant.ID, found.ID)

	found, err = repo.GetGrant(fixtures[0].ID, 3)
	require.NoError(t, err, "get grant should not fail")
	assert.Nil(t, found, "no grant should yield nil")

	shared, err := repo.ListGrantedTo(2)
	require.NoError(t, err, "list granted should not fail")
	require.Len(t, shared, 1)
	assert.Equal(t, fixtures[0].ID, shared[0].ID)

	shared, err = repo.ListGrantedTo(3)
	require.NoError(t, err, "list granted should not fail")
	assert.NotNil(t, shared, "no shared notes should be an empty list, not nil")
	assert.Len(t, shared, 0)
}
