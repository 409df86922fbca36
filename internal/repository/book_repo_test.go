package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/rolodex/internal/db"
	"github.com/andy/rolodex/internal/domain"
)

func newTestRepo(t *testing.T) *BookRepo {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "rolodex.db"), "test-key")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, database.RunMigrations())
	return NewBookRepo(database)
}

func phoneStrings(r *domain.Record) []string {
	out := make([]string, 0, len(r.Phones()))
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func TestLoadEmptyDatabase(t *testing.T) {
	repo := newTestRepo(t)

	book, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	book := domain.NewAddressBook()

	// Charlie first so load order differs from alphabetical order.
	charlie := domain.NewRecord("Charlie")
	require.NoError(t, charlie.AddPhone("1234567890"))
	require.NoError(t, charlie.AddPhone("0987654321"))
	// Duplicate number must survive the round trip.
	require.NoError(t, charlie.AddPhone("1234567890"))
	require.NoError(t, charlie.SetBirthday("29.02.2020"))
	book.Add(charlie)

	alice := domain.NewRecord("Alice")
	require.NoError(t, alice.AddPhone("5556667778"))
	book.Add(alice)

	// No phones, no birthday.
	book.Add(domain.NewRecord("Bob"))

	require.NoError(t, repo.Save(ctx, book))
	// Saving twice must not duplicate anything.
	require.NoError(t, repo.Save(ctx, book))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Len())

	var names []string
	for _, record := range loaded.Records() {
		names = append(names, record.Name())
	}
	assert.Equal(t, []string{"Charlie", "Alice", "Bob"}, names, "book insertion order must survive")

	gotCharlie := loaded.Find("Charlie")
	require.NotNil(t, gotCharlie)
	assert.Equal(t, []string{"1234567890", "0987654321", "1234567890"}, phoneStrings(gotCharlie),
		"phone order and duplicates must survive")
	require.NotNil(t, gotCharlie.Birthday())
	assert.Equal(t, "29.02.2020", gotCharlie.Birthday().String(), "raw birthday text must survive")

	gotAlice := loaded.Find("Alice")
	require.NotNil(t, gotAlice)
	assert.Equal(t, []string{"5556667778"}, phoneStrings(gotAlice))

	gotBob := loaded.Find("Bob")
	require.NotNil(t, gotBob)
	assert.Empty(t, gotBob.Phones())
	assert.Nil(t, gotBob.Birthday())
}

func TestSaveOverwritesPriorState(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	book := domain.NewAddressBook()
	alice := domain.NewRecord("Alice")
	require.NoError(t, alice.AddPhone("1234567890"))
	book.Add(alice)
	bob := domain.NewRecord("Bob")
	require.NoError(t, bob.AddPhone("0987654321"))
	book.Add(bob)
	require.NoError(t, repo.Save(ctx, book))

	// Mutate: drop Bob, change Alice's phone, then save again.
	book.Delete("Bob")
	require.NoError(t, alice.EditPhone("1234567890", "1112223334"))
	require.NoError(t, repo.Save(ctx, book))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.Nil(t, loaded.Find("Bob"), "save must overwrite, not merge")

	gotAlice := loaded.Find("Alice")
	require.NotNil(t, gotAlice)
	assert.Equal(t, []string{"1112223334"}, phoneStrings(gotAlice))
}
