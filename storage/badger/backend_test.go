package badger

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/wallkit/core"
	"github.com/poiesic/wallkit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepositories opens in-memory repositories closed at test cleanup.
func newTestRepositories(t *testing.T, opts ...Option) (*PostRepository, *NoteRepository, *ChatRepository) {
	t.Helper()
	posts, notes, chats, backend, err := NewMemoryRepositories(opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		chats.Close()
		notes.Close()
		posts.Close()
		backend.Close()
	})
	return posts.(*PostRepository), notes.(*NoteRepository), chats.(*ChatRepository)
}

// stepClock returns a clock starting at start and advancing by step per reading.
func stepClock(start time.Time, step time.Duration) core.Clock {
	var mu sync.Mutex
	next := start.UTC()
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}

// fixedClock returns a clock that always reads t.
func fixedClock(t time.Time) core.Clock {
	return func() time.Time { return t.UTC() }
}

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "db")
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	info, err := os.Stat(tmpDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenBackend_NotADirectory(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

	backend, err := OpenBackend(tmpFile, false)
	if backend != nil {
		backend.Close()
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)

	assert.False(t, backend.IsClosed())
	require.NoError(t, backend.Close())
	assert.True(t, backend.IsClosed())
}

func TestBackend_ClosedOperations(t *testing.T) {
	posts, notes, chats, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	ctx := context.Background()

	_, err = posts.AddPost(ctx, &core.Post{Text: "before close"})
	require.NoError(t, err)

	require.NoError(t, chats.Close())
	require.NoError(t, notes.Close())
	require.NoError(t, posts.Close())
	require.NoError(t, backend.Close())

	err = backend.WithTx(func(tx *badger.Txn) error { return nil }, false)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = backend.GetSequence("seq:test")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = backend.DeletePrefix(postPrefix)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = posts.FindPostByID(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = posts.AddPost(ctx, &core.Post{Text: "after close"})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = notes.GetNotes(ctx, core.DefaultOwnerID, core.SortAscending)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = chats.SendMessage(ctx, 2, "after close")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestIDSequence_StartsAtOneAndResets(t *testing.T) {
	backend, err := OpenBackend("", true, WithSequenceBandwidth(3))
	require.NoError(t, err)
	defer backend.Close()

	seq, err := newIDSequence(backend, "seq:test")
	require.NoError(t, err)
	defer seq.Release()

	for want := core.ID(1); want <= 7; want++ {
		got, err := seq.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	require.NoError(t, seq.Reset())
	got, err := seq.Next()
	require.NoError(t, err)
	assert.Equal(t, core.ID(1), got)
}

func TestDeletePrefix(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	err = backend.WithTx(func(tx *badger.Txn) error {
		for i := core.ID(1); i <= 5; i++ {
			if err := tx.Set(makeChatKey(i), []byte("c")); err != nil {
				return err
			}
			if err := tx.Set(makeParticipantKey(core.UserID(i)), []byte("p")); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	require.NoError(t, err)

	require.NoError(t, backend.DeletePrefix(chatPrefix))
	// Nothing left to delete is not an error
	require.NoError(t, backend.DeletePrefix(chatPrefix))

	err = backend.WithTx(func(tx *badger.Txn) error {
		exists, err := keyExists(tx, makeChatKey(1))
		require.NoError(t, err)
		assert.False(t, exists)

		// "chat:" must not match "chatp:"
		exists, err = keyExists(tx, makeParticipantKey(1))
		require.NoError(t, err)
		assert.True(t, exists)
		return nil
	}, false)
	require.NoError(t, err)
}

func TestKeyOrderMatchesIDOrder(t *testing.T) {
	posts, _, _ := newTestRepositories(t)
	ctx := context.Background()

	// Enough posts to cross a byte boundary in the key encoding
	for i := 0; i < 300; i++ {
		_, err := posts.AddPost(ctx, &core.Post{Text: "p"})
		require.NoError(t, err)
	}

	all, err := posts.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 300)
	for i, p := range all {
		assert.Equal(t, core.ID(i+1), p.Id)
	}
}
