package inbox

import (
	"context"
	"log/slog"
	"testing"

	"github.com/poiesic/wallkit/core"
	"github.com/poiesic/wallkit/storage"
	"github.com/poiesic/wallkit/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDigest(t *testing.T) (*Digest, storage.ChatRepository) {
	t.Helper()
	posts, notes, chats, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		chats.Close()
		notes.Close()
		posts.Close()
		backend.Close()
	})

	digest, err := NewDigest(chats)
	require.NoError(t, err)
	return digest, chats
}

func TestNewDigest(t *testing.T) {
	_, chats := setupTestDigest(t)

	t.Run("valid configuration", func(t *testing.T) {
		digest, err := NewDigest(chats)
		require.NoError(t, err)
		assert.NotNil(t, digest)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		digest, err := NewDigest(chats, WithLogger(nil))
		require.NoError(t, err)
		assert.Equal(t, slog.Default(), digest.logger)
	})

	t.Run("nil chat repository", func(t *testing.T) {
		_, err := NewDigest(nil)
		assert.Equal(t, ErrChatRepositoryRequired, err)
	})
}

func TestSummarize(t *testing.T) {
	digest, chats := setupTestDigest(t)
	ctx := context.Background()

	summary, err := digest.Summarize(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Entries)
	assert.Equal(t, 0, summary.UnreadChats)

	for _, p := range []core.UserID{2, 3, 4} {
		_, err := chats.SendMessage(ctx, p, "hello")
		require.NoError(t, err)
		_, err = chats.SendMessage(ctx, p, "how are you")
		require.NoError(t, err)
	}
	_, err = chats.GetMessages(ctx, 2, 10)
	require.NoError(t, err)

	deleted, err := chats.GetUnreadMessages(ctx, 4)
	require.NoError(t, err)
	for _, m := range deleted {
		require.NoError(t, chats.DeleteMessage(ctx, m.Id))
	}

	summary, err = digest.Summarize(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Entries, 3)

	tests := []struct {
		participant core.UserID
		last        string
		unread      int
		active      int
	}{
		{2, "how are you", 0, 2},
		{3, "how are you", 2, 2},
		{4, core.NoMessagesText, 0, 0},
	}
	for i, tt := range tests {
		e := summary.Entries[i]
		assert.Equal(t, tt.participant, e.ParticipantID)
		assert.Equal(t, tt.last, e.LastMessage)
		assert.Equal(t, tt.unread, e.Unread)
		assert.Equal(t, tt.active, e.Active)
	}

	assert.Equal(t, 1, summary.UnreadChats)
	require.Len(t, summary.Unread(), 1)
	assert.Equal(t, core.UserID(3), summary.Unread()[0].ParticipantID)

	count, err := chats.GetUnreadChatsCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, count, summary.UnreadChats)

	// Summarizing does not mark anything read
	unread, err := chats.GetUnreadMessages(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, unread, 2)
}

func TestSearch(t *testing.T) {
	digest, chats := setupTestDigest(t)
	ctx := context.Background()

	_, err := chats.SendMessage(ctx, 2, "Lunch at noon?")
	require.NoError(t, err)
	_, err = chats.SendMessage(ctx, 3, "Is lunch still on for noon!")
	require.NoError(t, err)
	dropped, err := chats.SendMessage(ctx, 3, "lunch noon cancelled")
	require.NoError(t, err)
	require.NoError(t, chats.DeleteMessage(ctx, dropped.Id))
	_, err = chats.SendMessage(ctx, 4, "dinner at seven")
	require.NoError(t, err)

	tests := []struct {
		name         string
		query        string
		maxHits      int
		participants []core.UserID
	}{
		{"all words, newest first", "LUNCH noon", 10, []core.UserID{3, 2}},
		{"limited", "lunch", 1, []core.UserID{3}},
		{"no match", "breakfast", 10, nil},
		{"only stop words", "the at", 10, nil},
		{"zero hits requested", "lunch", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := digest.Search(ctx, tt.query, tt.maxHits)
			require.NoError(t, err)
			var got []core.UserID
			for _, h := range hits {
				got = append(got, h.ParticipantID)
				assert.True(t, h.Message.IsActive())
			}
			assert.Equal(t, tt.participants, got)
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Hello, World!", []string{"hello", "world"}},
		{"the cat is on the mat", []string{"cat", "mat"}},
		{"  (quoted) \"words\"  ", []string{"quoted", "words"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tokenize(tt.text), tt.text)
	}
}
