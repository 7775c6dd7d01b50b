package delivery

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/poiesic/wallkit/core"
	"github.com/poiesic/wallkit/storage"
	"github.com/poiesic/wallkit/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestPipeline(t *testing.T, opts ...Option) (*Pipeline, storage.ChatRepository) {
	t.Helper()
	posts, notes, chats, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		chats.Close()
		notes.Close()
		posts.Close()
		backend.Close()
	})

	pipeline, err := NewPipeline(chats, opts...)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)
	return pipeline, chats
}

// failingChats fails SendMessage for one participant and delegates the rest.
type failingChats struct {
	storage.ChatRepository
	failFor core.UserID
}

var errSendFailed = errors.New("send failed")

func (f *failingChats) SendMessage(ctx context.Context, participantID core.UserID, text string) (*core.Message, error) {
	if participantID == f.failFor {
		return nil, errSendFailed
	}
	return f.ChatRepository.SendMessage(ctx, participantID, text)
}

func TestNewPipeline_RequiresRepository(t *testing.T) {
	_, err := NewPipeline(nil)
	assert.ErrorIs(t, err, ErrChatRepositoryRequired)
}

func TestNewPipeline_InvalidRetry(t *testing.T) {
	posts, notes, chats, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		chats.Close()
		notes.Close()
		posts.Close()
		backend.Close()
	}()

	_, err = NewPipeline(chats, WithRetry(0, time.Millisecond))
	assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
}

func TestNewPipeline_Options(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"defaults", nil},
		{"pool size", []Option{WithPoolSize(4)}},
		{"pool size below minimum", []Option{WithPoolSize(0)}},
		{"nil logger", []Option{WithLogger(nil)}},
		{"custom logger", []Option{WithLogger(slog.Default().With("test", true))}},
		{"retry", []Option{WithRetry(3, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline, _ := setupTestPipeline(t, tt.opts...)
			assert.NotNil(t, pipeline.pool)
			assert.NotNil(t, pipeline.logger)
		})
	}
}

func TestBroadcast(t *testing.T) {
	pipeline, chats := setupTestPipeline(t, WithPoolSize(3))
	ctx := context.Background()

	participants := []core.UserID{2, 3, 4, 5, 6, 3}
	results, err := pipeline.Broadcast(ctx, "announcement", participants...)
	require.NoError(t, err)
	require.Len(t, results, 5, "duplicates are delivered once")

	seen := make(map[core.ID]bool)
	for i, r := range results {
		assert.Equal(t, participants[i], r.ParticipantID)
		require.NoError(t, r.Err)
		require.NotNil(t, r.Message)
		assert.Equal(t, "announcement", r.Message.Text)
		assert.False(t, seen[r.Message.Id], "message ids must be unique")
		seen[r.Message.Id] = true
	}

	count, err := chats.GetUnreadChatsCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	last, err := chats.GetLastMessages(ctx)
	require.NoError(t, err)
	for _, text := range last {
		assert.Equal(t, "announcement", text)
	}
}

func TestBroadcast_PartialFailure(t *testing.T) {
	posts, notes, chats, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		chats.Close()
		notes.Close()
		posts.Close()
		backend.Close()
	}()

	pipeline, err := NewPipeline(&failingChats{ChatRepository: chats, failFor: 3})
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()
	results, err := pipeline.Broadcast(ctx, "hello", 2, 3, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, errSendFailed)
	assert.Contains(t, err.Error(), "participant 3")

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, errSendFailed)
	assert.Nil(t, results[1].Message)
	assert.NoError(t, results[2].Err)

	has, err := chats.HasChat(ctx, 3)
	require.NoError(t, err)
	assert.False(t, has)
	has, err = chats.HasChat(ctx, 4)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestBroadcast_CanceledContext(t *testing.T) {
	pipeline, chats := setupTestPipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := pipeline.Broadcast(ctx, "never", 2, 3)
	assert.ErrorIs(t, err, context.Canceled)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}

	all, err := chats.GetChats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBroadcast_NoParticipants(t *testing.T) {
	pipeline, _ := setupTestPipeline(t)

	_, err := pipeline.Broadcast(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoParticipants)
}
