package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/wallkit/core"
	"github.com/poiesic/wallkit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyChats fails the first failures sends per participant.
type flakyChats struct {
	storage.ChatRepository
	failures int

	mu    sync.Mutex
	calls map[core.UserID]int
}

func (f *flakyChats) SendMessage(ctx context.Context, participantID core.UserID, text string) (*core.Message, error) {
	f.mu.Lock()
	f.calls[participantID]++
	n := f.calls[participantID]
	f.mu.Unlock()

	if n <= f.failures {
		return nil, errSendFailed
	}
	return f.ChatRepository.SendMessage(ctx, participantID, text)
}

func TestRetryWithBackoff(t *testing.T) {
	logger := slog.Default()
	ctx := context.Background()

	tests := []struct {
		name        string
		failures    int
		err         error
		maxAttempts int
		wantCalls   int
		wantErr     error
	}{
		{"succeeds first time", 0, errSendFailed, 3, 1, nil},
		{"succeeds after retries", 2, errSendFailed, 3, 3, nil},
		{"gives up after max attempts", 5, errSendFailed, 3, 3, errSendFailed},
		{"missing chat is final", 5, core.ErrChatNotFound, 3, 1, core.ErrChatNotFound},
		{"invalid argument is final", 5, fmt.Errorf("%w: count", core.ErrInvalidArgument), 3, 1, core.ErrInvalidArgument},
		{"single attempt", 1, errSendFailed, 1, 1, errSendFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := retryWithBackoff(ctx, logger, func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			}, tt.maxAttempts, time.Millisecond)

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRetryWithBackoff_InvalidMaxAttempts(t *testing.T) {
	err := retryWithBackoff(context.Background(), slog.Default(), func() error { return nil }, 0, time.Millisecond)
	assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
}

func TestRetryWithBackoff_CanceledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retryWithBackoff(ctx, slog.Default(), func() error {
		calls++
		cancel()
		return errSendFailed
	}, 5, time.Hour)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(errSendFailed))
	assert.True(t, retryable(errors.New("conflict")))
	assert.False(t, retryable(context.Canceled))
	assert.False(t, retryable(fmt.Errorf("send: %w", context.DeadlineExceeded)))
	assert.False(t, retryable(core.ErrNoteNotFound))
	assert.False(t, retryable(core.ErrInvalidArgument))
}

func TestBroadcast_RetriesFlakySends(t *testing.T) {
	_, chats := setupTestPipeline(t)
	flaky := &flakyChats{ChatRepository: chats, failures: 2, calls: make(map[core.UserID]int)}

	pipeline, err := NewPipeline(flaky, WithPoolSize(2), WithRetry(3, time.Millisecond))
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()
	results, err := pipeline.Broadcast(ctx, "eventually", 2, 3)
	require.NoError(t, err)
	for _, r := range results {
		require.NotNil(t, r.Message)
		assert.Equal(t, "eventually", r.Message.Text)
	}

	assert.Equal(t, 3, flaky.calls[2])
	assert.Equal(t, 3, flaky.calls[3])

	messages, err := chats.GetMessages(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, messages, 1, "failed attempts leave nothing behind")
}
