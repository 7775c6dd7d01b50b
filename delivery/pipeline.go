package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/wallkit/core"
	"github.com/poiesic/wallkit/storage"
)

// Pipeline sends messages to many participants concurrently.
type Pipeline struct {
	chatRepository storage.ChatRepository
	pool           *ants.Pool
	maxAttempts    int
	retryDelay     time.Duration
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent delivery.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithRetry makes each send try up to maxAttempts times, waiting baseDelay
// before the first retry and doubling the wait after that. Missing chats,
// invalid arguments and context errors are never retried.
// Default is a single attempt.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts < 1 {
			return ErrInvalidMaxAttempts
		}
		p.maxAttempts = maxAttempts
		p.retryDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new delivery pipeline.
func NewPipeline(chatRepository storage.ChatRepository, opts ...Option) (*Pipeline, error) {
	if chatRepository == nil {
		return nil, ErrChatRepositoryRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		chatRepository: chatRepository,
		pool:           pool,
		maxAttempts:    1,
		logger:         slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Result is the outcome of delivering to one participant.
type Result struct {
	ParticipantID core.UserID
	Message       *core.Message
	Err           error
}

// Broadcast sends text to every participant, creating chats as needed.
// Results are returned in the order participants were given; duplicates
// are delivered once. The returned error joins every per-participant
// failure and is nil when all deliveries succeed.
func (p *Pipeline) Broadcast(ctx context.Context, text string, participants ...core.UserID) ([]Result, error) {
	participants = unique(participants)
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	results := make([]Result, len(participants))
	var wg sync.WaitGroup
	for i, participant := range participants {
		results[i].ParticipantID = participant

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			results[i].Message, results[i].Err = p.send(ctx, participant, text)
		})
		if err != nil {
			wg.Done()
			results[i].Err = err
		}
	}
	wg.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			p.logger.Error("error delivering message", "participant", r.ParticipantID, "err", r.Err)
			errs = append(errs, fmt.Errorf("participant %d: %w", r.ParticipantID, r.Err))
		}
	}
	p.logger.Debug("broadcast finished", "participants", len(participants), "failed", len(errs))
	return results, errors.Join(errs...)
}

func (p *Pipeline) send(ctx context.Context, participant core.UserID, text string) (*core.Message, error) {
	var message *core.Message
	err := retryWithBackoff(ctx, p.logger, func() error {
		var err error
		message, err = p.chatRepository.SendMessage(ctx, participant, text)
		return err
	}, p.maxAttempts, p.retryDelay)
	if err != nil {
		return nil, err
	}
	return message, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

func unique(ids []core.UserID) []core.UserID {
	seen := make(map[core.UserID]bool, len(ids))
	out := make([]core.UserID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
