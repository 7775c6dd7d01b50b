// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package wallkit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/wallkit/core"
	"github.com/poiesic/wallkit/delivery"
	"github.com/poiesic/wallkit/inbox"
	"github.com/poiesic/wallkit/storage"
	"github.com/poiesic/wallkit/storage/badger"
)

// Database owns the storage backend and the three stores built on it.
// Each Database is independent; nothing is shared between instances.
type Database struct {
	backend  *badger.Backend
	postRepo storage.PostRepository
	noteRepo storage.NoteRepository
	chatRepo storage.ChatRepository
	config   *Config
	logger   *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	config *Config
	logger *slog.Logger
	clock  core.Clock
}

// WithConfig sets the configuration. Default is DefaultConfig().
func WithConfig(cfg *Config) DatabaseOption {
	return func(o *databaseOptions) {
		if cfg != nil {
			o.config = cfg
		}
	}
}

// WithLogger sets the logger shared by the backend and every store.
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock sets the clock used by every store to stamp dates.
func WithClock(clock core.Clock) DatabaseOption {
	return func(o *databaseOptions) {
		o.clock = clock
	}
}

// NewDatabase opens the backend described by the configuration and creates
// the post, note and chat stores.
func NewDatabase(opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	cfg := options.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Open backend
	backend, err := badger.OpenBackend(cfg.Directory, cfg.InMemory(),
		badger.WithBackendLogger(options.logger),
		badger.WithSequenceBandwidth(cfg.SequenceBandwidth))
	if err != nil {
		return nil, err
	}

	repoOpts := []badger.Option{badger.WithLogger(options.logger)}
	if options.clock != nil {
		repoOpts = append(repoOpts, badger.WithClock(options.clock))
	}

	postRepo, err := badger.NewPostRepository(backend, repoOpts...)
	if err != nil {
		backend.Close()
		return nil, err
	}

	noteRepo, err := badger.NewNoteRepository(backend, repoOpts...)
	if err != nil {
		postRepo.Close()
		backend.Close()
		return nil, err
	}

	chatRepo, err := badger.NewChatRepository(backend, repoOpts...)
	if err != nil {
		noteRepo.Close()
		postRepo.Close()
		backend.Close()
		return nil, err
	}

	options.logger.Debug("database opened", "directory", cfg.Directory, "in_memory", cfg.InMemory())
	return &Database{
		backend:  backend,
		postRepo: postRepo,
		noteRepo: noteRepo,
		chatRepo: chatRepo,
		config:   cfg,
		logger:   options.logger,
	}, nil
}

// Close releases the stores and then closes the backend.
func (db *Database) Close() error {
	var errs []error

	// Close repositories
	if err := db.chatRepo.Close(); err != nil {
		db.logger.Error("error closing chat repository", "err", err)
		errs = append(errs, err)
	}
	if err := db.noteRepo.Close(); err != nil {
		db.logger.Error("error closing note repository", "err", err)
		errs = append(errs, err)
	}
	if err := db.postRepo.Close(); err != nil {
		db.logger.Error("error closing post repository", "err", err)
		errs = append(errs, err)
	}

	// Close backend even when a repository failed
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Clear empties every store and restarts all id counters.
func (db *Database) Clear(ctx context.Context) error {
	for _, repo := range []storage.Repository{db.postRepo, db.noteRepo, db.chatRepo} {
		if err := repo.Clear(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (db *Database) PostRepository() storage.PostRepository {
	return db.postRepo
}

func (db *Database) NoteRepository() storage.NoteRepository {
	return db.noteRepo
}

func (db *Database) ChatRepository() storage.ChatRepository {
	return db.chatRepo
}

// NewDeliveryPipeline creates a delivery pipeline sized by the configuration.
// Options given here override the configured pool size and retry policy.
func (db *Database) NewDeliveryPipeline(opts ...delivery.Option) (*delivery.Pipeline, error) {
	defaults := []delivery.Option{
		delivery.WithPoolSize(db.config.DeliveryPoolSize),
		delivery.WithRetry(db.config.DeliveryAttempts, db.config.DeliveryRetryDelay),
		delivery.WithLogger(db.logger),
	}
	return delivery.NewPipeline(db.chatRepo, append(defaults, opts...)...)
}

func (db *Database) NewDigest(opts ...inbox.Option) (*inbox.Digest, error) {
	defaults := []inbox.Option{inbox.WithLogger(db.logger)}
	return inbox.NewDigest(db.chatRepo, append(defaults, opts...)...)
}
