package badger

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/wallkit/core"
	"github.com/poiesic/wallkit/storage"
)

// PostRepository implements storage.PostRepository for BadgerDB.
// Comments live inside their post record; appending one rewrites the post.
// Each post record is paired with a fingerprint of its content so updates
// can be compared without decoding the stored post.
type PostRepository struct {
	backend    *Backend
	postSeq    *idSequence
	commentSeq *idSequence
	logger     *slog.Logger
	clock      core.Clock
	mu         sync.RWMutex
}

var _ storage.PostRepository = (*PostRepository)(nil)

// NewPostRepository creates a new PostRepository.
func NewPostRepository(backend *Backend, opts ...Option) (*PostRepository, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	o := applyOptions(opts)

	postSeq, err := newIDSequence(backend, postIDSeq)
	if err != nil {
		return nil, err
	}
	commentSeq, err := newIDSequence(backend, postCommentIDSeq)
	if err != nil {
		postSeq.Release()
		return nil, err
	}

	return &PostRepository{
		backend:    backend,
		postSeq:    postSeq,
		commentSeq: commentSeq,
		logger:     o.logger.With("repository", "posts"),
		clock:      o.clock,
	}, nil
}

// Close releases the ID sequences.
func (r *PostRepository) Close() error {
	return releaseAll(r.postSeq, r.commentSeq)
}

// AddPost stores a copy of post under a newly issued id.
func (r *PostRepository) AddPost(ctx context.Context, post *core.Post) (*core.Post, error) {
	if err := core.ValidatePost(post); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := storedPost(post)
	if stored.Date.IsZero() {
		stored.Date = r.clock()
	}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		id, err := r.postSeq.Next()
		if err != nil {
			return err
		}
		stored.Id = id
		if err := writePost(tx, stored); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("post added", "id", stored.Id, "to", stored.ToID)
	return stored.Clone(), nil
}

// FindPostByID returns the post with the given id.
func (r *PostRepository) FindPostByID(ctx context.Context, id core.ID) (*core.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result *core.Post
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readPost(tx, id)
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("%w: id %d", core.ErrPostNotFound, id)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateComment appends a copy of comment to the post under a newly issued
// comment id.
func (r *PostRepository) CreateComment(ctx context.Context, postID core.ID, comment *core.Comment) (*core.Comment, error) {
	if err := core.ValidateComment(comment); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := comment.Clone()
	stored.Date = core.StoredTime(stored.Date)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		post, err := r.readPost(tx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return fmt.Errorf("%w: id %d", core.ErrPostNotFound, postID)
		}

		id, err := r.commentSeq.Next()
		if err != nil {
			return err
		}
		stored.Id = id
		if stored.Date.IsZero() {
			stored.Date = r.clock()
		}

		comments := make([]core.Comment, 0, len(post.Comments)+1)
		comments = append(comments, post.Comments...)
		post.Comments = append(comments, *stored)

		if err := writePost(tx, post); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("comment added", "post", postID, "id", stored.Id)
	return stored.Clone(), nil
}

// UpdatePost replaces the stored post having post.Id. An update identical to
// the stored post is not written but still reports success.
func (r *PostRepository) UpdatePost(ctx context.Context, post *core.Post) (bool, error) {
	if err := core.ValidatePost(post); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	updated := storedPost(post)
	fingerprint := updated.Hash()

	found := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		stored, ok, err := readFingerprint(tx, updated.Id)
		if err != nil {
			return err
		}
		if !ok {
			exists, err := keyExists(tx, makePostKey(updated.Id))
			if err != nil || !exists {
				return err
			}
		}
		found = true

		// Matching fingerprints still need a full comparison to rule out
		// a collision.
		if ok && stored == fingerprint {
			existing, err := r.readPost(tx, updated.Id)
			if err != nil {
				return err
			}
			if updated.Equal(existing) {
				r.logger.Debug("post unchanged", "id", updated.Id)
				return nil
			}
		}

		if err := writePostFingerprint(tx, updated, fingerprint); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return false, err
	}
	return found, nil
}

// ListPosts returns every post in id order.
func (r *PostRepository) ListPosts(ctx context.Context) ([]*core.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*core.Post
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		results, err = scanPrefix(tx, []byte(postPrefix), storage.UnmarshalPost)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Clear removes every post and restarts both id counters.
func (r *PostRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.DeletePrefix(postPrefix, postFingerprintPrefix); err != nil {
		return err
	}
	if err := r.postSeq.Reset(); err != nil {
		return err
	}
	if err := r.commentSeq.Reset(); err != nil {
		return err
	}
	r.logger.Debug("posts cleared")
	return nil
}

// storedPost copies post and brings its dates into stored form.
func storedPost(post *core.Post) *core.Post {
	p := post.Clone()
	p.Date = core.StoredTime(p.Date)
	for i := range p.Comments {
		p.Comments[i].Date = core.StoredTime(p.Comments[i].Date)
	}
	return p
}

func (r *PostRepository) readPost(tx *badger.Txn, id core.ID) (*core.Post, error) {
	return readRecord(tx, makePostKey(id), storage.UnmarshalPost)
}

// writePost stores post together with its fingerprint.
func writePost(tx *badger.Txn, post *core.Post) error {
	return writePostFingerprint(tx, post, post.Hash())
}

func writePostFingerprint(tx *badger.Txn, post *core.Post, fingerprint uint64) error {
	if err := tx.Set(makePostKey(post.Id), storage.MarshalPost(post)); err != nil {
		return err
	}
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, fingerprint)
	return tx.Set(makePostFingerprintKey(post.Id), value)
}

// readFingerprint returns the stored fingerprint of a post. ok is false when
// none is stored.
func readFingerprint(tx *badger.Txn, id core.ID) (fingerprint uint64, ok bool, err error) {
	item, err := tx.Get(makePostFingerprintKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return fmt.Errorf("%w: fingerprint of post %d", storage.ErrSerializationFailed, id)
		}
		fingerprint = binary.BigEndian.Uint64(val)
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return fingerprint, true, nil
}
