package badger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/wallkit/core"
	"github.com/poiesic/wallkit/storage"
)

// NoteRepository implements storage.NoteRepository for BadgerDB.
//
// Comments are stored apart from their note and indexed by note id, so they
// outlive the note as tombstones when it is deleted.
type NoteRepository struct {
	backend    *Backend
	noteSeq    *idSequence
	commentSeq *idSequence
	logger     *slog.Logger
	clock      core.Clock
	mu         sync.RWMutex
}

var _ storage.NoteRepository = (*NoteRepository)(nil)

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(backend *Backend, opts ...Option) (*NoteRepository, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	o := applyOptions(opts)

	noteSeq, err := newIDSequence(backend, noteIDSeq)
	if err != nil {
		return nil, err
	}
	commentSeq, err := newIDSequence(backend, noteCommentIDSeq)
	if err != nil {
		noteSeq.Release()
		return nil, err
	}

	return &NoteRepository{
		backend:    backend,
		noteSeq:    noteSeq,
		commentSeq: commentSeq,
		logger:     o.logger.With("repository", "notes"),
		clock:      o.clock,
	}, nil
}

// Close releases the ID sequences.
func (r *NoteRepository) Close() error {
	return releaseAll(r.noteSeq, r.commentSeq)
}

// AddNote creates a note owned by core.DefaultOwnerID.
func (r *NoteRepository) AddNote(ctx context.Context, title, text string) (core.ID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var note *core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		id, err := r.noteSeq.Next()
		if err != nil {
			return err
		}
		note = &core.Note{
			Id:      id,
			OwnerID: core.DefaultOwnerID,
			Title:   title,
			Text:    text,
			Date:    r.clock(),
		}
		if err := tx.Set(makeNoteKey(id), storage.MarshalNote(note)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}

	r.logger.Debug("note added", "id", note.Id)
	return note.Id, nil
}

// CreateComment adds a comment by ownerID to the note.
func (r *NoteRepository) CreateComment(ctx context.Context, noteID core.ID, ownerID core.UserID, message string, opts ...storage.CommentOption) (core.ID, error) {
	o := storage.ApplyCommentOptions(opts...)

	r.mu.Lock()
	defer r.mu.Unlock()

	var commentID core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		note, err := r.readNote(tx, noteID)
		if err != nil {
			return err
		}
		if note == nil {
			return fmt.Errorf("%w: id %d", core.ErrNoteNotFound, noteID)
		}

		commentID, err = r.issueCommentID(tx, o.ID)
		if err != nil {
			return err
		}

		comment := &core.NoteComment{
			Id:      commentID,
			UserID:  ownerID,
			NoteID:  noteID,
			OwnerID: ownerID,
			Date:    r.clock(),
			Message: message,
		}
		if err := tx.Set(makeNoteCommentKey(commentID), storage.MarshalNoteComment(comment)); err != nil {
			return err
		}
		if err := tx.Set(makeNoteCommentIndexKey(noteID, commentID), storage.MarshalID(commentID)); err != nil {
			return err
		}

		note.Comments++
		if err := tx.Set(makeNoteKey(noteID), storage.MarshalNote(note)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}

	r.logger.Debug("note comment added", "note", noteID, "id", commentID, "owner", ownerID)
	return commentID, nil
}

// issueCommentID returns requested when it is free, or the next sequence
// value not already taken by an explicitly numbered comment.
func (r *NoteRepository) issueCommentID(tx *badger.Txn, requested core.ID) (core.ID, error) {
	if requested != 0 {
		taken, err := keyExists(tx, makeNoteCommentKey(requested))
		if err != nil {
			return 0, err
		}
		if taken {
			return 0, fmt.Errorf("%w: comment id %d", storage.ErrDuplicateKey, requested)
		}
		return requested, nil
	}
	for {
		id, err := r.commentSeq.Next()
		if err != nil {
			return 0, err
		}
		taken, err := keyExists(tx, makeNoteCommentKey(id))
		if err != nil {
			return 0, err
		}
		if !taken {
			return id, nil
		}
	}
}

// DeleteNote tombstones every comment of the note and removes the note.
func (r *NoteRepository) DeleteNote(ctx context.Context, noteID core.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tombstoned := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		note, err := r.readNote(tx, noteID)
		if err != nil {
			return err
		}
		if note == nil {
			return fmt.Errorf("%w: id %d", core.ErrNoteNotFound, noteID)
		}

		comments, err := r.readNoteComments(tx, noteID)
		if err != nil {
			return err
		}
		for _, comment := range comments {
			if comment.IsDeleted {
				continue
			}
			comment.IsDeleted = true
			if err := tx.Set(makeNoteCommentKey(comment.Id), storage.MarshalNoteComment(comment)); err != nil {
				return err
			}
			tombstoned++
		}

		if err := tx.Delete(makeNoteKey(noteID)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	r.logger.Debug("note deleted", "id", noteID, "tombstoned", tombstoned)
	return nil
}

// DeleteComment tombstones a comment.
func (r *NoteRepository) DeleteComment(ctx context.Context, commentID core.ID, ownerID core.UserID) error {
	return r.updateComment(commentID, ownerID, func(tx *badger.Txn, comment *core.NoteComment) error {
		if comment.IsDeleted {
			return fmt.Errorf("comment %d: %w", commentID, core.ErrAlreadyDeleted)
		}
		comment.IsDeleted = true
		return nil
	})
}

// EditComment replaces the message of an active comment.
func (r *NoteRepository) EditComment(ctx context.Context, commentID core.ID, ownerID core.UserID, message string) error {
	return r.updateComment(commentID, ownerID, func(tx *badger.Txn, comment *core.NoteComment) error {
		if comment.IsDeleted {
			return fmt.Errorf("comment %d: %w", commentID, core.ErrAlreadyDeleted)
		}
		comment.Message = message
		return nil
	})
}

// RestoreComment clears the tombstone of a deleted comment whose note still
// exists.
func (r *NoteRepository) RestoreComment(ctx context.Context, commentID core.ID, ownerID core.UserID) error {
	return r.updateComment(commentID, ownerID, func(tx *badger.Txn, comment *core.NoteComment) error {
		if !comment.IsDeleted {
			return fmt.Errorf("comment %d: %w", commentID, core.ErrNotDeleted)
		}
		exists, err := keyExists(tx, makeNoteKey(comment.NoteID))
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("comment %d of note %d: %w", commentID, comment.NoteID, core.ErrNoteDeleted)
		}
		comment.IsDeleted = false
		return nil
	})
}

// updateComment loads a comment, checks existence and ownership, applies
// mutate and stores the result.
func (r *NoteRepository) updateComment(commentID core.ID, ownerID core.UserID, mutate func(*badger.Txn, *core.NoteComment) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.backend.WithTx(func(tx *badger.Txn) error {
		comment, err := readRecord(tx, makeNoteCommentKey(commentID), storage.UnmarshalNoteComment)
		if err != nil {
			return err
		}
		if comment == nil {
			return fmt.Errorf("%w: id %d", core.ErrCommentNotFound, commentID)
		}
		if comment.OwnerID != ownerID {
			return fmt.Errorf("comment %d: %w", commentID, core.ErrUnauthorized)
		}
		if err := mutate(tx, comment); err != nil {
			return err
		}
		if err := tx.Set(makeNoteCommentKey(commentID), storage.MarshalNoteComment(comment)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// EditNote replaces title and text of a note.
func (r *NoteRepository) EditNote(ctx context.Context, noteID core.ID, title, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.backend.WithTx(func(tx *badger.Txn) error {
		note, err := r.readNote(tx, noteID)
		if err != nil {
			return err
		}
		if note == nil {
			return fmt.Errorf("%w: id %d", core.ErrNoteNotFound, noteID)
		}
		note.Title = title
		note.Text = text
		if err := tx.Set(makeNoteKey(noteID), storage.MarshalNote(note)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetNote returns a note owned by ownerID.
func (r *NoteRepository) GetNote(ctx context.Context, noteID core.ID, ownerID core.UserID) (*core.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result *core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readOwnedNote(tx, noteID, ownerID)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetComments returns the active comments of a note owned by ownerID.
func (r *NoteRepository) GetComments(ctx context.Context, noteID core.ID, ownerID core.UserID, sort core.SortOrder) ([]*core.NoteComment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*core.NoteComment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := r.readOwnedNote(tx, noteID, ownerID); err != nil {
			return err
		}
		comments, err := r.readNoteComments(tx, noteID)
		if err != nil {
			return err
		}
		results = make([]*core.NoteComment, 0, len(comments))
		for _, comment := range comments {
			if !comment.IsDeleted {
				results = append(results, comment)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sortByDate(results, sort, noteCommentSortKey)
	return results, nil
}

// GetNotes returns the notes owned by ownerID.
func (r *NoteRepository) GetNotes(ctx context.Context, ownerID core.UserID, sort core.SortOrder) ([]*core.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		notes, err := scanPrefix(tx, []byte(notePrefix), storage.UnmarshalNote)
		if err != nil {
			return err
		}
		results = make([]*core.Note, 0, len(notes))
		for _, note := range notes {
			if note.OwnerID == ownerID {
				results = append(results, note)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sortByDate(results, sort, noteSortKey)
	return results, nil
}

// Clear removes every note and comment and restarts both id counters.
func (r *NoteRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.DeletePrefix(notePrefix, noteCommentPrefix, noteCommentByNotePrefix); err != nil {
		return err
	}
	if err := r.noteSeq.Reset(); err != nil {
		return err
	}
	if err := r.commentSeq.Reset(); err != nil {
		return err
	}
	r.logger.Debug("notes cleared")
	return nil
}

func (r *NoteRepository) readNote(tx *badger.Txn, id core.ID) (*core.Note, error) {
	return readRecord(tx, makeNoteKey(id), storage.UnmarshalNote)
}

// readOwnedNote reads a note and checks that ownerID owns it.
func (r *NoteRepository) readOwnedNote(tx *badger.Txn, noteID core.ID, ownerID core.UserID) (*core.Note, error) {
	note, err := r.readNote(tx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: id %d", core.ErrNoteNotFound, noteID)
	}
	if note.OwnerID != ownerID {
		return nil, fmt.Errorf("note %d: %w", noteID, core.ErrUnauthorized)
	}
	return note, nil
}

// readNoteComments returns every comment of a note, tombstones included,
// in id order.
func (r *NoteRepository) readNoteComments(tx *badger.Txn, noteID core.ID) ([]*core.NoteComment, error) {
	ids, err := scanPrefix(tx, makePartialNoteCommentIndexKey(noteID), decodeID)
	if err != nil {
		return nil, err
	}
	comments := make([]*core.NoteComment, 0, len(ids))
	for _, id := range ids {
		comment, err := readRecord(tx, makeNoteCommentKey(*id), storage.UnmarshalNoteComment)
		if err != nil {
			return nil, err
		}
		if comment != nil {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

// decodeID adapts storage.UnmarshalID to the record decoder shape.
func decodeID(data []byte) (*core.ID, error) {
	id, err := storage.UnmarshalID(data)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
