package badger

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/wallkit/core"
)

// idSequence issues ids from a badger sequence. Badger sequences start at
// 0, which is never a valid id, so it is skipped.
// Not safe for concurrent Reset; callers hold their repository lock.
type idSequence struct {
	backend *Backend
	name    string
	seq     *badger.Sequence
}

func newIDSequence(backend *Backend, name string) (*idSequence, error) {
	seq, err := backend.GetSequence(name)
	if err != nil {
		return nil, err
	}
	return &idSequence{backend: backend, name: name, seq: seq}, nil
}

// Next returns the next id.
func (s *idSequence) Next() (core.ID, error) {
	next, err := s.seq.Next()
	if err != nil {
		return 0, err
	}
	if next == 0 {
		next, err = s.seq.Next()
		if err != nil {
			return 0, err
		}
	}
	return core.ID(next), nil
}

// Reset restarts the sequence so the next issued id is 1.
func (s *idSequence) Reset() error {
	if err := s.seq.Release(); err != nil {
		return err
	}
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete([]byte(s.name)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}
	seq, err := s.backend.GetSequence(s.name)
	if err != nil {
		return err
	}
	s.seq = seq
	return nil
}

// Release returns the unused part of the lease.
func (s *idSequence) Release() error {
	return s.seq.Release()
}

// releaseAll releases every sequence, returning the first error.
func releaseAll(seqs ...*idSequence) error {
	var firstErr error
	for _, s := range seqs {
		if s == nil {
			continue
		}
		if err := s.Release(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
