package delivery

import "errors"

var (
	// ErrChatRepositoryRequired is returned when a chat repository is not provided.
	ErrChatRepositoryRequired = errors.New("chat repository required")

	// ErrNoParticipants is returned when a broadcast names no participants.
	ErrNoParticipants = errors.New("no participants")

	// ErrInvalidMaxAttempts is returned when the attempt limit is not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than 0")
)
