package storage

import (
	"context"

	"github.com/poiesic/wallkit/core"
)

// Repository provides operations shared by every store.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// Clear removes every entity and resets all id counters, so the next
	// issued id of each kind is 1.
	Clear(ctx context.Context) error

	// Close releases the id sequences held by the repository.
	Close() error
}

// PostRepository stores wall posts and their comments.
// Posts are never deleted.
type PostRepository interface {
	Repository

	// AddPost stores a copy of post under a newly issued id.
	// The caller's Id is ignored. A zero Date is stamped with the store clock.
	// Returns the stored post.
	AddPost(ctx context.Context, post *core.Post) (*core.Post, error)

	// FindPostByID returns the post with the given id.
	// Returns core.ErrPostNotFound if the post doesn't exist.
	FindPostByID(ctx context.Context, id core.ID) (*core.Post, error)

	// CreateComment appends a copy of comment to the post under a newly
	// issued comment id and re-stores the post.
	// Returns core.ErrPostNotFound if the post doesn't exist.
	CreateComment(ctx context.Context, postID core.ID, comment *core.Comment) (*core.Comment, error)

	// UpdatePost replaces the stored post having post.Id, keeping the
	// stored id. Returns false, without error, when no such post exists.
	UpdatePost(ctx context.Context, post *core.Post) (bool, error)

	// ListPosts returns every post in id order.
	ListPosts(ctx context.Context) ([]*core.Post, error)
}

// NoteRepository stores notes and their comments.
type NoteRepository interface {
	Repository

	// AddNote creates a note owned by core.DefaultOwnerID and returns its id.
	AddNote(ctx context.Context, title, text string) (core.ID, error)

	// CreateComment adds a comment by ownerID to the note and increments
	// the note's comment counter. Returns the comment id.
	// Returns core.ErrNoteNotFound if the note doesn't exist, and
	// ErrDuplicateKey if WithCommentID names an id already in use.
	CreateComment(ctx context.Context, noteID core.ID, ownerID core.UserID, message string, opts ...CommentOption) (core.ID, error)

	// DeleteNote tombstones every comment of the note and removes the note.
	// Returns core.ErrNoteNotFound if the note doesn't exist.
	DeleteNote(ctx context.Context, noteID core.ID) error

	// DeleteComment tombstones a comment.
	// Returns core.ErrCommentNotFound, core.ErrUnauthorized or
	// core.ErrAlreadyDeleted.
	DeleteComment(ctx context.Context, commentID core.ID, ownerID core.UserID) error

	// EditComment replaces the message of an active comment.
	// Returns core.ErrCommentNotFound, core.ErrUnauthorized or
	// core.ErrAlreadyDeleted.
	EditComment(ctx context.Context, commentID core.ID, ownerID core.UserID, message string) error

	// EditNote replaces title and text, keeping id, owner, date and counter.
	// Returns core.ErrNoteNotFound if the note doesn't exist.
	EditNote(ctx context.Context, noteID core.ID, title, text string) error

	// GetNote returns a note owned by ownerID.
	// Returns core.ErrNoteNotFound or core.ErrUnauthorized.
	GetNote(ctx context.Context, noteID core.ID, ownerID core.UserID) (*core.Note, error)

	// GetComments returns the active comments of a note owned by ownerID,
	// ordered by sort.
	// Returns core.ErrNoteNotFound or core.ErrUnauthorized.
	GetComments(ctx context.Context, noteID core.ID, ownerID core.UserID, sort core.SortOrder) ([]*core.NoteComment, error)

	// GetNotes returns the notes owned by ownerID, ordered by sort.
	GetNotes(ctx context.Context, ownerID core.UserID, sort core.SortOrder) ([]*core.Note, error)

	// RestoreComment clears the tombstone of a deleted comment.
	// Returns core.ErrCommentNotFound, core.ErrUnauthorized,
	// core.ErrNotDeleted, or core.ErrNoteDeleted when the parent note is gone.
	RestoreComment(ctx context.Context, commentID core.ID, ownerID core.UserID) error
}

// ChatRepository stores 1:1 chats between core.CurrentUserID and a
// participant, together with their messages.
type ChatRepository interface {
	Repository

	// SendMessage appends an unread message from core.CurrentUserID to the
	// chat with participantID, creating the chat if needed.
	SendMessage(ctx context.Context, participantID core.UserID, text string) (*core.Message, error)

	// GetMessages returns up to count active messages of the chat, newest
	// first, and marks exactly the returned messages as read.
	// Returns core.ErrChatNotFound if there is no chat with participantID.
	GetMessages(ctx context.Context, participantID core.UserID, count int) ([]*core.Message, error)

	// DeleteMessage tombstones a message. There is no restore.
	// Returns core.ErrMessageNotFound if the message doesn't exist.
	DeleteMessage(ctx context.Context, messageID core.ID) error

	// EditMessage replaces the text of an active message.
	// Returns core.ErrMessageNotFound if the message doesn't exist; a deleted
	// message yields an error matching both core.ErrMessageNotFound and
	// core.ErrAlreadyDeleted.
	EditMessage(ctx context.Context, messageID core.ID, text string) error

	// DeleteChat removes the chat and every one of its messages.
	// Returns core.ErrChatNotFound if there is no chat with participantID.
	DeleteChat(ctx context.Context, participantID core.UserID) error

	// HasChat reports whether a chat with participantID exists.
	HasChat(ctx context.Context, participantID core.UserID) (bool, error)

	// GetUnreadMessages returns the unread, active messages of the chat in
	// append order without marking them read.
	// Returns core.ErrChatNotFound if there is no chat with participantID.
	GetUnreadMessages(ctx context.Context, participantID core.UserID) ([]*core.Message, error)

	// GetUnreadChatsCount counts chats holding at least one unread, active message.
	GetUnreadChatsCount(ctx context.Context) (int, error)

	// GetChats returns every chat, in creation order, with its messages.
	GetChats(ctx context.Context) ([]*core.Chat, error)

	// GetLastMessages returns, per chat in GetChats order, the text of the
	// newest active message or core.NoMessagesText.
	GetLastMessages(ctx context.Context) ([]string, error)
}

// CommentOption configures NoteRepository.CreateComment.
type CommentOption func(*CommentOptions)

// CommentOptions holds optional parameters for note comment creation.
type CommentOptions struct {
	// ID, when non-zero, is used instead of the next sequence value.
	ID core.ID
}

// WithCommentID requests an explicit comment id instead of a sequence-issued one.
func WithCommentID(id core.ID) CommentOption {
	return func(o *CommentOptions) {
		o.ID = id
	}
}

// ApplyCommentOptions folds opts into a CommentOptions value.
func ApplyCommentOptions(opts ...CommentOption) CommentOptions {
	var o CommentOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
