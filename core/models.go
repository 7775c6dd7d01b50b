package core

//go:generate go run ../cmd/musgen

import (
	"slices"
	"time"
)

// ID is a store-issued identifier. IDs come from per-store sequences,
// start at 1 and are never reused; 0 means "not yet persisted".
type ID uint64

// UserID identifies a user: a wall owner, a comment author, a chat participant.
type UserID int64

const (
	// DefaultOwnerID owns every note created through the note store.
	DefaultOwnerID UserID = 0

	// CurrentUserID is the implicit local user on the sending side of every chat.
	CurrentUserID UserID = 1
)

// NoMessagesText is reported as the last message of a chat with no active messages.
const NoMessagesText = "no messages"

// SortOrder selects the ordering of listings sorted by date.
type SortOrder int

const (
	// SortAscending orders oldest first.
	SortAscending SortOrder = 0
	// SortDescending orders newest first.
	SortDescending SortOrder = 1
)

// Likes summarizes the like state of a post.
type Likes struct {
	Count      int
	UserLikes  bool
	CanLike    bool
	CanPublish bool
}

// DefaultLikes returns the like state of a freshly published post.
func DefaultLikes() Likes {
	return Likes{UserLikes: true, CanLike: true, CanPublish: true}
}

// Attachment is an opaque payload tagged with its kind ("photo", "video",
// "audio", "doc", "link", ...). The store never interprets Data.
type Attachment struct {
	Type string
	Data []byte
}

// Comment is a comment on a wall post.
type Comment struct {
	Id             ID
	FromID         UserID
	Date           time.Time
	Text           string
	ReplyToUser    UserID
	ReplyToComment ID
	Attachments    []Attachment
}

// Post is a wall post. Posts are stored as whole snapshots: every mutation
// replaces the stored value.
type Post struct {
	Id          ID
	ToID        UserID // owner of the wall the post was published on
	FromID      UserID // author
	Date        time.Time
	Text        string
	PostType    string
	CanEdit     bool
	CanDelete   bool
	CanPin      bool
	IsPinned    bool
	IsFavorite  bool
	Likes       Likes
	Comments    []Comment
	Attachments []Attachment
}

// Clone returns a deep copy of the post so callers cannot reach into
// storage-owned slices.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	c.Attachments = cloneAttachments(p.Attachments)
	if p.Comments != nil {
		c.Comments = make([]Comment, len(p.Comments))
		for i := range p.Comments {
			c.Comments[i] = *p.Comments[i].Clone()
		}
	}
	return &c
}

// Clone returns a deep copy of the comment.
func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	out := *c
	out.Attachments = cloneAttachments(c.Attachments)
	return &out
}

func cloneAttachments(in []Attachment) []Attachment {
	if in == nil {
		return nil
	}
	out := make([]Attachment, len(in))
	for i, a := range in {
		out[i] = Attachment{Type: a.Type, Data: slices.Clone(a.Data)}
	}
	return out
}

// Note is a user note. Comments is a denormalized counter of every comment
// ever created on the note; deleting a comment does not decrement it.
type Note struct {
	Id       ID
	OwnerID  UserID
	Title    string
	Text     string
	Date     time.Time
	Comments int
}

// NoteComment is a comment on a note. UserID and OwnerID are both set to the
// creating user; OwnerID is the authorization key for edit, delete and restore.
type NoteComment struct {
	Id        ID
	UserID    UserID
	NoteID    ID
	OwnerID   UserID
	Date      time.Time
	Message   string
	IsDeleted bool
}

// Message is a direct message inside a chat.
//
// Read and deleted state only move forward: a message becomes read when it is
// returned by a message listing and deleted when removed by its id. A deleted
// message cannot be edited and no longer counts as unread.
type Message struct {
	Id        ID
	ChatID    ID
	SenderID  UserID
	Text      string
	Timestamp time.Time
	IsRead    bool
	IsDeleted bool
}

// Chat is a 1:1 conversation between the current user and ParticipantID.
// Messages are in append order.
type Chat struct {
	Id            ID
	ParticipantID UserID
	Messages      []Message
}

// IsActive reports whether the message has not been deleted.
func (m *Message) IsActive() bool {
	return !m.IsDeleted
}

// IsUnread reports whether the message is active and not yet read.
func (m *Message) IsUnread() bool {
	return !m.IsRead && !m.IsDeleted
}

// HasUnread reports whether any active message in the chat is unread.
func (c *Chat) HasUnread() bool {
	for i := range c.Messages {
		if c.Messages[i].IsUnread() {
			return true
		}
	}
	return false
}

// LastMessageText returns the text of the newest active message, or
// NoMessagesText when every message is deleted or the chat is empty.
// Ties on timestamp resolve to the higher id.
func (c *Chat) LastMessageText() string {
	var last *Message
	for i := range c.Messages {
		m := &c.Messages[i]
		if m.IsDeleted {
			continue
		}
		if last == nil || NewerThan(m, last) {
			last = m
		}
	}
	if last == nil {
		return NoMessagesText
	}
	return last.Text
}

// NewerThan orders messages by timestamp, breaking ties by id.
func NewerThan(a, b *Message) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return a.Id > b.Id
}
