package inbox

import (
	"context"
	"log/slog"
	"slices"

	"github.com/poiesic/wallkit/core"
	"github.com/poiesic/wallkit/storage"
)

// Digest builds read-only summaries of the chat store.
type Digest struct {
	chatRepository storage.ChatRepository
	logger         *slog.Logger
}

// Option configures a Digest.
type Option func(*Digest) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Digest) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDigest creates a new digest over chatRepository.
func NewDigest(chatRepository storage.ChatRepository, opts ...Option) (*Digest, error) {
	if chatRepository == nil {
		return nil, ErrChatRepositoryRequired
	}

	d := &Digest{
		chatRepository: chatRepository,
		logger:         slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Entry summarizes one chat.
type Entry struct {
	ChatID        core.ID
	ParticipantID core.UserID
	LastMessage   string
	Unread        int
	Active        int
}

// Summary is the state of every chat at one point in time.
type Summary struct {
	// Entries are in chat creation order.
	Entries     []Entry
	UnreadChats int
}

// Unread returns the entries with at least one unread message.
func (s *Summary) Unread() []Entry {
	var out []Entry
	for _, e := range s.Entries {
		if e.Unread > 0 {
			out = append(out, e)
		}
	}
	return out
}

// Summarize reads every chat once and summarizes it. UnreadChats always
// agrees with the entries, since both come from the same listing.
func (d *Digest) Summarize(ctx context.Context) (*Summary, error) {
	chats, err := d.chatRepository.GetChats(ctx)
	if err != nil {
		d.logger.Error("error listing chats", "err", err)
		return nil, err
	}

	summary := &Summary{Entries: make([]Entry, 0, len(chats))}
	for _, chat := range chats {
		entry := Entry{
			ChatID:        chat.Id,
			ParticipantID: chat.ParticipantID,
			LastMessage:   chat.LastMessageText(),
		}
		for i := range chat.Messages {
			m := &chat.Messages[i]
			if m.IsActive() {
				entry.Active++
			}
			if m.IsUnread() {
				entry.Unread++
			}
		}
		if entry.Unread > 0 {
			summary.UnreadChats++
		}
		summary.Entries = append(summary.Entries, entry)
	}

	d.logger.Debug("inbox summarized", "chats", len(summary.Entries), "unread_chats", summary.UnreadChats)
	return summary, nil
}

// Hit is a message matching a search, with the chat it belongs to.
type Hit struct {
	ParticipantID core.UserID
	Message       core.Message
}

// Search returns active messages whose text contains every word of query,
// newest first, at most maxHits of them. Case, surrounding punctuation and
// stop words are ignored.
func (d *Digest) Search(ctx context.Context, query string, maxHits int) ([]Hit, error) {
	queryWords := tokenize(query)
	if len(queryWords) == 0 || maxHits <= 0 {
		return []Hit{}, nil
	}

	chats, err := d.chatRepository.GetChats(ctx)
	if err != nil {
		d.logger.Error("error listing chats", "err", err)
		return nil, err
	}

	hits := []Hit{}
	for _, chat := range chats {
		for _, m := range chat.Messages {
			if m.IsActive() && matchesAll(m.Text, queryWords) {
				hits = append(hits, Hit{ParticipantID: chat.ParticipantID, Message: m})
			}
		}
	}

	slices.SortFunc(hits, func(a, b Hit) int {
		switch {
		case core.NewerThan(&a.Message, &b.Message):
			return -1
		case core.NewerThan(&b.Message, &a.Message):
			return 1
		}
		return 0
	})
	if len(hits) > maxHits {
		hits = hits[:maxHits]
	}

	d.logger.Debug("inbox searched", "query", query, "hits", len(hits))
	return hits, nil
}
