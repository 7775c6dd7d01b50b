package badger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/wallkit/core"
	"github.com/poiesic/wallkit/storage"
)

// ChatRepository implements storage.ChatRepository for BadgerDB.
//
// A chat is stored as a header record plus a participant index entry, which
// keeps chats unique per participant. Messages are stored individually and
// indexed by chat id in append order.
type ChatRepository struct {
	backend    *Backend
	chatSeq    *idSequence
	messageSeq *idSequence
	logger     *slog.Logger
	clock      core.Clock
	mu         sync.RWMutex
}

var _ storage.ChatRepository = (*ChatRepository)(nil)

// NewChatRepository creates a new ChatRepository.
func NewChatRepository(backend *Backend, opts ...Option) (*ChatRepository, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	o := applyOptions(opts)

	chatSeq, err := newIDSequence(backend, chatIDSeq)
	if err != nil {
		return nil, err
	}
	messageSeq, err := newIDSequence(backend, messageIDSeq)
	if err != nil {
		chatSeq.Release()
		return nil, err
	}

	return &ChatRepository{
		backend:    backend,
		chatSeq:    chatSeq,
		messageSeq: messageSeq,
		logger:     o.logger.With("repository", "chats"),
		clock:      o.clock,
	}, nil
}

// Close releases the ID sequences.
func (r *ChatRepository) Close() error {
	return releaseAll(r.chatSeq, r.messageSeq)
}

// SendMessage appends a message to the chat with participantID, creating the
// chat on first contact.
func (r *ChatRepository) SendMessage(ctx context.Context, participantID core.UserID, text string) (*core.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		message *core.Message
		created bool
	)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		chat, err := r.findChat(tx, participantID)
		if err != nil {
			return err
		}
		if chat == nil {
			chat, err = r.createChat(tx, participantID)
			if err != nil {
				return err
			}
			created = true
		}

		id, err := r.messageSeq.Next()
		if err != nil {
			return err
		}
		message = &core.Message{
			Id:        id,
			ChatID:    chat.Id,
			SenderID:  core.CurrentUserID,
			Text:      text,
			Timestamp: r.clock(),
		}
		if err := tx.Set(makeMessageKey(id), storage.MarshalMessage(message)); err != nil {
			return err
		}
		if err := tx.Set(makeChatMessageKey(chat.Id, id), storage.MarshalID(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("message sent", "participant", participantID, "chat", message.ChatID, "id", message.Id, "new_chat", created)
	return message, nil
}

func (r *ChatRepository) createChat(tx *badger.Txn, participantID core.UserID) (*core.Chat, error) {
	id, err := r.chatSeq.Next()
	if err != nil {
		return nil, err
	}
	chat := &core.Chat{Id: id, ParticipantID: participantID}
	if err := tx.Set(makeChatKey(id), storage.MarshalChat(chat)); err != nil {
		return nil, err
	}
	if err := tx.Set(makeParticipantKey(participantID), storage.MarshalID(id)); err != nil {
		return nil, err
	}
	return chat, nil
}

// GetMessages returns up to count active messages, newest first, and marks
// the returned messages read.
func (r *ChatRepository) GetMessages(ctx context.Context, participantID core.UserID, count int) ([]*core.Message, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", core.ErrInvalidArgument, count)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var results []*core.Message
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		chat, err := r.requireChat(tx, participantID)
		if err != nil {
			return err
		}
		messages, err := r.readMessages(tx, chat.Id)
		if err != nil {
			return err
		}

		messages = slices.DeleteFunc(messages, func(m *core.Message) bool { return m.IsDeleted })
		slices.SortFunc(messages, func(a, b *core.Message) int {
			switch {
			case core.NewerThan(a, b):
				return -1
			case core.NewerThan(b, a):
				return 1
			}
			return 0
		})
		if len(messages) > count {
			messages = messages[:count]
		}

		for _, m := range messages {
			if m.IsRead {
				continue
			}
			m.IsRead = true
			if err := tx.Set(makeMessageKey(m.Id), storage.MarshalMessage(m)); err != nil {
				return err
			}
		}
		results = messages
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*core.Message{}
	}
	return results, nil
}

// DeleteMessage tombstones a message. Deleting a tombstone is a no-op.
func (r *ChatRepository) DeleteMessage(ctx context.Context, messageID core.ID) error {
	return r.updateMessage(messageID, func(m *core.Message) error {
		m.IsDeleted = true
		return nil
	})
}

// EditMessage replaces the text of an active message.
func (r *ChatRepository) EditMessage(ctx context.Context, messageID core.ID, text string) error {
	return r.updateMessage(messageID, func(m *core.Message) error {
		if m.IsDeleted {
			return fmt.Errorf("%w: id %d", core.ErrMessageDeleted, messageID)
		}
		m.Text = text
		return nil
	})
}

func (r *ChatRepository) updateMessage(messageID core.ID, mutate func(*core.Message) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.backend.WithTx(func(tx *badger.Txn) error {
		message, err := readRecord(tx, makeMessageKey(messageID), storage.UnmarshalMessage)
		if err != nil {
			return err
		}
		if message == nil {
			return fmt.Errorf("%w: id %d", core.ErrMessageNotFound, messageID)
		}
		if err := mutate(message); err != nil {
			return err
		}
		if err := tx.Set(makeMessageKey(messageID), storage.MarshalMessage(message)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteChat removes the chat with participantID and all of its messages.
func (r *ChatRepository) DeleteChat(ctx context.Context, participantID core.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		chat, err := r.requireChat(tx, participantID)
		if err != nil {
			return err
		}
		ids, err := scanPrefix(tx, makePartialChatMessageKey(chat.Id), decodeID)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := tx.Delete(makeMessageKey(*id)); err != nil {
				return err
			}
			if err := tx.Delete(makeChatMessageKey(chat.Id, *id)); err != nil {
				return err
			}
			removed++
		}
		if err := tx.Delete(makeChatKey(chat.Id)); err != nil {
			return err
		}
		if err := tx.Delete(makeParticipantKey(participantID)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	r.logger.Debug("chat deleted", "participant", participantID, "messages", removed)
	return nil
}

// HasChat reports whether a chat with participantID exists.
func (r *ChatRepository) HasChat(ctx context.Context, participantID core.UserID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var exists bool
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		exists, err = keyExists(tx, makeParticipantKey(participantID))
		return err
	}, false)
	return exists, err
}

// GetUnreadMessages returns the unread, active messages of a chat in append
// order. Read state is left untouched.
func (r *ChatRepository) GetUnreadMessages(ctx context.Context, participantID core.UserID) ([]*core.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*core.Message
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		chat, err := r.requireChat(tx, participantID)
		if err != nil {
			return err
		}
		messages, err := r.readMessages(tx, chat.Id)
		if err != nil {
			return err
		}
		results = slices.DeleteFunc(messages, func(m *core.Message) bool { return !m.IsUnread() })
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*core.Message{}
	}
	return results, nil
}

// GetUnreadChatsCount counts chats with at least one unread, active message.
func (r *ChatRepository) GetUnreadChatsCount(ctx context.Context) (int, error) {
	chats, err := r.GetChats(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, chat := range chats {
		if chat.HasUnread() {
			count++
		}
	}
	return count, nil
}

// GetChats returns every chat with its messages, in creation order.
func (r *ChatRepository) GetChats(ctx context.Context) ([]*core.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*core.Chat
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		chats, err := scanPrefix(tx, []byte(chatPrefix), storage.UnmarshalChat)
		if err != nil {
			return err
		}
		for _, chat := range chats {
			messages, err := r.readMessages(tx, chat.Id)
			if err != nil {
				return err
			}
			chat.Messages = make([]core.Message, len(messages))
			for i, m := range messages {
				chat.Messages[i] = *m
			}
		}
		results = chats
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*core.Chat{}
	}
	return results, nil
}

// GetLastMessages returns the newest active message text of every chat, or
// core.NoMessagesText for chats without one.
func (r *ChatRepository) GetLastMessages(ctx context.Context) ([]string, error) {
	chats, err := r.GetChats(ctx)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(chats))
	for i, chat := range chats {
		texts[i] = chat.LastMessageText()
	}
	return texts, nil
}

// Clear removes every chat and message and restarts both id counters.
func (r *ChatRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.DeletePrefix(chatPrefix, chatParticipantPrefix, messagePrefix, messageByChatPrefix); err != nil {
		return err
	}
	if err := r.chatSeq.Reset(); err != nil {
		return err
	}
	if err := r.messageSeq.Reset(); err != nil {
		return err
	}
	r.logger.Debug("chats cleared")
	return nil
}

// findChat looks a chat up through the participant index.
// Returns nil, nil if there is no chat with participantID.
func (r *ChatRepository) findChat(tx *badger.Txn, participantID core.UserID) (*core.Chat, error) {
	chatID, err := readRecord(tx, makeParticipantKey(participantID), decodeID)
	if err != nil || chatID == nil {
		return nil, err
	}
	return readRecord(tx, makeChatKey(*chatID), storage.UnmarshalChat)
}

func (r *ChatRepository) requireChat(tx *badger.Txn, participantID core.UserID) (*core.Chat, error) {
	chat, err := r.findChat(tx, participantID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, fmt.Errorf("%w: participant %d", core.ErrChatNotFound, participantID)
	}
	return chat, nil
}

// readMessages returns every message of a chat, tombstones included, in
// append order.
func (r *ChatRepository) readMessages(tx *badger.Txn, chatID core.ID) ([]*core.Message, error) {
	ids, err := scanPrefix(tx, makePartialChatMessageKey(chatID), decodeID)
	if err != nil {
		return nil, err
	}
	messages := make([]*core.Message, 0, len(ids))
	for _, id := range ids {
		message, err := readRecord(tx, makeMessageKey(*id), storage.UnmarshalMessage)
		if err != nil {
			return nil, err
		}
		if message != nil {
			messages = append(messages, message)
		}
	}
	return messages, nil
}
