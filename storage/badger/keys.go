package badger

import (
	"encoding/binary"

	"github.com/poiesic/wallkit/core"
)

// Key prefixes for different data types. Every prefix ends with ':' so no
// prefix is a prefix of another.
const (
	postPrefix              = "post:"
	postFingerprintPrefix   = "postfp:"
	notePrefix              = "note:"
	noteCommentPrefix       = "ncmt:"
	noteCommentByNotePrefix = "ncmtn:"
	chatPrefix              = "chat:"
	chatParticipantPrefix   = "chatp:"
	messagePrefix           = "msg:"
	messageByChatPrefix     = "msgc:"
)

// Sequence keys, one per kind of issued id.
const (
	postIDSeq        = "seq:post"
	postCommentIDSeq = "seq:pcmt"
	noteIDSeq        = "seq:note"
	noteCommentIDSeq = "seq:ncmt"
	chatIDSeq        = "seq:chat"
	messageIDSeq     = "seq:msg"
)

// makeKey appends the big-endian encoding of each part to prefix, so that
// lexicographic key order matches numeric order.
func makeKey(prefix string, parts ...uint64) []byte {
	buf := make([]byte, len(prefix)+8*len(parts))
	offset := copy(buf, prefix)
	for _, p := range parts {
		binary.BigEndian.PutUint64(buf[offset:], p)
		offset += 8
	}
	return buf
}

func makePostKey(id core.ID) []byte {
	return makeKey(postPrefix, uint64(id))
}

// makePostFingerprintKey generates the key holding the content fingerprint
// of a post, written alongside every version of the post.
func makePostFingerprintKey(id core.ID) []byte {
	return makeKey(postFingerprintPrefix, uint64(id))
}

func makeNoteKey(id core.ID) []byte {
	return makeKey(notePrefix, uint64(id))
}

func makeNoteCommentKey(id core.ID) []byte {
	return makeKey(noteCommentPrefix, uint64(id))
}

// makeNoteCommentIndexKey generates a composite key for the note index.
// Format: prefix:noteID:commentID
func makeNoteCommentIndexKey(noteID, commentID core.ID) []byte {
	return makeKey(noteCommentByNotePrefix, uint64(noteID), uint64(commentID))
}

// makePartialNoteCommentIndexKey generates the prefix of all index entries of a note.
func makePartialNoteCommentIndexKey(noteID core.ID) []byte {
	return makeKey(noteCommentByNotePrefix, uint64(noteID))
}

func makeChatKey(id core.ID) []byte {
	return makeKey(chatPrefix, uint64(id))
}

// makeParticipantKey generates the key of the participant -> chat index.
// There is at most one entry per participant.
func makeParticipantKey(participantID core.UserID) []byte {
	return makeKey(chatParticipantPrefix, uint64(participantID))
}

func makeMessageKey(id core.ID) []byte {
	return makeKey(messagePrefix, uint64(id))
}

// makeChatMessageKey generates a composite key for the chat membership index.
// Format: prefix:chatID:messageID, so a prefix scan yields append order.
func makeChatMessageKey(chatID, messageID core.ID) []byte {
	return makeKey(messageByChatPrefix, uint64(chatID), uint64(messageID))
}

// makePartialChatMessageKey generates the prefix of all messages of a chat.
func makePartialChatMessageKey(chatID core.ID) []byte {
	return makeKey(messageByChatPrefix, uint64(chatID))
}
