package storage

import (
	"testing"
	"time"

	"github.com/poiesic/wallkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestMarshalUnmarshalPost(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	post := &core.Post{
		Id:         3,
		ToID:       -5, // group walls carry negative owner ids
		FromID:     9,
		Date:       now,
		Text:       "Hello 世界 🌍",
		PostType:   "post",
		CanEdit:    true,
		CanPin:     true,
		IsFavorite: true,
		Likes:      core.Likes{Count: 12, CanLike: true},
		Comments: []core.Comment{
			{Id: 1, FromID: 2, Date: now, Text: "first"},
			{Id: 2, FromID: 3, Date: now.Add(time.Second), Text: "reply", ReplyToUser: 2, ReplyToComment: 1,
				Attachments: []core.Attachment{{Type: "photo", Data: []byte{0, 1, 2, 255}}}},
		},
		Attachments: []core.Attachment{
			{Type: "link", Data: []byte("https://example.com")},
			{Type: "audio"},
		},
	}

	data := MarshalPost(post)
	decoded, err := UnmarshalPost(data)
	require.NoError(t, err)
	assert.True(t, post.Equal(decoded), "decoded post differs: %+v", decoded)
	assert.Equal(t, post.Hash(), decoded.Hash())
}

func TestUnmarshalPost_Truncated(t *testing.T) {
	post := &core.Post{
		Text:        "truncate me",
		Attachments: []core.Attachment{{Type: "doc", Data: []byte("payload bytes")}},
	}
	data := MarshalPost(post)

	for _, cut := range []int{1, 5, len(data) / 2} {
		_, err := UnmarshalPost(data[:len(data)-cut])
		assert.ErrorIs(t, err, ErrSerializationFailed, "cut %d", cut)
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"invalid data", []byte{0xFF, 0xFF, 0xFF}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalNote(tt.data)
			assert.Error(t, err)
			_, err = UnmarshalNoteComment(tt.data)
			assert.Error(t, err)
			_, err = UnmarshalMessage(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestMarshalUnmarshalMessage(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	msg := &core.Message{Id: 8, ChatID: 2, SenderID: core.CurrentUserID, Text: "hey", Timestamp: now, IsRead: true}

	decoded, err := UnmarshalMessage(MarshalMessage(msg))
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestMarshalUnmarshalChat_OmitsMessages(t *testing.T) {
	chat := &core.Chat{Id: 4, ParticipantID: 77, Messages: []core.Message{{Id: 1, Text: "x"}}}

	decoded, err := UnmarshalChat(MarshalChat(chat))
	require.NoError(t, err)
	assert.Equal(t, core.ID(4), decoded.Id)
	assert.Equal(t, core.UserID(77), decoded.ParticipantID)
	assert.Empty(t, decoded.Messages)
}

func TestUnmarshal_StoredForm(t *testing.T) {
	local := time.Date(2024, 3, 1, 12, 30, 0, 123456000, time.FixedZone("x", 7200))

	t.Run("post", func(t *testing.T) {
		post := &core.Post{
			Id:          1,
			Date:        local,
			Comments:    []core.Comment{{Id: 1, Date: local, Attachments: []core.Attachment{{Type: "doc", Data: []byte{}}}}},
			Attachments: []core.Attachment{},
		}
		decoded, err := UnmarshalPost(MarshalPost(post))
		require.NoError(t, err)

		assert.Equal(t, local.UTC(), decoded.Date)
		assert.Equal(t, time.UTC, decoded.Date.Location())
		assert.Nil(t, decoded.Attachments)
		require.Len(t, decoded.Comments, 1)
		assert.Equal(t, local.UTC(), decoded.Comments[0].Date)
		assert.Nil(t, decoded.Comments[0].Attachments[0].Data)
	})

	t.Run("post without comments", func(t *testing.T) {
		decoded, err := UnmarshalPost(MarshalPost(&core.Post{Id: 2}))
		require.NoError(t, err)
		assert.Nil(t, decoded.Comments)
		assert.True(t, decoded.Date.IsZero())
		assert.Equal(t, core.Post{Id: 2}, *decoded)
	})

	t.Run("note and comment", func(t *testing.T) {
		note, err := UnmarshalNote(MarshalNote(&core.Note{Id: 1, Date: local}))
		require.NoError(t, err)
		assert.Equal(t, local.UTC(), note.Date)

		comment, err := UnmarshalNoteComment(MarshalNoteComment(&core.NoteComment{Id: 1, Date: local}))
		require.NoError(t, err)
		assert.Equal(t, local.UTC(), comment.Date)
	})

	t.Run("message", func(t *testing.T) {
		message, err := UnmarshalMessage(MarshalMessage(&core.Message{Id: 1, Timestamp: local}))
		require.NoError(t, err)
		assert.Equal(t, local.UTC(), message.Timestamp)
	})

	t.Run("chat header only", func(t *testing.T) {
		chat := &core.Chat{Id: 300, ParticipantID: -7, Messages: []core.Message{{Id: 1}}}
		data := MarshalChat(chat)
		assert.Len(t, data, core.IDMUS.Size(chat.Id)+core.UserIDMUS.Size(chat.ParticipantID))
	})
}
