// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"

	"github.com/poiesic/wallkit/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalPost serializes a Post, comments included, to bytes.
func MarshalPost(post *core.Post) []byte {
	buf := make([]byte, core.PostMUS.Size(*post))
	core.PostMUS.Marshal(*post, buf)
	return buf
}

// UnmarshalPost deserializes a Post from bytes. Dates are returned in UTC.
func UnmarshalPost(data []byte) (*core.Post, error) {
	post, _, err := core.PostMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	post.Date = post.Date.UTC()
	post.Attachments = decodedAttachments(post.Attachments)
	if len(post.Comments) == 0 {
		post.Comments = nil
	}
	for i := range post.Comments {
		c := &post.Comments[i]
		c.Date = c.Date.UTC()
		c.Attachments = decodedAttachments(c.Attachments)
	}
	return &post, nil
}

// MarshalNote serializes a Note to bytes.
func MarshalNote(note *core.Note) []byte {
	buf := make([]byte, core.NoteMUS.Size(*note))
	core.NoteMUS.Marshal(*note, buf)
	return buf
}

// UnmarshalNote deserializes a Note from bytes.
func UnmarshalNote(data []byte) (*core.Note, error) {
	note, _, err := core.NoteMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	note.Date = note.Date.UTC()
	return &note, nil
}

// MarshalNoteComment serializes a NoteComment to bytes.
func MarshalNoteComment(comment *core.NoteComment) []byte {
	buf := make([]byte, core.NoteCommentMUS.Size(*comment))
	core.NoteCommentMUS.Marshal(*comment, buf)
	return buf
}

// UnmarshalNoteComment deserializes a NoteComment from bytes.
func UnmarshalNoteComment(data []byte) (*core.NoteComment, error) {
	comment, _, err := core.NoteCommentMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	comment.Date = comment.Date.UTC()
	return &comment, nil
}

// MarshalMessage serializes a Message to bytes.
func MarshalMessage(message *core.Message) []byte {
	buf := make([]byte, core.MessageMUS.Size(*message))
	core.MessageMUS.Marshal(*message, buf)
	return buf
}

// UnmarshalMessage deserializes a Message from bytes.
func UnmarshalMessage(data []byte) (*core.Message, error) {
	message, _, err := core.MessageMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	message.Timestamp = message.Timestamp.UTC()
	return &message, nil
}

// MarshalChat serializes a Chat header. Messages are not included.
func MarshalChat(chat *core.Chat) []byte {
	buf := make([]byte, core.ChatMUS.Size(*chat))
	core.ChatMUS.Marshal(*chat, buf)
	return buf
}

// UnmarshalChat deserializes a Chat header; Messages is left empty.
func UnmarshalChat(data []byte) (*core.Chat, error) {
	chat, _, err := core.ChatMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &chat, nil
}

// decodedAttachments brings decoded attachments to the form they were
// stored from: empty lists and payloads are nil.
func decodedAttachments(attachments []core.Attachment) []core.Attachment {
	if len(attachments) == 0 {
		return nil
	}
	for i := range attachments {
		if len(attachments[i].Data) == 0 {
			attachments[i].Data = nil
		}
	}
	return attachments
}
