package core

import (
	"errors"
	"testing"
)

func TestValidatePost(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr error
	}{
		{
			name:    "valid empty post",
			post:    &Post{},
			wantErr: nil,
		},
		{
			name: "valid post with attachments",
			post: &Post{
				Text:        "hi",
				Attachments: []Attachment{{Type: "photo"}, {Type: "doc", Data: []byte("x")}},
			},
			wantErr: nil,
		},
		{
			name:    "nil post",
			post:    nil,
			wantErr: ErrInvalidPost,
		},
		{
			name:    "untyped attachment",
			post:    &Post{Attachments: []Attachment{{Data: []byte("x")}}},
			wantErr: ErrInvalidAttachment,
		},
		{
			name: "untyped attachment on comment",
			post: &Post{Comments: []Comment{
				{Text: "c", Attachments: []Attachment{{}}},
			}},
			wantErr: ErrInvalidAttachment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePost(tt.post)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePost() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePost() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	if err := ValidateComment(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ValidateComment(nil) error = %v, want %v", err, ErrInvalidArgument)
	}
	if err := ValidateComment(&Comment{Text: "plain"}); err != nil {
		t.Errorf("ValidateComment() error = %v, want nil", err)
	}
	err := ValidateComment(&Comment{Attachments: []Attachment{{Type: "video"}, {}}})
	if !errors.Is(err, ErrInvalidAttachment) {
		t.Errorf("ValidateComment() error = %v, want %v", err, ErrInvalidAttachment)
	}
}

func TestNotFoundErrorsWrapNotFound(t *testing.T) {
	for _, err := range []error{ErrPostNotFound, ErrNoteNotFound, ErrCommentNotFound, ErrChatNotFound, ErrMessageNotFound} {
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%v does not wrap ErrNotFound", err)
		}
	}
	if errors.Is(ErrPostNotFound, ErrNoteNotFound) {
		t.Errorf("entity-specific not-found errors must stay distinct")
	}
}
