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


package core

import (
	"fmt"
)

// ValidatePost validates a Post according to domain rules.
//
// Validation rules:
//   - post must not be nil
//   - every attachment, on the post and on its comments, must carry a type tag
//
// NOT validated:
//   - ID (ignored on insert, forced on update)
//   - Text (empty posts are allowed)
//   - Date (zero dates are stamped by the store)
func ValidatePost(post *Post) error {
	if post == nil {
		return fmt.Errorf("%w: post is nil", ErrInvalidPost)
	}
	if err := ValidateAttachments(post.Attachments); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPost, err)
	}
	for i := range post.Comments {
		if err := ValidateComment(&post.Comments[i]); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPost, err)
		}
	}
	return nil
}

// ValidateComment validates a wall Comment.
func ValidateComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("%w: comment is nil", ErrInvalidArgument)
	}
	return ValidateAttachments(comment.Attachments)
}

// ValidateAttachments validates each attachment in turn.
func ValidateAttachments(attachments []Attachment) error {
	for i := range attachments {
		if err := ValidateAttachment(attachments[i]); err != nil {
			return fmt.Errorf("attachment %d: %w", i, err)
		}
	}
	return nil
}

// ValidateAttachment checks that an attachment has a type tag.
func ValidateAttachment(a Attachment) error {
	if a.Type == "" {
		return fmt.Errorf("%w: empty type", ErrInvalidAttachment)
	}
	return nil
}
