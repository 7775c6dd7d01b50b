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
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrNotFound indicates that a referenced entity does not exist.
	// Every entity-specific not-found error wraps it.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyDeleted indicates an operation that needs an active entity
	// was applied to a tombstoned one.
	ErrAlreadyDeleted = errors.New("already deleted")

	// ErrNotDeleted indicates a restore of an entity that is not tombstoned.
	ErrNotDeleted = errors.New("not deleted")

	// ErrNoteDeleted indicates a comment restore whose parent note is gone.
	// The comment itself still exists.
	ErrNoteDeleted = errors.New("parent note deleted")

	// ErrUnauthorized indicates the caller is not the owner of the entity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidArgument indicates a malformed argument, such as a negative count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPost indicates a Post failed validation.
	ErrInvalidPost = errors.New("invalid post")

	// ErrInvalidAttachment indicates an attachment without a type tag.
	ErrInvalidAttachment = errors.New("invalid attachment")
)

var (
	ErrPostNotFound    = fmt.Errorf("post %w", ErrNotFound)
	ErrNoteNotFound    = fmt.Errorf("note %w", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)
	ErrChatNotFound    = fmt.Errorf("chat %w", ErrNotFound)
	ErrMessageNotFound = fmt.Errorf("message %w", ErrNotFound)
)

// ErrMessageDeleted is returned when editing a tombstoned message. It
// matches both ErrMessageNotFound and ErrAlreadyDeleted.
var ErrMessageDeleted = fmt.Errorf("%w: %w", ErrMessageNotFound, ErrAlreadyDeleted)
