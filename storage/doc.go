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


// Package storage defines the store contracts of wallkit.
//
// Three independent stores share one shape: an id-keyed table of a primary
// entity, a monotonic sequence issuing its ids, and (for notes and chats) a
// second table of child entities cross-referenced by parent id.
//
//   - PostRepository: wall posts with nested comments
//   - NoteRepository: notes with a denormalized comment counter and a
//     separate comment table supporting delete and restore
//   - ChatRepository: 1:1 chats with read/unread and deleted state per message
//
// # Identifiers
//
// Ids start at 1, strictly increase, and are never reused while the store
// lives. Clear empties a store and restarts its counters at 1.
//
// # Tombstones
//
// Comments and messages are soft-deleted: the row stays and carries a
// deleted flag, which removes it from every active listing. Notes and chats
// are removed outright; removing a note tombstones its comments, removing a
// chat erases its messages.
//
// # Values, not references
//
// Every returned entity is a fresh copy. Mutating it has no effect on the
// store; all changes go through store operations.
//
// # Usage
//
//	posts, notes, chats, backend, err := badger.NewMemoryRepositories()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// # Thread Safety
//
// All repository implementations must be thread-safe. Each repository
// serializes its own mutations; repositories never share state.
package storage
