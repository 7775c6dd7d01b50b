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


package badger

import "github.com/poiesic/wallkit/storage"

// NewMemoryRepositories creates in-memory post, note and chat repositories.
// Returns postRepo, noteRepo, chatRepo, backend, and error.
// Caller must close the repos and then the backend when done.
func NewMemoryRepositories(opts ...Option) (storage.PostRepository, storage.NoteRepository, storage.ChatRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	postRepo, err := NewPostRepository(backend, opts...)
	if err != nil {
		backend.Close()
		return nil, nil, nil, nil, err
	}

	noteRepo, err := NewNoteRepository(backend, opts...)
	if err != nil {
		postRepo.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	chatRepo, err := NewChatRepository(backend, opts...)
	if err != nil {
		noteRepo.Close()
		postRepo.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	return postRepo, noteRepo, chatRepo, backend, nil
}
