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


// Package inbox provides read-side views over the chat store.
//
// The Digest type summarizes every chat from one consistent snapshot:
//   - the participant and the newest active message text
//   - the number of unread and active messages
//   - the number of chats holding unread messages
//
// It also finds messages by keyword, ignoring case, punctuation and common
// stop words. Nothing in this package changes read state.
package inbox
