// Package delivery fans chat messages out to many participants.
//
// The Pipeline type sends one text to a set of participants through a
// storage.ChatRepository, using a worker pool so that independent chats are
// written concurrently. Each send is independent: a failure for one
// participant is reported in its result and does not stop the others.
package delivery
