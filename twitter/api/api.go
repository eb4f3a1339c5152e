// Package api is the thin layer between tuit and the Twitter REST API.
package api

import "fmt"

// CharacterLimit is the longest status or direct message Twitter accepts.
const CharacterLimit = 280

type Status struct {
	Author    string
	CreatedAt string
	Text      string
}

type DirectMessage struct {
	Sender    string
	Recipient string
	Text      string
}

// API is everything tuit needs from Twitter. Sequences come back
// newest-first, the way Twitter returns them.
type API interface {
	PostStatus(text string) (Status, error)
	PostDirectMessage(recipient, text string) (DirectMessage, error)
	Timeline(handle string, count int) ([]Status, error)
	Mentions() ([]Status, error)
	DirectMessages() ([]DirectMessage, error)
	// Favorites of handle, or of the authenticated user when handle is empty.
	Favorites(handle string) ([]Status, error)
}

// ServiceError is returned when Twitter refuses or fails a request.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("twitter %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
