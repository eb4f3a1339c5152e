package cmd

import (
	"errors"

	"github.com/dichro/tuit/twitter/api"
)

var errRejected = &api.ServiceError{Op: "test", Err: errors.New("rejected")}

// fakeAPI records calls and honours count the way Twitter does for the
// home timeline.
type fakeAPI struct {
	statuses []api.Status
	messages []api.DirectMessage
	err      error

	calls     []string
	posted    string
	dmTo      string
	tlHandle  string
	tlCount   int
	favHandle string
}

func (f *fakeAPI) PostStatus(text string) (api.Status, error) {
	f.calls = append(f.calls, "PostStatus")
	f.posted = text
	if f.err != nil {
		return api.Status{}, f.err
	}
	return api.Status{Author: "me", CreatedAt: "now", Text: text}, nil
}

func (f *fakeAPI) PostDirectMessage(recipient, text string) (api.DirectMessage, error) {
	f.calls = append(f.calls, "PostDirectMessage")
	f.dmTo = recipient
	if f.err != nil {
		return api.DirectMessage{}, f.err
	}
	return api.DirectMessage{Sender: "me", Recipient: recipient, Text: text}, nil
}

func (f *fakeAPI) Timeline(handle string, count int) ([]api.Status, error) {
	f.calls = append(f.calls, "Timeline")
	f.tlHandle, f.tlCount = handle, count
	if count < len(f.statuses) {
		return f.statuses[:count], f.err
	}
	return f.statuses, f.err
}

func (f *fakeAPI) Mentions() ([]api.Status, error) {
	f.calls = append(f.calls, "Mentions")
	return f.statuses, f.err
}

func (f *fakeAPI) DirectMessages() ([]api.DirectMessage, error) {
	f.calls = append(f.calls, "DirectMessages")
	return f.messages, f.err
}

func (f *fakeAPI) Favorites(handle string) ([]api.Status, error) {
	f.calls = append(f.calls, "Favorites")
	f.favHandle = handle
	return f.statuses, f.err
}

// newestFirst returns n statuses s1..sn, sn being the newest and first.
func newestFirst(n int) []api.Status {
	out := make([]api.Status, 0, n)
	for i := n; i > 0; i-- {
		out = append(out, api.Status{
			Author:    "a",
			CreatedAt: "t",
			Text:      "s" + string(rune('0'+i)),
		})
	}
	return out
}
