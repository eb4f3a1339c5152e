package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/dichro/tuit/twitter/api"
	"github.com/golang/glog"
)

const defaultCount = 20

var errNegativeCount = errors.New("count must not be negative")

type handlers struct {
	program  string
	username string
	tw       api.API
}

func (h *handlers) usage(w io.Writer, shape string) {
	fmt.Fprintf(w, "Usage: %s %s\n", h.program, shape)
}

// serviceProblem reports a failed API call without stopping the process.
func (h *handlers) serviceProblem(w io.Writer, err error) {
	glog.Warning(err)
	fmt.Fprintln(w, "There is a problem with Twitter")
}

func (h *handlers) tweet(w io.Writer, args []string) {
	if len(args) == 0 || args[0] == "" {
		h.usage(w, "-t tweet")
		return
	}
	text := args[0]
	if n := utf8.RuneCountInString(text); n > api.CharacterLimit {
		fmt.Fprintf(w, "Your tweet is %d characters\n", n)
		return
	}
	status, err := h.tw.PostStatus(text)
	if err != nil {
		h.serviceProblem(w, err)
		return
	}
	fmt.Fprintln(w, "Tweet sent!")
	fmt.Fprintln(w, formatStatus(status))
}

func (h *handlers) sendMessage(w io.Writer, args []string) {
	if len(args) < 2 || args[0] == "" || args[1] == "" {
		h.usage(w, "-dm user text")
		return
	}
	user, text := args[0], args[1]
	if n := utf8.RuneCountInString(text); n > api.CharacterLimit {
		fmt.Fprintf(w, "Your message is %d characters\n", n)
		return
	}
	dm, err := h.tw.PostDirectMessage(user, text)
	if err != nil {
		glog.Warning(err)
		fmt.Fprintln(w, "Error! Message not sent!")
		fmt.Fprintf(w, "Are you sure that %s is a valid username or ID?\n", user)
		return
	}
	fmt.Fprintln(w, "Message sent!")
	fmt.Fprintln(w, formatMessage(dm))
}

func (h *handlers) timeline(w io.Writer, args []string) {
	count, err := parseCount(args, 0)
	if err != nil {
		h.usage(w, "-tl [count]")
		return
	}
	tl, err := h.tw.Timeline(h.username, count)
	if err != nil {
		h.serviceProblem(w, err)
		return
	}
	fmt.Fprintln(w, formatStatuses(oldestFirst(tl, count)))
}

func (h *handlers) mentions(w io.Writer, args []string) {
	count, err := parseCount(args, 0)
	if err != nil {
		h.usage(w, "-m [count]")
		return
	}
	mentions, err := h.tw.Mentions()
	if err != nil {
		h.serviceProblem(w, err)
		return
	}
	fmt.Fprintln(w, formatStatuses(oldestFirst(mentions, count)))
}

func (h *handlers) getMessages(w io.Writer, args []string) {
	count, err := parseCount(args, 0)
	if err != nil {
		h.usage(w, "-gm [count]")
		return
	}
	dms, err := h.tw.DirectMessages()
	if err != nil {
		h.serviceProblem(w, err)
		return
	}
	fmt.Fprintln(w, formatMessages(oldestFirst(dms, count)))
}

func (h *handlers) favorites(w io.Writer, args []string) {
	count, err := parseCount(args, 0)
	if err != nil {
		h.usage(w, "-f [count, [user]]")
		return
	}
	var user string
	if len(args) > 1 {
		user = args[1]
	}
	favs, err := h.tw.Favorites(user)
	if err != nil {
		h.serviceProblem(w, err)
		return
	}
	fmt.Fprintln(w, formatStatuses(oldestFirst(favs, count)))
}

// parseCount reads the count at args[i], defaulting to defaultCount.
func parseCount(args []string, i int) (int, error) {
	if len(args) <= i {
		return defaultCount, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("count %q: %w", args[i], err)
	}
	if n < 0 {
		return 0, errNegativeCount
	}
	return n, nil
}

// oldestFirst keeps the newest count items of a newest-first sequence and
// returns them in reading order.
func oldestFirst[T any](items []T, count int) []T {
	if count < len(items) {
		items = items[:count]
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}
