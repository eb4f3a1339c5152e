package api

import (
	"net/url"
	"strconv"

	"github.com/ChimeraCoder/anaconda"
	"github.com/golang/glog"
)

type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

func (c Credentials) Complete() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// client is the subset of *anaconda.TwitterApi that Client calls.
type client interface {
	PostTweet(status string, v url.Values) (anaconda.Tweet, error)
	PostDMToScreenName(text, screenName string) (anaconda.DirectMessage, error)
	GetHomeTimeline(v url.Values) ([]anaconda.Tweet, error)
	GetMentionsTimeline(v url.Values) ([]anaconda.Tweet, error)
	GetDirectMessages(v url.Values) ([]anaconda.DirectMessage, error)
	GetFavorites(v url.Values) ([]anaconda.Tweet, error)
}

// Client implements API on top of anaconda.
type Client struct {
	tw    client
	close func()
}

func New(c Credentials) *Client {
	anaconda.SetConsumerKey(c.ConsumerKey)
	anaconda.SetConsumerSecret(c.ConsumerSecret)
	tw := anaconda.NewTwitterApi(c.AccessToken, c.AccessSecret)
	return &Client{tw: tw, close: tw.Close}
}

// Close stops the anaconda request queue.
func (c *Client) Close() {
	if c.close != nil {
		c.close()
	}
}

func (c *Client) PostStatus(text string) (Status, error) {
	t, err := c.tw.PostTweet(text, nil)
	if err != nil {
		return Status{}, &ServiceError{Op: "post status", Err: err}
	}
	return statusFromTweet(t), nil
}

func (c *Client) PostDirectMessage(recipient, text string) (DirectMessage, error) {
	m, err := c.tw.PostDMToScreenName(text, recipient)
	if err != nil {
		return DirectMessage{}, &ServiceError{Op: "post direct message", Err: err}
	}
	return messageFromDM(m), nil
}

// Timeline fetches the home timeline as seen by handle. Twitter scopes the
// endpoint to the authenticated account, so handle only matters when it
// disagrees with the credentials.
func (c *Client) Timeline(handle string, count int) ([]Status, error) {
	v := make(url.Values)
	v.Set("count", strconv.Itoa(count))
	if handle != "" {
		v.Set("screen_name", handle)
	}
	glog.V(2).Infof("home timeline %v", v)
	tl, err := c.tw.GetHomeTimeline(v)
	if err != nil {
		return nil, &ServiceError{Op: "home timeline", Err: err}
	}
	return statusesFromTweets(tl), nil
}

func (c *Client) Mentions() ([]Status, error) {
	tl, err := c.tw.GetMentionsTimeline(nil)
	if err != nil {
		return nil, &ServiceError{Op: "mentions", Err: err}
	}
	return statusesFromTweets(tl), nil
}

func (c *Client) DirectMessages() ([]DirectMessage, error) {
	dms, err := c.tw.GetDirectMessages(nil)
	if err != nil {
		return nil, &ServiceError{Op: "direct messages", Err: err}
	}
	out := make([]DirectMessage, 0, len(dms))
	for _, m := range dms {
		out = append(out, messageFromDM(m))
	}
	return out, nil
}

func (c *Client) Favorites(handle string) ([]Status, error) {
	var v url.Values
	if handle != "" {
		v = url.Values{"screen_name": {handle}}
	}
	favs, err := c.tw.GetFavorites(v)
	if err != nil {
		return nil, &ServiceError{Op: "favorites", Err: err}
	}
	return statusesFromTweets(favs), nil
}

func statusFromTweet(t anaconda.Tweet) Status {
	text := t.FullText
	if text == "" {
		text = t.Text
	}
	return Status{Author: t.User.ScreenName, CreatedAt: t.CreatedAt, Text: text}
}

func statusesFromTweets(tl []anaconda.Tweet) []Status {
	out := make([]Status, 0, len(tl))
	for _, t := range tl {
		out = append(out, statusFromTweet(t))
	}
	return out
}

func messageFromDM(m anaconda.DirectMessage) DirectMessage {
	return DirectMessage{
		Sender:    m.SenderScreenName,
		Recipient: m.RecipientScreenName,
		Text:      m.Text,
	}
}
