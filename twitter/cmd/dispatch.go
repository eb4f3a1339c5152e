package cmd

import (
	"fmt"
	"io"

	"github.com/dichro/tuit/twitter/api"
	"github.com/golang/glog"
)

// Command identifies one of the actions selectable from the command line.
type Command int

const (
	Help Command = iota
	Tweet
	SendMessage
	Timeline
	Mentions
	GetMessages
	Favorites
)

var commandNames = map[Command]string{
	Help:        "help",
	Tweet:       "tweet",
	SendMessage: "sendMessage",
	Timeline:    "timeline",
	Mentions:    "mentions",
	GetMessages: "getMessages",
	Favorites:   "favorites",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

const (
	// DefaultMaxArgs counts the program name, the flag and its arguments.
	DefaultMaxArgs = 4
	helpFlag       = "-help"
)

// CommandSpec is one registry entry. Run is called with between Required
// and Required+Optional positional arguments.
type CommandSpec struct {
	Flag     string
	Command  Command
	Required int
	Optional int
	Usage    string
	Summary  string
	Run      func(w io.Writer, args []string)
}

func (s CommandSpec) Accepts(supplied int) bool {
	return s.Required <= supplied && supplied <= s.Required+s.Optional
}

// Dispatcher maps flag tokens to handlers.
type Dispatcher struct {
	MaxArgs int

	flags map[string]Command
	specs map[Command]CommandSpec
	// banner order
	order []Command
	h     *handlers
}

// NewDispatcher builds the registry. username is the account whose home
// timeline -tl shows.
func NewDispatcher(program string, tw api.API, username string) *Dispatcher {
	h := &handlers{program: program, username: username, tw: tw}
	d := &Dispatcher{
		MaxArgs: DefaultMaxArgs,
		flags:   make(map[string]Command),
		specs:   make(map[Command]CommandSpec),
		h:       h,
	}
	d.register(CommandSpec{Flag: helpFlag, Command: Help, Run: d.help})
	d.register(CommandSpec{Flag: "-dm", Command: SendMessage, Required: 2,
		Usage: "user text", Summary: "Send text as a DM to @user.", Run: h.sendMessage})
	d.register(CommandSpec{Flag: "-tl", Command: Timeline, Optional: 1,
		Usage: "[count]", Summary: "Show count tweets of your TL.", Run: h.timeline})
	d.register(CommandSpec{Flag: "-m", Command: Mentions, Optional: 1,
		Usage: "[count]", Summary: "Show count mentions.", Run: h.mentions})
	d.register(CommandSpec{Flag: "-t", Command: Tweet, Optional: 1,
		Usage: "text", Summary: "Tweet text.", Run: h.tweet})
	d.register(CommandSpec{Flag: "-gm", Command: GetMessages, Optional: 1,
		Usage: "[count]", Summary: "Show count last DMs.", Run: h.getMessages})
	d.register(CommandSpec{Flag: "-f", Command: Favorites, Optional: 2,
		Usage: "[count [user]]", Summary: "Show your last count favorites or user's", Run: h.favorites})
	return d
}

func (d *Dispatcher) register(s CommandSpec) {
	if _, dup := d.flags[s.Flag]; dup {
		panic("duplicate flag " + s.Flag)
	}
	d.flags[s.Flag] = s.Command
	d.specs[s.Command] = s
	if s.Command != Help {
		d.order = append(d.order, s.Command)
	}
}

// Lookup returns the registry entry for a flag token.
func (d *Dispatcher) Lookup(flag string) (CommandSpec, bool) {
	c, ok := d.flags[flag]
	if !ok {
		return CommandSpec{}, false
	}
	return d.specs[c], true
}

// Dispatch runs exactly one command for args (the command line without the
// program name) and reports which one ran. Anything it cannot route ends up
// at Help.
func (d *Dispatcher) Dispatch(w io.Writer, args []string) Command {
	argc := len(args) + 1
	if argc < 2 || argc > d.MaxArgs || args[0] == helpFlag {
		glog.V(1).Infof("%d arguments, showing help", argc)
		d.help(w, nil)
		return Help
	}
	spec, ok := d.Lookup(args[0])
	if !ok {
		glog.V(1).Infof("unknown flag %q", args[0])
		d.help(w, nil)
		return Help
	}
	supplied := args[1:]
	if !spec.Accepts(len(supplied)) {
		glog.V(1).Infof("%s takes %d to %d arguments, got %d",
			spec.Command, spec.Required, spec.Required+spec.Optional, len(supplied))
		d.help(w, nil)
		return Help
	}
	glog.V(1).Infof("running %s with %q", spec.Command, supplied)
	spec.Run(w, supplied)
	return spec.Command
}

func (d *Dispatcher) help(w io.Writer, _ []string) {
	fmt.Fprintf(w, "Usage: %s flag [args]\n\n", d.h.program)
	fmt.Fprintln(w, "flag [args]:")
	for _, c := range d.order {
		s := d.specs[c]
		fmt.Fprintf(w, "  %s %s\n\t%s\n", s.Flag, s.Usage, s.Summary)
	}
}
