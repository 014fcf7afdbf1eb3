package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd"

// ErrUnknown is returned by Execute for a name that was never registered.
var ErrUnknown = errors.New("unknown command")

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state and FlagSet.Args().
type Command struct {
	Name    string
	Help    string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// NewFlagSet returns a FlagSet suited to in-window commands: errors are returned, not printed or fatal.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a subcommand. name is the first token of the line (e.g. "grid").
// fs is that command's FlagSet (nil means no flags); run is called after fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name, help string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = NewFlagSet(name)
	}
	r.cmds[name] = &Command{Name: name, Help: help, FlagSet: fs, Run: run}
}

// Names returns registered command names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Help returns one "name - help" line per command, sorted by name.
func (r *Registry) Help() []string {
	names := r.Names()
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name+" - "+r.cmds[name].Help)
	}
	return out
}

// Parse tokenizes a terminal line by spaces. A leading "cmd " is accepted and dropped.
// Returns ok false for a blank line.
func Parse(line string) (args []string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) > 0 && fields[0] == prefix {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return nil, false
	}
	return fields, true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Every flag is reset to its default first, so no value carries over from an earlier call,
// including one whose parse failed. Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	cmd.FlagSet.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run()
}
