package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
)

// cmdWord is the optional leading word of a line ("cmd add chair"). A "/" prefix or a bare
// line ("add chair") is accepted as well.
const cmdWord = "cmd"

// ErrMissing is returned by Execute for an empty argument list.
var ErrMissing = errors.New("missing subcommand")

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run receives the positional arguments left after parsing.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs may be nil for a command without flags; flag errors are
// returned from Execute rather than printed.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Help returns one usage line per command, sorted by name.
func (r *Registry) Help() []string {
	var out []string
	for _, n := range r.Names() {
		out = append(out, r.cmds[n].Usage)
	}
	return out
}

// Parse tokenizes a terminal line. An optional leading "cmd" word or "/" is stripped.
// ok is false for a line with nothing after the prefix.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimPrefix(strings.TrimSpace(line), "/")
	args = strings.Fields(line)
	if len(args) > 0 && args[0] == cmdWord {
		args = args[1:]
	}
	if len(args) == 0 {
		return nil, false
	}
	return args, true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissing
	}
	name := strings.ToLower(args[0])
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}
