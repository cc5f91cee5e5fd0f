// Package commands implements the console's "cmd ..." surface: named
// subcommands with per-command flag sets, kept separate from the T# verb
// table so engine controls never collide with script vocabulary.
package commands

import (
	"flag"
	"fmt"
	"strings"
)

const prefix = "cmd "

// Command pairs a flag set with the function run after parsing. The run
// function reads its flag values through the closures registered with it.
type Command struct {
	Name    string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry maps subcommand names to commands. Registration order is kept so
// help output lists commands the way they were wired.
type Registry struct {
	cmds  map[string]*Command
	order []string
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand under name, the first token after "cmd".
// Re-registering a name replaces the command but keeps its original position.
func (r *Registry) Register(name string, fs *flag.FlagSet, run func() error) {
	if _, exists := r.cmds[name]; !exists {
		r.order = append(r.order, name)
	}
	r.cmds[name] = &Command{Name: name, FlagSet: fs, Run: run}
}

// Parse splits a console line into subcommand arguments. Lines without the
// "cmd " prefix are not commands (they are T# statements) and return ok false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Names returns the registered command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Execute looks up args[0] and runs it with args[1:] parsed as its flags.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s (try cmd help)", args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run()
}
