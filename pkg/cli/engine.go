package cli

import (
	"strings"

	"github.com/convox/migrate/heroku"
	"github.com/convox/stdcli"
)

type Engine struct {
	*stdcli.Engine
	Client heroku.Interface
}

func (e *Engine) Command(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	wfn := func(c *stdcli.Context) error {
		return fn(e.currentClient(c), c)
	}

	e.Engine.Command(command, description, wfn, opts)
}

func (e *Engine) RegisterCommands() {
	for _, c := range commands {
		e.Command(c.Command, c.Description, c.Handler, c.Opts)
	}
}

// Execute routes a bare `migrate <app> [ini-file] [app-section]`
// invocation to the run command so the common case needs no subcommand.
func (e *Engine) Execute(args []string) int {
	if len(args) > 0 && !e.matches(args) {
		args = append([]string{"run"}, args...)
	}

	return e.Engine.Execute(args)
}

func (e *Engine) matches(args []string) bool {
	if strings.HasPrefix(args[0], "-") {
		return true
	}

	for _, c := range e.Commands {
		if _, ok := c.Match(args); ok {
			return true
		}
	}

	return false
}

func (e *Engine) currentClient(c *stdcli.Context) heroku.Interface {
	if e.Client != nil {
		return e.Client
	}

	hc, err := heroku.NewFromEnv()
	if err != nil {
		c.Fail(err)
	}

	return hc
}

var commands = []command{}

type command struct {
	Command     string
	Description string
	Handler     HandlerFunc
	Opts        stdcli.CommandOptions
}

func register(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
	})
}
