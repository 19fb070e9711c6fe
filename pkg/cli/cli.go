package cli

import (
	"github.com/convox/migrate/heroku"
	"github.com/convox/stdcli"
)

type HandlerFunc func(heroku.Interface, *stdcli.Context) error

var (
	flagWait = stdcli.DurationFlag("wait", "w", "dwell time for processes to drain and boot")
)

func New(name, version string) *Engine {
	e := &Engine{
		Engine: stdcli.New(name, version),
	}

	e.Writer.Tags["app"] = stdcli.RenderColors(39)

	e.RegisterCommands()

	return e
}
