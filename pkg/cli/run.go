package cli

import (
	"time"

	"github.com/convox/migrate/heroku"
	"github.com/convox/migrate/pkg/helpers"
	"github.com/convox/migrate/pkg/migrate"
	"github.com/convox/stdcli"
)

func init() {
	register("run", "run a graceful database migration", Run, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagWait},
		Usage:    "<app> [ini-file] [app-section]",
		Validate: stdcli.ArgsBetween(1, 3),
	})
}

func Run(h heroku.Interface, c *stdcli.Context) error {
	m := migrate.New(
		c.Arg(0),
		helpers.CoalesceString(c.Arg(1), "etc/production.ini"),
		helpers.CoalesceString(c.Arg(2), "app:main"),
		h,
	)

	m.Exec = c
	m.Writer = c.Writer()

	if w, ok := c.Value("wait").(time.Duration); ok {
		m.Wait = w
	}

	return m.Run()
}
