package cli

import (
	"github.com/convox/migrate/heroku"
	"github.com/convox/stdcli"
)

func init() {
	register("maintenance", "show maintenance mode", Maintenance, stdcli.CommandOptions{
		Usage:    "<app>",
		Validate: stdcli.Args(1),
	})

	register("maintenance on", "enable maintenance mode", MaintenanceOn, stdcli.CommandOptions{
		Usage:    "<app>",
		Validate: stdcli.Args(1),
	})

	register("maintenance off", "disable maintenance mode", MaintenanceOff, stdcli.CommandOptions{
		Usage:    "<app>",
		Validate: stdcli.Args(1),
	})
}

func Maintenance(h heroku.Interface, c *stdcli.Context) error {
	a, err := h.AppGet(c.Arg(0))
	if err != nil {
		return err
	}

	if a.Maintenance {
		c.Writef("on\n")
	} else {
		c.Writef("off\n")
	}

	return nil
}

func MaintenanceOn(h heroku.Interface, c *stdcli.Context) error {
	c.Startf("Enabling maintenance on <app>%s</app>", c.Arg(0))

	if _, err := h.MaintenanceSet(c.Arg(0), true); err != nil {
		return err
	}

	return c.OK()
}

func MaintenanceOff(h heroku.Interface, c *stdcli.Context) error {
	c.Startf("Disabling maintenance on <app>%s</app>", c.Arg(0))

	if _, err := h.MaintenanceSet(c.Arg(0), false); err != nil {
		return err
	}

	return c.OK()
}
