package cli

import (
	"github.com/convox/migrate/heroku"
	"github.com/convox/migrate/pkg/helpers"
	"github.com/convox/stdcli"
)

func init() {
	register("apps info", "get information about an app", AppsInfo, stdcli.CommandOptions{
		Usage:    "<app>",
		Validate: stdcli.Args(1),
	})
}

func AppsInfo(h heroku.Interface, c *stdcli.Context) error {
	a, err := h.AppGet(c.Arg(0))
	if err != nil {
		return err
	}

	maintenance := "off"
	if a.Maintenance {
		maintenance = "on"
	}

	i := c.Info()

	i.Add("Name", a.Name)
	i.Add("Url", a.WebUrl)
	i.Add("Maintenance", maintenance)
	i.Add("Created", helpers.Ago(a.CreatedAt))
	i.Add("Released", helpers.Ago(a.ReleasedAt))

	return i.Print()
}
