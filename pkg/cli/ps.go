package cli

import (
	"sort"
	"strconv"

	"github.com/convox/migrate/heroku"
	"github.com/convox/stdcli"
)

func init() {
	register("ps", "list app process formation", Ps, stdcli.CommandOptions{
		Usage:    "<app>",
		Validate: stdcli.Args(1),
	})
}

func Ps(h heroku.Interface, c *stdcli.Context) error {
	f, err := h.FormationGet(c.Arg(0))
	if err != nil {
		return err
	}

	sort.Slice(f, f.Less)

	t := c.Table("TYPE", "QUANTITY")

	for _, pf := range f {
		t.AddRow(pf.Type, strconv.Itoa(pf.Quantity))
	}

	return t.Print()
}
