package main

import (
	"os"

	"github.com/convox/migrate/pkg/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.New("migrate", version).Execute(os.Args[1:]))
}
