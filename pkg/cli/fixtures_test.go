package cli_test

import (
	"time"

	"github.com/convox/migrate/pkg/structs"
)

var fxApp = structs.App{
	Id:         "01234567-89ab-cdef-0123-456789abcdef",
	Name:       "app1",
	WebUrl:     "https://app1.herokuapp.com/",
	CreatedAt:  time.Now().UTC().Add(-49 * time.Hour),
	ReleasedAt: time.Now().UTC().Add(-1 * time.Hour),
}

var fxAppMaintenance = structs.App{
	Id:          "01234567-89ab-cdef-0123-456789abcdef",
	Name:        "app1",
	Maintenance: true,
	WebUrl:      "https://app1.herokuapp.com/",
	CreatedAt:   time.Now().UTC().Add(-49 * time.Hour),
	ReleasedAt:  time.Now().UTC().Add(-1 * time.Hour),
}

var fxFormation = structs.Formation{
	{Type: "web", Quantity: 2},
	{Type: "worker", Quantity: 1},
}

var fxFormationZero = structs.Formation{
	{Type: "web", Quantity: 0},
	{Type: "worker", Quantity: 0},
}
