package heroku

import "github.com/convox/migrate/pkg/structs"

type Interface interface {
	AppGet(app string) (*structs.App, error)
	FormationGet(app string) (structs.Formation, error)
	FormationScale(app string, counts map[string]int) (structs.Formation, error)
	MaintenanceSet(app string, enabled bool) (*structs.App, error)
}
