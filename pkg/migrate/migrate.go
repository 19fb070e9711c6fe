package migrate

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/convox/exec"
	"github.com/convox/migrate/heroku"
	"github.com/convox/migrate/pkg/structs"
)

const DefaultWait = 30 * time.Second

// Executor runs an external command and returns its combined output.
type Executor interface {
	Execute(cmd string, args ...string) ([]byte, error)
}

// Migrator runs a graceful database migration for a single app: check
// whether the schema is behind, and if so take the app out of traffic and
// worker capacity, migrate, then restore both.
type Migrator struct {
	App     string
	IniFile string
	Section string

	Heroku heroku.Interface
	Exec   Executor
	Wait   time.Duration
	Writer io.Writer

	formation structs.Formation
}

func New(app, ini, section string, h heroku.Interface) *Migrator {
	return &Migrator{
		App:     app,
		IniFile: ini,
		Section: section,
		Heroku:  h,
		Exec:    &exec.Exec{},
		Wait:    DefaultWait,
		Writer:  os.Stdout,
	}
}

// Run executes the migration sequence: check, capture formation,
// maintenance on, scale to zero, wait, upgrade, scale back, wait,
// maintenance off. The formation captured before scale-down is the
// scale-up target; it is not re-read from the platform. A failure aborts
// the sequence where it happens with no rollback, which can leave the app
// in maintenance and scaled down until an operator steps in.
func (m *Migrator) Run() error {
	m.writef("app=%s ini=%s section=%s\n", m.App, m.IniFile, m.Section)

	needed, out, err := m.NeedsMigration()
	if err != nil {
		return err
	}

	m.writef("%s", out)

	if !needed {
		m.writef("Database migration is not needed\n")
		return nil
	}

	f, err := m.Heroku.FormationGet(m.App)
	if err != nil {
		return err
	}

	m.formation = f

	if err := m.maintenance(true); err != nil {
		return err
	}

	if err := m.scaleDown(); err != nil {
		return err
	}

	time.Sleep(m.Wait)

	mout, err := m.Upgrade()
	if err != nil {
		return err
	}

	m.writef("%s", mout)

	if err := m.scaleUp(); err != nil {
		return err
	}

	time.Sleep(m.Wait)

	return m.maintenance(false)
}

func (m *Migrator) maintenance(enabled bool) error {
	if _, err := m.Heroku.MaintenanceSet(m.App, enabled); err != nil {
		return err
	}

	if enabled {
		m.writef("Maintenance enabled\n")
	} else {
		m.writef("Maintenance disabled\n")
	}

	return nil
}

func (m *Migrator) scaleDown() error {
	counts := map[string]int{}

	for t := range m.formation.Counts() {
		counts[t] = 0
	}

	f, err := m.Heroku.FormationScale(m.App, counts)
	if err != nil {
		return err
	}

	m.writef("Scaled down to:\n")
	m.writeFormation(f)

	return nil
}

func (m *Migrator) scaleUp() error {
	f, err := m.Heroku.FormationScale(m.App, m.formation.Counts())
	if err != nil {
		return err
	}

	m.writef("Scaled up to:\n")
	m.writeFormation(f)

	return nil
}

func (m *Migrator) writeFormation(f structs.Formation) {
	for _, pf := range f {
		m.writef("%s=%d\n", pf.Type, pf.Quantity)
	}
}

func (m *Migrator) writef(format string, args ...interface{}) {
	fmt.Fprintf(m.Writer, format, args...)
}
