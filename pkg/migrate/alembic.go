package migrate

import (
	"fmt"
	"strings"
)

// the marker alembic prints when the database is at the latest revision
const upToDateToken = "head"

func (m *Migrator) alembic(args ...string) (string, error) {
	args = append([]string{"-c", m.IniFile, "-n", m.Section}, args...)

	data, err := m.Exec.Execute("alembic", args...)
	if err != nil {
		return "", &ProcessError{
			Command: fmt.Sprintf("alembic %s", strings.Join(args, " ")),
			Output:  string(data),
			Err:     err,
		}
	}

	return string(data), nil
}

// Current reports the revision the database is at.
func (m *Migrator) Current() (string, error) {
	return m.alembic("current")
}

// NeedsMigration checks whether the database is behind the latest
// revision. The revision report is returned alongside the decision so the
// caller can surface it. Output without the head marker counts as
// pending, even when it is otherwise unrecognized; a failing check is an
// error, never a pending signal.
func (m *Migrator) NeedsMigration() (bool, string, error) {
	out, err := m.Current()
	if err != nil {
		return false, "", err
	}

	return !strings.Contains(out, upToDateToken), out, nil
}

// Upgrade migrates the database to the latest revision and returns the
// tool output verbatim.
func (m *Migrator) Upgrade() (string, error) {
	return m.alembic("upgrade", "head")
}
