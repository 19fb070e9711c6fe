package migrate_test

import (
	"fmt"
	"testing"

	"github.com/convox/migrate/pkg/migrate"
	mockexec "github.com/convox/migrate/pkg/mock/exec"
	mockheroku "github.com/convox/migrate/pkg/mock/heroku"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	h := &mockheroku.Interface{}
	x := &mockexec.Interface{}

	x.On("Execute", "alembic", "-c", "etc/production.ini", "-n", "app:main", "current").Return([]byte("abc123 (head)\n"), nil)

	m, _ := testMigrator(h, x)

	out, err := m.Current()
	require.NoError(t, err)
	require.Equal(t, "abc123 (head)\n", out)

	x.AssertExpectations(t)
}

func TestNeedsMigration(t *testing.T) {
	h := &mockheroku.Interface{}
	x := &mockexec.Interface{}

	x.On("Execute", "alembic", "-c", "etc/production.ini", "-n", "app:main", "current").Return([]byte("abc123\n"), nil)

	m, _ := testMigrator(h, x)

	needed, out, err := m.NeedsMigration()
	require.NoError(t, err)
	require.True(t, needed)
	require.Equal(t, "abc123\n", out)
}

func TestNeedsMigrationUpToDate(t *testing.T) {
	h := &mockheroku.Interface{}
	x := &mockexec.Interface{}

	x.On("Execute", "alembic", "-c", "etc/production.ini", "-n", "app:main", "current").Return([]byte("abc123 (head)\n"), nil)

	m, _ := testMigrator(h, x)

	needed, _, err := m.NeedsMigration()
	require.NoError(t, err)
	require.False(t, needed)
}

func TestNeedsMigrationProcessError(t *testing.T) {
	h := &mockheroku.Interface{}
	x := &mockexec.Interface{}

	x.On("Execute", "alembic", "-c", "etc/production.ini", "-n", "app:main", "current").Return([]byte("no such config\n"), fmt.Errorf("exit status 255"))

	m, _ := testMigrator(h, x)

	needed, out, err := m.NeedsMigration()
	require.False(t, needed)
	require.Empty(t, out)

	pe, ok := err.(*migrate.ProcessError)
	require.True(t, ok)
	require.Equal(t, "alembic -c etc/production.ini -n app:main current: exit status 255: no such config", pe.Error())
	require.EqualError(t, pe.Cause(), "exit status 255")
}

func TestUpgrade(t *testing.T) {
	h := &mockheroku.Interface{}
	x := &mockexec.Interface{}

	x.On("Execute", "alembic", "-c", "etc/production.ini", "-n", "app:main", "upgrade", "head").Return([]byte("INFO  [alembic] Running upgrade abc123 -> def456\n"), nil)

	m, _ := testMigrator(h, x)

	out, err := m.Upgrade()
	require.NoError(t, err)
	require.Equal(t, "INFO  [alembic] Running upgrade abc123 -> def456\n", out)

	x.AssertExpectations(t)
}
