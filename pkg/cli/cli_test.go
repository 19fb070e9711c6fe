package cli_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/convox/migrate/pkg/cli"
	mockexec "github.com/convox/migrate/pkg/mock/exec"
	mockheroku "github.com/convox/migrate/pkg/mock/heroku"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/require"
)

type result struct {
	Code   int
	Stdout string
	Stderr string
}

func (r *result) RequireStdout(t *testing.T, lines []string) {
	t.Helper()
	require.Equal(t, strings.Join(lines, "\n"), strings.TrimSuffix(r.Stdout, "\n"))
}

func (r *result) RequireStderr(t *testing.T, lines []string) {
	t.Helper()
	require.Equal(t, strings.Join(lines, "\n"), strings.TrimSuffix(r.Stderr, "\n"))
}

func testClient(t *testing.T, fn func(*cli.Engine, *mockheroku.Interface, *mockexec.Interface)) {
	h := &mockheroku.Interface{}
	x := &mockexec.Interface{}

	e := cli.New("migrate", "test")
	e.Client = h
	e.Executor = x

	fn(e, h, x)
}

func testExecute(e *cli.Engine, cmd string, stdin io.Reader) (*result, error) {
	if stdin == nil {
		stdin = &bytes.Buffer{}
	}

	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}

	e.Reader.Reader = stdin

	e.Writer.Color = false
	e.Writer.Stdout = &stdout
	e.Writer.Stderr = &stderr

	cp, err := shellquote.Split(cmd)
	if err != nil {
		return nil, err
	}

	code := e.Execute(cp)

	res := &result{
		Code:   code,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	return res, nil
}
