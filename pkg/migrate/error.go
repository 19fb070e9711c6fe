package migrate

import (
	"fmt"
	"strings"
)

// ProcessError is returned when the migration tool exits nonzero. The
// combined output is carried so the operator can see what the tool said.
type ProcessError struct {
	Command string
	Output  string
	Err     error
}

func (e *ProcessError) Error() string {
	if out := strings.TrimSpace(e.Output); out != "" {
		return fmt.Sprintf("%s: %s: %s", e.Command, e.Err, out)
	}

	return fmt.Sprintf("%s: %s", e.Command, e.Err)
}

func (e *ProcessError) Cause() error {
	return e.Err
}
