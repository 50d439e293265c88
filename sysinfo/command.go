package sysinfo

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	perrors "github.com/pkg/errors"

	"laptopinfo/logging"
)

// Runner executes an external command and returns its standard output.
//
// Implementations return whatever stdout was captured even when err is
// non-nil, so callers can decide whether a failed exit status still produced
// usable text.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands on the local machine with a per-command timeout.
type ExecRunner struct {
	Timeout time.Duration
	log     *logging.Logger
}

// NewExecRunner returns a Runner that gives each command at most timeout to
// finish. A zero timeout means DefaultCommandTimeout.
func NewExecRunner(timeout time.Duration, log *logging.Logger) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	if log == nil {
		log = logging.Discard()
	}
	return &ExecRunner{Timeout: timeout, log: log}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	r.log.Debug("exec: %s %s", name, strings.Join(args, " "))
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return out, perrors.Wrapf(err, "run %s", name)
	}
	return out, nil
}

// isNotFound reports whether err means the utility or pseudo-file does not
// exist on this machine, as opposed to existing and failing.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

// isExitError reports whether the command ran and exited non-zero.
func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
