package sysinfo

import (
	"context"
	"os/exec"
	"strings"
)

type fakeResult struct {
	out string
	err error
}

// fakeRunner answers commands from a table keyed by the full command line.
// Unknown commands behave like a binary missing from PATH.
type fakeRunner struct {
	results map[string]fakeResult
	calls   []string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, line)
	res, ok := r.results[line]
	if !ok {
		return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return []byte(res.out), res.err
}

func exitFailure() error {
	return &exec.ExitError{}
}

type fakeManagement struct {
	inv *Inventory
	err error
}

func (m fakeManagement) Inventory(context.Context) (*Inventory, error) {
	return m.inv, m.err
}

func labels(s *Section) []string {
	var out []string
	for _, f := range s.Fields {
		out = append(out, f.Label)
	}
	return out
}

func fieldValue(s *Section, label string) (string, bool) {
	for _, f := range s.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

func rawLines(s *Section) []string {
	var out []string
	for _, f := range s.Fields {
		if f.Label == "" {
			out = append(out, f.Value)
		}
	}
	return out
}
