// Package sysinfo gathers the facts shown in the laptopinfo report: the
// cross-platform descriptors every OS exposes, the Go runtime descriptors, and
// one optional platform-specific section produced by a Collector.
package sysinfo

import (
	"context"
	"io/fs"
	"os"
	"time"

	"laptopinfo/logging"
)

// DefaultCommandTimeout bounds each external command run by a collector.
const DefaultCommandTimeout = 5 * time.Second

// Field is one line of a report section.
type Field struct {
	// Label is printed before the value. An empty label prints Value as a raw line.
	Label string

	// Value is the collected text, already trimmed.
	Value string

	// Block prints "Label:" on its own line followed by Value verbatim.
	Block bool
}

// Section is a titled group of fields.
type Section struct {
	// Icon is printed before the title. May be empty.
	Icon string

	// Title is the section heading without the trailing colon.
	Title string

	Fields []Field
}

// Add appends a labelled field.
func (s *Section) Add(label, value string) {
	s.Fields = append(s.Fields, Field{Label: label, Value: value})
}

// Line appends an unlabelled raw line.
func (s *Section) Line(value string) {
	s.Fields = append(s.Fields, Field{Value: value})
}

// Report is everything a single run collects, in print order.
type Report struct {
	Platform Platform

	// OS is the platform-specific section, nil when the OS is not supported.
	OS *Section

	Runtime Runtime
}

// Env carries the external facilities a collector may consult.
type Env struct {
	// Runner executes external commands.
	Runner Runner

	// Root is the filesystem pseudo-files are read from, rooted at "/".
	Root fs.FS

	// Management answers Windows inventory queries.
	Management Management

	Log *logging.Logger
}

// DefaultEnv returns an Env backed by the local machine.
func DefaultEnv(log *logging.Logger, timeout time.Duration) Env {
	if log == nil {
		log = logging.Discard()
	}
	return Env{
		Runner:     NewExecRunner(timeout, log),
		Root:       os.DirFS("/"),
		Management: newManagement(timeout, log),
		Log:        log,
	}
}

// Collect builds the full report for platform p. It never fails: every
// collector degrades to missing fields or a notice line.
func Collect(ctx context.Context, p Platform, env Env) *Report {
	report := &Report{
		Platform: p,
		Runtime:  RuntimeInfo(),
	}
	if env.Log == nil {
		env.Log = logging.Discard()
	}
	c := ForSystem(p.System, env)
	if c == nil {
		env.Log.Debug("no platform collector for system %q", p.System)
		return report
	}
	env.Log.Debug("collecting %s details", c.Name())
	report.OS = c.Collect(ctx)
	return report
}
