// Package main provides the laptopinfo command-line tool, which prints a report
// of the local machine's OS, hardware and Go runtime details.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"laptopinfo/ascii"
	"laptopinfo/logging"
	"laptopinfo/sysinfo"
)

const bannerTitle = "LAPTOP SYSTEM INFORMATION"

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgBlue)
)

// main is the entry point for the laptopinfo application.
// It identifies the platform, runs the matching collector and prints the
// report to stdout. Diagnostics go to stderr.
func main() {
	debug := flag.Bool("debug", false, "enable debug output (same as setting "+logging.DebugEnv+")")
	noColor := flag.Bool("no-color", false, "disable ANSI colours")
	timeout := flag.Duration("timeout", sysinfo.DefaultCommandTimeout, "timeout for each external command")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}
	level := logging.LevelFromEnv(logging.LevelWarning)
	if *debug {
		level = logging.LevelDebug
	}
	log := logging.NewLogger(os.Stderr, level)

	platform := sysinfo.Identify()
	log.Debug("identified %s %s on %s", platform.System, platform.Release, platform.Machine)

	report := sysinfo.Collect(context.Background(), platform, sysinfo.DefaultEnv(log, *timeout))
	displayReport(os.Stdout, report)
}

// displayReport renders the report in its fixed order: banner, basic system
// block, platform-specific block (if any), runtime block.
//
// Parameters:
//   - w: Destination for the report, normally os.Stdout
//   - report: The collected report
func displayReport(w io.Writer, report *sysinfo.Report) {
	for _, line := range ascii.Banner(bannerTitle, ascii.DefaultWidth) {
		fmt.Fprintln(w, line)
	}

	p := report.Platform
	writeSection(w, &sysinfo.Section{
		Icon:  "📋",
		Title: "BASIC SYSTEM",
		Fields: []sysinfo.Field{
			{Label: "System", Value: p.System},
			{Label: "Node Name", Value: p.Node},
			{Label: "Release", Value: p.Release},
			{Label: "Version", Value: p.Version},
			{Label: "Machine", Value: p.Machine},
			{Label: "Processor", Value: p.Processor},
		},
	})

	if report.OS != nil {
		writeSection(w, report.OS)
	}

	rt := report.Runtime
	writeSection(w, &sysinfo.Section{
		Icon:  "🐹",
		Title: "GO RUNTIME",
		Fields: []sysinfo.Field{
			{Label: "Go Version", Value: rt.Version},
			{Label: "Go Compiler", Value: rt.Compiler},
			{Label: "Go Implementation", Value: rt.Implementation},
		},
	})
}

// writeSection prints a blank line, the heading, then one indented line per
// field.
func writeSection(w io.Writer, s *sysinfo.Section) {
	heading := s.Title + ":"
	if s.Icon != "" {
		heading = s.Icon + " " + heading
	}
	fmt.Fprintf(w, "\n%s\n", headingColor.Sprint(heading))

	for _, f := range s.Fields {
		switch {
		case f.Block:
			fmt.Fprintf(w, "  %s:\n", labelColor.Sprint(f.Label))
			fmt.Fprint(w, f.Value)
			if !strings.HasSuffix(f.Value, "\n") {
				fmt.Fprintln(w)
			}
		case f.Label == "":
			fmt.Fprintf(w, "  %s\n", f.Value)
		default:
			fmt.Fprintf(w, "  %s: %s\n", labelColor.Sprint(f.Label), f.Value)
		}
	}
}
