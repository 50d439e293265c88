package sysinfo

import (
	"context"
	"strings"

	"laptopinfo/logging"
)

const macUnavailable = "(macOS commands not available)"

// DarwinCollector reads hardware and OS details on macOS through sysctl and
// sw_vers.
type DarwinCollector struct {
	Runner Runner
	Log    *logging.Logger
}

// Name implements Collector.
func (c *DarwinCollector) Name() string { return "darwin" }

// Collect implements Collector.
func (c *DarwinCollector) Collect(ctx context.Context) *Section {
	s := &Section{Icon: "🍎", Title: "macOS SPECIFIC"}
	missing := false

	query := func(label string, format func(string) (string, bool), name string, args ...string) {
		out, err := c.Runner.Run(ctx, name, args...)
		if err != nil {
			c.Log.Debug("%s: %v", name, err)
			if isNotFound(err) {
				missing = true
				return
			}
		}
		v := strings.TrimSpace(string(out))
		if v == "" {
			return
		}
		if format != nil {
			var ok bool
			if v, ok = format(v); !ok {
				c.Log.Debug("%s: unexpected output %q", label, out)
				return
			}
		}
		s.Add(label, v)
	}

	query("Model", nil, "sysctl", "-n", "hw.model")
	query("CPU", nil, "sysctl", "-n", "machdep.cpu.brand_string")
	query("Total RAM", memsizeGB, "sysctl", "-n", "hw.memsize")
	query("macOS Version", nil, "sw_vers", "-productVersion")

	if missing {
		s.Line(macUnavailable)
	}
	return s
}

// memsizeGB converts the byte count printed by `sysctl -n hw.memsize`.
func memsizeGB(v string) (string, bool) {
	n, err := parseUint(v)
	if err != nil {
		return "", false
	}
	return FormatGB(n), true
}
