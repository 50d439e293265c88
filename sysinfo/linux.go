package sysinfo

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"strings"

	"github.com/pkg/errors"

	"laptopinfo/logging"
)

const (
	memInfoPath = "proc/meminfo"
	cpuInfoPath = "proc/cpuinfo"

	// batteryDevice is the UPower object path of the first battery.
	batteryDevice = "/org/freedesktop/UPower/devices/battery_BAT0"

	linuxUnavailable = "(Some Linux commands not available)"
)

// LinuxCollector reads distribution, memory, CPU and battery details on Linux.
type LinuxCollector struct {
	Runner Runner

	// Root holds the pseudo-files, with paths relative to "/".
	Root fs.FS

	Log *logging.Logger
}

// Name implements Collector.
func (c *LinuxCollector) Name() string { return "linux" }

// Collect implements Collector. Each step is independent: a failure in one
// never hides the facts gathered by another.
func (c *LinuxCollector) Collect(ctx context.Context) *Section {
	s := &Section{Icon: "🐧", Title: "LINUX SPECIFIC"}
	missing := false

	if dist, err := c.distribution(ctx); err != nil {
		c.Log.Debug("lsb_release: %v", err)
	} else {
		s.Fields = append(s.Fields, Field{Label: "Distribution Info", Value: dist, Block: true})
	}

	mem, err := c.readPseudoFile(memInfoPath, parseMemTotal)
	switch {
	case err == nil:
		s.Add("Total RAM", mem)
	case isNotFound(err):
		missing = true
	}
	if err != nil {
		c.Log.Debug("meminfo: %v", err)
	}

	cpu, err := c.readPseudoFile(cpuInfoPath, parseCPUModel)
	switch {
	case err == nil:
		s.Add("CPU", cpu)
	case isNotFound(err):
		missing = true
	}
	if err != nil {
		c.Log.Debug("cpuinfo: %v", err)
	}

	// Battery failures are only logged.
	lines, err := c.battery(ctx)
	if err != nil {
		c.Log.Debug("upower: %v", err)
	}
	for _, line := range lines {
		s.Line(line)
	}

	if missing {
		s.Line(linuxUnavailable)
	}
	return s
}

// distribution returns the full lsb_release output when it exits successfully.
func (c *LinuxCollector) distribution(ctx context.Context) (string, error) {
	out, err := c.Runner.Run(ctx, "lsb_release", "-a")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// errNoMatch is returned by a pseudo-file parser that did not find its entry.
var errNoMatch = errors.New("entry not found")

func (c *LinuxCollector) readPseudoFile(name string, parse func(io.Reader) (string, error)) (string, error) {
	if c.Root == nil {
		return "", errors.Wrapf(fs.ErrNotExist, "open /%s", name)
	}
	f, err := c.Root.Open(name)
	if err != nil {
		return "", errors.Wrapf(err, "open /%s", name)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return "", errors.Wrapf(err, "parse /%s", name)
	}
	return v, nil
}

// parseMemTotal scans /proc/meminfo for the MemTotal entry and returns it in
// megabytes.
func parseMemTotal(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, "MemTotal") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return "", errors.Errorf("malformed line %q", line)
		}
		kb, err := parseUint(fields[1])
		if err != nil {
			return "", errors.Wrapf(err, "malformed line %q", line)
		}
		return FormatKBAsMB(kb), nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", errNoMatch
}

// parseCPUModel returns the text after the first colon of the first
// "model name" line in /proc/cpuinfo.
func parseCPUModel(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, "model name") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			return "", errors.Errorf("malformed line %q", line)
		}
		return strings.TrimSpace(parts[1]), nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", errNoMatch
}

// battery returns the model and vendor lines reported by UPower for the
// first battery. The exit status of upower is ignored; only its output
// matters.
func (c *LinuxCollector) battery(ctx context.Context) ([]string, error) {
	out, err := c.Runner.Run(ctx, "upower", "-i", batteryDevice)
	if err != nil && !isExitError(err) {
		return nil, err
	}
	return batteryLines(string(out)), err
}

func batteryLines(out string) []string {
	if !strings.Contains(out, "model") {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "model") || strings.Contains(line, "vendor") {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}
