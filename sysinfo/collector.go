package sysinfo

import (
	"context"

	"laptopinfo/logging"
)

// Collector gathers the platform-specific section of the report.
type Collector interface {
	// Name identifies the collector in debug output.
	Name() string

	// Collect queries the host and returns the finished section. It never
	// fails; unavailable facts are omitted or replaced by a notice line.
	Collect(ctx context.Context) *Section
}

// ForSystem selects the collector for the OS name reported by Identify
// ("Windows", "Linux" or "Darwin"). Any other name returns nil, meaning the
// report has no platform-specific section.
func ForSystem(system string, env Env) Collector {
	if env.Log == nil {
		env.Log = logging.Discard()
	}
	switch system {
	case "Windows":
		return &WindowsCollector{Management: env.Management, Log: env.Log}
	case "Linux":
		return &LinuxCollector{Runner: env.Runner, Root: env.Root, Log: env.Log}
	case "Darwin":
		return &DarwinCollector{Runner: env.Runner, Log: env.Log}
	default:
		return nil
	}
}
