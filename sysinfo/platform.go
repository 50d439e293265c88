package sysinfo

import (
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Platform holds the descriptors every supported OS exposes.
type Platform struct {
	// System is the OS name: "Linux", "Darwin", "Windows", ...
	System string

	// Node is the network host name.
	Node string

	// Release is the kernel release (e.g. "6.8.0-45-generic" or "10" on Windows).
	Release string

	// Version is the kernel version string.
	Version string

	// Machine is the hardware architecture (e.g. "x86_64", "arm64", "AMD64").
	Machine string

	// Processor is a human-readable processor description.
	Processor string
}

// Runtime describes the Go runtime the report was built with.
type Runtime struct {
	Version        string
	Compiler       string
	Implementation string
}

// Identify resolves the cross-platform descriptors of the local machine.
// Descriptors the OS does not expose are left empty.
func Identify() Platform {
	p := identifyPlatform()
	if p.Node == "" {
		if hostname, err := os.Hostname(); err == nil {
			p.Node = hostname
		}
	}
	if p.Processor == "" {
		p.Processor = processorBrand()
	}
	if p.Processor == "" {
		p.Processor = p.Machine
	}
	return p
}

// processorBrand returns the CPUID brand string, empty on CPUs without one.
func processorBrand() string {
	return strings.TrimSpace(cpuid.CPU.BrandName)
}

// RuntimeInfo returns the Go runtime descriptors.
func RuntimeInfo() Runtime {
	impl := runtime.Compiler
	switch runtime.Compiler {
	case "gc":
		impl = "Go"
	case "gccgo":
		impl = "GCC Go"
	}
	return Runtime{
		Version:        strings.TrimPrefix(runtime.Version(), "go"),
		Compiler:       runtime.Compiler + " " + runtime.GOOS + "/" + runtime.GOARCH,
		Implementation: impl,
	}
}

// systemName turns a GOOS value into the capitalised OS name used in the
// report, for platforms without uname.
func systemName(goos string) string {
	if goos == "" {
		return ""
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}
