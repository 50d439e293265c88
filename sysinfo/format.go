// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	kibibyte = 1024
	gibibyte = 1 << 30
)

// FormatGB formats a byte count as whole binary gigabytes.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - The count divided by 2^30 with integer division, e.g. "16 GB"
//
// Example: FormatGB(17179869184) returns "16 GB"
func FormatGB(bytes uint64) string {
	return fmt.Sprintf("%d GB", bytes/gibibyte)
}

// FormatKBAsMB formats a kilobyte count as whole megabytes.
//
// Example: FormatKBAsMB(16384000) returns "16000 MB"
func FormatKBAsMB(kb uint64) string {
	return fmt.Sprintf("%d MB", kb/kibibyte)
}

// parseUint parses a trimmed decimal count, as printed by sysctl or found in
// /proc/meminfo.
func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}
