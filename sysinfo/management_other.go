//go:build !windows
// +build !windows

package sysinfo

import (
	"time"

	"laptopinfo/logging"
)

func newManagement(time.Duration, *logging.Logger) Management {
	return unavailableManagement{}
}
