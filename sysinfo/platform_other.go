//go:build !unix && !windows

package sysinfo

import "runtime"

func identifyPlatform() Platform {
	return Platform{System: systemName(runtime.GOOS), Machine: runtime.GOARCH}
}
