//go:build unix

package sysinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func identifyPlatform() Platform {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return Platform{System: systemName(runtime.GOOS), Machine: runtime.GOARCH}
	}
	return Platform{
		System:  unix.ByteSliceToString(utsname.Sysname[:]),
		Node:    unix.ByteSliceToString(utsname.Nodename[:]),
		Release: unix.ByteSliceToString(utsname.Release[:]),
		Version: unix.ByteSliceToString(utsname.Version[:]),
		Machine: unix.ByteSliceToString(utsname.Machine[:]),
	}
}
