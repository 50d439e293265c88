//go:build windows
// +build windows

package sysinfo

import (
	"fmt"
	"os"
	"strconv"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var procRtlGetVersion = windows.NewLazySystemDLL("ntdll.dll").NewProc("RtlGetVersion")

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// identifyPlatform fills the Windows descriptors. Release is the major
// version ("10" also on Windows 11) and Version is "major.minor.build".
func identifyPlatform() Platform {
	p := Platform{
		System:    "Windows",
		Machine:   os.Getenv("PROCESSOR_ARCHITECTURE"),
		Processor: os.Getenv("PROCESSOR_IDENTIFIER"),
	}
	if host, err := os.Hostname(); err == nil {
		p.Node = host
	}

	if maj, mnr, build, err := rtlGetVersion(); err == nil {
		p.Release = strconv.FormatUint(uint64(maj), 10)
		p.Version = fmt.Sprintf("%d.%d.%d", maj, mnr, build)
		return p
	}

	// Fallback: registry values
	maj, mnr, build := registryVersion()
	if maj != "" {
		p.Release = maj
		p.Version = fmt.Sprintf("%s.%s.%s", maj, mnr, build)
	}
	return p
}

// registryVersion reads the version numbers from the CurrentVersion key.
// Any value that cannot be read is returned empty.
func registryVersion() (major, minor, build string) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "", "", ""
	}
	defer func() { _ = k.Close() }()

	if v, _, err := k.GetIntegerValue("CurrentMajorVersionNumber"); err == nil {
		major = strconv.FormatUint(v, 10)
	}
	if v, _, err := k.GetIntegerValue("CurrentMinorVersionNumber"); err == nil {
		minor = strconv.FormatUint(v, 10)
	}
	build, _, _ = k.GetStringValue("CurrentBuild")
	return major, minor, build
}

func rtlGetVersion() (major uint32, minor uint32, build uint32, err error) {
	// OSVERSIONINFOEXW
	type osver struct {
		dwOSVersionInfoSize uint32
		dwMajorVersion      uint32
		dwMinorVersion      uint32
		dwBuildNumber       uint32
		dwPlatformID        uint32
		szCSDVersion        [128]uint16
		wServicePackMajor   uint16
		wServicePackMinor   uint16
		wSuiteMask          uint16
		wProductType        byte
		wReserved           byte
	}

	var v osver
	v.dwOSVersionInfoSize = uint32(unsafe.Sizeof(v))

	ret, _, callErr := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&v)))
	if ret != 0 {
		// non-zero NTSTATUS indicates failure
		if callErr != nil && callErr != syscall.Errno(0) {
			return 0, 0, 0, callErr
		}
		return 0, 0, 0, fmt.Errorf("RtlGetVersion failed: ret=%d", ret)
	}

	return v.dwMajorVersion, v.dwMinorVersion, v.dwBuildNumber, nil
}
