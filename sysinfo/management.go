package sysinfo

import (
	"context"

	"github.com/pkg/errors"
)

// ErrManagementUnavailable means no Windows management binding (WMI or CIM)
// could be reached.
var ErrManagementUnavailable = errors.New("windows management instrumentation unavailable")

// Win32ComputerSystem holds the Win32_ComputerSystem properties in the report.
type Win32ComputerSystem struct {
	Manufacturer string
	Model        string
	SystemType   string
}

// Win32OperatingSystem holds the Win32_OperatingSystem properties in the report.
type Win32OperatingSystem struct {
	Caption        string
	OSArchitecture string
}

// Win32Processor holds the Win32_Processor properties in the report.
type Win32Processor struct {
	Name                      string
	NumberOfCores             uint32
	NumberOfLogicalProcessors uint32
}

// Win32PhysicalMemory holds the capacity of one installed memory module.
type Win32PhysicalMemory struct {
	Capacity uint64
}

// Inventory is the result of one management query round.
type Inventory struct {
	ComputerSystems  []Win32ComputerSystem
	OperatingSystems []Win32OperatingSystem
	Processors       []Win32Processor
	PhysicalMemory   []Win32PhysicalMemory
}

// Management answers hardware and OS inventory queries on Windows.
type Management interface {
	// Inventory returns ErrManagementUnavailable (possibly wrapped) when the
	// binding cannot be used at all.
	Inventory(ctx context.Context) (*Inventory, error)
}

// unavailableManagement is used where no management binding exists.
type unavailableManagement struct{}

func (unavailableManagement) Inventory(context.Context) (*Inventory, error) {
	return nil, ErrManagementUnavailable
}
