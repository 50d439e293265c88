package sysinfo

import (
	"context"
	"strconv"

	"laptopinfo/logging"
)

// WMINoticeTitle and WMINoticeHint form the notice printed in place of the
// Windows section when no management binding is available.
const (
	WMINoticeTitle = "Windows Management Instrumentation unavailable for detailed Windows info"
	WMINoticeHint  = "enable and start the service: sc config winmgmt start= auto && sc start winmgmt"
)

// WindowsCollector reports computer system, OS, processor and memory details
// from Windows management queries.
type WindowsCollector struct {
	Management Management
	Log        *logging.Logger
}

// Name implements Collector.
func (c *WindowsCollector) Name() string { return "windows" }

// Collect implements Collector.
func (c *WindowsCollector) Collect(ctx context.Context) *Section {
	m := c.Management
	if m == nil {
		m = unavailableManagement{}
	}
	inv, err := m.Inventory(ctx)
	if err != nil {
		c.Log.Debug("management: %v", err)
		return managementNotice()
	}

	s := &Section{Icon: "🖥️", Title: "WINDOWS SPECIFIC"}
	for _, cs := range inv.ComputerSystems {
		s.Add("Manufacturer", cs.Manufacturer)
		s.Add("Model", cs.Model)
		s.Add("System Type", cs.SystemType)
	}
	for _, osInfo := range inv.OperatingSystems {
		s.Add("OS Name", osInfo.Caption)
		s.Add("OS Architecture", osInfo.OSArchitecture)
	}
	for _, cpu := range inv.Processors {
		s.Add("CPU", cpu.Name)
		s.Add("Cores", strconv.FormatUint(uint64(cpu.NumberOfCores), 10))
		s.Add("Logical Processors", strconv.FormatUint(uint64(cpu.NumberOfLogicalProcessors), 10))
	}
	if len(inv.PhysicalMemory) > 0 {
		var total uint64
		for _, mem := range inv.PhysicalMemory {
			total += mem.Capacity
		}
		s.Add("Total RAM", FormatGB(total))
	}
	return s
}

func managementNotice() *Section {
	s := &Section{Icon: "⚠️", Title: WMINoticeTitle}
	s.Line(WMINoticeHint)
	return s
}
