//go:build windows
// +build windows

package sysinfo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/yusufpapurcu/wmi"

	"laptopinfo/logging"
)

// wmiManagement queries WMI through COM and falls back to PowerShell CIM
// cmdlets when the COM binding cannot be used.
type wmiManagement struct {
	timeout time.Duration
	log     *logging.Logger
}

func newManagement(timeout time.Duration, log *logging.Logger) Management {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &wmiManagement{timeout: timeout, log: log}
}

func (m *wmiManagement) Inventory(ctx context.Context) (*Inventory, error) {
	inv, err := queryWMI(ctx)
	if err == nil {
		return inv, nil
	}
	m.log.Debug("wmi: %v; trying CIM through PowerShell", err)

	inv, cerr := queryCIM(ctx, m.timeout)
	if cerr != nil {
		m.log.Debug("cim: %v", cerr)
		return nil, errors.Wrap(ErrManagementUnavailable, err.Error())
	}
	return inv, nil
}

func queryWMI(ctx context.Context) (*Inventory, error) {
	inv := &Inventory{}
	queries := []struct {
		query string
		dst   interface{}
	}{
		{"SELECT Manufacturer, Model, SystemType FROM Win32_ComputerSystem", &inv.ComputerSystems},
		{"SELECT Caption, OSArchitecture FROM Win32_OperatingSystem", &inv.OperatingSystems},
		{"SELECT Name, NumberOfCores, NumberOfLogicalProcessors FROM Win32_Processor", &inv.Processors},
		{"SELECT Capacity FROM Win32_PhysicalMemory", &inv.PhysicalMemory},
	}
	for _, q := range queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := wmi.Query(q.query, q.dst); err != nil {
			return nil, errors.Wrapf(err, "wmi query %q", q.query)
		}
	}
	return inv, nil
}
