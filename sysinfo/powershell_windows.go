//go:build windows
// +build windows

package sysinfo

import (
	"context"
	"encoding/json"
	"os/exec"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// cimQuery collects the four inventory classes in one PowerShell start. Each
// class is wrapped in @() so single instances still serialise as arrays.
const cimQuery = "@{" +
	"ComputerSystems=@(Get-CimInstance Win32_ComputerSystem | Select-Object Manufacturer,Model,SystemType);" +
	"OperatingSystems=@(Get-CimInstance Win32_OperatingSystem | Select-Object Caption,OSArchitecture);" +
	"Processors=@(Get-CimInstance Win32_Processor | Select-Object Name,NumberOfCores,NumberOfLogicalProcessors);" +
	"PhysicalMemory=@(Get-CimInstance Win32_PhysicalMemory | Select-Object Capacity)" +
	"} | ConvertTo-Json -Compress -Depth 3"

// runPowerShell runs a PowerShell command with a timeout and returns raw
// stdout bytes. The command is executed with -NoProfile and the window hidden.
func runPowerShell(ctx context.Context, cmd string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", cmd)
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	return c.Output()
}

// runPowerShellJSON runs a PowerShell command expected to emit JSON and
// unmarshals it into v.
func runPowerShellJSON(ctx context.Context, cmd string, timeout time.Duration, v interface{}) error {
	out, err := runPowerShell(ctx, cmd, timeout)
	if err != nil {
		return errors.Wrap(err, "powershell")
	}
	if err := json.Unmarshal(out, v); err != nil {
		return errors.Wrap(err, "decode powershell output")
	}
	return nil
}

func queryCIM(ctx context.Context, timeout time.Duration) (*Inventory, error) {
	inv := &Inventory{}
	if err := runPowerShellJSON(ctx, cimQuery, timeout, inv); err != nil {
		return nil, err
	}
	return inv, nil
}
