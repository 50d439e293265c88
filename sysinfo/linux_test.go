package sysinfo

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptopinfo/logging"
)

const sampleCPUInfo = `processor	: 0
vendor_id	: GenuineIntel
model		: 142
model name : Example CPU @ 2.50GHz
processor	: 1
model name : Second CPU @ 1.00GHz
`

const sampleMemInfo = `MemTotal:    16384000 kB
MemFree:      1234567 kB
MemAvailable: 7654321 kB
`

const sampleUpower = `  native-path:          BAT0
  vendor:               SMP
  model:                5B10W13930
  serial:               1234
  power supply:         yes
`

func procFS() fstest.MapFS {
	return fstest.MapFS{
		"proc/meminfo": {Data: []byte(sampleMemInfo)},
		"proc/cpuinfo": {Data: []byte(sampleCPUInfo)},
	}
}

func TestParseMemTotal(t *testing.T) {
	got, err := parseMemTotal(strings.NewReader(sampleMemInfo))
	require.NoError(t, err)
	assert.Equal(t, "16000 MB", got)

	_, err = parseMemTotal(strings.NewReader("MemFree: 1 kB\n"))
	assert.ErrorIs(t, err, errNoMatch)

	_, err = parseMemTotal(strings.NewReader("MemTotal: lots kB\n"))
	assert.Error(t, err)
}

func TestParseCPUModel(t *testing.T) {
	got, err := parseCPUModel(strings.NewReader(sampleCPUInfo))
	require.NoError(t, err)
	assert.Equal(t, "Example CPU @ 2.50GHz", got)

	_, err = parseCPUModel(strings.NewReader("processor : 0\n"))
	assert.ErrorIs(t, err, errNoMatch)
}

func TestBatteryLines(t *testing.T) {
	assert.Equal(t, []string{"vendor:               SMP", "model:                5B10W13930"}, batteryLines(sampleUpower))
	assert.Nil(t, batteryLines("  vendor: SMP\n"))
	assert.Nil(t, batteryLines(""))
}

func TestLinuxCollector(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"lsb_release -a": {out: "Distributor ID:\tUbuntu\nRelease:\t24.04\n"},
		"upower -i /org/freedesktop/UPower/devices/battery_BAT0": {out: sampleUpower},
	}}
	c := &LinuxCollector{Runner: runner, Root: procFS(), Log: logging.Discard()}

	s := c.Collect(context.Background())
	require.NotNil(t, s)
	assert.Equal(t, "LINUX SPECIFIC", s.Title)
	assert.Equal(t, []string{"Distribution Info", "Total RAM", "CPU", "", ""}, labels(s))

	assert.True(t, s.Fields[0].Block)
	assert.Equal(t, "Distributor ID:\tUbuntu\nRelease:\t24.04\n", s.Fields[0].Value)

	mem, _ := fieldValue(s, "Total RAM")
	assert.Equal(t, "16000 MB", mem)
	cpu, _ := fieldValue(s, "CPU")
	assert.Equal(t, "Example CPU @ 2.50GHz", cpu)
	assert.Equal(t, []string{"vendor:               SMP", "model:                5B10W13930"}, rawLines(s))
}

func TestLinuxCollectorBestEffort(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"lsb_release -a": {out: "partial", err: exitFailure()},
		"upower -i /org/freedesktop/UPower/devices/battery_BAT0": {out: "", err: exitFailure()},
	}}
	c := &LinuxCollector{Runner: runner, Root: procFS(), Log: logging.Discard()}

	s := c.Collect(context.Background())
	assert.Equal(t, []string{"Total RAM", "CPU"}, labels(s))
}

func TestLinuxCollectorMissingPseudoFiles(t *testing.T) {
	runner := &fakeRunner{}
	c := &LinuxCollector{
		Runner: runner,
		Root:   fstest.MapFS{"proc/cpuinfo": {Data: []byte(sampleCPUInfo)}},
		Log:    logging.Discard(),
	}

	s := c.Collect(context.Background())
	cpu, ok := fieldValue(s, "CPU")
	assert.True(t, ok)
	assert.Equal(t, "Example CPU @ 2.50GHz", cpu)
	_, ok = fieldValue(s, "Total RAM")
	assert.False(t, ok)
	assert.Equal(t, []string{linuxUnavailable}, rawLines(s))
	assert.Contains(t, runner.calls, "lsb_release -a")
	assert.Contains(t, runner.calls, "upower -i "+batteryDevice)
}

func TestLinuxCollectorNoRoot(t *testing.T) {
	c := &LinuxCollector{Runner: &fakeRunner{}, Log: logging.Discard()}
	s := c.Collect(context.Background())
	assert.Equal(t, []string{linuxUnavailable}, rawLines(s))
	assert.Len(t, s.Fields, 1)
}

func TestLinuxCollectorBatteryFailureIsDebugOnly(t *testing.T) {
	var buf strings.Builder
	c := &LinuxCollector{
		Runner: &fakeRunner{},
		Root:   procFS(),
		Log:    logging.NewLogger(&buf, logging.LevelDebug),
	}

	s := c.Collect(context.Background())
	assert.Empty(t, rawLines(s))
	assert.Contains(t, buf.String(), "upower")
}
