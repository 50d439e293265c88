package sysinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentify(t *testing.T) {
	p := Identify()
	assert.NotEmpty(t, p.System)
	assert.NotEmpty(t, p.Processor)

	switch runtime.GOOS {
	case "linux":
		assert.Equal(t, "Linux", p.System)
	case "darwin":
		assert.Equal(t, "Darwin", p.System)
	case "windows":
		assert.Equal(t, "Windows", p.System)
	}
}

func TestRuntimeInfo(t *testing.T) {
	rt := RuntimeInfo()
	assert.Equal(t, strings.TrimPrefix(runtime.Version(), "go"), rt.Version)
	assert.True(t, strings.HasPrefix(rt.Compiler, runtime.Compiler+" "))
	assert.Contains(t, rt.Compiler, runtime.GOOS+"/"+runtime.GOARCH)
	if runtime.Compiler == "gc" {
		assert.Equal(t, "Go", rt.Implementation)
	}
}

func TestSystemName(t *testing.T) {
	assert.Equal(t, "Plan9", systemName("plan9"))
	assert.Equal(t, "Js", systemName("js"))
	assert.Equal(t, "", systemName(""))
}
