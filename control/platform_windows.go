//go:build windows

// control/platform_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows platform probes.

package control

import (
	"runtime"

	"golang.org/x/sys/windows"
)

// RegisterPlatformProbes sets Windows-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.os", func() any { return runtime.GOOS })
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.pagesize", func() any {
		return windows.Getpagesize()
	})
	dp.RegisterProbe("platform.pid", func() any {
		return int(windows.GetCurrentProcessId())
	})
	registerCPUProbes(dp)
}
