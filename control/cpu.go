// control/cpu.go
// Author: momentics <momentics@gmail.com>
//
// CPU feature probes. Block sizing in the pooled allocator is cache-line
// agnostic, but the line size is useful when reading allocator dumps.

package control

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

func registerCPUProbes(dp *DebugProbes) {
	dp.RegisterProbe("cpu.arch", func() any { return runtime.GOARCH })
	dp.RegisterProbe("cpu.cacheline", func() any {
		return int(unsafe.Sizeof(cpu.CacheLinePad{}))
	})
	dp.RegisterProbe("cpu.features", func() any {
		return cpuFeatures()
	})
}

func cpuFeatures() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE2, "sse2")
		add(cpu.X86.HasSSE42, "sse4.2")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasAVX512F, "avx512f")
		add(cpu.X86.HasPOPCNT, "popcnt")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasATOMICS, "atomics")
		add(cpu.ARM64.HasCRC32, "crc32")
	}
	return out
}
