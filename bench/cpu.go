// SPDX-License-Identifier: MIT

package bench

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Platform describes the machine a report was produced on. Kernel timings
// are only comparable between reports with the same Platform.
type Platform struct {
	GOOS      string   `json:"goos"`
	GOARCH    string   `json:"goarch"`
	NumCPU    int      `json:"num_cpu"`
	GoVersion string   `json:"go_version"`
	Features  []string `json:"cpu_features,omitempty"`
}

// DetectPlatform inspects the running machine.
func DetectPlatform() Platform {
	return Platform{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
		Features:  CPUFeatures(),
	}
}

// CPUFeatures lists the vector/FMA extensions reported by golang.org/x/sys/cpu.
// The kernels are scalar Go, but the compiler's codegen and the memory
// system differ across these, which is what the report needs to record.
func CPUFeatures() []string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE41 || cpu.X86.HasSSE42, "SSE4")
		add(cpu.X86.HasAVX, "AVX")
		add(cpu.X86.HasAVX2, "AVX2")
		add(cpu.X86.HasFMA, "FMA")
		add(cpu.X86.HasAVX512F, "AVX512F")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "ASIMD")
		add(cpu.ARM64.HasFPHP, "FPHP")
		add(cpu.ARM64.HasASIMDHP, "ASIMDHP")
		add(cpu.ARM64.HasSVE, "SVE")
		add(cpu.ARM64.HasSVE2, "SVE2")
	}

	return features
}
