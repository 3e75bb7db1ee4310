// Package hostinfo probes the machine benchmarks run on, so reports can
// say where their numbers came from.
package hostinfo

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info describes the host a benchmark ran on.
type Info struct {
	Hostname         string `json:"hostname,omitempty"`
	OS               string `json:"os,omitempty"`
	Platform         string `json:"platform,omitempty"`
	CPUModel         string `json:"cpu_model,omitempty"`
	CPUThreads       int    `json:"cpu_threads,omitempty"`
	MemoryTotalBytes uint64 `json:"memory_total_bytes,omitempty"`
}

// Collect gathers host metadata. Individual probe failures are joined
// into the returned error; the rest of the Info stays usable.
func Collect() (*Info, error) {
	info := &Info{}
	var errs []error

	if h, err := host.Info(); err != nil {
		errs = append(errs, fmt.Errorf("host info: %w", err))
	} else {
		info.Hostname = h.Hostname
		info.OS = h.OS
		info.Platform = h.Platform
	}

	if cpus, err := cpu.Info(); err != nil {
		errs = append(errs, fmt.Errorf("cpu info: %w", err))
	} else if len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}

	if threads, err := cpu.Counts(true); err != nil {
		errs = append(errs, fmt.Errorf("cpu counts: %w", err))
	} else {
		info.CPUThreads = threads
	}

	if vmem, err := mem.VirtualMemory(); err != nil {
		errs = append(errs, fmt.Errorf("virtual memory: %w", err))
	} else {
		info.MemoryTotalBytes = vmem.Total
	}

	return info, errors.Join(errs...)
}
