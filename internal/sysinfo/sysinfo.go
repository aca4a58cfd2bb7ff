// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

// Package sysinfo answers the sys-info operator's probes through
// gopsutil. Probe failures degrade the way the language expects:
// string probes fall back to "", count probes to 0, and the memory
// probes to an error value.
package sysinfo

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/stack-community/stack-server/internal/value"
)

// Probe resolves one sys-info key. Unknown keys yield Error(sys-info).
func Probe(key string) value.Value {
	switch key {
	case "os-release":
		release, err := host.KernelVersion()
		if err != nil {
			return value.String("")
		}
		return value.String(release)
	case "os-type":
		info, err := host.Info()
		if err != nil {
			return value.String("")
		}
		return value.String(info.OS)
	case "cpu-num":
		count, err := cpu.Counts(true)
		if err != nil {
			return value.Number(0)
		}
		return value.Number(float64(count))
	case "cpu-speed":
		infos, err := cpu.Info()
		if err != nil || len(infos) == 0 {
			return value.Number(0)
		}
		return value.Number(infos[0].Mhz)
	case "host-name":
		info, err := host.Info()
		if err != nil {
			return value.String("")
		}
		return value.String(info.Hostname)
	case "mem-size":
		vm, err := mem.VirtualMemory()
		if err != nil {
			return value.Error("sys-info")
		}
		return value.Number(float64(vm.Total / 1024))
	case "mem-used":
		vm, err := mem.VirtualMemory()
		if err != nil {
			return value.Error("sys-info")
		}
		return value.Number(float64(vm.Used / 1024))
	default:
		return value.Error("sys-info")
	}
}
