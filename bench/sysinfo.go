package bench

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// SysInfo describes the machine a benchmark ran on.
type SysInfo struct {
	Platform string
	CPU      string
	Cores    int
	RAM      string
}

// CollectSysInfo queries the host. Fields the platform does not expose are
// left as "unknown".
func CollectSysInfo() SysInfo {
	info := SysInfo{Platform: "unknown", CPU: "unknown", RAM: "unknown"}

	if h, err := host.Info(); err == nil && h.Platform != "" {
		info.Platform = h.Platform
		if h.PlatformVersion != "" {
			info.Platform += " " + h.PlatformVersion
		}
	}
	if c, err := cpu.Info(); err == nil && len(c) > 0 && c[0].ModelName != "" {
		info.CPU = c[0].ModelName
	}
	if n, err := cpu.Counts(true); err == nil {
		info.Cores = n
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vm.Total/1024/1024/1024)
	}

	return info
}

func (s SysInfo) String() string {
	return fmt.Sprintf("%s, %s (%d threads), %s RAM", s.Platform, s.CPU, s.Cores, s.RAM)
}
