package service

import (
	"time"

	"userpanel/logger"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Status holds the host figures shown on the index page.
type Status struct {
	Cpu    float64 `json:"cpu"`
	Uptime uint64  `json:"uptime"`
	Mem    struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"mem"`
}

// ServerService reports basic host status.
type ServerService struct{}

// GetStatus collects cpu, memory and uptime figures. Collection failures
// are logged and leave the corresponding field at its zero value.
func (s *ServerService) GetStatus() *Status {
	status := &Status{}

	percents, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	upTime, err := host.Uptime()
	if err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = upTime
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	return status
}
