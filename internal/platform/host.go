package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

// HostSummary describes the machine whose startup entries are listed.
type HostSummary struct {
	Hostname        string    `json:"hostname"`
	OS              string    `json:"os"`
	Platform        string    `json:"platform"`
	PlatformVersion string    `json:"platform_version"`
	KernelArch      string    `json:"kernel_arch"`
	BootTime        time.Time `json:"boot_time"`
}

// Describe gathers host facts through gopsutil.
func Describe(ctx context.Context) (HostSummary, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostSummary{}, fmt.Errorf("reading host info: %w", err)
	}
	return HostSummary{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelArch:      info.KernelArch,
		BootTime:        time.Unix(int64(info.BootTime), 0),
	}, nil
}
