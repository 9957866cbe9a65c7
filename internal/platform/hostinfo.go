package platform

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
)

// HostInfo describes the machine beyond its os/arch pair. It is only used
// for diagnostics; resolution never depends on it.
type HostInfo struct {
	Hostname        string
	OS              string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	KernelArch      string
}

// DetectHostInfo queries the operating system for host details.
func DetectHostInfo(ctx context.Context) (*HostInfo, error) {
	stat, err := host.InfoWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("host detection cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("reading host info: %w", err)
	}
	return &HostInfo{
		Hostname:        stat.Hostname,
		OS:              stat.OS,
		Platform:        stat.Platform,
		PlatformVersion: stat.PlatformVersion,
		KernelVersion:   stat.KernelVersion,
		KernelArch:      stat.KernelArch,
	}, nil
}
