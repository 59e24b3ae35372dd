//go:build linux

package sysmon

import "golang.org/x/sys/unix"

// loadScale converts the fixed-point load averages of sysinfo(2).
const loadScale = 1 << 16

func sample() Stats {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return Stats{}
	}

	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	total := uint64(info.Totalram) * unit
	free := (uint64(info.Freeram) + uint64(info.Bufferram)) * unit

	s := Stats{
		MemTotal: total,
		MemFree:  free,
		Load1:    float64(info.Loads[0]) / loadScale,
	}
	if total > 0 {
		s.MemPercent = float64(total-free) / float64(total) * 100
	}
	return s
}
