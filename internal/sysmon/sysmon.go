// Package sysmon provides system-wide memory and load sampling for the TUI
// header. The linux implementation reads the kernel directly via
// golang.org/x/sys; other platforms fall back to zero readings rather than
// failing.
package sysmon

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	MemTotal   uint64  // bytes of physical memory
	MemFree    uint64  // bytes of free memory (including reclaimable buffers)
	MemPercent float64 // 0.0 .. 100.0 used
	Load1      float64 // 1-minute load average
}

// Sample collects a single system snapshot. Returns zero values on error or
// on platforms without an implementation.
func Sample() Stats {
	return sample()
}
