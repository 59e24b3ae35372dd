//go:build !linux

package sysmon

func sample() Stats { return Stats{} }
