//go:build windows

package coro

// allocationGranularity mirrors layout_unix.go's page-sized rounding.
// Windows has no single syscall-free equivalent of unix.Getpagesize()
// worth adding a dependency for, and 4096 is the page size on every
// Windows architecture Go targets.
func allocationGranularity() int {
	return 4096
}
