//go:build !windows

package coro

import "golang.org/x/sys/unix"

// allocationGranularity rounds a coroutine's storage allocation up to
// the real OS page size, so a pooled or arena Allocator backed by
// mmap-style arenas is only ever asked for whole pages.
func allocationGranularity() int {
	return unix.Getpagesize()
}
