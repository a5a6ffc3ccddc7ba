//go:build linux

// Package fdset mirrors the kernel's FD_* helper macros over the
// fixed-size descriptor set consumed by select(2)-style readiness APIs.
//
// Bits are addressed the way the kernel macros address them: descriptor
// fd lives in byte fd/8, bit fd%8, of the set viewed as raw memory.
// Negative descriptors are silently ignored, matching the native
// macros. Descriptors at or beyond [SetSize] are undefined behavior in
// C; here the bounds check on the byte view turns them into a panic.
package fdset

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// SetSize is the number of descriptors a set can hold (FD_SETSIZE).
const SetSize = 8 * int(unsafe.Sizeof(unix.FdSet{}))

// view returns set's storage as a byte slice covering exactly
// the size of the kernel fd_set.
func view(set *unix.FdSet) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(set)), unsafe.Sizeof(*set))
}

// Set marks fd as a member of set. Negative fd is a no-op.
func Set(fd int, set *unix.FdSet) {
	if fd >= 0 {
		view(set)[fd/8] |= 1 << (fd % 8)
	}
}

// Clear removes fd from set. Negative fd is a no-op.
func Clear(fd int, set *unix.FdSet) {
	if fd >= 0 {
		view(set)[fd/8] &^= 1 << (fd % 8)
	}
}

// IsSet reports whether fd is a member of set. Negative fd reports false.
func IsSet(fd int, set *unix.FdSet) bool {
	return fd >= 0 && view(set)[fd/8]&(1<<(fd%8)) != 0
}

// Zero clears every bit in set.
func Zero(set *unix.FdSet) {
	clear(view(set))
}
