//go:build linux

// Package cmsg mirrors the kernel's CMSG_* helper macros for socket
// ancillary data: alignment and sizing arithmetic, pointer-level header
// traversal, and a bounds-checked codec over raw control buffers.
//
// The cmsghdr and msghdr layouts come from [golang.org/x/sys/unix].
// All buffers are owned by the caller; no operation in this package
// allocates on the caller's behalf or retains a reference.
package cmsg

import "golang.org/x/sys/unix"

// Align rounds n up to the alignment boundary of a control message,
// which is the size of the platform's long integer: 4 bytes on 32-bit
// targets, 8 bytes on 64-bit targets.
//
// Align performs no overflow checking. Lengths near the top of the
// uint64 range wrap; callers must keep lengths well below that by
// construction.
func Align(n uint64) uint64 {
	return (n + unix.SizeofPtr - 1) & ^uint64(unix.SizeofPtr-1)
}

// Space returns the total buffer space occupied by a control message
// carrying a payload of n bytes, including the header and the alignment
// padding that follows the payload.
func Space(n uint64) uint64 {
	return unix.SizeofCmsghdr + Align(n)
}

// Len returns the value to store in a control message header's Len
// field for a payload of n bytes. Unlike [Space], the stored length is
// not padded: alignment padding exists only between records, never
// inside the declared length.
func Len(n uint64) uint64 {
	return unix.SizeofCmsghdr + n
}
