//go:build linux

package cmsg

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Data returns the address of h's payload, which immediately follows
// the header. No bounds checking is performed; h must point to a live
// header inside a control buffer.
func Data(h *unix.Cmsghdr) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(h), unix.SizeofCmsghdr)
}

// FirstHeader returns the first control message header in mh's control
// buffer, or nil if the buffer is absent or too short to hold a header.
func FirstHeader(mh *unix.Msghdr) *unix.Cmsghdr {
	if uint64(mh.Controllen) < unix.SizeofCmsghdr {
		return nil
	}
	return (*unix.Cmsghdr)(unsafe.Pointer(mh.Control))
}

// NextHeader returns the control message header following cur in mh's
// control buffer, or nil if cur is malformed or no further header fits
// within the buffer's declared length.
//
// cur's declared length is never trusted on its own: the advance stops
// unless both the next header and the span implied by cur's aligned
// length fit within Controllen, so iterating a truncated or corrupted
// chain terminates instead of reading out of bounds.
func NextHeader(mh *unix.Msghdr, cur *unix.Cmsghdr) *unix.Cmsghdr {
	curLen := uint64(cur.Len)
	if curLen < unix.SizeofCmsghdr {
		return nil
	}
	next := unsafe.Add(unsafe.Pointer(cur), uintptr(Align(curLen)))
	end := uintptr(unsafe.Pointer(mh.Control)) + uintptr(mh.Controllen)
	if uintptr(next)+unix.SizeofCmsghdr > end ||
		uintptr(next)+uintptr(Align(curLen)) > end {
		return nil
	}
	return (*unix.Cmsghdr)(next)
}
