// Package linuxabi provides pure-Go counterparts of the C helper macros
// that accompany the Linux kernel's socket, select, and signal ABIs:
// control-message (ancillary data) sizing and traversal, descriptor-set
// bitmap manipulation, and the special-case signal handler sentinels.
//
// The struct layouts and sizing constants come from [golang.org/x/sys/unix].
// This module adds only the arithmetic and traversal logic on top of them,
// never allocating or retaining the caller's buffers.
package linuxabi
