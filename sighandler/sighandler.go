//go:build linux

// Package sighandler defines the special-case signal handler sentinels
// of the kernel's sigaction ABI.
//
// The kernel encodes two non-address dispositions in the sa_handler
// field: 0 requests the signal's default action and 1 requests that the
// signal be ignored. Neither value is a callable address; they exist
// only for identity comparison when a handler value crosses the
// sigaction boundary.
package sighandler

// Disposition is a special-case signal handler disposition.
type Disposition uint8

const (
	// Default requests the signal's default action (SIG_DFL).
	Default Disposition = iota

	// Ignore requests that the signal be ignored (SIG_IGN).
	Ignore
)

// Raw sa_handler sentinel values.
const (
	rawDefault uintptr = 0
	rawIgnore  uintptr = 1
)

// Raw returns the sa_handler value for d.
//
// The value returned for [Ignore] is not a valid address and must never
// be invoked as a function.
func (d Disposition) Raw() uintptr {
	if d == Ignore {
		return rawIgnore
	}
	return rawDefault
}

// FromRaw converts a raw sa_handler value back into a [Disposition].
// It reports false for values that are handler addresses rather than
// sentinels.
func FromRaw(p uintptr) (Disposition, bool) {
	switch p {
	case rawDefault:
		return Default, true
	case rawIgnore:
		return Ignore, true
	default:
		return 0, false
	}
}

// String returns the disposition's name.
func (d Disposition) String() string {
	switch d {
	case Default:
		return "default"
	case Ignore:
		return "ignore"
	default:
		return "invalid"
	}
}
