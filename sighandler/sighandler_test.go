//go:build linux

package sighandler

import "testing"

func TestRaw(t *testing.T) {
	if got := Default.Raw(); got != 0 {
		t.Errorf("Default.Raw() = %d, want 0", got)
	}
	if got := Ignore.Raw(); got != 1 {
		t.Errorf("Ignore.Raw() = %d, want 1", got)
	}
}

func TestFromRaw(t *testing.T) {
	for _, d := range []Disposition{Default, Ignore} {
		got, ok := FromRaw(d.Raw())
		if !ok {
			t.Errorf("FromRaw(%d) not recognized as a sentinel", d.Raw())
		}
		if got != d {
			t.Errorf("FromRaw(%v.Raw()) = %v, want %v", d, got, d)
		}
	}

	// Anything else is a real handler address, not a sentinel.
	for _, p := range []uintptr{2, 0x55aa, ^uintptr(0)} {
		if d, ok := FromRaw(p); ok {
			t.Errorf("FromRaw(%#x) = %v, true, want false", p, d)
		}
	}
}

func TestString(t *testing.T) {
	if got := Default.String(); got != "default" {
		t.Errorf("Default.String() = %q, want %q", got, "default")
	}
	if got := Ignore.String(); got != "ignore" {
		t.Errorf("Ignore.String() = %q, want %q", got, "ignore")
	}
	if got := Disposition(7).String(); got != "invalid" {
		t.Errorf("Disposition(7).String() = %q, want %q", got, "invalid")
	}
}
