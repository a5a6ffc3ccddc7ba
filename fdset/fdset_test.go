//go:build linux

package fdset

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestZeroValueSetIsEmpty(t *testing.T) {
	var set unix.FdSet
	for fd := 0; fd < SetSize; fd++ {
		if IsSet(fd, &set) {
			t.Fatalf("IsSet(%d) = true on an empty set", fd)
		}
	}
}

func TestSetClear(t *testing.T) {
	var set unix.FdSet
	for _, fd := range []int{0, 1, 5, 7, 8, 63, 64, 65, 1022, 1023} {
		Set(fd, &set)
		if !IsSet(fd, &set) {
			t.Errorf("IsSet(%d) = false after Set(%d)", fd, fd)
		}
		for other := 0; other < SetSize; other++ {
			if other != fd && IsSet(other, &set) {
				t.Errorf("IsSet(%d) = true after Set(%d)", other, fd)
			}
		}
		Clear(fd, &set)
		if IsSet(fd, &set) {
			t.Errorf("IsSet(%d) = true after Clear(%d)", fd, fd)
		}
	}
}

func TestBitAddressing(t *testing.T) {
	// Descriptor fd lives in byte fd/8, bit fd%8.
	var set unix.FdSet
	Set(13, &set)
	b := view(&set)
	if b[1] != 1<<5 {
		t.Errorf("byte 1 = %#x after Set(13), want %#x", b[1], 1<<5)
	}
	for i, v := range b {
		if i != 1 && v != 0 {
			t.Errorf("byte %d = %#x after Set(13), want 0", i, v)
		}
	}
}

func TestNegativeFdIsNoOp(t *testing.T) {
	var set unix.FdSet
	Set(3, &set)
	Set(200, &set)
	before := set

	Set(-1, &set)
	if set != before {
		t.Error("Set(-1) modified the set")
	}
	Clear(-1, &set)
	if set != before {
		t.Error("Clear(-1) modified the set")
	}
	if IsSet(-1, &set) {
		t.Error("IsSet(-1) = true, want false")
	}
	if set != before {
		t.Error("IsSet(-1) modified the set")
	}
}

func TestZero(t *testing.T) {
	var set unix.FdSet
	b := view(&set)
	for i := range b {
		b[i] = 0xff
	}
	Zero(&set)
	for fd := 0; fd < SetSize; fd++ {
		if IsSet(fd, &set) {
			t.Fatalf("IsSet(%d) = true after Zero", fd)
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	mustPanic := func(t *testing.T, name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s with fd = FD_SETSIZE did not panic", name)
			}
		}()
		f()
	}

	var set unix.FdSet
	mustPanic(t, "Set", func() { Set(SetSize, &set) })
	mustPanic(t, "Clear", func() { Clear(SetSize, &set) })
	mustPanic(t, "IsSet", func() { _ = IsSet(SetSize, &set) })
}
