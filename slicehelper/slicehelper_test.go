package slicehelper

import "testing"

func TestExtend(t *testing.T) {
	head, tail := Extend([]byte(nil), 4)
	if len(head) != 4 {
		t.Errorf("len(head) = %d, want 4", len(head))
	}
	if len(tail) != 4 {
		t.Errorf("len(tail) = %d, want 4", len(tail))
	}

	copy(tail, []byte{1, 2, 3, 4})
	head, tail = Extend(head, 2)
	if len(head) != 6 {
		t.Errorf("len(head) = %d, want 6", len(head))
	}
	if len(tail) != 2 {
		t.Errorf("len(tail) = %d, want 2", len(tail))
	}
	for i, v := range []byte{1, 2, 3, 4} {
		if head[i] != v {
			t.Errorf("head[%d] = %d, want %d", i, head[i], v)
		}
	}
}
