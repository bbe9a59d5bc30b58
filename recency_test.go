package rampcache

import "testing"

func listSlots(l *recencyList) []uint32 {
	var slots []uint32
	for e := l.head; e != nil; e = e.next {
		slots = append(slots, e.slot)
	}
	return slots
}

func equalSlots(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecencyList(t *testing.T) {
	var l recencyList
	if l.Oldest() != nil || l.Len() != 0 {
		t.Fatal("zero list is not empty")
	}

	e := []*entry{{slot: 0}, {slot: 1}, {slot: 2}}
	for _, x := range e {
		l.PushFront(x)
	}

	steps := []struct {
		name   string
		op     func()
		want   []uint32
		oldest uint32
	}{
		{"push", func() {}, []uint32{2, 1, 0}, 0},
		{"move tail to front", func() { l.MoveToFront(e[0]) }, []uint32{0, 2, 1}, 1},
		{"move head is noop", func() { l.MoveToFront(e[0]) }, []uint32{0, 2, 1}, 1},
		{"move middle", func() { l.MoveToFront(e[2]) }, []uint32{2, 0, 1}, 1},
		{"remove tail", func() { l.Remove(e[1]) }, []uint32{2, 0}, 0},
		{"remove head", func() { l.Remove(e[2]) }, []uint32{0}, 0},
	}
	for _, tt := range steps {
		tt.op()
		if got := listSlots(&l); !equalSlots(got, tt.want) {
			t.Errorf("%s: order = %v, want %v", tt.name, got, tt.want)
		}
		if l.Len() != len(tt.want) {
			t.Errorf("%s: Len() = %d, want %d", tt.name, l.Len(), len(tt.want))
		}
		if got := l.Oldest().slot; got != tt.oldest {
			t.Errorf("%s: Oldest() = %d, want %d", tt.name, got, tt.oldest)
		}
	}

	l.Remove(e[0])
	if l.Oldest() != nil || l.head != nil || l.Len() != 0 {
		t.Error("list not empty after removing every entry")
	}
}

func TestRecencyListClear(t *testing.T) {
	var l recencyList
	e := []*entry{{slot: 0}, {slot: 1}}
	for _, x := range e {
		l.PushFront(x)
	}
	l.Clear()

	if l.Len() != 0 || l.Oldest() != nil {
		t.Errorf("after Clear: Len() = %d, Oldest() = %v", l.Len(), l.Oldest())
	}
	for i, x := range e {
		if x.prev != nil || x.next != nil {
			t.Errorf("entry %d still linked after Clear", i)
		}
	}
	l.PushFront(e[1])
	if got := listSlots(&l); !equalSlots(got, []uint32{1}) {
		t.Errorf("reuse after Clear = %v, want [1]", got)
	}
}
