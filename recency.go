package rampcache

// recencyList is an intrusive doubly-linked list of cache entries ordered
// by last use. The head is the most recently used entry, the tail the least
// recently used. Because entries are only ever touched at the current
// epoch, the tail also carries the smallest epoch.
//
// The list is not thread-safe; the owning Cache serializes access.
type recencyList struct {
	head *entry
	tail *entry
	len  int
}

// Len returns the number of entries in the list.
func (l *recencyList) Len() int {
	return l.len
}

// PushFront inserts e as the most recently used entry.
// e must not already be linked.
func (l *recencyList) PushFront(e *entry) {
	e.prev = nil
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	} else {
		l.tail = e
	}
	l.head = e
	l.len++
}

// MoveToFront marks e as the most recently used entry.
func (l *recencyList) MoveToFront(e *entry) {
	if e == nil || e == l.head {
		return
	}
	l.unlink(e)
	l.PushFront(e)
}

// Remove unlinks e from the list.
func (l *recencyList) Remove(e *entry) {
	if e == nil {
		return
	}
	l.unlink(e)
}

// Oldest returns the least recently used entry, or nil if the list is empty.
func (l *recencyList) Oldest() *entry {
	return l.tail
}

// Clear drops every entry from the list.
func (l *recencyList) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.prev, e.next = nil, nil
		e = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

// unlink removes e from the list and clears its links.
func (l *recencyList) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}

	e.prev = nil
	e.next = nil
	l.len--
}
