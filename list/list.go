// Package list implements a generic singly-linked list with O(1)
// append, O(n) removal from the back, and O(n) indexed access.
package list

import (
	"cmp"
	"sort"
)

type node[T comparable] struct {
	data T
	next *node[T]
}

// List is a singly-linked sequence. The zero value is an empty list
// ready to use.
type List[T comparable] struct {
	first *node[T]
	last  *node[T]
	size  int
}

// New creates an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Add appends v at the end of the list.
func (l *List[T]) Add(v T) *List[T] {
	n := &node[T]{data: v}
	if l.size == 0 {
		l.first = n
		l.last = n
	} else {
		l.last.next = n
		l.last = n
	}
	l.size++
	return l
}

// Pop removes the last element. Popping an empty list is a no-op.
func (l *List[T]) Pop() {
	switch l.size {
	case 0:
		return
	case 1:
		l.first = nil
		l.last = nil
		l.size = 0
		return
	}

	iter := l.first
	for iter.next != l.last {
		iter = iter.next
	}
	iter.next = nil
	l.last = iter
	l.size--
}

// Insert places v before the element at index. Index l.Len() appends.
// Out-of-range indices report false and leave the list unchanged.
func (l *List[T]) Insert(v T, index int) bool {
	if index < 0 || index > l.size {
		return false
	}
	if index == l.size {
		l.Add(v)
		return true
	}

	n := &node[T]{data: v}
	if index == 0 {
		n.next = l.first
		l.first = n
	} else {
		prev := l.nodeAt(index - 1)
		n.next = prev.next
		prev.next = n
	}
	l.size++
	return true
}

// Remove deletes the element at index. Out-of-range indices report
// false and leave the list unchanged.
func (l *List[T]) Remove(index int) bool {
	if index < 0 || index >= l.size {
		return false
	}
	if index == 0 {
		l.first = l.first.next
		l.size--
		if l.size == 0 {
			l.last = nil
		}
		return true
	}

	prev := l.nodeAt(index - 1)
	prev.next = prev.next.next
	if prev.next == nil {
		l.last = prev
	}
	l.size--
	return true
}

// Clear empties the list.
func (l *List[T]) Clear() {
	l.first = nil
	l.last = nil
	l.size = 0
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Contains reports whether v is in the list.
func (l *List[T]) Contains(v T) bool {
	return l.Index(v) >= 0
}

// Index returns the position of the first element equal to v, or -1.
func (l *List[T]) Index(v T) int {
	i := 0
	for n := l.first; n != nil; n = n.next {
		if n.data == v {
			return i
		}
		i++
	}
	return -1
}

// First returns the first element.
func (l *List[T]) First() (T, bool) {
	if l.first == nil {
		var zero T
		return zero, false
	}
	return l.first.data, true
}

// Last returns the last element.
func (l *List[T]) Last() (T, bool) {
	if l.last == nil {
		var zero T
		return zero, false
	}
	return l.last.data, true
}

// At returns the element at index.
func (l *List[T]) At(index int) (T, bool) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, false
	}
	return l.nodeAt(index).data, true
}

// Reverse flips the order of elements in place.
func (l *List[T]) Reverse() {
	var prev *node[T]
	cur := l.first
	l.last = l.first
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.first = prev
}

// Slice copies the elements into a new slice in list order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.first; n != nil; n = n.next {
		out = append(out, n.data)
	}
	return out
}

func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.first
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// Sort orders the list ascending (or descending) by rebuilding it from
// a sorted snapshot. A method cannot add the Ordered constraint on top
// of the list's element type, hence the free function.
func Sort[T cmp.Ordered](l *List[T], ascending bool) {
	s := l.Slice()
	sort.Slice(s, func(i, j int) bool {
		if ascending {
			return s[i] < s[j]
		}
		return s[i] > s[j]
	})
	l.Clear()
	for _, v := range s {
		l.Add(v)
	}
}
