package nbt

import (
	"fmt"
	"iter"
)

// List is a homogeneous sequence of tags. Every element has the list's
// element kind. An empty list may carry any element kind in memory, but it is
// always written as kind End with count 0, so a decoded empty list reports End.
type List struct {
	elem  Kind
	items []Tag
}

// NewList returns a list of elem-kind tags. It fails if elem is not a payload
// kind while items are given, or if any item has a different kind.
func NewList(elem Kind, items ...Tag) (*List, error) {
	l := &List{elem: elem, items: make([]Tag, 0, len(items))}
	for _, it := range items {
		if err := l.Append(it); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// MustList is like NewList but panics on error. It is meant for literals.
func MustList(elem Kind, items ...Tag) *List {
	l, err := NewList(elem, items...)
	if err != nil {
		panic(err)
	}
	return l
}

// ElemKind returns the declared element kind.
func (l *List) ElemKind() Kind {
	if l == nil {
		return KindEnd
	}
	return l.elem
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns element i.
func (l *List) At(i int) Tag {
	return l.items[i]
}

// Append adds t to the end of the list. An empty list of kind End adopts the
// kind of its first element.
func (l *List) Append(t Tag) error {
	if t == nil {
		return fmt.Errorf("nbt: append nil tag to list")
	}
	if len(l.items) == 0 && l.elem == KindEnd {
		l.elem = t.Kind()
	}
	if !l.elem.IsPayload() {
		return invalidKind(l.elem, "list")
	}
	if t.Kind() != l.elem {
		return fmt.Errorf("%w: list of %s, got %s", ErrListKindMismatch, l.elem, t.Kind())
	}
	l.items = append(l.items, t)
	return nil
}

// Set replaces element i.
func (l *List) Set(i int, t Tag) error {
	if t == nil || t.Kind() != l.elem {
		return fmt.Errorf("%w: list of %s", ErrListKindMismatch, l.elem)
	}
	l.items[i] = t
	return nil
}

// All iterates over the elements in order.
func (l *List) All() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		if l == nil {
			return
		}
		for i, t := range l.items {
			if !yield(i, t) {
				return
			}
		}
	}
}
