package nbt

import "slices"

// Clone returns a deep copy of t. Scalars and strings are returned as is.
func Clone(t Tag) Tag {
	switch v := t.(type) {
	case ByteArray:
		return slices.Clone(v)
	case IntArray:
		return slices.Clone(v)
	case LongArray:
		return slices.Clone(v)
	case *List:
		return v.Clone()
	case *Compound:
		return v.Clone()
	default:
		return t
	}
}

// Clone returns a deep copy of l.
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	out := &List{elem: l.elem, items: make([]Tag, len(l.items))}
	for i, it := range l.items {
		out.items[i] = Clone(it)
	}
	return out
}

// Clone returns a deep copy of c.
func (c *Compound) Clone() *Compound {
	if c == nil {
		return nil
	}
	out := newCompoundCap(len(c.keys))
	for i, k := range c.keys {
		out.Set(k, Clone(c.values[i]))
	}
	return out
}

// Clone returns a deep copy of the envelope.
func (n Named) Clone() Named {
	return Named{Name: n.Name, Data: n.Data.Clone()}
}
