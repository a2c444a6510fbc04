package nbt

import (
	"iter"
	"sort"
)

// Compound maps names to tags. Entries keep insertion order, which is also
// the order they are written in; decoding preserves wire order, so a decoded
// compound re-encodes to the same bytes. Setting an existing key replaces its
// value in place; a key repeated on the wire keeps its first value.
type Compound struct {
	keys   []string
	values []Tag
	index  map[string]int
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{index: make(map[string]int)}
}

func newCompoundCap(n int) *Compound {
	return &Compound{
		keys:   make([]string, 0, n),
		values: make([]Tag, 0, n),
		index:  make(map[string]int, n),
	}
}

// Len returns the number of entries.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Set stores t under key.
func (c *Compound) Set(key string, t Tag) *Compound {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[key]; ok {
		c.values[i] = t
		return c
	}
	c.index[key] = len(c.keys)
	c.keys = append(c.keys, key)
	c.values = append(c.values, t)
	return c
}

// setIfAbsent stores t under key unless key is already present. Decoding
// uses it so the first occurrence of a repeated wire key is kept.
func (c *Compound) setIfAbsent(key string, t Tag) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if _, ok := c.index[key]; ok {
		return
	}
	c.index[key] = len(c.keys)
	c.keys = append(c.keys, key)
	c.values = append(c.values, t)
}

// Get returns the tag stored under key.
func (c *Compound) Get(key string) (Tag, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.values[i], true
}

// Has reports whether key is present.
func (c *Compound) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (c *Compound) Delete(key string) bool {
	if c == nil {
		return false
	}
	i, ok := c.index[key]
	if !ok {
		return false
	}
	delete(c.index, key)
	c.keys = append(c.keys[:i], c.keys[i+1:]...)
	c.values[i] = nil
	c.values = append(c.values[:i], c.values[i+1:]...)
	for j := i; j < len(c.keys); j++ {
		c.index[c.keys[j]] = j
	}
	return true
}

// Keys returns the entry names in order.
func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.keys...)
}

// All iterates over entries in order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		if c == nil {
			return
		}
		for i, k := range c.keys {
			if !yield(k, c.values[i]) {
				return
			}
		}
	}
}

// SortKeys reorders entries by byte-wise key order.
func (c *Compound) SortKeys() {
	if c.Len() < 2 {
		return
	}
	sort.Sort(byKey{c})
	for i, k := range c.keys {
		c.index[k] = i
	}
}

type byKey struct{ c *Compound }

func (s byKey) Len() int { return len(s.c.keys) }
func (s byKey) Less(i, j int) bool { return s.c.keys[i] < s.c.keys[j] }
func (s byKey) Swap(i, j int) {
	s.c.keys[i], s.c.keys[j] = s.c.keys[j], s.c.keys[i]
	s.c.values[i], s.c.values[j] = s.c.values[j], s.c.values[i]
}

// Lookup returns the tag under key if it has dynamic type T.
func Lookup[T Tag](c *Compound, key string) (T, bool) {
	var zero T
	t, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	v, ok := t.(T)
	return v, ok
}

// GetByte returns the value under key if it is a Byte.
func (c *Compound) GetByte(key string) (int8, bool) {
	v, ok := Lookup[Byte](c, key)
	return int8(v), ok
}

// GetShort returns the value under key if it is a Short.
func (c *Compound) GetShort(key string) (int16, bool) {
	v, ok := Lookup[Short](c, key)
	return int16(v), ok
}

// GetInt returns the value under key if it is an Int.
func (c *Compound) GetInt(key string) (int32, bool) {
	v, ok := Lookup[Int](c, key)
	return int32(v), ok
}

// GetLong returns the value under key if it is a Long.
func (c *Compound) GetLong(key string) (int64, bool) {
	v, ok := Lookup[Long](c, key)
	return int64(v), ok
}

// GetFloat returns the value under key if it is a Float.
func (c *Compound) GetFloat(key string) (float32, bool) {
	v, ok := Lookup[Float](c, key)
	return float32(v), ok
}

// GetDouble returns the value under key if it is a Double.
func (c *Compound) GetDouble(key string) (float64, bool) {
	v, ok := Lookup[Double](c, key)
	return float64(v), ok
}

// GetString returns the value under key if it is a String.
func (c *Compound) GetString(key string) (string, bool) {
	v, ok := Lookup[String](c, key)
	return string(v), ok
}

// GetList returns the value under key if it is a List.
func (c *Compound) GetList(key string) (*List, bool) {
	return Lookup[*List](c, key)
}

// GetCompound returns the value under key if it is a Compound.
func (c *Compound) GetCompound(key string) (*Compound, bool) {
	return Lookup[*Compound](c, key)
}
