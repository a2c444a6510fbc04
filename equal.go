package nbt

import (
	"bytes"
	"math"
	"slices"
)

// Equal reports whether a and b are the same tree. Compounds compare entry
// order as well as contents. Floats compare by bit pattern, so NaN equals an
// identical NaN. Empty lists are equal regardless of element kind.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Float:
		return math.Float32bits(float32(av)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(av)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		return bytes.Equal(av, b.(ByteArray))
	case IntArray:
		return slices.Equal(av, b.(IntArray))
	case LongArray:
		return slices.Equal(av, b.(LongArray))
	case *List:
		return equalList(av, b.(*List))
	case *Compound:
		return equalCompound(av, b.(*Compound))
	default:
		return a == b
	}
}

func equalList(a, b *List) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	if a.elem != b.elem {
		return false
	}
	for i := range a.items {
		if !Equal(a.items[i], b.items[i]) {
			return false
		}
	}
	return true
}

func equalCompound(a, b *Compound) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.keys[i] != b.keys[i] || !Equal(a.values[i], b.values[i]) {
			return false
		}
	}
	return true
}
