package nbt

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var cborEnc cbor.EncMode

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborEnc = em
}

// ToAny converts t to plain Go values: fixed-width integers and floats,
// string, []byte, []int32, []int64, []any for lists and map[string]any for
// compounds. Kinds of empty lists and compound entry order are not kept.
func ToAny(t Tag) any {
	switch v := t.(type) {
	case Byte:
		return int8(v)
	case Short:
		return int16(v)
	case Int:
		return int32(v)
	case Long:
		return int64(v)
	case Float:
		return float32(v)
	case Double:
		return float64(v)
	case String:
		return string(v)
	case ByteArray:
		return []byte(v)
	case IntArray:
		return []int32(v)
	case LongArray:
		return []int64(v)
	case *List:
		out := make([]any, 0, v.Len())
		for _, it := range v.All() {
			out = append(out, ToAny(it))
		}
		return out
	case *Compound:
		out := make(map[string]any, v.Len())
		for k, it := range v.All() {
			out[k] = ToAny(it)
		}
		return out
	default:
		return nil
	}
}

// ToCBOR encodes the plain form of t as deterministic CBOR.
func ToCBOR(t Tag) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("nbt: cbor of nil tag")
	}
	return cborEnc.Marshal(ToAny(t))
}
