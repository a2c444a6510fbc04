package nbt

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzDecodeNamed(f *testing.F) {
	seeds := [][]byte{
		{0x0a, 0x00, 0x00, 0x00},
		{0x0a, 0x00, 0x01, 'r', 0x03, 0x00, 0x01, 'n', 0x00, 0x00, 0x00, 0x2a, 0x00},
		{0x0a, 0x00, 0x00, 0x09, 0x00, 0x01, 'l', 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x0a, 0x00, 0x00, 0x09, 0x00, 0x01, 'l', 0x00, 0x00, 0x00, 0x00, 0x02, 0x00},
		{0x0a, 0x00, 0x00, 0x0b, 0x00, 0x01, 'a', 0x7f, 0xff, 0xff, 0xff},
		{0x01},
	}
	if b, err := Marshal(Named{Name: "Level", Data: sampleTree()}); err == nil {
		seeds = append(seeds, b)
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		n, err := ReadNamed(NewSliceSource(data), Options{MaxDepth: 64})
		if err != nil {
			if !errors.Is(err, ErrPortExhausted) &&
				!errors.Is(err, ErrInvalidKind) &&
				!errors.Is(err, ErrInconsistentList) &&
				!errors.Is(err, ErrDepthExceeded) &&
				!errors.Is(err, ErrNegativeLength) {
				t.Fatalf("unclassified decode error: %v", err)
			}
			return
		}
		enc, err := Marshal(n)
		if err != nil {
			t.Fatalf("re-encode decoded tree: %v", err)
		}
		again, err := Unmarshal(enc)
		if err != nil {
			t.Fatalf("decode re-encoded tree: %v", err)
		}
		if !Equal(n.Data, again.Data) || n.Name != again.Name {
			t.Fatalf("roundtrip mismatch")
		}
		enc2, err := Marshal(again)
		if err != nil {
			t.Fatalf("second encode: %v", err)
		}
		if !bytes.Equal(enc, enc2) {
			t.Fatalf("encoding not stable")
		}
	})
}

func FuzzScalarRoundTrip(f *testing.F) {
	f.Add(int8(0), int16(0), int32(0), int64(0), float32(0), float64(0), "")
	f.Add(int8(-1), int16(-300), int32(1<<30), int64(-1<<60), float32(42.69), float64(-1e-300), "hi")
	f.Fuzz(func(t *testing.T, b int8, s int16, i int32, l int64, fl float32, d float64, str string) {
		if len(str) > 1<<16-1 {
			return
		}
		c := NewCompound().
			Set("b", Byte(b)).
			Set("s", Short(s)).
			Set("i", Int(i)).
			Set("l", Long(l)).
			Set("f", Float(fl)).
			Set("d", Double(d)).
			Set(str, String(str))
		enc, err := Marshal(Named{Name: str, Data: c})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		back, err := Unmarshal(enc)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !Equal(back.Data, c) {
			t.Fatalf("roundtrip mismatch")
		}
	})
}
