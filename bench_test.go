package nbt

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
)

var (
	sinkBytes []byte
	sinkNamed Named
)

func benchTree() Named {
	entities := &List{}
	for i := 0; i < 64; i++ {
		e := NewCompound().
			Set("id", String("minecraft:zombie")).
			Set("Pos", MustList(KindDouble, Double(float64(i)), Double(64), Double(-float64(i)))).
			Set("Health", Float(20)).
			Set("UUID", IntArray{int32(i), 1, 2, 3})
		if err := entities.Append(e); err != nil {
			panic(err)
		}
	}
	heights := make(LongArray, 37)
	for i := range heights {
		heights[i] = int64(i) * 0x0102030405
	}
	blocks := make(ByteArray, 4096)
	for i := range blocks {
		blocks[i] = byte(i)
	}
	level := NewCompound().
		Set("Entities", entities).
		Set("Heightmap", heights).
		Set("Blocks", blocks).
		Set("xPos", Int(12)).
		Set("zPos", Int(-7))
	return Named{Name: "", Data: NewCompound().Set("Level", level)}
}

func BenchmarkMarshal(b *testing.B) {
	n := benchTree()
	b.ReportAllocs()
	for b.Loop() {
		out, err := Marshal(n)
		if err != nil {
			b.Fatal(err)
		}
		sinkBytes = out
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	data, err := Marshal(benchTree())
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		n, err := Unmarshal(data)
		if err != nil {
			b.Fatal(err)
		}
		sinkNamed = n
	}
}

func BenchmarkCBORMarshalPlain(b *testing.B) {
	plain := ToAny(benchTree().Data)
	b.ReportAllocs()
	for b.Loop() {
		out, err := cbor.Marshal(plain)
		if err != nil {
			b.Fatal(err)
		}
		sinkBytes = out
	}
}

func BenchmarkClone(b *testing.B) {
	n := benchTree()
	b.ReportAllocs()
	for b.Loop() {
		sinkNamed = n.Clone()
	}
}
