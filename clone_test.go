package nbt

import "testing"

func TestCloneIsDeep(t *testing.T) {
	orig := sampleTree()
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatalf("clone differs from original")
	}

	ia, _ := Lookup[IntArray](cp, "ints")
	ia[0] = 99
	inner, _ := cp.GetCompound("inner")
	inner.Set("name", String("changed"))
	nested, _ := cp.GetList("nested")
	first := nested.At(0).(*List)
	if err := first.Append(Int(5)); err != nil {
		t.Fatalf("append: %v", err)
	}

	if v, _ := Lookup[IntArray](orig, "ints"); v[0] != 1 {
		t.Fatalf("int array shared with clone")
	}
	if v, _ := orig.GetCompound("inner"); !v.Has("name") {
		t.Fatalf("inner missing")
	} else if s, _ := v.GetString("name"); s != "Bananrama" {
		t.Fatalf("inner compound shared with clone")
	}
	if l, _ := orig.GetList("nested"); l.At(0).(*List).Len() != 1 {
		t.Fatalf("nested list shared with clone")
	}
	if Equal(orig, cp) {
		t.Fatalf("mutated clone still equal")
	}
}

func TestCloneNamed(t *testing.T) {
	n := Named{Name: "Level", Data: sampleTree()}
	cp := n.Clone()
	if cp.Name != n.Name || cp.Data == n.Data || !Equal(cp.Data, n.Data) {
		t.Fatalf("named clone wrong")
	}
}
