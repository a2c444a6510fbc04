package nbt

import "testing"

func TestKindCodes(t *testing.T) {
	want := []struct {
		kind Kind
		code byte
		name string
	}{
		{KindEnd, 0, "End"},
		{KindByte, 1, "Byte"},
		{KindShort, 2, "Short"},
		{KindInt, 3, "Int"},
		{KindLong, 4, "Long"},
		{KindFloat, 5, "Float"},
		{KindDouble, 6, "Double"},
		{KindByteArray, 7, "ByteArray"},
		{KindString, 8, "String"},
		{KindList, 9, "List"},
		{KindCompound, 10, "Compound"},
		{KindIntArray, 11, "IntArray"},
		{KindLongArray, 12, "LongArray"},
	}
	for _, w := range want {
		if byte(w.kind) != w.code {
			t.Fatalf("%s = %d, want %d", w.name, w.kind, w.code)
		}
		if w.kind.String() != w.name {
			t.Fatalf("String() = %q, want %q", w.kind.String(), w.name)
		}
		parsed, err := ParseKind(w.name)
		if err != nil || parsed != w.kind {
			t.Fatalf("ParseKind(%q) = %v, %v", w.name, parsed, err)
		}
	}
	if Kind(13).Valid() || Kind(255).Valid() {
		t.Fatalf("codes above 12 must be invalid")
	}
	if Kind(13).String() != "Unknown(13)" {
		t.Fatalf("unexpected name %q", Kind(13).String())
	}
	if KindEnd.IsPayload() || !KindLongArray.IsPayload() {
		t.Fatalf("IsPayload wrong at range ends")
	}
}

func TestTagKindsMatchZeroValues(t *testing.T) {
	for k := KindByte; k <= KindLongArray; k++ {
		tag, err := NewTag(k)
		if err != nil {
			t.Fatalf("NewTag(%s): %v", k, err)
		}
		if tag.Kind() != k {
			t.Fatalf("NewTag(%s).Kind() = %s", k, tag.Kind())
		}
	}
	if _, err := NewTag(KindEnd); err == nil {
		t.Fatalf("NewTag(End) must fail")
	}
	if _, err := NewTag(Kind(13)); err == nil {
		t.Fatalf("NewTag(13) must fail")
	}
}
