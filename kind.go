package nbt

import "fmt"

// Kind is the one-byte type code that precedes every named value on the wire.
type Kind uint8

const (
	KindEnd Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

// kindCount is the number of defined kinds, End included.
const kindCount = int(KindLongArray) + 1

var kindNames = [kindCount]string{
	KindEnd:       "End",
	KindByte:      "Byte",
	KindShort:     "Short",
	KindInt:       "Int",
	KindLong:      "Long",
	KindFloat:     "Float",
	KindDouble:    "Double",
	KindByteArray: "ByteArray",
	KindString:    "String",
	KindList:      "List",
	KindCompound:  "Compound",
	KindIntArray:  "IntArray",
	KindLongArray: "LongArray",
}

// String returns the display name of k, or "Unknown(n)" for codes outside 0-12.
func (k Kind) String() string {
	if int(k) < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Unknown(%d)", uint8(k))
}

// Valid reports whether k is one of the 13 defined codes.
func (k Kind) Valid() bool {
	return int(k) < kindCount
}

// IsPayload reports whether k names a value kind (1-12).
func (k Kind) IsPayload() bool {
	return k > KindEnd && int(k) < kindCount
}

// ParseKind returns the kind with the given display name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown kind name %q", name)
}
