package nbt

// Tag is one value in an NBT tree. The set of implementations is closed: each
// concrete type below reports exactly one Kind, and that pairing is the only
// mapping the codec consults when writing.
type Tag interface {
	Kind() Kind
	encodePayload(e *Encoder) error
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	String    string
	IntArray  []int32
	LongArray []int64
)

func (Byte) Kind() Kind      { return KindByte }
func (Short) Kind() Kind     { return KindShort }
func (Int) Kind() Kind       { return KindInt }
func (Long) Kind() Kind      { return KindLong }
func (Float) Kind() Kind     { return KindFloat }
func (Double) Kind() Kind    { return KindDouble }
func (ByteArray) Kind() Kind { return KindByteArray }
func (String) Kind() Kind    { return KindString }
func (*List) Kind() Kind     { return KindList }
func (*Compound) Kind() Kind { return KindCompound }
func (IntArray) Kind() Kind  { return KindIntArray }
func (LongArray) Kind() Kind { return KindLongArray }

// NewTag returns the zero value for a payload kind. End and unknown codes
// yield an error wrapping ErrInvalidKind.
func NewTag(k Kind) (Tag, error) {
	switch k {
	case KindByte:
		return Byte(0), nil
	case KindShort:
		return Short(0), nil
	case KindInt:
		return Int(0), nil
	case KindLong:
		return Long(0), nil
	case KindFloat:
		return Float(0), nil
	case KindDouble:
		return Double(0), nil
	case KindByteArray:
		return ByteArray{}, nil
	case KindString:
		return String(""), nil
	case KindList:
		return &List{}, nil
	case KindCompound:
		return NewCompound(), nil
	case KindIntArray:
		return IntArray{}, nil
	case KindLongArray:
		return LongArray{}, nil
	default:
		return nil, invalidKind(k, "tag")
	}
}
