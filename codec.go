package nbt

import (
	"fmt"
	"math"
)

// DefaultMaxDepth bounds compound and list nesting when Options.MaxDepth is 0.
const DefaultMaxDepth = 512

// maxPrealloc caps the element capacity reserved from a wire count before any
// element has been read. Longer sequences grow by append.
const maxPrealloc = 1 << 16

// chunkSize is the number of bytes moved per Push/Pull for numeric arrays.
const chunkSize = 4096

// Options configures an Encoder or Decoder.
type Options struct {
	// MaxDepth is the deepest compound/list nesting accepted. The root
	// compound is depth 1. Zero means DefaultMaxDepth.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Encoder writes tags to a Sink.
type Encoder struct {
	dst      Sink
	maxDepth int
	depth    int
	scratch  [8]byte
}

// NewEncoder returns an Encoder with default options.
func NewEncoder(dst Sink) *Encoder {
	return NewEncoderWithOptions(dst, Options{})
}

// NewEncoderWithOptions returns an Encoder using opts.
func NewEncoderWithOptions(dst Sink, opts Options) *Encoder {
	return &Encoder{dst: dst, maxDepth: opts.maxDepth()}
}

// WriteKind writes a single kind byte.
func (e *Encoder) WriteKind(k Kind) error {
	e.scratch[0] = byte(k)
	return e.dst.Push(e.scratch[:1])
}

// WriteString writes a 16-bit length followed by the raw bytes of s.
func (e *Encoder) WriteString(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	wire.PutUint16(e.scratch[:2], uint16(len(s)))
	if err := e.dst.Push(e.scratch[:2]); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	return e.dst.Push([]byte(s))
}

// WriteTag writes the payload of t without a kind byte or name.
func (e *Encoder) WriteTag(t Tag) error {
	if t == nil {
		return fmt.Errorf("nbt: encode nil tag")
	}
	return t.encodePayload(e)
}

// WriteEntry writes t as a compound entry: kind byte, name, payload.
func (e *Encoder) WriteEntry(name string, t Tag) error {
	if t == nil {
		return fmt.Errorf("nbt: encode nil tag %q", name)
	}
	if err := e.WriteKind(t.Kind()); err != nil {
		return err
	}
	if err := e.WriteString(name); err != nil {
		return err
	}
	return t.encodePayload(e)
}

func (e *Encoder) writeLen(n int) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("nbt: sequence of %d elements exceeds int32 count", n)
	}
	putInt32(e.scratch[:4], int32(n))
	return e.dst.Push(e.scratch[:4])
}

func (e *Encoder) enter() error {
	e.depth++
	if e.depth > e.maxDepth {
		return fmt.Errorf("%w: limit %d", ErrDepthExceeded, e.maxDepth)
	}
	return nil
}

func (e *Encoder) leave() { e.depth-- }

func (v Byte) encodePayload(e *Encoder) error {
	e.scratch[0] = byte(v)
	return e.dst.Push(e.scratch[:1])
}

func (v Short) encodePayload(e *Encoder) error {
	putInt16(e.scratch[:2], int16(v))
	return e.dst.Push(e.scratch[:2])
}

func (v Int) encodePayload(e *Encoder) error {
	putInt32(e.scratch[:4], int32(v))
	return e.dst.Push(e.scratch[:4])
}

func (v Long) encodePayload(e *Encoder) error {
	putInt64(e.scratch[:8], int64(v))
	return e.dst.Push(e.scratch[:8])
}

func (v Float) encodePayload(e *Encoder) error {
	putFloat32(e.scratch[:4], float32(v))
	return e.dst.Push(e.scratch[:4])
}

func (v Double) encodePayload(e *Encoder) error {
	putFloat64(e.scratch[:8], float64(v))
	return e.dst.Push(e.scratch[:8])
}

func (v String) encodePayload(e *Encoder) error {
	return e.WriteString(string(v))
}

func (v ByteArray) encodePayload(e *Encoder) error {
	if err := e.writeLen(len(v)); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	return e.dst.Push(v)
}

func (v IntArray) encodePayload(e *Encoder) error {
	if err := e.writeLen(len(v)); err != nil {
		return err
	}
	buf := getChunk()
	defer func() { putChunk(buf) }()
	for _, x := range v {
		buf = wire.AppendUint32(buf, uint32(x))
		if len(buf) >= chunkSize {
			if err := e.dst.Push(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) == 0 {
		return nil
	}
	return e.dst.Push(buf)
}

func (v LongArray) encodePayload(e *Encoder) error {
	if err := e.writeLen(len(v)); err != nil {
		return err
	}
	buf := getChunk()
	defer func() { putChunk(buf) }()
	for _, x := range v {
		buf = wire.AppendUint64(buf, uint64(x))
		if len(buf) >= chunkSize {
			if err := e.dst.Push(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) == 0 {
		return nil
	}
	return e.dst.Push(buf)
}

func (l *List) encodePayload(e *Encoder) error {
	if err := e.enter(); err != nil {
		return err
	}
	defer e.leave()
	if l.Len() == 0 {
		if err := e.WriteKind(KindEnd); err != nil {
			return err
		}
		return e.writeLen(0)
	}
	if !l.elem.IsPayload() {
		return invalidKind(l.elem, "list header")
	}
	if err := e.WriteKind(l.elem); err != nil {
		return err
	}
	if err := e.writeLen(len(l.items)); err != nil {
		return err
	}
	for i, it := range l.items {
		if it == nil || it.Kind() != l.elem {
			return fmt.Errorf("%w: element %d of list of %s", ErrListKindMismatch, i, l.elem)
		}
		if err := it.encodePayload(e); err != nil {
			return fmt.Errorf("list element %d: %w", i, err)
		}
	}
	return nil
}

func (c *Compound) encodePayload(e *Encoder) error {
	if err := e.enter(); err != nil {
		return err
	}
	defer e.leave()
	for i := 0; i < c.Len(); i++ {
		if err := e.WriteEntry(c.keys[i], c.values[i]); err != nil {
			return fmt.Errorf("compound entry %q: %w", c.keys[i], err)
		}
	}
	return e.WriteKind(KindEnd)
}

// Decoder reads tags from a Source.
type Decoder struct {
	src      Source
	maxDepth int
	depth    int
}

// NewDecoder returns a Decoder with default options.
func NewDecoder(src Source) *Decoder {
	return NewDecoderWithOptions(src, Options{})
}

// NewDecoderWithOptions returns a Decoder using opts.
func NewDecoderWithOptions(src Source, opts Options) *Decoder {
	return &Decoder{src: src, maxDepth: opts.maxDepth()}
}

// ReadKind reads one kind byte and rejects codes outside 0-12.
func (d *Decoder) ReadKind() (Kind, error) {
	return d.readKind("kind byte")
}

func (d *Decoder) readKind(context string) (Kind, error) {
	b, err := d.src.Pull(1)
	if err != nil {
		return 0, err
	}
	k := Kind(b[0])
	if !k.Valid() {
		return 0, invalidKind(k, context)
	}
	return k, nil
}

// ReadString reads a 16-bit length followed by that many bytes.
func (d *Decoder) ReadString() (string, error) {
	b, err := d.src.Pull(2)
	if err != nil {
		return "", err
	}
	n := int(wire.Uint16(b))
	if n == 0 {
		return "", nil
	}
	b, err = d.src.Pull(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *Decoder) readInt32() (int32, error) {
	b, err := d.src.Pull(4)
	if err != nil {
		return 0, err
	}
	return getInt32(b), nil
}

func (d *Decoder) readArrayLen() (int, error) {
	n, err := d.readInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	return int(n), nil
}

func (d *Decoder) enter() error {
	d.depth++
	if d.depth > d.maxDepth {
		return fmt.Errorf("%w: limit %d", ErrDepthExceeded, d.maxDepth)
	}
	return nil
}

func (d *Decoder) leave() { d.depth-- }

// ReadTag reads the payload of a tag of kind k.
func (d *Decoder) ReadTag(k Kind) (Tag, error) {
	switch k {
	case KindByte:
		b, err := d.src.Pull(1)
		if err != nil {
			return nil, err
		}
		return Byte(int8(b[0])), nil
	case KindShort:
		b, err := d.src.Pull(2)
		if err != nil {
			return nil, err
		}
		return Short(getInt16(b)), nil
	case KindInt:
		v, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		return Int(v), nil
	case KindLong:
		b, err := d.src.Pull(8)
		if err != nil {
			return nil, err
		}
		return Long(getInt64(b)), nil
	case KindFloat:
		b, err := d.src.Pull(4)
		if err != nil {
			return nil, err
		}
		return Float(getFloat32(b)), nil
	case KindDouble:
		b, err := d.src.Pull(8)
		if err != nil {
			return nil, err
		}
		return Double(getFloat64(b)), nil
	case KindByteArray:
		v, err := readArray(d, 1, func(b []byte) byte { return b[0] })
		if err != nil {
			return nil, err
		}
		return ByteArray(v), nil
	case KindString:
		s, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case KindList:
		return d.ReadList()
	case KindCompound:
		return d.ReadCompound()
	case KindIntArray:
		v, err := readArray(d, 4, getInt32)
		if err != nil {
			return nil, err
		}
		return IntArray(v), nil
	case KindLongArray:
		v, err := readArray(d, 8, getInt64)
		if err != nil {
			return nil, err
		}
		return LongArray(v), nil
	default:
		return nil, invalidKind(k, "payload")
	}
}

// readArray reads an int32 count followed by count elements of size bytes,
// pulling at most chunkSize bytes at a time.
func readArray[T any](d *Decoder, size int, conv func([]byte) T) ([]T, error) {
	n, err := d.readArrayLen()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, min(n, maxPrealloc))
	perChunk := chunkSize / size
	for n > 0 {
		c := min(n, perChunk)
		b, err := d.src.Pull(c * size)
		if err != nil {
			return nil, err
		}
		for i := 0; i < c; i++ {
			out = append(out, conv(b[i*size:]))
		}
		n -= c
	}
	return out, nil
}

// ReadList reads a list payload: element kind, int32 count, elements.
func (d *Decoder) ReadList() (*List, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()
	b, err := d.src.Pull(1)
	if err != nil {
		return nil, err
	}
	elem := Kind(b[0])
	count, err := d.readInt32()
	if err != nil {
		return nil, err
	}
	if count > 0 && elem == KindEnd {
		return nil, fmt.Errorf("%w: count %d", ErrInconsistentList, count)
	}
	if count <= 0 {
		return &List{}, nil
	}
	if !elem.IsPayload() {
		return nil, invalidKind(elem, "list header")
	}
	items := make([]Tag, 0, min(int(count), maxPrealloc))
	for i := 0; i < int(count); i++ {
		t, err := d.ReadTag(elem)
		if err != nil {
			return nil, fmt.Errorf("list element %d: %w", i, err)
		}
		items = append(items, t)
	}
	return &List{elem: elem, items: items}, nil
}

// ReadCompound reads compound entries up to and including the End byte.
func (d *Decoder) ReadCompound() (*Compound, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()
	c := NewCompound()
	for {
		k, err := d.readKind("compound entry")
		if err != nil {
			return nil, err
		}
		if k == KindEnd {
			return c, nil
		}
		key, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		v, err := d.ReadTag(k)
		if err != nil {
			return nil, fmt.Errorf("compound entry %q: %w", key, err)
		}
		c.setIfAbsent(key, v)
	}
}
