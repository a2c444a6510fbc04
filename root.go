package nbt

import (
	"fmt"

	"go.uber.org/zap"
)

// Named is a root envelope: the Compound kind byte, a name and one compound.
// This is the framing used for files.
type Named struct {
	Name string
	Data *Compound
}

// Network is a root envelope without a name, as used in protocol messages.
type Network struct {
	Data *Compound
}

// ToNetwork drops the name. The compound is shared, not copied.
func (n Named) ToNetwork() Network {
	return Network{Data: n.Data}
}

// ToNamed attaches name. The compound is shared, not copied.
func (n Network) ToNamed(name string) Named {
	return Named{Name: name, Data: n.Data}
}

// EncodeNamed writes a named root.
func (e *Encoder) EncodeNamed(n Named) error {
	if err := e.WriteKind(KindCompound); err != nil {
		return err
	}
	if err := e.WriteString(n.Name); err != nil {
		return err
	}
	return e.rootBody(n.Data)
}

// EncodeNetwork writes an anonymous root.
func (e *Encoder) EncodeNetwork(n Network) error {
	if err := e.WriteKind(KindCompound); err != nil {
		return err
	}
	return e.rootBody(n.Data)
}

func (e *Encoder) rootBody(c *Compound) error {
	if c == nil {
		c = NewCompound()
	}
	return c.encodePayload(e)
}

// DecodeNamed reads a named root. The first byte must be the Compound kind.
func (d *Decoder) DecodeNamed() (Named, error) {
	if err := d.rootKind(); err != nil {
		return Named{}, err
	}
	name, err := d.ReadString()
	if err != nil {
		return Named{}, err
	}
	c, err := d.ReadCompound()
	if err != nil {
		return Named{}, err
	}
	return Named{Name: name, Data: c}, nil
}

// DecodeNetwork reads an anonymous root.
func (d *Decoder) DecodeNetwork() (Network, error) {
	if err := d.rootKind(); err != nil {
		return Network{}, err
	}
	c, err := d.ReadCompound()
	if err != nil {
		return Network{}, err
	}
	return Network{Data: c}, nil
}

func (d *Decoder) rootKind() error {
	b, err := d.src.Pull(1)
	if err != nil {
		return err
	}
	if k := Kind(b[0]); k != KindCompound {
		return invalidKind(k, "root")
	}
	return nil
}

// ReadNamed decodes a named root from src.
func ReadNamed(src Source, opts Options) (Named, error) {
	n, err := NewDecoderWithOptions(src, opts).DecodeNamed()
	if err != nil {
		Logger().Debug("decode named root failed", zap.Error(err))
		return Named{}, err
	}
	return n, nil
}

// WriteNamed encodes a named root to dst.
func WriteNamed(dst Sink, n Named) error {
	if err := NewEncoder(dst).EncodeNamed(n); err != nil {
		Logger().Debug("encode named root failed", zap.String("name", n.Name), zap.Error(err))
		return err
	}
	return nil
}

// ReadNetwork decodes an anonymous root from src.
func ReadNetwork(src Source, opts Options) (Network, error) {
	n, err := NewDecoderWithOptions(src, opts).DecodeNetwork()
	if err != nil {
		Logger().Debug("decode network root failed", zap.Error(err))
		return Network{}, err
	}
	return n, nil
}

// WriteNetwork encodes an anonymous root to dst.
func WriteNetwork(dst Sink, n Network) error {
	if err := NewEncoder(dst).EncodeNetwork(n); err != nil {
		Logger().Debug("encode network root failed", zap.Error(err))
		return err
	}
	return nil
}

// Marshal returns the bytes of a named root.
func Marshal(n Named) ([]byte, error) {
	buf := NewBuffer()
	defer buf.Release()
	if err := WriteNamed(buf, n); err != nil {
		return nil, err
	}
	return append([]byte{}, buf.Bytes()...), nil
}

// MarshalNetwork returns the bytes of an anonymous root.
func MarshalNetwork(n Network) ([]byte, error) {
	buf := NewBuffer()
	defer buf.Release()
	if err := WriteNetwork(buf, n); err != nil {
		return nil, err
	}
	return append([]byte{}, buf.Bytes()...), nil
}

// Unmarshal decodes a named root occupying all of b.
func Unmarshal(b []byte) (Named, error) {
	src := NewSliceSource(b)
	n, err := ReadNamed(src, Options{})
	if err != nil {
		return Named{}, err
	}
	if src.Remaining() != 0 {
		return Named{}, fmt.Errorf("%w: %d bytes after root", ErrTrailingData, src.Remaining())
	}
	return n, nil
}

// UnmarshalNetwork decodes an anonymous root occupying all of b.
func UnmarshalNetwork(b []byte) (Network, error) {
	src := NewSliceSource(b)
	n, err := ReadNetwork(src, Options{})
	if err != nil {
		return Network{}, err
	}
	if src.Remaining() != 0 {
		return Network{}, fmt.Errorf("%w: %d bytes after root", ErrTrailingData, src.Remaining())
	}
	return n, nil
}
