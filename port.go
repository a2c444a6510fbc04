package nbt

import (
	"errors"
	"fmt"
	"io"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// Source supplies bytes to a Decoder. Pull must return exactly n bytes or an
// error; there is no partial-read contract. The returned slice is only valid
// until the next call to Pull.
type Source interface {
	Pull(n int) ([]byte, error)
}

// Sink accepts bytes from an Encoder. Push must consume all of b or return an
// error. Implementations must not retain b.
type Sink interface {
	Push(b []byte) error
}

func exhausted(op string, n int, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s %d bytes", ErrPortExhausted, op, n)
	}
	return fmt.Errorf("%w: %s %d bytes: %w", ErrPortExhausted, op, n, cause)
}

// SliceSource pulls from an in-memory byte slice without copying.
type SliceSource struct {
	data []byte
	off  int
}

// NewSliceSource returns a Source reading b from the start.
func NewSliceSource(b []byte) *SliceSource {
	return &SliceSource{data: b}
}

// Pull implements Source.
func (s *SliceSource) Pull(n int) ([]byte, error) {
	if n < 0 || len(s.data)-s.off < n {
		return nil, exhausted("pull", n, io.ErrUnexpectedEOF)
	}
	b := s.data[s.off : s.off+n]
	s.off += n
	return b, nil
}

// Remaining returns the number of unread bytes.
func (s *SliceSource) Remaining() int {
	return len(s.data) - s.off
}

// ReaderSource adapts an io.Reader. Each Pull performs an io.ReadFull into a
// reusable scratch buffer.
type ReaderSource struct {
	r       io.Reader
	scratch []byte
}

// NewReaderSource returns a Source reading from r. Wrap r in a bufio.Reader
// when it is an unbuffered file or socket.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r, scratch: make([]byte, 0, 64)}
}

// Pull implements Source.
func (s *ReaderSource) Pull(n int) ([]byte, error) {
	if n < 0 {
		return nil, exhausted("pull", n, nil)
	}
	if cap(s.scratch) < n {
		s.scratch = make([]byte, n)
	}
	b := s.scratch[:n]
	if _, err := io.ReadFull(s.r, b); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, exhausted("pull", n, err)
	}
	return b, nil
}

// WriterSink adapts an io.Writer.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink returns a Sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Push implements Sink.
func (s *WriterSink) Push(b []byte) error {
	n, err := s.w.Write(b)
	if err != nil {
		return exhausted("push", len(b), err)
	}
	if n != len(b) {
		return exhausted("push", len(b), io.ErrShortWrite)
	}
	return nil
}

// Buffer is an in-memory Sink and Source backed by a pooled byte buffer.
// Pull consumes bytes previously pushed. Call Release when done with it.
type Buffer struct {
	buf *bytebufferpool.ByteBuffer
	off int
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{buf: bytebufferpool.Get()}
}

// Push implements Sink.
func (b *Buffer) Push(p []byte) error {
	_, err := b.buf.Write(p)
	if err != nil {
		return exhausted("push", len(p), err)
	}
	return nil
}

// Pull implements Source.
func (b *Buffer) Pull(n int) ([]byte, error) {
	data := b.buf.Bytes()
	if n < 0 || len(data)-b.off < n {
		return nil, exhausted("pull", n, io.ErrUnexpectedEOF)
	}
	p := data[b.off : b.off+n]
	b.off += n
	return p, nil
}

// Bytes returns the unread portion of the buffer. The slice aliases the
// buffer and is invalidated by the next Push or Release.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()[b.off:]
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return len(b.buf.Bytes()) - b.off
}

// Release returns the backing storage to the pool. The Buffer must not be
// used afterwards.
func (b *Buffer) Release() {
	if b.buf == nil {
		return
	}
	bytebufferpool.Put(b.buf)
	b.buf = nil
	b.off = 0
}
