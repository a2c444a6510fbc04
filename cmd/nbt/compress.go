package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Compression is applied outside the codec: the file is sniffed and wrapped
// before any byte reaches the port.

const (
	compressionNone = "none"
	compressionGzip = "gzip"
	compressionZlib = "zlib"
)

type inputFile struct {
	io.Reader
	Compression string
	closers     []io.Closer
}

func (f *inputFile) Close() error {
	var first error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func openInput(path string) (*inputFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	in := &inputFile{closers: []io.Closer{fh}}
	br := bufio.NewReader(fh)
	comp, err := sniffCompression(br)
	if err != nil {
		in.Close()
		return nil, err
	}
	in.Compression = comp
	switch comp {
	case compressionGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("gzip: %w", err)
		}
		in.closers = append(in.closers, zr)
		in.Reader = bufio.NewReader(zr)
	case compressionZlib:
		zr, err := zlib.NewReader(br)
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("zlib: %w", err)
		}
		in.closers = append(in.closers, zr)
		in.Reader = bufio.NewReader(zr)
	default:
		in.Reader = br
	}
	return in, nil
}

func sniffCompression(br *bufio.Reader) (string, error) {
	magic, err := br.Peek(2)
	if err != nil {
		if err == io.EOF || err == bufio.ErrBufferFull {
			return compressionNone, nil
		}
		return "", err
	}
	switch {
	case magic[0] == 0x1f && magic[1] == 0x8b:
		return compressionGzip, nil
	case magic[0]&0x0f == 8 && (uint16(magic[0])<<8|uint16(magic[1]))%31 == 0:
		return compressionZlib, nil
	default:
		return compressionNone, nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func wrapOutput(w io.Writer, compression string) (io.Writer, io.Closer, error) {
	switch compression {
	case compressionGzip:
		zw := gzip.NewWriter(w)
		return zw, zw, nil
	case compressionZlib:
		zw := zlib.NewWriter(w)
		return zw, zw, nil
	case compressionNone, "":
		return w, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown compression %q", compression)
	}
}
