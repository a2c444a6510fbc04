package nbt

import (
	"errors"
	"fmt"
)

var (
	// ErrPortExhausted reports that the byte source or sink could not move the
	// requested number of bytes. Truncated input surfaces as this error.
	ErrPortExhausted = errors.New("nbt: port exhausted")
	// ErrInvalidKind reports a kind byte outside 0-12, or End where a payload
	// kind is required.
	ErrInvalidKind = errors.New("nbt: invalid kind")
	// ErrInconsistentList reports a list header with count > 0 and kind End.
	ErrInconsistentList = errors.New("nbt: non-empty list of kind End")
	// ErrDepthExceeded reports nesting deeper than the decoder's limit.
	ErrDepthExceeded = errors.New("nbt: maximum nesting depth exceeded")
	// ErrNegativeLength reports a negative array count on the wire.
	ErrNegativeLength = errors.New("nbt: negative array length")
	// ErrListKindMismatch reports a list element whose kind differs from the list's.
	ErrListKindMismatch = errors.New("nbt: list element kind mismatch")
	// ErrStringTooLong reports a string that does not fit a 16-bit length prefix.
	ErrStringTooLong = errors.New("nbt: string longer than 65535 bytes")
	// ErrTrailingData reports bytes left over after a root decoded from a slice.
	ErrTrailingData = errors.New("nbt: trailing data")
)

// KindError carries the offending kind byte and where it was read.
type KindError struct {
	Kind    Kind
	Context string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("nbt: invalid kind %s in %s", e.Kind, e.Context)
}

func (e *KindError) Unwrap() error {
	return ErrInvalidKind
}

func invalidKind(k Kind, context string) error {
	return &KindError{Kind: k, Context: context}
}
