// Package encoding provides reversible byte transforms which could be
// composed into chains. Byte level transforms (shift, xor, pairwise) mutate
// the buffer they receive and hand it back to the caller.
package encoding

import (
	"io"
)

// EncodeDecoder is a reversible transform, Decode(Encode(x)) should yield x
// for every input the transform supports.
type EncodeDecoder interface {
	Encode([]byte) ([]byte, error)
	Decode([]byte) ([]byte, error)
}

// Wrapper is a transform which owns exactly one inner transform.
type Wrapper interface {
	EncodeDecoder
	Unwrap() EncodeDecoder
}

// Close releases e and everything it owns.
// Transforms without resources are no-op.
func Close(e EncodeDecoder) error {
	if c, ok := e.(io.Closer); ok {
		return c.Close()
	}
	if w, ok := e.(Wrapper); ok {
		return Close(w.Unwrap())
	}
	return nil
}
