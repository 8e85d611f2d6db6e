package encoding

// EncodeDecoderPairwise is a decorator which collapses immediately repeated
// bytes before handing the buffer to Inner and restores them after Inner has
// decoded it.
//
// Encoding replaces every byte equal to its original predecessor with the
// predecessor plus one (wrapping at 255), decoding replaces every byte equal
// to its predecessor plus one (without wrapping) with the predecessor.
// This is lossy and ambiguous:
//   - a genuine pair v, v+1 is decoded as v, v
//   - runs of three or more equal bytes do not survive, 7 7 7 decodes as 7 7 8
//   - a repeat followed by its value plus two collides too, 5 5 7 decodes as 5 5 6
//   - a repeated 255 is encoded as 255 0 and stays that way on decode
//
// It is not a general purpose compressor, inputs free of those patterns
// round-trip.
type EncodeDecoderPairwise struct {
	Inner EncodeDecoder
}

var (
	_ EncodeDecoder = &EncodeDecoderPairwise{}
	_ Wrapper       = &EncodeDecoderPairwise{}
)

// Compress applies the pairwise collapse in place.
// Scanning right to left keeps every predecessor unmodified when it is read.
func (e *EncodeDecoderPairwise) Compress(buf []byte) []byte {
	for n := len(buf) - 1; n > 0; n-- {
		if buf[n] == buf[n-1] {
			buf[n]++
		}
	}
	return buf
}

// Decompress reverses Compress in place, see type documentation for the
// inputs it can not tell apart.
func (e *EncodeDecoderPairwise) Decompress(buf []byte) []byte {
	for n := len(buf) - 1; n > 0; n-- {
		if int(buf[n]) == int(buf[n-1])+1 {
			buf[n] = buf[n-1]
		}
	}
	return buf
}

func (e *EncodeDecoderPairwise) Encode(buf []byte) ([]byte, error) {
	buf = e.Compress(buf)
	if e.Inner == nil {
		return buf, nil
	}
	return e.Inner.Encode(buf)
}

func (e *EncodeDecoderPairwise) Decode(buf []byte) ([]byte, error) {
	if e.Inner != nil {
		var err error
		buf, err = e.Inner.Decode(buf)
		if err != nil {
			return nil, err
		}
	}
	return e.Decompress(buf), nil
}

func (e *EncodeDecoderPairwise) Unwrap() EncodeDecoder { return e.Inner }

func NewEncodeDecoderPairwise(inner EncodeDecoder) *EncodeDecoderPairwise {
	return &EncodeDecoderPairwise{Inner: inner}
}
