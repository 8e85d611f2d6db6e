package encoding

// EncodeDecoderXor xors every byte with Key, it is self-inverse.
type EncodeDecoderXor struct {
	Key byte
}

var _ EncodeDecoder = &EncodeDecoderXor{}

func (e *EncodeDecoderXor) apply(buf []byte) []byte {
	for n := range buf {
		buf[n] ^= e.Key
	}
	return buf
}

func (e *EncodeDecoderXor) Encode(buf []byte) ([]byte, error) { return e.apply(buf), nil }
func (e *EncodeDecoderXor) Decode(buf []byte) ([]byte, error) { return e.apply(buf), nil }

func NewEncodeDecoderXor(key byte) *EncodeDecoderXor {
	return &EncodeDecoderXor{Key: key}
}
