package encoding

type EncodeDecoderNull struct{}

var _ EncodeDecoder = &EncodeDecoderNull{}

func (e *EncodeDecoderNull) Encode(buf []byte) ([]byte, error) { return buf, nil }
func (e *EncodeDecoderNull) Decode(buf []byte) ([]byte, error) { return buf, nil }

func NewEncodeDecoderNull() *EncodeDecoderNull { return &EncodeDecoderNull{} }
