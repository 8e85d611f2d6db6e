package encoding

// EncodeDecoderShift is a substitution cipher adding Shift to every byte
// modulo 256.
type EncodeDecoderShift struct {
	Shift byte
}

var _ EncodeDecoder = &EncodeDecoderShift{}

func (e *EncodeDecoderShift) Encode(buf []byte) ([]byte, error) {
	for n := range buf {
		buf[n] += e.Shift
	}
	return buf, nil
}

func (e *EncodeDecoderShift) Decode(buf []byte) ([]byte, error) {
	for n := range buf {
		buf[n] -= e.Shift
	}
	return buf, nil
}

func NewEncodeDecoderShift(shift byte) *EncodeDecoderShift {
	return &EncodeDecoderShift{Shift: shift}
}
