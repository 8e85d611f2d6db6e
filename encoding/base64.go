package encoding

import (
	"encoding/base64"

	"github.com/corpix/transcoder/errors"
)

type EncodeDecoderBase64 struct {
	*base64.Encoding
}

var _ EncodeDecoder = &EncodeDecoderBase64{}

func (e *EncodeDecoderBase64) Encode(buf []byte) ([]byte, error) {
	res := make([]byte, e.EncodedLen(len(buf)))
	e.Encoding.Encode(res, buf)
	return res, nil
}

func (e *EncodeDecoderBase64) Decode(buf []byte) ([]byte, error) {
	res := make([]byte, e.DecodedLen(len(buf)))
	n, err := e.Encoding.Decode(res, buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode base64")
	}
	return res[:n], nil
}

func NewEncodeDecoderBase64() *EncodeDecoderBase64 {
	return &EncodeDecoderBase64{Encoding: base64.StdEncoding}
}
