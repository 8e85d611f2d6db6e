package encoding

import (
	"github.com/klauspost/compress/zstd"

	"github.com/corpix/transcoder/errors"
)

type EncodeDecoderZstd struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

var _ EncodeDecoder = &EncodeDecoderZstd{}

//

func (e *EncodeDecoderZstd) Encode(buf []byte) ([]byte, error) {
	return e.encoder.EncodeAll(buf, nil), nil
}

func (e *EncodeDecoderZstd) Decode(buf []byte) ([]byte, error) {
	res, err := e.decoder.DecodeAll(buf, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress zstd frame")
	}
	return res, nil
}

func (e *EncodeDecoderZstd) Close() error {
	e.decoder.Close()
	return e.encoder.Close()
}

func NewEncodeDecoderZstd(level string) (*EncodeDecoderZstd, error) {
	options := []zstd.EOption{}
	if level != "" {
		ok, l := zstd.EncoderLevelFromString(level)
		if !ok {
			return nil, errors.Errorf("unsupported zstd level %q", level)
		}
		options = append(options, zstd.WithEncoderLevel(l))
	}

	enc, err := zstd.NewWriter(nil, options...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create zstd encoder")
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, errors.Wrap(err, "failed to create zstd decoder")
	}
	return &EncodeDecoderZstd{encoder: enc, decoder: dec}, nil
}
