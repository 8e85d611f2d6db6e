package encoding

import (
	"github.com/corpix/transcoder/errors"
)

// EncodeDecoderChain applies Stages in order on Encode and in reverse order
// on Decode.
type EncodeDecoderChain struct {
	Stages []EncodeDecoder
}

var _ EncodeDecoder = &EncodeDecoderChain{}

func (e *EncodeDecoderChain) Encode(buf []byte) ([]byte, error) {
	var err error
	for n, stage := range e.Stages {
		buf, err = stage.Encode(buf)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode at stage %d", n)
		}
	}
	return buf, nil
}

func (e *EncodeDecoderChain) Decode(buf []byte) ([]byte, error) {
	var err error
	for n := len(e.Stages) - 1; n >= 0; n-- {
		buf, err = e.Stages[n].Decode(buf)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode at stage %d", n)
		}
	}
	return buf, nil
}

func (e *EncodeDecoderChain) Close() error {
	var err error
	for _, stage := range e.Stages {
		if cerr := Close(stage); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// NewEncodeDecoderChain returns the only stage as is when there is nothing
// to chain.
func NewEncodeDecoderChain(stages ...EncodeDecoder) EncodeDecoder {
	if len(stages) == 1 {
		return stages[0]
	}
	return &EncodeDecoderChain{Stages: stages}
}
