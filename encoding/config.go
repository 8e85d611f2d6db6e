package encoding

import (
	"strings"

	"github.com/corpix/transcoder/errors"
	"github.com/corpix/transcoder/reflect"
)

type (
	TransformType string

	TransformConfig struct {
		Type   string             `yaml:"type"`
		Shift  *int               `yaml:"shift,omitempty"`
		Key    *int               `yaml:"key,omitempty"`
		Level  string             `yaml:"level,omitempty"`
		Inner  *TransformConfig   `yaml:"inner,omitempty"`
		Stages []*TransformConfig `yaml:"stages,omitempty"`
	}

	transformConstructor func(*TransformConfig) (EncodeDecoder, error)
)

const (
	TransformTypeNull     TransformType = "null"
	TransformTypeShift    TransformType = "shift"
	TransformTypeXor      TransformType = "xor"
	TransformTypePairwise TransformType = "pairwise"
	TransformTypeChain    TransformType = "chain"
	TransformTypeZstd     TransformType = "zstd"
	TransformTypeBase64   TransformType = "base64"

	DefaultShift = 3
	DefaultKey   = 0xaa
)

var transforms map[TransformType]transformConstructor

func init() {
	transforms = map[TransformType]transformConstructor{
		TransformTypeNull: func(*TransformConfig) (EncodeDecoder, error) {
			return NewEncodeDecoderNull(), nil
		},
		TransformTypeShift: func(c *TransformConfig) (EncodeDecoder, error) {
			return NewEncodeDecoderShift(byte(*c.Shift)), nil
		},
		TransformTypeXor: func(c *TransformConfig) (EncodeDecoder, error) {
			return NewEncodeDecoderXor(byte(*c.Key)), nil
		},
		TransformTypePairwise: func(c *TransformConfig) (EncodeDecoder, error) {
			inner, err := New(c.Inner)
			if err != nil {
				return nil, errors.Wrap(err, "failed to build pairwise inner transform")
			}
			return NewEncodeDecoderPairwise(inner), nil
		},
		TransformTypeChain: func(c *TransformConfig) (EncodeDecoder, error) {
			stages := make([]EncodeDecoder, 0, len(c.Stages))
			for n, sc := range c.Stages {
				stage, err := New(sc)
				if err != nil {
					_ = Close(&EncodeDecoderChain{Stages: stages})
					return nil, errors.Wrapf(err, "failed to build chain stage %d", n)
				}
				stages = append(stages, stage)
			}
			return NewEncodeDecoderChain(stages...), nil
		},
		TransformTypeZstd: func(c *TransformConfig) (EncodeDecoder, error) {
			return NewEncodeDecoderZstd(c.Level)
		},
		TransformTypeBase64: func(*TransformConfig) (EncodeDecoder, error) {
			return NewEncodeDecoderBase64(), nil
		},
	}
}

// TransformTypes lists registered transform names in sorted order.
func TransformTypes() []string {
	return reflect.MapSortedKeys(reflect.ValueOf(transforms))
}

//

func (c *TransformConfig) Default() {
	c.Type = strings.ToLower(c.Type)
	if c.Type == "" {
		c.Type = string(TransformTypeNull)
	}

	switch TransformType(c.Type) {
	case TransformTypeShift:
		if c.Shift == nil {
			v := DefaultShift
			c.Shift = &v
		}
	case TransformTypeXor:
		if c.Key == nil {
			v := DefaultKey
			c.Key = &v
		}
	case TransformTypePairwise:
		if c.Inner != nil {
			c.Inner.Default()
		}
	case TransformTypeChain:
		for _, stage := range c.Stages {
			if stage != nil {
				stage.Default()
			}
		}
	}
}

func (c *TransformConfig) Validate() error {
	if _, ok := transforms[TransformType(c.Type)]; !ok {
		return errors.Errorf(
			"unsupported transform type %q, expected one of: %s",
			c.Type, strings.Join(TransformTypes(), ", "),
		)
	}

	switch TransformType(c.Type) {
	case TransformTypeShift:
		if c.Shift == nil || *c.Shift < 0 || *c.Shift > 255 {
			return errors.New("shift transform requires shift in range 0-255")
		}
	case TransformTypeXor:
		if c.Key == nil || *c.Key < 0 || *c.Key > 255 {
			return errors.New("xor transform requires key in range 0-255")
		}
	case TransformTypePairwise:
		if c.Inner == nil {
			return errors.New("pairwise transform requires inner transform")
		}
		err := c.Inner.Validate()
		if err != nil {
			return errors.Wrap(err, "invalid pairwise inner transform")
		}
	case TransformTypeChain:
		if len(c.Stages) == 0 {
			return errors.New("chain transform requires at least one stage")
		}
		for n, stage := range c.Stages {
			if stage == nil {
				return errors.Errorf("chain stage %d is empty", n)
			}
			err := stage.Validate()
			if err != nil {
				return errors.Wrapf(err, "invalid chain stage %d", n)
			}
		}
	}
	return nil
}

// New builds a transform from configuration, Default is applied to a copy
// of c so partially filled configs are accepted.
func New(c *TransformConfig) (EncodeDecoder, error) {
	if c == nil {
		return nil, errors.New("transform configuration is missing")
	}

	cc := c.clone()
	cc.Default()
	err := cc.Validate()
	if err != nil {
		return nil, err
	}

	return transforms[TransformType(cc.Type)](cc)
}

func (c *TransformConfig) clone() *TransformConfig {
	if c == nil {
		return nil
	}
	cc := *c
	if c.Shift != nil {
		v := *c.Shift
		cc.Shift = &v
	}
	if c.Key != nil {
		v := *c.Key
		cc.Key = &v
	}
	cc.Inner = c.Inner.clone()
	if c.Stages != nil {
		cc.Stages = make([]*TransformConfig, len(c.Stages))
		for n, stage := range c.Stages {
			cc.Stages[n] = stage.clone()
		}
	}
	return &cc
}
