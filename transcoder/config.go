package transcoder

import (
	"github.com/corpix/transcoder/config"
	"github.com/corpix/transcoder/encoding"
	"github.com/corpix/transcoder/errors"
	"github.com/corpix/transcoder/metrics"
	"github.com/corpix/transcoder/report"
)

const DefaultInput = "data.txt"

type Config struct {
	config.BaseConfig `yaml:",inline"`

	Input   string                    `yaml:"input"`
	Chain   *encoding.TransformConfig `yaml:"chain"`
	Spare   *encoding.TransformConfig `yaml:"spare,omitempty"`
	Report  *report.Config            `yaml:"report"`
	Metrics *metrics.Config           `yaml:"metrics"`
}

// DefaultChain is pairwise compression wrapping a shift by 3.
func DefaultChain() *encoding.TransformConfig {
	shift := encoding.DefaultShift
	return &encoding.TransformConfig{
		Type: string(encoding.TransformTypePairwise),
		Inner: &encoding.TransformConfig{
			Type:  string(encoding.TransformTypeShift),
			Shift: &shift,
		},
	}
}

// DefaultSpare is a xor transform built alongside the chain but never
// applied to the buffer.
func DefaultSpare() *encoding.TransformConfig {
	key := encoding.DefaultKey
	return &encoding.TransformConfig{
		Type: string(encoding.TransformTypeXor),
		Key:  &key,
	}
}

func (c *Config) Default() {
	c.BaseConfig.Default()

	if c.Input == "" {
		c.Input = DefaultInput
	}

	if c.Chain == nil {
		c.Chain = DefaultChain()
	}
	c.Chain.Default()

	if c.Spare == nil {
		c.Spare = DefaultSpare()
	}
	c.Spare.Default()

	if c.Report == nil {
		c.Report = &report.Config{}
	}
	c.Report.Default()

	if c.Metrics == nil {
		c.Metrics = &metrics.Config{}
	}
	c.Metrics.Default()
}

func (c *Config) Validate() error {
	err := c.BaseConfig.Validate()
	if err != nil {
		return err
	}
	err = c.Chain.Validate()
	if err != nil {
		return errors.Wrap(err, "invalid chain")
	}
	err = c.Spare.Validate()
	if err != nil {
		return errors.Wrap(err, "invalid spare transform")
	}
	return c.Report.Validate()
}
