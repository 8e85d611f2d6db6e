// Package transcoder loads a file, runs it forward through a transform
// chain and back, and reports both buffers.
package transcoder

import (
	"io"

	"github.com/google/uuid"

	"github.com/corpix/transcoder/buffer"
	"github.com/corpix/transcoder/di"
	"github.com/corpix/transcoder/encoding"
	"github.com/corpix/transcoder/errors"
	"github.com/corpix/transcoder/log"
	"github.com/corpix/transcoder/metrics"
	"github.com/corpix/transcoder/report"
)

type (
	Transcoder struct {
		Config   *Config
		Chain    encoding.EncodeDecoder
		Spare    encoding.EncodeDecoder
		Reporter *report.Reporter
		Registry *metrics.Registry
		Metrics  *Metrics

		ownsChain bool
	}

	Option func(*Transcoder)
)

const (
	DirectionEncode = "encode"
	DirectionDecode = "decode"
)

// WithRegistry registers run metrics on r instead of a private registry.
func WithRegistry(r *metrics.Registry) Option {
	return func(t *Transcoder) { t.Registry = r }
}

func WithChain(e encoding.EncodeDecoder) Option {
	return func(t *Transcoder) { t.Chain = e }
}

// Run loads the input and returns snapshots of the buffer before, after
// encoding and after decoding, the report is written to w.
// A missing input is not an error, it is logged and treated as empty.
func (t *Transcoder) Run(w io.Writer) (*report.Result, error) {
	l := log.With().
		Str("run", uuid.New().String()).
		Str("input", t.Config.Input).
		Logger()

	buf, err := buffer.Load(t.Config.Input)
	if err != nil {
		l.Warn().Err(err).Msg("error opening file, continuing with empty buffer")
	}
	t.Metrics.InputBytes.Set(float64(len(buf)))

	res := &report.Result{Input: snapshot(buf)}

	buf, err = t.Chain.Encode(buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode buffer")
	}
	t.Metrics.Bytes.WithLabelValues(DirectionEncode).Add(float64(len(buf)))
	res.Encoded = snapshot(buf)
	l.Debug().Int("size", len(buf)).Msg("encoded")

	buf, err = t.Chain.Decode(buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode buffer")
	}
	t.Metrics.Bytes.WithLabelValues(DirectionDecode).Add(float64(len(buf)))
	res.Decoded = buf
	l.Debug().Int("size", len(buf)).Msg("decoded")

	t.Metrics.Runs.Inc()

	err = t.Reporter.Write(w, res)
	if err != nil {
		return nil, err
	}

	if t.Config.Metrics.Textfile != "" {
		err = metrics.WriteTextfile(t.Config.Metrics.Textfile, t.Registry)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// RunAndClose is Run followed by Close, the first error wins.
func (t *Transcoder) RunAndClose(w io.Writer) (res *report.Result, err error) {
	defer func() {
		if cerr := t.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return t.Run(w)
}

// Close releases the spare transform and the chain, unless the chain was
// passed in with WithChain.
func (t *Transcoder) Close() error {
	var err error
	if t.ownsChain {
		err = encoding.Close(t.Chain)
	}
	if serr := encoding.Close(t.Spare); serr != nil && err == nil {
		err = serr
	}
	if err != nil {
		return errors.Wrap(err, "failed to release transforms")
	}
	return nil
}

func snapshot(buf []byte) []byte {
	res := make([]byte, len(buf))
	copy(res, buf)
	return res
}

//

func New(c *Config, options ...Option) (*Transcoder, error) {
	t := &Transcoder{Config: c}
	for _, option := range options {
		option(t)
	}
	if t.Registry == nil {
		t.Registry = metrics.NewRegistry()
	}

	var err error
	if t.Chain == nil {
		t.Chain, err = encoding.New(c.Chain)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build chain")
		}
		t.ownsChain = true
	}
	t.Spare, err = encoding.New(c.Spare)
	if err != nil {
		if t.ownsChain {
			_ = encoding.Close(t.Chain)
		}
		return nil, errors.Wrap(err, "failed to build spare transform")
	}
	t.Reporter, err = report.New(c.Report)
	if err != nil {
		_ = t.Close()
		return nil, err
	}
	t.Metrics = NewMetrics(t.Registry, c.Metrics.Namespace)

	return t, nil
}

// Provide registers the configuration and a transcoder constructor in cont.
func Provide(cont *di.Container, c *Config, options ...Option) error {
	err := di.Provide(cont, func() *Config { return c })
	if err != nil {
		return err
	}
	return di.Provide(cont, func(c *Config) (*Transcoder, error) {
		return New(c, options...)
	})
}
