package transcoder

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/transcoder/di"
	"github.com/corpix/transcoder/encoding"
	"github.com/corpix/transcoder/log"
)

func newConfig(t *testing.T, input []byte) *Config {
	c := &Config{}
	if input != nil {
		c.Input = filepath.Join(t.TempDir(), "data.txt")
		require.NoError(t, os.WriteFile(c.Input, input, 0o644))
	} else {
		c.Input = filepath.Join(t.TempDir(), "missing.txt")
	}
	c.Default()
	require.NoError(t, c.Validate())
	return c
}

func newTranscoder(t *testing.T, c *Config, options ...Option) *Transcoder {
	tc, err := New(c, options...)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, tc.Close()) })
	return tc
}

func TestConfigDefault(t *testing.T) {
	c := &Config{}
	c.Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, DefaultInput, c.Input)
	assert.Equal(t, "info", c.LogConfig().Level)
	assert.Same(t, c.Log, c.LogConfig())
	assert.Equal(t, "pairwise", c.Chain.Type)
	assert.Equal(t, "shift", c.Chain.Inner.Type)
	assert.Equal(t, 3, *c.Chain.Inner.Shift)
	assert.Equal(t, "xor", c.Spare.Type)
	assert.Equal(t, 0xaa, *c.Spare.Key)
	assert.Equal(t, "text", c.Report.Format)
}

func TestConfigValidate(t *testing.T) {
	c := &Config{Chain: &encoding.TransformConfig{Type: "rot13"}}
	c.Default()
	assert.Error(t, c.Validate())
}

func TestReferenceChain(t *testing.T) {
	c := newConfig(t, []byte("aab"))
	tc := newTranscoder(t, c)

	assert.IsType(t, &encoding.EncodeDecoderPairwise{}, tc.Chain)
	assert.IsType(t, &encoding.EncodeDecoderXor{}, tc.Spare)

	out := bytes.NewBuffer(nil)
	res, err := tc.Run(out)
	require.NoError(t, err)

	assert.Equal(t, []byte("aab"), res.Input)
	assert.Equal(t, []byte{0x64, 0x65, 0x65}, res.Encoded)
	assert.Equal(t, []byte("aab"), res.Decoded)
	assert.Equal(t, "Encrypted data: 64 65 65\nDecrypted data: 61 61 62\n", out.String())
}

func TestAmbiguousPairIsLossy(t *testing.T) {
	c := newConfig(t, []byte{5, 6})
	res, err := newTranscoder(t, c).Run(bytes.NewBuffer(nil))
	require.NoError(t, err)

	assert.Equal(t, []byte{8, 9}, res.Encoded)
	assert.Equal(t, []byte{5, 5}, res.Decoded)
}

func TestRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("The quick brown fox"),
		{0x00, 0x00, 0x7f, 0x20, 0x20, 0x41},
		{},
	}
	for _, input := range inputs {
		c := newConfig(t, input)
		res, err := newTranscoder(t, c).Run(bytes.NewBuffer(nil))
		require.NoError(t, err)
		assert.Equal(t, input, res.Decoded)
	}
}

func TestMissingInput(t *testing.T) {
	logs := bytes.NewBuffer(nil)
	require.NoError(t, log.Init("info", log.WithOutput(logs), log.WithConsole(false)))
	defer func() { require.NoError(t, log.Init("info")) }()

	c := newConfig(t, nil)
	out := bytes.NewBuffer(nil)
	res, err := newTranscoder(t, c).Run(out)
	require.NoError(t, err)

	assert.Empty(t, res.Input)
	assert.Empty(t, res.Encoded)
	assert.Empty(t, res.Decoded)
	assert.Equal(t, "Encrypted data: \nDecrypted data: \n", out.String())
	assert.Contains(t, logs.String(), "error opening file")
	assert.Contains(t, logs.String(), `"level":"warn"`)
}

func TestMetrics(t *testing.T) {
	c := newConfig(t, []byte("abcd"))
	c.Metrics.Textfile = filepath.Join(t.TempDir(), "transcoder.prom")
	tc := newTranscoder(t, c)

	_, err := tc.Run(bytes.NewBuffer(nil))
	require.NoError(t, err)

	assert.Equal(t, float64(4), testutil.ToFloat64(tc.Metrics.InputBytes))
	assert.Equal(t, float64(4), testutil.ToFloat64(tc.Metrics.Bytes.WithLabelValues(DirectionEncode)))
	assert.Equal(t, float64(4), testutil.ToFloat64(tc.Metrics.Bytes.WithLabelValues(DirectionDecode)))
	assert.Equal(t, float64(1), testutil.ToFloat64(tc.Metrics.Runs))

	buf, err := os.ReadFile(c.Metrics.Textfile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(buf), "transcoder_runs_total 1"))
}

func TestCustomChain(t *testing.T) {
	c := newConfig(t, []byte("zz"))
	c.Chain = &encoding.TransformConfig{
		Type: "chain",
		Stages: []*encoding.TransformConfig{
			{Type: "xor"},
			{Type: "zstd"},
		},
	}
	c.Chain.Default()
	c.Report.Format = "json"
	require.NoError(t, c.Validate())

	out := bytes.NewBuffer(nil)
	res, err := newTranscoder(t, c).Run(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("zz"), res.Decoded)
	assert.Contains(t, out.String(), `"decoded":"7a 7a"`)
}

func TestWithChainDecodeError(t *testing.T) {
	c := newConfig(t, []byte("x"))
	_, err := newTranscoder(t, c, WithChain(&failing{})).Run(bytes.NewBuffer(nil))
	assert.Error(t, err)
}

func TestProvide(t *testing.T) {
	cont := di.New()
	c := newConfig(t, []byte{1})
	require.NoError(t, Provide(cont, c))

	out := bytes.NewBuffer(nil)
	err := di.Invoke(cont, func(tc *Transcoder) error {
		_, err := tc.RunAndClose(out)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "Encrypted data: 4\nDecrypted data: 1\n", out.String())
}

func TestRunAndCloseReportsCloseError(t *testing.T) {
	c := newConfig(t, []byte("x"))
	tc, err := New(c)
	require.NoError(t, err)
	spare := &closeFailing{}
	tc.Spare = spare

	out := bytes.NewBuffer(nil)
	_, err = tc.RunAndClose(out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to release transforms")
	assert.Equal(t, "Encrypted data: 7b\nDecrypted data: 78\n", out.String())
	assert.True(t, spare.closed)
}

func TestCloseKeepsExternalChain(t *testing.T) {
	chain := &closeFailing{}
	c := newConfig(t, []byte("x"))
	tc := newTranscoder(t, c, WithChain(chain))
	require.NoError(t, tc.Close())
	assert.False(t, chain.closed)
}

func TestNewSpareErrorKeepsExternalChain(t *testing.T) {
	chain := &closeFailing{}
	c := newConfig(t, []byte("x"))
	c.Spare = &encoding.TransformConfig{Type: "zstd", Level: "max"}

	_, err := New(c, WithChain(chain))
	require.Error(t, err)
	assert.False(t, chain.closed)
}

//

type failing struct{ encoding.EncodeDecoderNull }

func (f *failing) Decode([]byte) ([]byte, error) {
	return nil, os.ErrInvalid
}

type closeFailing struct {
	encoding.EncodeDecoderNull
	closed bool
}

func (c *closeFailing) Close() error {
	c.closed = true
	return os.ErrClosed
}
