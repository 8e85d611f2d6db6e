// Package report renders the outcome of a transcoding run.
package report

import (
	"encoding/json"
	"io"
	"strings"

	msgpack "github.com/vmihailenco/msgpack/v5"

	"github.com/corpix/transcoder/buffer"
	"github.com/corpix/transcoder/errors"
	"github.com/corpix/transcoder/template"
)

type (
	Format string

	Config struct {
		Format   string          `yaml:"format"`
		Template *TemplateConfig `yaml:"template"`
	}
	TemplateConfig struct {
		Encoded string `yaml:"encoded"`
		Decoded string `yaml:"decoded"`
	}

	// Result holds buffer snapshots taken after each direction.
	Result struct {
		Input   []byte `msgpack:"input"`
		Encoded []byte `msgpack:"encoded"`
		Decoded []byte `msgpack:"decoded"`
	}
	resultJson struct {
		Input   string `json:"input"`
		Encoded string `json:"encoded"`
		Decoded string `json:"decoded"`
	}

	Reporter struct {
		Config  *Config
		encoded *template.Template
		decoded *template.Template
	}
)

const (
	FormatText    Format = "text"
	FormatJson    Format = "json"
	FormatMsgpack Format = "msgpack"

	DefaultTemplateEncoded = "Encrypted data: {{ hex .Data }}"
	DefaultTemplateDecoded = "Decrypted data: {{ hex .Data }}"
)

func (c *Config) Default() {
	if c.Format == "" {
		c.Format = string(FormatText)
	}
	if c.Template == nil {
		c.Template = &TemplateConfig{}
	}
	c.Template.Default()
}

func (c *Config) Validate() error {
	switch Format(strings.ToLower(c.Format)) {
	case FormatText, FormatJson, FormatMsgpack:
	default:
		return errors.Errorf("unsupported report format %q", c.Format)
	}
	return nil
}

func (c *TemplateConfig) Default() {
	if c.Encoded == "" {
		c.Encoded = DefaultTemplateEncoded
	}
	if c.Decoded == "" {
		c.Decoded = DefaultTemplateDecoded
	}
}

//

func (r *Reporter) Write(w io.Writer, res *Result) error {
	var err error
	switch Format(strings.ToLower(r.Config.Format)) {
	case FormatJson:
		err = json.NewEncoder(w).Encode(resultJson{
			Input:   buffer.Hex(res.Input),
			Encoded: buffer.Hex(res.Encoded),
			Decoded: buffer.Hex(res.Decoded),
		})
	case FormatMsgpack:
		err = msgpack.NewEncoder(w).Encode(res)
	default:
		err = r.writeText(w, res)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to write %s report", r.Config.Format)
	}
	return nil
}

func (r *Reporter) writeText(w io.Writer, res *Result) error {
	lines := []struct {
		t    *template.Template
		data []byte
	}{
		{r.encoded, res.Encoded},
		{r.decoded, res.Decoded},
	}
	for _, line := range lines {
		s, err := template.Render(line.t, map[string]interface{}{
			"Data":  line.data,
			"Input": res.Input,
		})
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s+"\n")
		if err != nil {
			return err
		}
	}
	return nil
}

func New(c *Config) (*Reporter, error) {
	encoded, err := template.Parse("encoded", c.Template.Encoded)
	if err != nil {
		return nil, err
	}
	decoded, err := template.Parse("decoded", c.Template.Decoded)
	if err != nil {
		return nil, err
	}
	return &Reporter{
		Config:  c,
		encoded: encoded,
		decoded: decoded,
	}, nil
}
