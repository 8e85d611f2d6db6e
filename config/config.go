package config

import (
	"os"

	"github.com/corpix/revip"

	"github.com/corpix/transcoder/errors"
	"github.com/corpix/transcoder/log"
)

type (
	Config              = revip.Config
	Defaultable         = revip.Defaultable
	ErrFileNotFound     = revip.ErrFileNotFound
	ErrMarshal          = revip.ErrMarshal
	ErrPathNotFound     = revip.ErrPathNotFound
	ErrPostprocess      = revip.ErrPostprocess
	ErrUnexpectedKind   = revip.ErrUnexpectedKind
	ErrUnexpectedScheme = revip.ErrUnexpectedScheme
	ErrUnmarshal        = revip.ErrUnmarshal
	Expandable          = revip.Expandable
	Marshaler           = revip.Marshaler
	Container           = revip.Container
	Unmarshaler         = revip.Unmarshaler
	Validatable         = revip.Validatable
)

//

var (
	FromEnviron    = revip.FromEnviron
	FromFile       = revip.FromFile
	FromReader     = revip.FromReader
	FromURL        = revip.FromURL
	Load           = revip.Load
	New            = revip.New
	Postprocess    = revip.Postprocess
	ToFile         = revip.ToFile
	ToURL          = revip.ToURL
	ToWriter       = revip.ToWriter
	WithDefaults   = revip.WithDefaults
	WithExpansion  = revip.WithExpansion
	WithValidation = revip.WithValidation

	JsonMarshaler   = revip.JsonMarshaler
	JsonUnmarshaler = revip.JsonUnmarshaler
	YamlMarshaler   = revip.YamlMarshaler
	YamlUnmarshaler = revip.YamlUnmarshaler
	TomlMarshaler   = revip.TomlMarshaler
	TomlUnmarshaler = revip.TomlUnmarshaler
)

//

// BaseConfig carries settings every application built on these packages
// shares, embed it inline.
type BaseConfig struct {
	Log *log.Config `yaml:"log"`
}

func (c *BaseConfig) Default() {
	if c.Log == nil {
		c.Log = &log.Config{}
	}
	c.Log.Default()
}

func (c *BaseConfig) Validate() error {
	return c.Log.Validate()
}

func (c *BaseConfig) LogConfig() *log.Config { return c.Log }

//

// LoadFiles loads cfg from paths in order, later files override earlier ones.
// Missing files are skipped unless required is set, so a default
// config.yml may be absent.
func LoadFiles(cfg Config, paths []string, required bool, unmarshaler Unmarshaler) error {
	for _, path := range paths {
		_, err := os.Stat(path)
		if err != nil {
			if !required && os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(err, "failed to stat configuration file %q", path)
		}
		_, err = Load(cfg, FromFile(path, unmarshaler))
		if err != nil {
			return errors.Wrapf(err, "failed to load configuration file %q", path)
		}
	}
	return nil
}

// Finalize fills defaults, expands and validates cfg.
func Finalize(cfg Config) error {
	return Postprocess(
		cfg,
		WithDefaults(),
		WithExpansion(),
		WithValidation(),
	)
}
