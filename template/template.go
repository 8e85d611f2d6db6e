package template

import (
	"strings"
	"text/template"

	sprig "github.com/Masterminds/sprig/v3"

	"github.com/corpix/transcoder/buffer"
	"github.com/corpix/transcoder/errors"
)

type (
	FuncMap  = template.FuncMap
	Template = template.Template

	Option func(*Template)
)

var (
	Must       = template.Must
	ParseFiles = template.ParseFiles
	ParseGlob  = template.ParseGlob
)

// Funcs returns helpers available to every template on top of sprig.
func Funcs() FuncMap {
	return FuncMap{
		"hex":     buffer.Hex,
		"hexdump": buffer.DumpString,
	}
}

func WithFuncs(funcs FuncMap) Option {
	return func(t *Template) {
		t.Funcs(funcs)
	}
}

func Parse(name string, data string, options ...Option) (*Template, error) {
	t, err := New(name, options...).Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse template %q", name)
	}
	return t, nil
}

func Render(t *Template, data interface{}) (string, error) {
	var s strings.Builder
	err := t.Execute(&s, data)
	if err != nil {
		return "", errors.Wrapf(err, "failed to render template %q", t.Name())
	}
	return s.String(), nil
}

func New(name string, options ...Option) *Template {
	t := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Funcs(Funcs())
	for _, option := range options {
		option(t)
	}
	return t
}
