package di

import (
	"go.uber.org/dig"

	"github.com/corpix/transcoder/errors"
)

type (
	Container = dig.Container
	Function  = interface{}
)

func New() *Container { return dig.New() }

func Provide(cont *Container, f Function) error {
	return errors.Wrap(cont.Provide(f), "failed to provide dependency")
}

func MustProvide(cont *Container, f Function) {
	err := Provide(cont, f)
	if err != nil {
		panic(err)
	}
}

func Invoke(cont *Container, f Function) error {
	return errors.Wrap(cont.Invoke(f), "failed to invoke function")
}

func MustInvoke(cont *Container, f Function) {
	err := Invoke(cont, f)
	if err != nil {
		panic(err)
	}
}
