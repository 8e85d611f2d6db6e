package errors

import (
	"github.com/cockroachdb/errors"
)

var (
	New      = errors.New
	Newf     = errors.Newf
	Errorf   = errors.Errorf
	Wrap     = errors.Wrap
	Wrapf    = errors.Wrapf
	Is       = errors.Is
	As       = errors.As
	Mark     = errors.Mark
	Unwrap   = errors.Unwrap
	Cause    = errors.Cause
	WithHint = errors.WithHint
)
