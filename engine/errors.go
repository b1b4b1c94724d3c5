package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument   = errors.New("engine: invalid argument")
	ErrOperationRequired = errors.New("engine: operation name required")
	ErrNilExpression     = errors.New("engine: nil expression")
)

// InvalidArgumentError reports a value that cannot appear in a request graph.
// It matches ErrInvalidArgument under errors.Is.
type InvalidArgumentError struct {
	Value any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("engine: invalid argument: unsupported value %v of type %T", e.Value, e.Value)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
