package generator

import (
	"errors"
	"fmt"

	"github.com/earfet/fet"
)

var (
	// ErrPoolExhausted means more distinct degrees were requested than the
	// pitch range can provide. It is a configuration error and never retried.
	ErrPoolExhausted = errors.New("pitch pool exhausted")
	// ErrAttemptsExhausted means every attempt of an exercise collided with an
	// existing file.
	ErrAttemptsExhausted = errors.New("too many colliding attempts")
)

// PoolError describes the request that exhausted the pitch pool.
type PoolError struct {
	Root      fet.Root
	KeyType   fet.KeyType
	Range     fet.PitchRange
	Requested int // number of degrees requested
	Selected  int // number of degrees selected before the pool ran empty
}

func (e *PoolError) Error() string {
	return fmt.Sprintf("%v: %d degrees requested in %v %v over range %v, only %d available",
		ErrPoolExhausted, e.Requested, e.Root.Name, e.KeyType, e.Range, e.Selected)
}

func (e *PoolError) Unwrap() error { return ErrPoolExhausted }
