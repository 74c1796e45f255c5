package surf

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrNotImplemented is returned when triangles are sampled under a
	// declared but unimplemented strategy (currently PerSqrUnit). The
	// builder never degrades to another strategy silently.
	ErrNotImplemented = errors.New("sampling strategy not implemented")

	// ErrInvalidMinDistance is returned when MinimumDistance sampling is
	// requested with a non-positive distance.
	ErrInvalidMinDistance = errors.New("minimum distance must be positive")

	// ErrInvalidK is returned when a k-nearest query is made with a
	// non-positive k.
	ErrInvalidK = errors.New("k must be positive")
)

// ErrIndexConstruction indicates that the spatial index rejected a sample
// position while the surface was built. A surface with a partially indexed
// sample sequence is never returned.
//
// The underlying backend error can be accessed via errors.Unwrap.
type ErrIndexConstruction struct {
	Sample   int
	Position r3.Vec
	cause    error
}

func (e *ErrIndexConstruction) Error() string {
	return fmt.Sprintf("spatial index rejected sample %d at (%g, %g, %g): %v",
		e.Sample, e.Position.X, e.Position.Y, e.Position.Z, e.cause)
}

func (e *ErrIndexConstruction) Unwrap() error { return e.cause }

// ErrSink indicates that the export sink failed while a surface was dumped.
//
// The underlying writer error can be accessed via errors.Unwrap.
type ErrSink struct {
	cause error
}

func (e *ErrSink) Error() string {
	return fmt.Sprintf("surface dump failed: %v", e.cause)
}

func (e *ErrSink) Unwrap() error { return e.cause }
