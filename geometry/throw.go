package geometry

import "github.com/pkg/errors"

// The closed-form reconstruction reads best as straight-line arithmetic, and
// returning errors from the middle of a formula chain would bury the algebra.
// So validation failures panic instead, and the public API in the root package
// recovers and converts to an ordinary error.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// HandleGeometryPanicRecover converts a recovered panic back into the error it
// carries. Panics that did not originate from fatalf are re-raised; those are
// genuine bugs, not degenerate geometry.
func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
