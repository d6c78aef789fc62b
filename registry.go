package number

import (
	"sync/atomic"

	"github.com/govalues/number/backend/infdec"
)

// DefaultPrecision is the number of fractional digits kept by the default backend.
const DefaultPrecision = 14

// backendRef wraps a Backend so that it can be stored in an atomic pointer.
type backendRef struct {
	b Backend
}

// installed holds the process-wide default backend once it is known.
var installed atomic.Pointer[backendRef]

// DefaultBackend returns the process-wide default backend.
// The first call installs an [infdec.Backend] with [DefaultPrecision],
// unless another backend was installed with [SetDefaultBackend].
// After that the default backend never changes.
func DefaultBackend() Backend {
	if ref := installed.Load(); ref != nil {
		return ref.b
	}
	installed.CompareAndSwap(nil, &backendRef{b: infdec.New(DefaultPrecision)})
	return installed.Load().b
}

// SetDefaultBackend installs b as the process-wide default backend.
// It must be called before the default backend is used for the first time,
// otherwise it returns [ErrBackendInstalled].
func SetDefaultBackend(b Backend) error {
	if b == nil {
		return ErrNilBackend
	}
	if !installed.CompareAndSwap(nil, &backendRef{b: b}) {
		return ErrBackendInstalled
	}
	return nil
}
