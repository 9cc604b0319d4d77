// Package registry provides thread-safe registration and construction of named
// implementations.
//
// A Registry maps names to factory functions for one capability signature.
// Components register their implementation during an explicit start-up phase,
// and consumers later construct it purely by name, without a compile-time
// dependency on the registrant.
//
// # Core Types
//
// Registry: thread-safe storage for factories of one signature
//
//	type Registry[R, A any] struct {
//	    mu        sync.RWMutex
//	    factories map[string]entry[R, A]
//	}
//
// Factory: function that constructs an implementation
//
//	type Factory[R, A any] func(args A) (R, error)
//
// Token: handle returned by a successful registration; Revoke removes the
// registration at most once.
//
// # Registration
//
// Names are fully qualified, e.g. "mediapipe.PassThroughCalculator". When the
// namespace is allowlisted by the namespace package, the entry is also stored
// under its short alias ("PassThroughCalculator"). The first registration to
// claim an alias keeps it; later alias collisions are silently ignored.
//
// Registering the same fully-qualified name twice is a programming error.
// MustRegister panics with an ALREADY_REGISTERED error in that case:
//
//	var calculators = registry.Lazy[Calculator, Options](registry.WithName("calculators"))
//
//	func init() {
//	    calculators().MustRegister("mediapipe.PassThroughCalculator", newPassThrough)
//	}
//
// Register performs the same checks but returns the error instead.
//
// Prefer a Manifest installed once from main over scattered init functions:
//
//	m := registry.NewManifest[Calculator, Options]().
//	    Add("mediapipe.PassThroughCalculator", newPassThrough).
//	    Add("mediapipe.ConstantCalculator", newConstant)
//	revs := m.Install(calculators())
//	defer revs.RevokeAll()
//
// # Lookup
//
//	calc, err := calculators().CreateByName("mediapipe.PassThroughCalculator", opts)
//	if errors.IsCode(err, errors.ErrCodeNotFound) {
//	    // not registered
//	}
//
// Lookups never normalize the name; the key must match how the entry was stored.
// Factories run after the registry lock has been released, so a slow or
// reentrant factory does not block other registry traffic.
//
// # Thread Safety
//
// All operations are safe for concurrent use. Mutations take the write lock,
// lookups take the read lock, and no logging, metrics or user code runs while
// either is held.
package registry
