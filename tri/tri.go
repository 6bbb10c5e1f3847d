package tri

import (
	"github.com/timtadh/data-structures/errors"
)

// Triangulation is one 3-manifold triangulation owned by an external
// geometry backend. The move methods follow the Regina convention: with
// check set and perform unset the call is a dry run which only reports
// whether the move is legal; with perform set the move is applied.
type Triangulation interface {
	// IsoSig gives the canonical isomorphism signature. The first
	// character is a monotone encoding of the tetrahedron count.
	IsoSig() string
	// IntelligentSimplify greedily reduces the triangulation, reporting
	// whether it was modified.
	IntelligentSimplify() bool
	Clone() Triangulation
	CountEdges() int
	CountTriangles() int
	ThreeTwoMove(edge int, check, perform bool) bool
	FourFourMove(edge, axis int, check, perform bool) bool
	TwoThreeMove(triangle int, check, perform bool) bool
	IsOrientable() bool
	HomologyString() string
	// TuraevViro gives the textual form of the Turaev-Viro invariant at
	// parameter r with the given initial-value parity.
	TuraevViro(r int, parity bool) string
}

// Library decodes isomorphism signatures into triangulations.
type Library interface {
	FromIsoSig(sig string) (Triangulation, bool)
}

var backends = make(map[string]Library)

// Register installs a named backend. Backends register from their
// package init; registering the same name twice is a programming error.
func Register(name string, lib Library) {
	if _, has := backends[name]; has {
		panic(errors.Errorf("triangulation backend %v registered twice", name))
	}
	backends[name] = lib
}

func Lookup(name string) (Library, error) {
	lib, has := backends[name]
	if !has {
		return nil, errors.Errorf("no triangulation backend named %v", name)
	}
	return lib, nil
}

// Default gives the sole registered backend. It is an error to call it
// with zero or several backends linked in.
func Default() (Library, error) {
	if len(backends) != 1 {
		return nil, errors.Errorf("expected exactly 1 triangulation backend, have %d", len(backends))
	}
	for _, lib := range backends {
		return lib, nil
	}
	panic("unreachable")
}
