// Package mock is a scripted triangulation backend for tests. Every
// signature the test cares about gets an Entry describing how the
// backend should answer for it; anything else fails to decode.
package mock

import (
	"fmt"
)

import (
	"github.com/WPettersson/sortcensus/tri"
)

// Axis keys a 4-4 move by edge index and axis.
type Axis struct {
	Edge, Axis int
}

// Entry scripts the backend's answers for one signature.
type Entry struct {
	// SimplifiesTo, when non-empty, is the signature one round of
	// simplification produces. Simplification chases these links to a
	// fixpoint.
	SimplifiesTo string
	Orientable   bool
	Homology     string
	// TV maps "r,parity" (e.g. "3,true") to the invariant's text.
	TV map[string]string
	// Move tables: candidate index to the resulting signature. A move is
	// legal exactly when its index is present.
	ThreeTwo map[int]string
	FourFour map[Axis]string
	TwoThree map[int]string
	// Enumeration sizes the engine sees.
	Edges     int
	Triangles int
}

type Library struct {
	entries map[string]*Entry
}

func NewLibrary() *Library {
	return &Library{entries: make(map[string]*Entry)}
}

// Add scripts sig and returns the library for chaining.
func (l *Library) Add(sig string, e *Entry) *Library {
	l.entries[sig] = e
	return l
}

// Minimal scripts sig as a decodable triangulation with no legal moves
// and no simplification.
func (l *Library) Minimal(sig string) *Library {
	return l.Add(sig, &Entry{})
}

func (l *Library) FromIsoSig(sig string) (tri.Triangulation, bool) {
	if _, has := l.entries[sig]; !has {
		return nil, false
	}
	return &triangulation{lib: l, sig: sig}, true
}

type triangulation struct {
	lib *Library
	sig string
}

func (t *triangulation) entry() *Entry {
	return t.lib.entries[t.sig]
}

func (t *triangulation) IsoSig() string {
	return t.sig
}

func (t *triangulation) IntelligentSimplify() bool {
	changed := false
	for {
		e := t.entry()
		if e == nil || e.SimplifiesTo == "" {
			return changed
		}
		t.sig = e.SimplifiesTo
		changed = true
	}
}

func (t *triangulation) Clone() tri.Triangulation {
	return &triangulation{lib: t.lib, sig: t.sig}
}

func (t *triangulation) CountEdges() int {
	return t.entry().Edges
}

func (t *triangulation) CountTriangles() int {
	return t.entry().Triangles
}

func (t *triangulation) ThreeTwoMove(edge int, check, perform bool) bool {
	next, has := t.entry().ThreeTwo[edge]
	if has && perform {
		t.sig = next
	}
	return has
}

func (t *triangulation) FourFourMove(edge, axis int, check, perform bool) bool {
	next, has := t.entry().FourFour[Axis{edge, axis}]
	if has && perform {
		t.sig = next
	}
	return has
}

func (t *triangulation) TwoThreeMove(triangle int, check, perform bool) bool {
	next, has := t.entry().TwoThree[triangle]
	if has && perform {
		t.sig = next
	}
	return has
}

func (t *triangulation) IsOrientable() bool {
	return t.entry().Orientable
}

func (t *triangulation) HomologyString() string {
	return t.entry().Homology
}

func (t *triangulation) TuraevViro(r int, parity bool) string {
	if v, has := t.entry().TV[fmt.Sprintf("%d,%t", r, parity)]; has {
		return v
	}
	return "0"
}
