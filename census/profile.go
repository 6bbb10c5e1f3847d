package census

import (
	"strings"
)

import (
	"github.com/WPettersson/sortcensus/tri"
)

// Profile is an ordered list of invariants common to every
// triangulation in a file. On disk it is the full profile line,
// "# " prefix included, with every slot terminated by a semicolon.
// Equality and ordering are string equality and ordering.
type Profile struct {
	Str string
}

func NewProfile(s string) Profile {
	return Profile{Str: s}
}

// Extend appends the next invariant slot, computed on t. Slot k is
// determined by the number of semicolons already present:
//
//	slot 0        orientability ("orbl" or "nor")
//	slot 1        first homology
//	slot k >= 2   the Turaev-Viro ladder: with a = k mod 3 and
//	              b = k div 3, TV(2b+1, false) for a = 0,
//	              TV(2b+2, true) for a = 1, TV(2b+3, true) for a = 2
func (p *Profile) Extend(t tri.Triangulation) {
	known := strings.Count(p.Str, ";")
	switch known {
	case 0:
		if t.IsOrientable() {
			p.Str += "orbl"
		} else {
			p.Str += "nor"
		}
	case 1:
		p.Str += t.HomologyString()
	default:
		a := known % 3
		b := known / 3
		switch a {
		case 0:
			p.Str += t.TuraevViro(2*b+1, false)
		case 1:
			p.Str += t.TuraevViro(2*b+2, true)
		default:
			p.Str += t.TuraevViro(2*b+3, true)
		}
	}
	p.Str += ";"
}
