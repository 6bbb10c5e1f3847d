package census

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/WPettersson/sortcensus/tri/mock"
)

func TestExtendSlotMapping(t *testing.T) {
	lib := mock.NewLibrary().Add("dabcd", &mock.Entry{
		Orientable: true,
		Homology:   "Z + Z_2",
		TV: map[string]string{
			"3,true":  "tv3t",
			"3,false": "tv3f",
			"4,true":  "tv4t",
			"5,true":  "tv5t",
			"5,false": "tv5f",
			"6,true":  "tv6t",
		},
	})
	tr, ok := lib.FromIsoSig("dabcd")
	assert.True(t, ok)

	p := NewProfile("# ")
	want := []string{
		"# orbl;",
		"# orbl;Z + Z_2;",
		"# orbl;Z + Z_2;tv3t;",
		"# orbl;Z + Z_2;tv3t;tv3f;",
		"# orbl;Z + Z_2;tv3t;tv3f;tv4t;",
		"# orbl;Z + Z_2;tv3t;tv3f;tv4t;tv5t;",
		"# orbl;Z + Z_2;tv3t;tv3f;tv4t;tv5t;tv5f;",
		"# orbl;Z + Z_2;tv3t;tv3f;tv4t;tv5t;tv5f;tv6t;",
	}
	for _, w := range want {
		p.Extend(tr)
		assert.Equal(t, w, p.Str)
	}
}

func TestExtendNonOrientable(t *testing.T) {
	lib := mock.NewLibrary().Add("cabc", &mock.Entry{Homology: "Z"})
	tr, _ := lib.FromIsoSig("cabc")
	p := NewProfile("# ")
	p.Extend(tr)
	assert.Equal(t, "# nor;", p.Str)
}

func TestExtendStartsAfterExistingSlots(t *testing.T) {
	lib := mock.NewLibrary().Add("cabc", &mock.Entry{
		TV: map[string]string{"3,true": "x"},
	})
	tr, _ := lib.FromIsoSig("cabc")
	// Two slots already known: the next one is TV(3, true).
	p := NewProfile("# orbl;Z;")
	p.Extend(tr)
	assert.Equal(t, "# orbl;Z;x;", p.Str)
}
