package tri

import "testing"
import "github.com/stretchr/testify/assert"

type nilLib struct{}

func (nilLib) FromIsoSig(sig string) (Triangulation, bool) {
	return nil, false
}

func TestRegistry(t *testing.T) {
	_, err := Default()
	assert.NotNil(t, err)

	Register("nil", nilLib{})
	defer delete(backends, "nil")

	lib, err := Lookup("nil")
	assert.Nil(t, err)
	assert.NotNil(t, lib)

	lib, err = Default()
	assert.Nil(t, err)
	assert.NotNil(t, lib)

	_, err = Lookup("missing")
	assert.NotNil(t, err)

	assert.Panics(t, func() {
		Register("nil", nilLib{})
	})
}
