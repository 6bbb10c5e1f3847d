package census

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"bytes"
	"os"
	"path/filepath"
)

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

func TestDumpPachnerFiltersAndGroups(t *testing.T) {
	g := NewGraph()
	a := g.Add("dabcd")
	b := g.Add("dabce")
	g.Union(a, b)
	c := g.Add("dabcf")
	// A component proven to shrink below the census size.
	small := g.Add("cabc")
	g.Union(c, small)
	// Discovered during expansion, above the census size.
	big := g.Add("eabcd")
	g.Union(a, big)

	var buf bytes.Buffer
	err := DumpPachner(&buf, "# orbl;", g, 3)
	assert.Nil(t, err)
	// The shrunk component vanishes; the oversized signature is
	// filtered from its surviving component.
	assert.Equal(t, "# orbl;\ndabcd dabce\n", buf.String())
}

func TestDumpPachnerNoSurvivors(t *testing.T) {
	g := NewGraph()
	a := g.Add("dabcd")
	small := g.Add("cabc")
	g.Union(a, small)

	var buf bytes.Buffer
	err := DumpPachner(&buf, "#", g, 3)
	assert.Nil(t, err)
	assert.Equal(t, "#\n\n", buf.String())
}

func TestDumpPachnerOrdersComponentsByRoot(t *testing.T) {
	g := NewGraph()
	g.Add("dzzzz")
	g.Add("daaaa")
	b := g.Add("dbbbb")
	c := g.Add("dcccc")
	g.Union(c, b)

	var buf bytes.Buffer
	err := DumpPachner(&buf, "#", g, 3)
	assert.Nil(t, err)
	assert.Equal(t, "#\ndaaaa\ndbbbb dcccc\ndzzzz\n", buf.String())
}

func TestDumpPartitionSplitsClasses(t *testing.T) {
	g := NewGraph()
	g.Add("cabc")
	g.Add("cabd")
	b := g.Add("cabe")
	g.Union(b, Handle(0))

	profiles := hashtable.NewLinearHash()
	assert.Nil(t, profiles.Put(types.String("cabc"), "# orbl;Z;"))
	assert.Nil(t, profiles.Put(types.String("cabd"), "# orbl;Z2;"))

	dir := t.TempDir()
	prefix := filepath.Join(dir, "out_")
	count := 0
	err := DumpPartition(prefix, &count, g, profiles, []string{"cabc", "cabd"})
	assert.Nil(t, err)
	assert.Equal(t, 2, count)

	// Classes are ordered by extended profile string; '2' sorts before
	// ';' so the Z2 class comes first.
	first, err := os.ReadFile(prefix + "0.sigs")
	assert.Nil(t, err)
	assert.Equal(t, "# orbl;Z2;\ncabd \n#q cabc cabd\n", string(first))

	second, err := os.ReadFile(prefix + "1.sigs")
	assert.Nil(t, err)
	assert.Equal(t, "# orbl;Z;\ncabc cabe \n#q cabc cabd\n", string(second))
}

func TestDumpPartitionOmitsEmptyQueue(t *testing.T) {
	g := NewGraph()
	g.Add("cabc")
	g.Add("cabd")
	profiles := hashtable.NewLinearHash()
	assert.Nil(t, profiles.Put(types.String("cabc"), "# nor;A;"))
	assert.Nil(t, profiles.Put(types.String("cabd"), "# nor;A;"))

	dir := t.TempDir()
	prefix := filepath.Join(dir, "out_")
	count := 0
	err := DumpPartition(prefix, &count, g, profiles, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(prefix + "0.sigs")
	assert.Nil(t, err)
	assert.Equal(t, "# nor;A;\ncabc \ncabd \n", string(data))
}
