package census

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// DumpPachner writes one profile section of Pachner-mode output: the
// profile line, then one line per component that has not yet been shown
// to collapse (its root's Smallest still equals maxN). Signatures
// larger than maxN took part in the expansion but are not written.
// Components appear ordered by root signature, each component's
// signatures in lexicographic order. The resume queue is never
// persisted in this mode.
func DumpPachner(w io.Writer, prof string, g *Graph, maxN int) error {
	roots := set.NewSortedSet(g.Size())
	members := make(map[string][]string)
	for _, sig := range g.Sigs() {
		if Tets(sig) > maxN {
			continue
		}
		h, _ := g.Get(sig)
		r := g.Find(h)
		if g.Node(r).Smallest != maxN {
			continue
		}
		rsig := g.Node(r).Sig
		key := types.String(rsig)
		if !roots.Has(key) {
			if err := roots.Add(key); err != nil {
				return err
			}
		}
		members[rsig] = append(members[rsig], sig)
	}
	buf := bufio.NewWriter(w)
	fmt.Fprintln(buf, prof)
	lines := make([]string, 0, roots.Size())
	for r, next := roots.Items()(); next != nil; r, next = next() {
		rsig := string(r.(types.String))
		lines = append(lines, strings.Join(members[rsig], " "))
	}
	fmt.Fprintln(buf, strings.Join(lines, "\n"))
	return buf.Flush()
}

// DumpPartition writes one output file per extended-profile class of
// g's components. profiles maps each component's root signature
// (types.String) to its extended profile string. Filenames are
// <prefix><count>.sigs; count advances per emitted file and spans every
// profile of the input file. The original resume queue, when present,
// is carried whole into every class.
func DumpPartition(prefix string, count *int, g *Graph, profiles *hashtable.LinearHash, queue []string) error {
	members := make(map[Handle][]string)
	for _, sig := range g.Sigs() {
		h, _ := g.Get(sig)
		members[g.Find(h)] = append(members[g.Find(h)], sig)
	}

	// Group components under their extended profile, components ordered
	// by root signature within each class, classes by profile string.
	classes := set.NewSortedSet(len(members))
	classComps := make(map[string][][]string)
	roots := set.NewSortedSet(len(members))
	for r := range members {
		if err := roots.Add(types.String(g.Node(r).Sig)); err != nil {
			return err
		}
	}
	for r, next := roots.Items()(); next != nil; r, next = next() {
		rsig := r.(types.String)
		h, _ := g.Get(string(rsig))
		ext, err := profiles.Get(rsig)
		if err != nil {
			return err
		}
		prof := ext.(string)
		key := types.String(prof)
		if !classes.Has(key) {
			if err := classes.Add(key); err != nil {
				return err
			}
		}
		classComps[prof] = append(classComps[prof], members[h])
	}

	for c, next := classes.Items()(); next != nil; c, next = next() {
		prof := string(c.(types.String))
		name := fmt.Sprintf("%s%d.sigs", prefix, *count)
		*count++
		if err := writeClass(name, prof, classComps[prof], queue); err != nil {
			return err
		}
	}
	return nil
}

func writeClass(name, prof string, comps [][]string, queue []string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	buf := bufio.NewWriter(f)
	fmt.Fprintln(buf, prof)
	for _, comp := range comps {
		for _, sig := range comp {
			fmt.Fprintf(buf, "%s ", sig)
		}
		fmt.Fprintln(buf)
	}
	if len(queue) > 0 {
		fmt.Fprintf(buf, "#q %s\n", strings.Join(queue, " "))
	}
	return buf.Flush()
}
