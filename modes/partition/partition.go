// Package partition refines a file's tentative invariant class: each
// Pachner component's profile is extended by further invariants
// computed on the component's union-find root, and one output file is
// written per resulting class.
package partition

import (
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/WPettersson/sortcensus/census"
	"github.com/WPettersson/sortcensus/config"
)

// Run processes one input file: profiles with a single component are
// already as refined as this file can prove and produce no output;
// every other profile's components are extended by conf.Level further
// invariants and regrouped into <oprefix><k>.sigs files.
func Run(conf *config.Config, iname, oprefix string) error {
	load := census.NewLoader(conf.Tri)
	in, err := os.Open(iname)
	if err != nil {
		return err
	}
	err = load.Read(in)
	in.Close()
	if err != nil {
		return err
	}

	profiles := hashtable.NewLinearHash()
	count := 0
	for _, prof := range load.Profiles() {
		if load.NComp[prof] == 1 {
			continue
		}
		g := load.Graphs[prof]
		for _, sig := range g.Sigs() {
			h, _ := g.Get(sig)
			rsig := g.Node(g.Find(h)).Sig
			key := types.String(rsig)
			if profiles.Has(key) {
				continue
			}
			p := census.NewProfile(prof)
			if t, ok := conf.Tri.FromIsoSig(rsig); ok {
				for i := 0; i < conf.Level; i++ {
					p.Extend(t)
				}
			} else {
				errors.Logf("ERROR", "could not reconstruct %v, leaving its profile unextended", rsig)
			}
			if err := profiles.Put(key, p.Str); err != nil {
				return err
			}
		}
		if err := census.DumpPartition(oprefix, &count, g, profiles, load.Waiting[prof]); err != nil {
			return err
		}
	}
	return nil
}
