// Package pachner grows each profile's Pachner-move graph breadth
// first until either the round budget runs out or the graph has both
// collapsed to a single component and reached a triangulation below the
// input's maximum size.
package pachner

import (
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/WPettersson/sortcensus/census"
	"github.com/WPettersson/sortcensus/config"
	"github.com/WPettersson/sortcensus/tri"
)

// Run processes one input file end to end: load, expand every profile,
// write every profile's section to oname.
func Run(conf *config.Config, iname, oname string) error {
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

	out, err := os.Create(oname)
	if err != nil {
		return err
	}
	defer out.Close()

	for _, prof := range load.Profiles() {
		e := &expansion{
			lib:   conf.Tri,
			load:  load,
			graph: load.Graphs[prof],
			prof:  prof,
		}
		waiting, resumed := load.Waiting[prof]
		e.run(conf.Level, waiting, resumed)
		if err := census.DumpPachner(out, prof, e.graph, load.MaxN); err != nil {
			return err
		}
	}
	return nil
}

// expansion is the state of one profile's BFS. The queue holds node
// handles; census.NoNode on the queue marks the end of a round.
type expansion struct {
	lib    tri.Library
	load   *census.Loader
	graph  *census.Graph
	prof   string
	queue  []census.Handle
	shrunk bool
}

func (e *expansion) run(levels int, waiting []string, resumed bool) {
	if resumed {
		// A persisted queue names exactly what is still unprocessed.
		// Entries missing from the graph belong to another partition of
		// an earlier split and are dropped here.
		for _, sig := range waiting {
			if h, has := e.graph.Get(sig); has {
				e.queue = append(e.queue, h)
			}
		}
	} else {
		for _, sig := range e.graph.Sigs() {
			h, _ := e.graph.Get(sig)
			e.queue = append(e.queue, h)
		}
	}
	keepGoing := true
	for i := 0; i < levels && keepGoing; i++ {
		if len(e.queue) == 0 {
			errors.Logf("ERROR", "nothing remaining in the queue for %v", e.prof)
		}
		e.queue = append(e.queue, census.NoNode)
		for e.queue[0] != census.NoNode && keepGoing {
			h := e.queue[0]
			e.queue = e.queue[1:]
			keepGoing = e.process(h)
		}
		if len(e.queue) > 0 {
			// Pop the round marker. If keepGoing went false the queue is
			// abandoned anyway.
			e.queue = e.queue[1:]
		}
	}
}

// process expands one node: every legal 3-2 move by edge, then every
// 4-4 move by edge and axis, then every 2-3 move by triangle. Reports
// whether expansion of this profile should continue.
func (e *expansion) process(h census.Handle) bool {
	t, ok := e.lib.FromIsoSig(e.graph.Node(h).Sig)
	if !ok {
		return true
	}
	for i := 0; i < t.CountEdges(); i++ {
		edge := i
		e.step(h, t, func(x tri.Triangulation, check, perform bool) bool {
			return x.ThreeTwoMove(edge, check, perform)
		})
	}
	for i := 0; i < t.CountEdges(); i++ {
		for j := 0; j < 2; j++ {
			edge, axis := i, j
			e.step(h, t, func(x tri.Triangulation, check, perform bool) bool {
				return x.FourFourMove(edge, axis, check, perform)
			})
		}
	}
	for i := 0; i < t.CountTriangles(); i++ {
		triangle := i
		e.step(h, t, func(x tri.Triangulation, check, perform bool) bool {
			return x.TwoThreeMove(triangle, check, perform)
		})
	}
	// Stop once the graph is one component that provably shrinks below
	// the census size.
	if e.shrunk && e.load.NComp[e.prof] == 1 {
		return false
	}
	return true
}

// step is the expansion step shared by the three move families: dry-run
// the move, apply it to a clone, simplify, and fold the resulting
// signature into the graph and queue.
func (e *expansion) step(p census.Handle, t tri.Triangulation, move func(tri.Triangulation, bool, bool) bool) {
	if !move(t, true, false) {
		return
	}
	alt := t.Clone()
	move(alt, false, true)
	alt.IntelligentSimplify()
	next := alt.IsoSig()
	if census.Tets(next) < e.load.MaxN {
		e.shrunk = true
	}
	if h, has := e.graph.Get(next); has {
		if e.graph.Union(p, h) {
			e.load.NComp[e.prof]--
		}
	} else {
		h := e.graph.Add(next)
		e.queue = append(e.queue, h)
		if !e.graph.Union(p, h) {
			errors.Logf("ERROR", "adjacency problem joining %v to %v", e.graph.Node(p).Sig, next)
		}
	}
}
