package census

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

import (
	"github.com/WPettersson/sortcensus/tri"
)

// Loader accumulates the contents of one .sigs file, keyed by profile
// line: the resume queues, the union-find graphs, the per-profile
// component counts, and the largest tetrahedron count seen. One Loader
// belongs to one task; nothing here is shared.
type Loader struct {
	Waiting map[string][]string
	Graphs  map[string]*Graph
	NComp   map[string]int
	MaxN    int
	lib     tri.Library
}

func NewLoader(lib tri.Library) *Loader {
	return &Loader{
		Waiting: make(map[string][]string),
		Graphs:  make(map[string]*Graph),
		NComp:   make(map[string]int),
		lib:     lib,
	}
}

// Profiles lists the profiles with a loaded graph in sorted order.
func (l *Loader) Profiles() []string {
	profs := make([]string, 0, len(l.Graphs))
	for prof := range l.Graphs {
		profs = append(profs, prof)
	}
	sort.Strings(profs)
	return profs
}

func (l *Loader) graph(prof string) *Graph {
	g, has := l.Graphs[prof]
	if !has {
		g = NewGraph()
		l.Graphs[prof] = g
	}
	return g
}

func (l *Loader) sawSig(sig string) {
	if n := Tets(sig); n > l.MaxN {
		l.MaxN = n
	}
}

// Read parses one .sigs file into the accumulators.
//
// A "#" line (other than "#q") resets the current profile to the whole
// line. A "#q" line appends its tokens to the current profile's resume
// queue. Every other non-empty line is one known Pachner component: the
// first signature is inserted fresh and each later signature is
// inserted and unioned with it. A line whose first signature still
// simplifies is skipped whole; its triangulations sit below the census
// size and were only recorded as unproven.
func (l *Loader) Read(r io.Reader) error {
	prof := "#"
	scanner := bufio.NewScanner(r)
	// Queue lines grow with the frontier and can run long.
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "#q") {
			prof = line
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "#q" {
			// A bare #q carries no queue and must not mark the profile
			// as resumable.
			if len(fields) > 1 {
				l.Waiting[prof] = append(l.Waiting[prof], fields[1:]...)
			}
			continue
		}

		first := fields[0]
		l.sawSig(first)
		t, ok := l.lib.FromIsoSig(first)
		if !ok {
			continue
		}
		if t.IntelligentSimplify() {
			continue
		}
		g := l.graph(prof)
		if _, dup := g.Get(first); dup {
			// Components never span lines at load time, so a repeated
			// leading signature can only be a malformed file.
			continue
		}
		d := g.Add(first)
		for _, sig := range fields[1:] {
			l.sawSig(sig)
			if _, dup := g.Get(sig); dup {
				continue
			}
			e := g.Add(sig)
			g.Union(d, e)
		}
		l.NComp[prof]++
	}
	return scanner.Err()
}
