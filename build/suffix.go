package build

import "github.com/hupe1980/linkprep/disjunct"

// suffixTable maps a tconnector to the disjunct connector built for it. A
// tconnector heading a chain and the same tconnector further down a chain get
// separate entries, since only the first is shallow.
//
// Building a chain is two-phase: lookup either returns the finished chain for
// a shared list tail, or the caller allocates a connector, commits it, and
// only then fills in the rest of its chain. A committed connector is never
// replaced.
type suffixTable struct {
	heads []*disjunct.Connector
	used  int // heads[used:] are all nil
}

func suffixIndex(t *tconnector, shallow bool) int {
	if shallow {
		return 2*t.id + 1
	}
	return 2 * t.id
}

func (s *suffixTable) lookup(t *tconnector, shallow bool) (*disjunct.Connector, bool) {
	i := suffixIndex(t, shallow)
	if i < len(s.heads) && s.heads[i] != nil {
		return s.heads[i], true
	}
	return nil, false
}

func (s *suffixTable) commit(t *tconnector, c *disjunct.Connector) {
	i := suffixIndex(t, c.Shallow)
	if i >= len(s.heads) {
		grown := make([]*disjunct.Connector, max(2*len(s.heads), i+1, 64))
		copy(grown, s.heads)
		s.heads = grown
	}
	if s.heads[i] != nil {
		panic("build: suffix committed twice")
	}
	s.heads[i] = c
	s.used = max(s.used, i+1)
}

func (s *suffixTable) reset() {
	clear(s.heads[:s.used])
	s.used = 0
}
