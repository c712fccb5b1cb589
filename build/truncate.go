package build

import (
	"github.com/hupe1980/linkprep/disjunct"
	"github.com/hupe1980/linkprep/internal/rng"
)

// Truncate thins a disjunct list longer than limit. The first disjunct is
// always kept; every other one survives when r draws a value below limit
// modulo the original length, so about limit disjuncts remain. The result is
// deterministic for a given generator state.
func Truncate(d *disjunct.Disjunct, limit int, r *rng.RandR) (*disjunct.Disjunct, int) {
	if limit <= 0 || d == nil {
		return d, 0
	}
	total := disjunct.Count(d)
	if total <= limit {
		return d, 0
	}

	removed := 0
	kept := d
	for cur := d.Next; cur != nil; cur = cur.Next {
		if int(r.Uintn(uint32(total))) < limit {
			kept.Next = cur
			kept = cur
			continue
		}
		removed++
	}
	kept.Next = nil
	return d, removed
}
