package disjunct

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash/v2"
)

// EliminateDuplicates removes disjuncts whose chains match an earlier
// disjunct of the list and returns the new head with the number removed.
//
// Plain disjuncts are duplicates when their word strings are equal as well;
// the survivor keeps the lowest cost and the union of originating words.
// Category disjuncts with identical chains are merged into one, whose
// category array keeps the lowest cost per category number.
func EliminateDuplicates(d *Disjunct) (*Disjunct, int) {
	if d == nil || d.Next == nil {
		return d, 0
	}

	buckets := make(map[uint64][]*Disjunct)
	seen := make(map[*Disjunct]*bitset.BitSet)
	h := xxhash.New()

	return Filter(d, func(cur *Disjunct) bool {
		key := hashDisjunct(h, cur)
		for _, prev := range buckets[key] {
			if !duplicate(prev, cur) {
				continue
			}
			if prev.IsCategory() {
				mergeCategories(prev, cur, seen)
			} else {
				prev.Cost = min(prev.Cost, cur.Cost)
				if !prev.Words.Equal(cur.Words) {
					prev.Words = prev.Words.Union(cur.Words)
				}
			}
			return false
		}
		buckets[key] = append(buckets[key], cur)
		return true
	})
}

func duplicate(a, b *Disjunct) bool {
	if a.IsCategory() != b.IsCategory() {
		return false
	}
	if !a.IsCategory() && a.Word != b.Word {
		return false
	}
	return ChainEqual(a.Left, b.Left) && ChainEqual(a.Right, b.Right)
}

func mergeCategories(dst, src *Disjunct, seen map[*Disjunct]*bitset.BitSet) {
	bs, ok := seen[dst]
	if !ok {
		bs = bitset.New(1 << 16)
		for _, c := range dst.Categories {
			bs.Set(uint(c.Num))
		}
		seen[dst] = bs
	}
	for _, c := range src.Categories {
		if !bs.Test(uint(c.Num)) {
			bs.Set(uint(c.Num))
			dst.AddCategory(c.Num, c.Cost)
			continue
		}
		for i := range dst.Categories {
			if dst.Categories[i].Num == c.Num {
				dst.Categories[i].Cost = min(dst.Categories[i].Cost, c.Cost)
				break
			}
		}
	}
}

func hashDisjunct(h *xxhash.Digest, d *Disjunct) uint64 {
	h.Reset()
	var buf [9]byte
	writeChain := func(c *Connector) {
		for ; c != nil; c = c.Next {
			binary.LittleEndian.PutUint32(buf[0:4], c.Desc.UC)
			binary.LittleEndian.PutUint32(buf[4:8], c.Desc.LC)
			buf[8] = 0
			if c.Multi {
				buf[8] = 1
			}
			_, _ = h.Write(buf[:])
		}
		_, _ = h.Write([]byte{0xff})
	}
	writeChain(d.Left)
	writeChain(d.Right)
	if d.IsCategory() {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.WriteString(d.Word)
	}
	return h.Sum64()
}
