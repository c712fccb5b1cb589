package tracon

import "github.com/hupe1980/linkprep/disjunct"

// EncodeStats reports the result of EncodeSentence.
type EncodeStats struct {
	Left       int // distinct left tracons
	Right      int // distinct right tracons
	Connectors int // connectors visited
	Capacity   int // final table capacity
}

// EncodeSentence assigns tracon ids to every connector of the given per-word
// disjunct lists. A connector receives the id of the canonical tracon it
// heads; structurally identical suffixes anywhere in the sentence share an
// id. Left and right chains are numbered independently, starting at 1.
//
// The set is switched to shallow mode and reset before each direction.
func EncodeSentence(s *Set, words []*disjunct.Disjunct) EncodeStats {
	s.SetShallow(true)

	var st EncodeStats
	s.Reset()
	st.Left, st.Connectors = encodeDirection(s, words, func(d *disjunct.Disjunct) *disjunct.Connector { return d.Left })
	s.Reset()
	var n int
	st.Right, n = encodeDirection(s, words, func(d *disjunct.Disjunct) *disjunct.Connector { return d.Right })
	st.Connectors += n
	st.Capacity = s.Cap()
	return st
}

func encodeDirection(s *Set, words []*disjunct.Disjunct, side func(*disjunct.Disjunct) *disjunct.Connector) (int, int) {
	nextID, visited := 0, 0
	for _, head := range words {
		for d := head; d != nil; d = d.Next {
			for c := side(d); c != nil; c = c.Next {
				if c.TraconID != 0 {
					// Shared tail, encoded through an earlier disjunct.
					break
				}
				visited++
				ref := s.Add(c)
				if canon := ref.Head(); canon != nil {
					c.TraconID = canon.TraconID
					continue
				}
				ref.Commit(c)
				nextID++
				c.TraconID = nextID
			}
		}
	}
	return nextID, visited
}
