package disjunct

// Count returns the length of the list starting at d.
func Count(d *Disjunct) int {
	n := 0
	for ; d != nil; d = d.Next {
		n++
	}
	return n
}

// Catenate links b after the last element of a and returns the new head.
func Catenate(a, b *Disjunct) *Disjunct {
	if a == nil {
		return b
	}
	last := a
	for last.Next != nil {
		last = last.Next
	}
	last.Next = b
	return a
}

// Slice returns the list elements in order.
func Slice(d *Disjunct) []*Disjunct {
	out := make([]*Disjunct, 0, Count(d))
	for ; d != nil; d = d.Next {
		out = append(out, d)
	}
	return out
}

// Filter unlinks the elements for which keep returns false, preserving order,
// and returns the new head together with the number of removed elements.
func Filter(d *Disjunct, keep func(*Disjunct) bool) (*Disjunct, int) {
	var (
		head, tail *Disjunct
		removed    int
	)
	for d != nil {
		next := d.Next
		if keep(d) {
			d.Next = nil
			if tail == nil {
				head = d
			} else {
				tail.Next = d
			}
			tail = d
		} else {
			removed++
		}
		d = next
	}
	return head, removed
}
