package disjunct

import "github.com/hupe1980/linkprep/expr"

// SetReach sets NearestWord on every connector of a chain belonging to the
// word at index word, and returns the value of the chain head. The last
// connector gets the adjacent word; each connector before it one word
// further. An empty chain returns word.
//
// A left chain whose result is negative, or a right chain whose result is at
// or past the sentence end, cannot be satisfied.
func SetReach(c *Connector, word int, dir expr.Dir) int {
	step := 1
	if dir == expr.Left {
		step = -1
	}
	return setReach(c, word, step)
}

func setReach(c *Connector, word, step int) int {
	if c == nil {
		return word
	}
	i := setReach(c.Next, word, step) + step
	c.NearestWord = i
	return i
}
