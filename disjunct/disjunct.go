package disjunct

import (
	"fmt"
	"strings"

	"github.com/hupe1980/linkprep/expr"
)

// InitialCategories is the starting capacity of a category array.
const InitialCategories = 4

// Category is one interchangeable word category of a generation-mode
// disjunct.
type Category struct {
	Num  uint32
	Cost float64
}

// Disjunct is one connector pattern of a word.
type Disjunct struct {
	Left  *Connector
	Right *Connector

	// Cost and Word are unused for category disjuncts.
	Cost float64
	Word string

	// Words is the set of input words the disjunct originates from.
	Words *WordSet

	// Categories is non-nil for generation-mode category disjuncts.
	Categories []Category

	Next *Disjunct
}

// IsCategory reports whether d carries categories instead of a word string.
func (d *Disjunct) IsCategory() bool {
	return d.Categories != nil
}

// AddCategory appends a category, growing the array as needed.
func (d *Disjunct) AddCategory(num uint32, cost float64) {
	if d.Categories == nil {
		d.Categories = make([]Category, 0, InitialCategories)
	}
	d.Categories = append(d.Categories, Category{Num: num, Cost: cost})
}

// MinCost returns Cost, or the lowest category cost for category disjuncts.
func (d *Disjunct) MinCost() float64 {
	if !d.IsCategory() {
		return d.Cost
	}
	lowest := d.Categories[0].Cost
	for _, c := range d.Categories[1:] {
		lowest = min(lowest, c.Cost)
	}
	return lowest
}

// NumConnectors returns the total length of both chains.
func (d *Disjunct) NumConnectors() int {
	return d.Left.Len() + d.Right.Len()
}

func (d *Disjunct) String() string {
	var sb strings.Builder
	if d.IsCategory() {
		sb.WriteString("categories[")
		for i, c := range d.Categories {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%x:%g", c.Num, c.Cost)
		}
		sb.WriteString("]")
	} else {
		fmt.Fprintf(&sb, "%s(%g)", d.Word, d.Cost)
	}
	sb.WriteString(": ")
	sb.WriteString(ChainString(d.Left, expr.Left))
	sb.WriteString(" <> ")
	sb.WriteString(ChainString(d.Right, expr.Right))
	return sb.String()
}
