package linkprep_test

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/hupe1980/linkprep"
	"github.com/hupe1980/linkprep/disjunct"
	"github.com/hupe1980/linkprep/expr"
)

// Example prepares a three word sentence and prints the chains of every
// word's disjuncts.
func Example() {
	descs := expr.NewDescTable()
	s := linkprep.NewSentence(
		linkprep.NewWord("John", expr.MustParse(descs, "S+")),
		linkprep.NewWord("saw", expr.MustParse(descs, "S- & {O+}")),
		linkprep.NewWord("Mary", expr.MustParse(descs, "O-")),
	)

	p, err := linkprep.New()
	if err != nil {
		log.Fatal(err)
	}
	res, err := p.Prepare(context.Background(), s)
	if err != nil {
		log.Fatal(err)
	}
	defer res.Release()

	for w := range res.Words {
		var lines []string
		for _, d := range res.Disjuncts(w) {
			lines = append(lines, fmt.Sprintf("%q <> %q",
				disjunct.ChainString(d.Left, expr.Left), disjunct.ChainString(d.Right, expr.Right)))
		}
		slices.Sort(lines)
		fmt.Println(w, lines)
	}
	fmt.Println("tracons:", res.Stats.TraconsLeft, res.Stats.TraconsRight)
	// Output:
	// 0 ["" <> "S+"]
	// 1 ["S-" <> "" "S-" <> "O+"]
	// 2 ["O-" <> ""]
	// tracons: 2 2
}

// Example_expressionCost shows the cost cutoff dropping expensive clauses.
func Example_expressionCost() {
	descs := expr.NewDescTable()
	s := linkprep.NewSentence(
		linkprep.NewWord("a", expr.MustParse(descs, "D+")),
		linkprep.NewWord("dog", expr.MustParse(descs, "D- & {[[[S+]]]}")),
		linkprep.NewWord("ran", expr.MustParse(descs, "{S-}")),
	)

	p, err := linkprep.New(linkprep.WithCostCutoff(2))
	if err != nil {
		log.Fatal(err)
	}
	res, err := p.Prepare(context.Background(), s)
	if err != nil {
		log.Fatal(err)
	}
	defer res.Release()

	fmt.Println("disjuncts:", res.Stats.Disjuncts, "dropped:", res.Stats.CostDropped)
	// Output: disjuncts: 4 dropped: 1
}
