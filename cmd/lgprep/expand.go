package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/linkprep/build"
	"github.com/hupe1980/linkprep/disjunct"
	"github.com/hupe1980/linkprep/expr"
)

var flagWord string

var expandCmd = &cobra.Command{
	Use:   "expand <expression>",
	Short: "Expand a single expression into disjuncts",
	Long:  "Expands one expression with the configured cost cutoff and truncation, without sentence-level filtering.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpand,
}

func init() {
	expandCmd.Flags().StringVar(&flagWord, "word", "w", "word string of the expression")
}

// ExpandResult is the JSON output of expand.
type ExpandResult struct {
	Expression string      `json:"expression"`
	Clauses    uint64      `json:"clauses"`
	Disjuncts  []string    `json:"disjuncts"`
	Stats      build.Stats `json:"stats"`
}

func runExpand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	e, err := expr.Parse(expr.NewDescTable(), args[0])
	if err != nil {
		return err
	}

	bctx := build.NewContext(build.Config{
		Generation:   cfg.Generation,
		MaxDisjuncts: cfg.MaxDisjuncts,
		Seed:         cfg.RandSeed,
		MaxDepth:     cfg.MaxDepth,
	})
	defer bctx.Release()

	list, err := bctx.Disjuncts(e, flagWord, disjunct.NewWordSet(0), cfg.CostCutoff)
	if err != nil {
		return err
	}

	res := ExpandResult{
		Expression: expr.String(e),
		Clauses:    expr.CountClauses(e),
		Stats:      bctx.Stats(),
	}
	for d := list; d != nil; d = d.Next {
		res.Disjuncts = append(res.Disjuncts, d.String())
	}

	out := cmd.OutOrStdout()
	if flagFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(out, "%s\n", res.Expression)
	fmt.Fprintf(out, "clauses: %d, disjuncts: %d, cost dropped: %d, truncated: %d\n",
		res.Clauses, len(res.Disjuncts), res.Stats.CostDropped, res.Stats.Truncated)
	for _, d := range res.Disjuncts {
		fmt.Fprintf(out, "  %s\n", d)
	}
	return nil
}
