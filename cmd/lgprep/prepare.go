package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/linkprep"
	"github.com/hupe1980/linkprep/expr"
)

var flagDisjuncts bool

var prepareCmd = &cobra.Command{
	Use:   "prepare <fixture.yaml>...",
	Short: "Prepare the sentences of one or more fixtures",
	Long:  "Builds, deduplicates and filters the disjuncts of every word and assigns tracon ids. Several fixtures are prepared in parallel.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPrepare,
}

func init() {
	prepareCmd.Flags().BoolVar(&flagDisjuncts, "disjuncts", false, "list the disjuncts of every word")
}

// PrepareResult is the JSON output of one fixture.
type PrepareResult struct {
	Fixture string         `json:"fixture"`
	Stats   linkprep.Stats `json:"stats"`
	Words   []WordResult   `json:"words,omitempty"`
}

// WordResult lists the disjuncts of a word.
type WordResult struct {
	Index     int      `json:"index"`
	Disjuncts []string `json:"disjuncts"`
}

func runPrepare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := linkprep.New(cfg.Options()...)
	if err != nil {
		return err
	}

	descs := expr.NewDescTable()
	sentences := make([]*linkprep.Sentence, len(args))
	for i, path := range args {
		f, err := LoadFixture(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if sentences[i], err = f.Sentence(descs); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	prepared, err := p.PrepareBatch(cmd.Context(), sentences)
	if err != nil {
		return err
	}

	results := make([]PrepareResult, len(prepared))
	for i, res := range prepared {
		results[i] = PrepareResult{Fixture: args[i], Stats: res.Stats}
		if flagDisjuncts {
			for w := range res.Words {
				wr := WordResult{Index: w}
				for _, d := range res.Disjuncts(w) {
					wr.Disjuncts = append(wr.Disjuncts, d.String())
				}
				results[i].Words = append(results[i].Words, wr)
			}
		}
		res.Release()
	}

	out := cmd.OutOrStdout()
	if flagFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	formatPrepareText(out, results)
	return nil
}

func formatPrepareText(w io.Writer, results []PrepareResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIXTURE\tWORDS\tDISJUNCTS\tCLAUSES\tDROPPED\tTRUNCATED\tDUPLICATES\tUNREACHABLE\tTRACONS")
	for _, r := range results {
		st := r.Stats
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d/%d\n",
			r.Fixture, st.Words, st.Disjuncts, st.Clauses, st.CostDropped, st.Truncated,
			st.Duplicates, st.Unreachable, st.TraconsLeft, st.TraconsRight)
	}
	tw.Flush()

	for _, r := range results {
		for _, wr := range r.Words {
			fmt.Fprintf(w, "%s word %d:\n", r.Fixture, wr.Index)
			for _, d := range wr.Disjuncts {
				fmt.Fprintf(w, "  %s\n", d)
			}
		}
	}
}
