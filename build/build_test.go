package build

import (
	"math"
	"sort"
	"testing"

	"github.com/hupe1980/linkprep/disjunct"
	"github.com/hupe1980/linkprep/expr"
	"github.com/hupe1980/linkprep/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	descs *expr.DescTable
}

func newFixture() *fixture {
	return &fixture{descs: expr.NewDescTable()}
}

func (f *fixture) l(name string) *expr.Connector {
	return expr.NewConnector(f.descs.MustIntern(name), expr.Left)
}

func (f *fixture) r(name string) *expr.Connector {
	return expr.NewConnector(f.descs.MustIntern(name), expr.Right)
}

func leafNames(cl *Clause) []string {
	var out []string
	for _, leaf := range cl.Leaves() {
		out = append(out, leaf.Desc.Name+leaf.Dir.String())
	}
	return out
}

func clauseNames(cl *Clause) [][]string {
	var out [][]string
	for ; cl != nil; cl = cl.Next() {
		out = append(out, leafNames(cl))
	}
	return out
}

func render(d *disjunct.Disjunct) []string {
	var out []string
	for ; d != nil; d = d.Next {
		out = append(out, disjunct.ChainString(d.Left, expr.Left)+" <> "+disjunct.ChainString(d.Right, expr.Right))
	}
	sort.Strings(out)
	return out
}

func TestClauses_AndOfOr(t *testing.T) {
	f := newFixture()
	e := expr.NewAnd(f.l("A"), expr.NewOr(f.r("B"), f.r("C")))

	ctx := NewContext(Config{})
	cl, err := ctx.Clauses(e)
	require.NoError(t, err)

	assert.Equal(t, 2, ClauseCount(cl))
	assert.ElementsMatch(t, [][]string{{"A-", "B+"}, {"A-", "C+"}}, clauseNames(cl))

	for c := cl; c != nil; c = c.Next() {
		pos := c.Positions()
		assert.Equal(t, 0, pos[0])
		assert.Contains(t, []int{1, 2}, pos[1])
	}
}

func TestClauses_Counts(t *testing.T) {
	f := newFixture()
	tests := []struct {
		name string
		e    expr.Node
		want int
	}{
		{"leaf", f.l("A"), 1},
		{"empty and", expr.NewAnd(), 1},
		{"empty or", expr.NewOr(), 0},
		{"or", expr.NewOr(f.l("A"), f.l("B"), f.l("C")), 3},
		{"and", expr.NewAnd(expr.NewOr(f.l("A"), f.l("B"), f.l("C")), expr.NewOr(f.r("D"), f.r("E"))), 6},
		{"and with empty or", expr.NewAnd(f.l("A"), expr.NewOr()), 0},
		{"optional", expr.NewAnd(expr.Optional(f.l("A")), expr.Optional(f.r("B"))), 4},
		{"nested", expr.NewOr(
			expr.NewAnd(expr.NewOr(f.l("A"), f.l("B")), expr.NewOr(f.r("C"), f.r("D")), expr.NewOr(f.r("E"), f.r("F"))),
			f.l("G"),
		), 9},
	}

	ctx := NewContext(Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, err := ctx.Clauses(tt.e)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ClauseCount(cl))
			assert.Equal(t, uint64(tt.want), expr.CountClauses(tt.e))
		})
	}
}

func TestClauses_Costs(t *testing.T) {
	f := newFixture()
	e := expr.WithCost(expr.NewAnd(
		expr.WithCost(f.l("A"), 0.5),
		expr.NewOr(expr.WithCost(f.r("B"), 1), f.r("C")),
	), 0.25)

	ctx := NewContext(Config{})
	cl, err := ctx.Clauses(e)
	require.NoError(t, err)

	costs := map[string]float64{}
	for c := cl; c != nil; c = c.Next() {
		names := leafNames(c)
		costs[names[1]] = c.Cost()
	}
	assert.InDelta(t, 1.75, costs["B+"], 1e-9)
	assert.InDelta(t, 0.75, costs["C+"], 1e-9)
}

func TestClauses_TooDeep(t *testing.T) {
	f := newFixture()
	var e expr.Node = f.l("A")
	for range 10 {
		e = expr.NewAnd(e)
	}

	_, err := NewContext(Config{MaxDepth: 5}).Clauses(e)
	assert.ErrorIs(t, err, ErrExpressionTooDeep)

	cl, err := NewContext(Config{MaxDepth: 11}).Clauses(e)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A-"}}, clauseNames(cl))
}

func TestClauses_UnknownNodePanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = NewContext(Config{}).Clauses(nil)
	})
}

func TestDisjuncts_AndOfOr(t *testing.T) {
	f := newFixture()
	e := expr.NewAnd(f.l("A"), expr.NewOr(f.r("B"), f.r("C")))

	ctx := NewContext(Config{})
	d, err := ctx.Disjuncts(e, "dog", nil, math.Inf(1))
	require.NoError(t, err)

	assert.Equal(t, []string{"A- <> B+", "A- <> C+"}, render(d))
	for cur := d; cur != nil; cur = cur.Next {
		assert.Equal(t, "dog", cur.Word)
		assert.Equal(t, 1, cur.Left.Len())
		assert.Equal(t, 1, cur.Right.Len())
		assert.True(t, cur.Left.Shallow)
		assert.True(t, cur.Right.Shallow)
		assert.Equal(t, 0, cur.Left.ExpPos)
	}

	// A- is built once and reused as the left chain of both disjuncts.
	assert.Same(t, d.Left, d.Next.Left)
}

func TestDisjuncts_OptionalCutoff(t *testing.T) {
	f := newFixture()
	e := expr.Optional(expr.WithCost(f.r("A"), 0.4))

	ctx := NewContext(Config{})
	d, err := ctx.Disjuncts(e, "w", nil, 0)
	require.NoError(t, err)
	require.Equal(t, 1, disjunct.Count(d))
	assert.Nil(t, d.Left)
	assert.Nil(t, d.Right)
	assert.Zero(t, d.Cost)

	d, err = ctx.Disjuncts(e, "w", nil, 1.0)
	require.NoError(t, err)
	require.Equal(t, 2, disjunct.Count(d))
	costs := []float64{d.Cost, d.Next.Cost}
	sort.Float64s(costs)
	assert.InDeltaSlice(t, []float64{0, 0.4}, costs, 1e-9)

	st := ctx.Stats()
	assert.Equal(t, 2, st.Expressions)
	assert.Equal(t, 4, st.Clauses)
	assert.Equal(t, 1, st.CostDropped)
	assert.Equal(t, 3, st.Disjuncts)
}

func TestDisjuncts_ChainOrder(t *testing.T) {
	f := newFixture()
	// Later operands reach further, so B- heads the left chain.
	e := expr.NewAnd(f.l("A"), f.l("B"), f.r("C"), f.r("D"))

	d, err := NewContext(Config{}).Disjuncts(e, "w", nil, math.Inf(1))
	require.NoError(t, err)
	require.Equal(t, 1, disjunct.Count(d))

	left := d.Left
	assert.Equal(t, "B", left.Desc.Name)
	assert.True(t, left.Shallow)
	assert.Equal(t, 1, left.ExpPos)
	assert.Equal(t, "A", left.Next.Desc.Name)
	assert.False(t, left.Next.Shallow)
	assert.Equal(t, 0, left.Next.ExpPos)

	right := d.Right
	assert.Equal(t, "D", right.Desc.Name)
	assert.Equal(t, "C", right.Next.Desc.Name)
}

func TestDisjuncts_SharedSuffix(t *testing.T) {
	f := newFixture()
	e := expr.NewAnd(f.l("C"), expr.NewOr(f.l("A"), f.l("B")))

	ctx := NewContext(Config{})
	d, err := ctx.Disjuncts(e, "w", nil, math.Inf(1))
	require.NoError(t, err)
	require.Equal(t, 2, disjunct.Count(d))

	assert.Equal(t, []string{"A- C- <> ", "B- C- <> "}, render(d))
	assert.NotSame(t, d.Left, d.Next.Left)
	assert.Same(t, d.Left.Next, d.Next.Left.Next)

	st := ctx.Stats()
	assert.Equal(t, 3, st.Connectors)
	assert.Equal(t, 1, st.SharedSuffix)
}

func TestDisjuncts_SharedTailAsHead(t *testing.T) {
	f := newFixture()
	e := expr.NewAnd(f.l("C"), expr.Optional(f.l("A")))

	d, err := NewContext(Config{}).Disjuncts(e, "w", nil, math.Inf(1))
	require.NoError(t, err)
	require.Equal(t, 2, disjunct.Count(d))

	var long, short *disjunct.Disjunct
	for cur := d; cur != nil; cur = cur.Next {
		if cur.Left.Len() == 2 {
			long = cur
		} else {
			short = cur
		}
	}
	require.NotNil(t, long)
	require.NotNil(t, short)

	assert.True(t, short.Left.Shallow)
	assert.False(t, long.Left.Next.Shallow)
	assert.NotSame(t, short.Left, long.Left.Next)
}

func TestDisjuncts_WordsAndMulti(t *testing.T) {
	f := newFixture()
	e := expr.NewAnd(expr.NewMulti(f.descs.MustIntern("M"), expr.Left), f.r("O"))
	e.Operands[1].(*expr.Connector).FarthestWord = 4

	ws := disjunct.NewWordSet(7)
	d, err := NewContext(Config{}).Disjuncts(e, "w", ws, math.Inf(1))
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.Same(t, ws, d.Words)
	assert.True(t, d.Left.Multi)
	assert.False(t, d.Right.Multi)
	assert.Equal(t, 4, d.Right.FarthestWord)
}

func TestDisjuncts_Categories(t *testing.T) {
	f := newFixture()
	e := expr.NewOr(f.r("A"), expr.WithCost(f.r("B"), 2))

	ctx := NewContext(Config{Generation: true})
	d, err := ctx.Disjuncts(e, " 1a", nil, math.Inf(1))
	require.NoError(t, err)
	require.Equal(t, 2, disjunct.Count(d))

	for cur := d; cur != nil; cur = cur.Next {
		require.True(t, cur.IsCategory())
		require.Len(t, cur.Categories, 1)
		assert.Equal(t, uint32(0x1a), cur.Categories[0].Num)
		assert.Empty(t, cur.Word)
		assert.Equal(t, disjunct.InitialCategories, cap(cur.Categories))
	}

	// Outside generation mode the string is an ordinary word.
	d, err = NewContext(Config{}).Disjuncts(e, " 1a", nil, math.Inf(1))
	require.NoError(t, err)
	assert.False(t, d.IsCategory())
	assert.Equal(t, " 1a", d.Word)
}

func TestDisjuncts_InsaneCategoryPanics(t *testing.T) {
	f := newFixture()
	ctx := NewContext(Config{Generation: true})

	for _, s := range []string{" 0", " 10000", " zz"} {
		assert.Panics(t, func() {
			_, _ = ctx.Disjuncts(f.r("A"), s, nil, math.Inf(1))
		}, s)
	}
}

func TestDisjuncts_CountMatchesClauses(t *testing.T) {
	f := newFixture()
	e := expr.NewAnd(
		expr.Optional(f.l("A")),
		expr.NewOr(f.r("B"), f.r("C"), expr.NewAnd(f.r("D"), f.r("E"))),
		expr.Optional(expr.NewOr(f.l("F"), f.l("G"))),
	)

	d, err := NewContext(Config{}).Disjuncts(e, "w", nil, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, int(expr.CountClauses(e)), disjunct.Count(d))
}

func TestDisjuncts_Truncation(t *testing.T) {
	f := newFixture()
	e := expr.NewOr(f.r("A"), f.r("B"), f.r("C"), f.r("D"), f.r("E"))

	run := func(seed uint32) ([]string, uint32) {
		ctx := NewContext(Config{MaxDisjuncts: 1, Seed: seed})
		d, err := ctx.Disjuncts(e, "w", nil, math.Inf(1))
		require.NoError(t, err)
		assert.Equal(t, 4, ctx.Stats().Truncated)
		return render(d), ctx.randState
	}

	got1, state := run(1)
	got2, _ := run(1)
	assert.Len(t, got1, 1)
	assert.Equal(t, got1, got2)
	assert.Equal(t, uint32(836760821), state)

	_, state = run(0)
	assert.Zero(t, state, "a zero seed does not advance")
}

func TestContext_Release(t *testing.T) {
	f := newFixture()
	ctx := NewContext(Config{})
	assert.Zero(t, ctx.BytesReserved())
	assert.Empty(t, ctx.PoolStats())

	_, err := ctx.Disjuncts(f.r("A"), "w", nil, math.Inf(1))
	require.NoError(t, err)
	assert.Positive(t, ctx.BytesReserved())
	assert.Len(t, ctx.PoolStats(), 4)

	ctx.Release()
	assert.Zero(t, ctx.BytesReserved())
}

func words(n int) *disjunct.Disjunct {
	var head *disjunct.Disjunct
	for i := n - 1; i >= 0; i-- {
		head = &disjunct.Disjunct{Word: string(rune('a' + i)), Next: head}
	}
	return head
}

func kept(d *disjunct.Disjunct) []int {
	var out []int
	for ; d != nil; d = d.Next {
		out = append(out, int(d.Word[0]-'a'))
	}
	return out
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		seed  uint32
		count int
		limit int
		want  []int
		state uint32
	}{
		{1, 5, 1, []int{0}, 836760821},
		{0, 5, 1, []int{0}, 1772930244},
		{2, 5, 1, []int{0, 2}, 4195558694},
		{1, 10, 3, []int{0, 4, 9}, 1116175964},
		{8, 10, 3, []int{0, 1, 3, 8, 9}, 85634415},
		{1, 6, 2, []int{0, 2}, 2111915288},
	}

	for _, tt := range tests {
		r := rng.New(tt.seed)
		d, removed := Truncate(words(tt.count), tt.limit, r)
		assert.Equal(t, tt.want, kept(d), "seed %d", tt.seed)
		assert.Equal(t, tt.count-len(tt.want), removed)
		assert.Equal(t, tt.state, r.State())
	}
}

func TestTruncate_WithinLimit(t *testing.T) {
	r := rng.New(1)

	d, removed := Truncate(words(3), 3, r)
	assert.Equal(t, []int{0, 1, 2}, kept(d))
	assert.Zero(t, removed)
	assert.Equal(t, uint32(1), r.State(), "no draws")

	d, removed = Truncate(words(3), 0, r)
	assert.Len(t, kept(d), 3)
	assert.Zero(t, removed)

	d, removed = Truncate(nil, 2, r)
	assert.Nil(t, d)
	assert.Zero(t, removed)
}
