package tracon

import (
	"fmt"
	"testing"

	"github.com/hupe1980/linkprep/disjunct"
	"github.com/hupe1980/linkprep/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(descs ...*expr.Desc) *disjunct.Connector {
	var head *disjunct.Connector
	for i := len(descs) - 1; i >= 0; i-- {
		head = &disjunct.Connector{Desc: descs[i], Next: head}
	}
	return head
}

func intern(s *Set, c *disjunct.Connector) *disjunct.Connector {
	ref := s.Add(c)
	if head := ref.Head(); head != nil {
		return head
	}
	ref.Commit(c)
	return c
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func TestPrimes(t *testing.T) {
	for i, p := range primes {
		assert.True(t, isPrime(int(p)), "%d is not prime", p)
		if i > 0 {
			assert.Greater(t, p, primes[i-1])
		}
	}
}

func TestSet_AddSameChainTwice(t *testing.T) {
	tbl := expr.NewDescTable()
	a, b := tbl.MustIntern("A"), tbl.MustIntern("Bs")
	s := New()

	first := chain(a, b)
	ref := s.Add(first)
	require.False(t, ref.Found())
	ref.Commit(first)

	second := chain(a, b)
	ref = s.Add(second)
	require.True(t, ref.Found())
	assert.Same(t, first, ref.Head())
	assert.Equal(t, 1, s.Len())

	assert.Same(t, first, s.Lookup(chain(a, b)))
	assert.Nil(t, s.Lookup(chain(b, a)))
	assert.Nil(t, s.Lookup(nil))
}

func TestSet_MultiDistinguishes(t *testing.T) {
	tbl := expr.NewDescTable()
	a := tbl.MustIntern("A")
	s := New()

	plain := chain(a)
	multi := chain(a)
	multi.Multi = true

	assert.Same(t, plain, intern(s, plain))
	assert.Same(t, multi, intern(s, multi))
	assert.Equal(t, 2, s.Len())
}

func TestSet_Shallow(t *testing.T) {
	tbl := expr.NewDescTable()
	a, b := tbl.MustIntern("A"), tbl.MustIntern("B")

	deep := chain(a, b)
	shallow := chain(a, b)
	shallow.Shallow = true

	t.Run("enabled", func(t *testing.T) {
		s := New()
		s.SetShallow(true)
		require.True(t, s.Shallow())
		assert.Same(t, deep, intern(s, deep))
		assert.Same(t, shallow, intern(s, shallow))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("disabled", func(t *testing.T) {
		s := New()
		assert.Same(t, deep, intern(s, deep))
		assert.Same(t, deep, intern(s, shallow))
		assert.Equal(t, 1, s.Len())
	})
}

func TestSet_GrowthPreservesEntries(t *testing.T) {
	tbl := expr.NewDescTable()
	descs := make([]*expr.Desc, 40)
	for i := range descs {
		descs[i] = tbl.MustIntern(fmt.Sprintf("C%dx", i))
	}

	s := New()
	startCap := s.Cap()
	var inserted []*disjunct.Connector
	for i := range descs {
		for j := range descs {
			c := chain(descs[i], descs[j])
			require.Same(t, c, intern(s, c))
			inserted = append(inserted, c)
			assert.LessOrEqual(t, 8*s.Len(), 3*s.Cap(), "occupancy above 3/8")
		}
	}

	assert.Greater(t, s.Cap(), startCap)
	assert.True(t, isPrime(s.Cap()))
	assert.Equal(t, len(inserted), s.Len())

	for _, c := range inserted {
		probe := chain(c.Desc, c.Next.Desc)
		assert.Same(t, c, s.Lookup(probe))
	}
}

func TestSet_Reset(t *testing.T) {
	tbl := expr.NewDescTable()
	s := New()
	for i := 0; i < 100; i++ {
		intern(s, chain(tbl.MustIntern(fmt.Sprintf("R%d", i))))
	}
	capBefore := s.Cap()

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, capBefore, s.Cap())
	assert.Nil(t, s.Lookup(chain(tbl.MustIntern("R1"))))

	c := chain(tbl.MustIntern("R1"))
	assert.Same(t, c, intern(s, c))
}

func TestSet_ReservationContract(t *testing.T) {
	tbl := expr.NewDescTable()
	a, b := tbl.MustIntern("A"), tbl.MustIntern("B")
	s := New()

	ref := s.Add(chain(a))
	assert.Panics(t, func() { s.Add(chain(b)) }, "pending reservation")

	ref.Cancel()
	assert.Equal(t, 0, s.Len())

	ref = s.Add(chain(b))
	assert.Panics(t, func() { ref.Commit(nil) })
	ref.Commit(chain(b))
	assert.Panics(t, func() { ref.Commit(chain(b)) }, "slot already committed")

	assert.Panics(t, func() { s.Add(nil) })
	assert.Panics(t, func() { Ref{}.Head() })
}

func TestSet_StaleRef(t *testing.T) {
	tbl := expr.NewDescTable()
	s := New()
	c := chain(tbl.MustIntern("A"))
	ref := s.Add(c)
	ref.Commit(c)

	s.Reset()
	assert.Panics(t, func() { ref.Head() })
}

func TestSet_Delete(t *testing.T) {
	s := New()
	s.Delete()
	assert.Equal(t, 0, s.Cap())
	assert.Panics(t, func() { s.Lookup(&disjunct.Connector{}) })
}

func TestEncodeSentence(t *testing.T) {
	tbl := expr.NewDescTable()
	a, b, c := tbl.MustIntern("A"), tbl.MustIntern("B"), tbl.MustIntern("C")

	shared := chain(b)
	// word 0: right chains [A B] and [C B] share the B tail.
	r1 := &disjunct.Connector{Desc: a, Shallow: true, Next: shared}
	r2 := &disjunct.Connector{Desc: c, Shallow: true, Next: shared}
	d1 := &disjunct.Disjunct{Right: r1}
	d2 := &disjunct.Disjunct{Right: r2}
	d1.Next = d2
	// word 1: left chain [A B] built separately, right chain [B].
	l3 := chain(a, b)
	l3.Shallow = true
	r3 := chain(b)
	r3.Shallow = true
	d3 := &disjunct.Disjunct{Left: l3, Right: r3}

	s := New()
	st := EncodeSentence(s, []*disjunct.Disjunct{d1, d3})

	assert.True(t, s.Shallow())
	assert.Equal(t, 2, st.Left)  // shallow "A B" and deep "B"
	assert.Equal(t, 4, st.Right) // "A B", deep "B", "C B", shallow "B"
	assert.Equal(t, 6, st.Connectors)

	assert.NotZero(t, r1.TraconID)
	assert.NotEqual(t, r1.TraconID, r2.TraconID)
	assert.NotEqual(t, shared.TraconID, r3.TraconID, "shallow and deep B differ")
	assert.Equal(t, 2, l3.Next.TraconID)
}
