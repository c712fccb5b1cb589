package prommetrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/linkprep"
	"github.com/hupe1980/linkprep/expr"
)

func TestCollector_RecordPrepare(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.RecordPrepare(linkprep.Stats{
		Words:        3,
		Disjuncts:    10,
		CostDropped:  2,
		Unreachable:  1,
		TraconsLeft:  4,
		TraconsRight: 5,
		Duration:     time.Millisecond,
	}, nil)
	c.RecordPrepare(linkprep.Stats{Duration: time.Microsecond}, errors.New("boom"))

	assert.InDelta(t, 1, testutil.ToFloat64(c.prepareTotal.WithLabelValues("ok")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(c.prepareTotal.WithLabelValues("error")), 1e-9)
	assert.InDelta(t, 10, testutil.ToFloat64(c.disjuncts.WithLabelValues("kept")), 1e-9)
	assert.InDelta(t, 2, testutil.ToFloat64(c.disjuncts.WithLabelValues("cost_dropped")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(c.disjuncts.WithLabelValues("unreachable")), 1e-9)
	assert.InDelta(t, 5, testutil.ToFloat64(c.tracons.WithLabelValues("right")), 1e-9)

	n, err := testutil.GatherAndCount(reg, "linkprep_prepare_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollector_RecordBatch(t *testing.T) {
	c := New(prometheus.NewRegistry())
	c.RecordBatch(5, 2, time.Second)

	assert.InDelta(t, 3, testutil.ToFloat64(c.batchTotal.WithLabelValues("ok")), 1e-9)
	assert.InDelta(t, 2, testutil.ToFloat64(c.batchTotal.WithLabelValues("error")), 1e-9)
}

func TestCollector_WithPreparer(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	p, err := linkprep.New(linkprep.WithMetricsCollector(c))
	require.NoError(t, err)

	descs := expr.NewDescTable()
	a := descs.MustIntern("A")
	res, err := p.Prepare(context.Background(), linkprep.NewSentence(
		linkprep.NewWord("x", expr.NewConnector(a, expr.Right)),
		linkprep.NewWord("y", expr.NewConnector(a, expr.Left)),
	))
	require.NoError(t, err)
	defer res.Release()

	assert.InDelta(t, 2, testutil.ToFloat64(c.disjuncts.WithLabelValues("kept")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(c.tracons.WithLabelValues("left")), 1e-9)
}
