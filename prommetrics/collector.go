// Package prommetrics exports linkprep metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	p, _ := linkprep.New(linkprep.WithMetricsCollector(prommetrics.New(reg)))
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/linkprep"
)

const namespace = "linkprep"

// Collector implements linkprep.MetricsCollector.
type Collector struct {
	prepareTotal    *prometheus.CounterVec
	prepareDuration prometheus.Histogram
	disjuncts       *prometheus.CounterVec
	sentenceWords   prometheus.Histogram
	tracons         *prometheus.CounterVec
	poolBytes       prometheus.Histogram
	batchTotal      *prometheus.CounterVec
	batchDuration   prometheus.Histogram
}

var _ linkprep.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg. A nil reg
// uses the default registerer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		prepareTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prepare_total",
			Help:      "Prepared sentences by result",
		}, []string{"result"}),
		prepareDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prepare_duration_seconds",
			Help:      "Sentence preparation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		disjuncts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disjuncts_total",
			Help:      "Disjuncts by outcome",
		}, []string{"outcome"}),
		sentenceWords: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sentence_words",
			Help:      "Words per prepared sentence",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		}),
		tracons: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracons_total",
			Help:      "Distinct tracons by direction",
		}, []string{"direction"}),
		poolBytes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pool_bytes",
			Help:      "Pool memory reserved per prepared sentence",
			Buckets:   prometheus.ExponentialBuckets(1<<16, 4, 8), // 64KiB to 1GiB
		}),
		batchTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_sentences_total",
			Help:      "Sentences prepared in batches by result",
		}, []string{"result"}),
		batchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Batch preparation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

// RecordPrepare implements linkprep.MetricsCollector.
func (c *Collector) RecordPrepare(st linkprep.Stats, err error) {
	c.prepareDuration.Observe(st.Duration.Seconds())
	if err != nil {
		c.prepareTotal.WithLabelValues("error").Inc()
		return
	}
	c.prepareTotal.WithLabelValues("ok").Inc()
	c.sentenceWords.Observe(float64(st.Words))
	c.poolBytes.Observe(float64(st.BytesReserved))

	c.disjuncts.WithLabelValues("kept").Add(float64(st.Disjuncts))
	c.disjuncts.WithLabelValues("cost_dropped").Add(float64(st.CostDropped))
	c.disjuncts.WithLabelValues("truncated").Add(float64(st.Truncated))
	c.disjuncts.WithLabelValues("duplicate").Add(float64(st.Duplicates))
	c.disjuncts.WithLabelValues("unreachable").Add(float64(st.Unreachable))

	c.tracons.WithLabelValues("left").Add(float64(st.TraconsLeft))
	c.tracons.WithLabelValues("right").Add(float64(st.TraconsRight))
}

// RecordBatch implements linkprep.MetricsCollector.
func (c *Collector) RecordBatch(count, failed int, duration time.Duration) {
	c.batchDuration.Observe(duration.Seconds())
	c.batchTotal.WithLabelValues("ok").Add(float64(count - failed))
	c.batchTotal.WithLabelValues("error").Add(float64(failed))
}
