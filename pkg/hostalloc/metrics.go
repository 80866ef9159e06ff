package hostalloc

import "github.com/prometheus/client_golang/prometheus"

// collector exposes a Pinned allocator's counters as prometheus
// metrics, labeled with the allocator identity tag.
type collector struct {
	p *Pinned

	allocs      *prometheus.Desc
	releases    *prometheus.Desc
	mismatches  *prometheus.Desc
	live        *prometheus.Desc
	bytesPinned *prometheus.Desc
}

// NewCollector wraps p for registration with a prometheus registry.
func NewCollector(p *Pinned) prometheus.Collector {
	labels := prometheus.Labels{"allocator": p.ID()}
	return &collector{
		p: p,
		allocs: prometheus.NewDesc(
			"ffibuf_allocs_total",
			"Buffers allocated.",
			nil, labels),
		releases: prometheus.NewDesc(
			"ffibuf_releases_total",
			"Buffers released.",
			nil, labels),
		mismatches: prometheus.NewDesc(
			"ffibuf_mismatched_releases_total",
			"Releases rejected because the pointer was not produced here.",
			nil, labels),
		live: prometheus.NewDesc(
			"ffibuf_live_buffers",
			"Buffers currently pinned.",
			nil, labels),
		bytesPinned: prometheus.NewDesc(
			"ffibuf_pinned_bytes",
			"Bytes currently pinned.",
			nil, labels),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocs
	ch <- c.releases
	ch <- c.mismatches
	ch <- c.live
	ch <- c.bytesPinned
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	s := c.p.Stats()
	ch <- prometheus.MustNewConstMetric(c.allocs, prometheus.CounterValue, float64(s.Allocs))
	ch <- prometheus.MustNewConstMetric(c.releases, prometheus.CounterValue, float64(s.Releases))
	ch <- prometheus.MustNewConstMetric(c.mismatches, prometheus.CounterValue, float64(s.Mismatches))
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(s.Live))
	ch <- prometheus.MustNewConstMetric(c.bytesPinned, prometheus.GaugeValue, float64(s.BytesPinned))
}
