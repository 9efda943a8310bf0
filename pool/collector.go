// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "github.com/prometheus/client_golang/prometheus"

// Stats is the read-only view of an allocator the collector scrapes.
// Every *Allocator[T] implements it.
type Stats interface {
	Name() string
	Cap() int
	Available() int
	Allocations() uint64
	Releases() uint64
}

// Collector exports allocator statistics to Prometheus.
//
// Metrics, labelled by allocator name:
//
//	<namespace>_pool_capacity            gauge
//	<namespace>_pool_available           gauge
//	<namespace>_pool_allocations_total   counter
//	<namespace>_pool_releases_total      counter
//
// Scraping an allocator that is not shared takes no lock; the gauges may be
// momentarily inconsistent with each other in that case.
type Collector struct {
	pools       []Stats
	capacity    *prometheus.Desc
	available   *prometheus.Desc
	allocations *prometheus.Desc
	releases    *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for pools under namespace.
func NewCollector(namespace string, pools ...Stats) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", name), help, []string{"pool"}, nil)
	}
	return &Collector{
		pools:       pools,
		capacity:    desc("capacity", "Number of slots in the pool."),
		available:   desc("available", "Number of free slots in the pool."),
		allocations: desc("allocations_total", "Total number of slots handed out."),
		releases:    desc("releases_total", "Total number of slots returned."),
	}
}

// Describe implements [prometheus.Collector].
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.available
	ch <- c.allocations
	ch <- c.releases
}

// Collect implements [prometheus.Collector].
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, p := range c.pools {
		name := p.Name()
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(p.Cap()), name)
		ch <- prometheus.MustNewConstMetric(c.available, prometheus.GaugeValue, float64(p.Available()), name)
		ch <- prometheus.MustNewConstMetric(c.allocations, prometheus.CounterValue, float64(p.Allocations()), name)
		ch <- prometheus.MustNewConstMetric(c.releases, prometheus.CounterValue, float64(p.Releases()), name)
	}
}
