// Package metric provides Prometheus metrics for the routing engine.
//
// Metrics cover pattern match checks, permission decisions,
// translations, algebra compositions, parse failures, and operation
// latency. Registry wraps a dedicated prometheus.Registry so engine
// metrics never collide with a host application's default registry,
// and exposes a promhttp handler for scraping.
package metric
