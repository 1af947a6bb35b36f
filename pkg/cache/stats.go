package cache

import "sync/atomic"

// Statistics tracks cache effectiveness counters.
type Statistics struct {
	hits   atomic.Uint64
	misses atomic.Uint64
}

func (s *Statistics) record(hit bool) {
	if hit {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
}

func (s *Statistics) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
	}
}

// StatsSnapshot is a point-in-time view of the counters.
type StatsSnapshot struct {
	Hits   uint64
	Misses uint64
}

// HitRate returns hits / (hits + misses), or 0 when no lookups have
// happened.
func (s StatsSnapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
