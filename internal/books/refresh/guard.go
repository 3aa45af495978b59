// Package refresh serializes overlapping recomputes. Refreshes are not
// cancellable, so a slow early fetch can resolve after a later one; the
// guard discards the stale result instead of letting it overwrite the newer
// one.
package refresh

import "sync/atomic"

// Generation identifies one recompute.
type Generation uint64

// Guard hands out monotonically increasing generations and accepts only the
// latest. Safe for concurrent use from multiple views.
type Guard struct {
	seq    atomic.Uint64
	latest atomic.Uint64
}

// Next starts a new recompute and supersedes all earlier ones.
func (g *Guard) Next() Generation {
	n := g.seq.Add(1)
	g.latest.Store(n)
	return Generation(n)
}

// Accept reports whether a finished recompute is still current. A stale
// generation's result must be discarded by the caller.
func (g *Guard) Accept(gen Generation) bool {
	return uint64(gen) == g.latest.Load()
}
