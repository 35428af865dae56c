package solver

import "github.com/peterkuimelis/handybrawl/internal/game"

// crumbRingSize bounds how many solution crumbs CrumbHistory keeps per
// game-end mode before the oldest is evicted.
const crumbRingSize = 4

// CrumbHistory is a small per-game-end-mode ring buffer of solution
// crumbs. A web bridge keeps one alongside its worker so a viewer that
// connects mid-search can be replayed the current best-so-far crumb
// immediately instead of waiting for the next one to arrive.
//
// Not safe for concurrent use; callers serialize access the same way a
// Worker's owner serializes access to its control channel.
type CrumbHistory struct {
	rings map[game.GameEndMode][]Output
}

// NewCrumbHistory returns an empty history.
func NewCrumbHistory() *CrumbHistory {
	return &CrumbHistory{rings: make(map[game.GameEndMode][]Output)}
}

// Record appends a SolutionCrumb output to its mode's ring, evicting the
// oldest entry once the ring is full. Non-crumb outputs are ignored.
func (h *CrumbHistory) Record(out Output) {
	if out.Kind != OutputSolutionCrumb {
		return
	}
	ring := h.rings[out.GameEndMode]
	ring = append(ring, out)
	if len(ring) > crumbRingSize {
		ring = ring[len(ring)-crumbRingSize:]
	}
	h.rings[out.GameEndMode] = ring
}

// Latest returns the most recently recorded crumb for mode, if any.
func (h *CrumbHistory) Latest(mode game.GameEndMode) (Output, bool) {
	ring := h.rings[mode]
	if len(ring) == 0 {
		return Output{}, false
	}
	return ring[len(ring)-1], true
}

// All returns every crumb currently held for mode, oldest first.
func (h *CrumbHistory) All(mode game.GameEndMode) []Output {
	ring := h.rings[mode]
	out := make([]Output, len(ring))
	copy(out, ring)
	return out
}

// Clear drops every ring, e.g. when root piles change and the old
// history no longer describes a reachable search.
func (h *CrumbHistory) Clear() {
	h.rings = make(map[game.GameEndMode][]Output)
}
