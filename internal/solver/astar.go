// Package solver implements the A* puzzle solver: a
// best-first search over pile states using a learned heuristic, bounded
// re-expansion, fscore pruning and anytime best-path reporting.
package solver

import (
	"container/heap"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/peterkuimelis/handybrawl/internal/encoding"
	"github.com/peterkuimelis/handybrawl/internal/game"
	"github.com/peterkuimelis/handybrawl/internal/heuristic"
)

// IterResult tags what a single SingleIter call accomplished.
type IterResult int

const (
	Continue IterResult = iota
	NewBest
	Done
)

func (r IterResult) String() string {
	switch r {
	case NewBest:
		return "NewBest"
	case Done:
		return "Done"
	default:
		return "Continue"
	}
}

// seenEntry is the seen_states value: the parent key (nil at a seed) and
// the best known depth for that key.
type seenEntry struct {
	parent *encoding.Key
	depth  uint8
}

// queueItem is one entry in the solver's min-heap, ordered by fscore.
type queueItem struct {
	key     encoding.Key
	depth   uint8
	fscore  float32
	index   int
}

type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].fscore != pq[j].fscore {
		return pq[i].fscore < pq[j].fscore
	}
	return pq[i].key.Less(pq[j].key)
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}
func (pq *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// Config bounds a solver run.
type Config struct {
	MaxDepth         uint8
	MaxFscore        float32
	FscoreDepthDelta float32
	MaxIters         int
	GameEndMode      game.GameEndMode
}

// DefaultConfig mirrors the shipped UI's defaults: generous enough to find
// most wins, bounded so a background worker always terminates a batch.
func DefaultConfig(mode game.GameEndMode) Config {
	return Config{
		MaxDepth:         200,
		MaxFscore:        1e9,
		FscoreDepthDelta: 0,
		MaxIters:         1 << 30,
		GameEndMode:      mode,
	}
}

// Solver is a single best-first search over pile states. It is
// not safe for concurrent use; the Worker (worker.go) owns a Solver and
// serialises access to it.
type Solver struct {
	cat     *game.Catalogue
	model   *heuristic.Model
	encoder *encoding.PileEncoder
	cfg     Config

	gBias, hBias float32

	seen    *orderedmap.OrderedMap[encoding.Key, seenEntry]
	queue   priorityQueue
	bestWin *encoding.Key
	iters   int
}

// New builds a solver for the given seed piles, all of which must share the
// same card-id multiset (the encoder's contract).
func New(cat *game.Catalogue, model *heuristic.Model, seeds []game.Pile, cfg Config) (*Solver, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("solver requires at least one seed pile")
	}
	enc, err := encoding.NewPileEncoder(seeds[0])
	if err != nil {
		return nil, err
	}
	s := &Solver{
		cat:     cat,
		model:   model,
		encoder: enc,
		cfg:     cfg,
		gBias:   1,
		hBias:   1,
		seen:    orderedmap.New[encoding.Key, seenEntry](),
	}
	heap.Init(&s.queue)
	for _, seed := range seeds {
		if err := s.insertSeed(seed); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Solver) insertSeed(p game.Pile) error {
	key, err := s.encoder.Encode(p)
	if err != nil {
		return err
	}
	s.seen.Set(key, seenEntry{depth: 0})
	heap.Push(&s.queue, &queueItem{key: key, depth: 0, fscore: s.fscore(p, 0)})
	return nil
}

// SetGBias implements the g/h-bias tradeoff: the two weights
// always sum to 2, so callers can trade breadth for depth without
// re-scaling either side independently.
func (s *Solver) SetGBias(g float32) {
	s.gBias = g
	s.hBias = 2 - g
}

func (s *Solver) fscore(p game.Pile, depth uint8) float32 {
	return s.gBias*float32(depth) + s.hBias*s.model.ScorePile(s.cat, p)
}

// BestWin returns the key of the best win found so far, if any.
func (s *Solver) BestWin() (encoding.Key, bool) {
	if s.bestWin == nil {
		return encoding.Key{}, false
	}
	return *s.bestWin, true
}

// SingleIter performs one iteration of the A* driver loop: pop the lowest
// f-score node, expand its neighbors, and push any improved successors.
func (s *Solver) SingleIter() IterResult {
	s.iters++
	if s.iters > s.cfg.MaxIters {
		return Done
	}
	if s.queue.Len() == 0 {
		return Done
	}
	top := heap.Pop(&s.queue).(*queueItem)
	if top.fscore > s.cfg.MaxFscore {
		return Done
	}

	entry, stillSeen := s.seen.Get(top.key)
	if !stillSeen {
		return Continue
	}
	if entry.depth+1 > s.cfg.MaxDepth-1 {
		return Continue
	}

	pile := s.encoder.Decode(top.key)
	result := Continue
	for _, trace := range game.ResolveTopCard(s.cat, pile) {
		outcome := game.Classify(s.cat, trace.Pile, s.cfg.GameEndMode)
		switch outcome {
		case game.Lose:
			continue
		case game.Win:
			if s.bestWin == nil || entry.depth+1 < s.bestDepth() {
				s.recordNewBest(top.key, entry.depth+1, trace.Pile)
				result = NewBest
			}
		default:
			s.relaxOrInsert(top.key, entry.depth+1, trace.Pile)
		}
	}
	return result
}

func (s *Solver) bestDepth() uint8 {
	if s.bestWin == nil {
		return s.cfg.MaxDepth
	}
	entry, _ := s.seen.Get(*s.bestWin)
	return entry.depth
}

// recordNewBest shrinks max_depth to the new win's depth, purges
// seen_states of anything at or past that depth, reinserts the win, and
// records it as the new best. Purging
// requires stable iteration order, which is why seen_states is an ordered
// map rather than a plain Go map.
func (s *Solver) recordNewBest(parent encoding.Key, depth uint8, winPile game.Pile) {
	winKey, err := s.encoder.Encode(winPile)
	if err != nil {
		return
	}
	s.cfg.MaxDepth = depth + 1

	for pair := s.seen.Oldest(); pair != nil; {
		next := pair.Next()
		if pair.Value.depth >= s.cfg.MaxDepth {
			s.seen.Delete(pair.Key)
		}
		pair = next
	}

	s.seen.Set(winKey, seenEntry{parent: &parent, depth: depth})
	s.bestWin = &winKey
	s.purgeQueueOfDepth(s.cfg.MaxDepth)
}

func (s *Solver) purgeQueueOfDepth(maxDepth uint8) {
	kept := make(priorityQueue, 0, len(s.queue))
	for _, item := range s.queue {
		if item.depth < maxDepth {
			kept = append(kept, item)
		}
	}
	s.queue = kept
	heap.Init(&s.queue)
}

// relaxOrInsert inserts a first-seen successor, or relaxes (updates parent
// + depth, re-enqueues) an existing one if the new path is strictly
// shorter.
func (s *Solver) relaxOrInsert(parent encoding.Key, depth uint8, successor game.Pile) {
	key, err := s.encoder.Encode(successor)
	if err != nil {
		return
	}
	if existing, ok := s.seen.Get(key); ok && existing.depth <= depth {
		return
	}
	s.seen.Set(key, seenEntry{parent: &parent, depth: depth})

	fs := s.fscore(successor, depth)
	if fs > s.cfg.MaxFscore {
		return
	}
	heap.Push(&s.queue, &queueItem{key: key, depth: depth, fscore: fs})
}

// BestPath walks parent pointers from best_win back to its seed and
// returns the piles in forward order.
func (s *Solver) BestPath() ([]game.Pile, bool) {
	if s.bestWin == nil {
		return nil, false
	}
	var chain []encoding.Key
	cur := *s.bestWin
	for {
		chain = append(chain, cur)
		entry, ok := s.seen.Get(cur)
		if !ok || entry.parent == nil {
			break
		}
		cur = *entry.parent
	}
	piles := make([]game.Pile, len(chain))
	for i, k := range chain {
		piles[len(chain)-1-i] = s.encoder.Decode(k)
	}
	return piles, true
}
