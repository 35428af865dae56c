package game

import "testing"

func mustResolve(t *testing.T, cat *Catalogue, pile Pile) []Trace {
	t.Helper()
	traces := ResolveTopCard(cat, pile)
	if len(traces) == 0 {
		t.Fatalf("ResolveTopCard returned no traces for %s", FormatPile(pile))
	}
	return traces
}

// A basic Hit row lets the hero choose among every legal target, always
// including the SkipTurn branch.
func TestBasicHitChoice(t *testing.T) {
	cat := DefaultCatalogue()
	pile := p(ptr(1, FaceA), ptr(4, FaceA)) // paladinApprentice vs ogreGrunt
	traces := mustResolve(t, cat, pile)

	var sawSkip, sawHit bool
	for _, tr := range traces {
		kinds := eventKinds(tr)
		if containsKind(kinds, EventSkipTurn) {
			sawSkip = true
		}
		if containsKind(kinds, EventDamage) {
			sawHit = true
		}
	}
	if !sawSkip {
		t.Error("expected a SkipTurn branch among the hero's outcomes")
	}
	if !sawHit {
		t.Error("expected a Damage branch among the hero's outcomes")
	}
	for _, tr := range traces {
		if len(tr.Pile) != len(pile) {
			t.Fatalf("trace pile length changed: got %d want %d", len(tr.Pile), len(pile))
		}
		if !containsKind(eventKinds(tr), EventBottomCard) {
			t.Error("every trace must end with a BottomCard event")
		}
	}
}

// Hitting a monster with a Block reaction is forced: the only outcome for an
// enemy target is the reaction, never straight damage.
func TestForcedEnemyBlock(t *testing.T) {
	cat := DefaultCatalogue()
	pile := p(ptr(1, FaceA), ptr(5, FaceA)) // paladinApprentice hits ogreShieldbearer
	traces := mustResolve(t, cat, pile)

	for _, tr := range traces {
		kinds := eventKinds(tr)
		if containsKind(kinds, EventAttackCard) && containsKind(kinds, EventDamage) {
			t.Errorf("a Block reaction must suppress damage, got trace with both: %v", kinds)
		}
	}
	var sawBlock bool
	for _, tr := range traces {
		if containsKind(eventKinds(tr), EventBlock) {
			sawBlock = true
		}
	}
	if !sawBlock {
		t.Error("expected at least one Block branch against a Block-reaction monster")
	}
}

// A Dodge-reaction monster behaves the same way for the Dodge trigger.
func TestForcedEnemyDodge(t *testing.T) {
	cat := DefaultCatalogue()
	pile := p(ptr(1, FaceA), ptr(6, FaceA)) // paladinApprentice hits vampireThrall
	traces := mustResolve(t, cat, pile)

	var sawDodge bool
	for _, tr := range traces {
		kinds := eventKinds(tr)
		if containsKind(kinds, EventAttackCard) {
			if containsKind(kinds, EventDodge) {
				sawDodge = true
			}
			if containsKind(kinds, EventDamage) {
				t.Errorf("a Dodge reaction must suppress damage, got trace with both: %v", kinds)
			}
		}
	}
	if !sawDodge {
		t.Error("expected at least one Dodge branch against a Dodge-reaction monster")
	}
}

// Pulling a Hero through an enemy Trap card triggers the trap along the way.
func TestPullOverTrap(t *testing.T) {
	cat := DefaultCatalogue()
	pile := p(ptr(6, FaceA), ptr(9, FaceA), ptr(1, FaceA)) // vampireThrall pulls paladinApprentice through trapConstruct
	traces := mustResolve(t, cat, pile)

	var sawTrapDamage bool
	for _, tr := range traces {
		for _, e := range tr.Events {
			if e.Kind == EventDamage && e.HitType == HitTrap {
				sawTrapDamage = true
			}
		}
	}
	if !sawTrapDamage {
		t.Error("expected a trap-triggered Damage event among Pull's outcomes")
	}
}

// Inspire recursively activates the target in place.
func TestInspireRecursivelyActivates(t *testing.T) {
	cat := DefaultCatalogue()
	pile := p(ptr(12, FaceA), ptr(1, FaceA)) // huntressPacksister inspires paladinApprentice
	traces := mustResolve(t, cat, pile)

	var sawInspire bool
	for _, tr := range traces {
		if containsKind(eventKinds(tr), EventInspire) {
			sawInspire = true
		}
	}
	if !sawInspire {
		t.Error("expected an Inspire event among the hero's outcomes")
	}
}

// A swarm-eligible Rat directly behind an activating Rat pre-activates
// before the main row resolves.
func TestSwarmPreActivation(t *testing.T) {
	cat := DefaultCatalogue()
	pile := p(ptr(14, FaceA), ptr(15, FaceA), ptr(1, FaceA))
	traces := mustResolve(t, cat, pile)

	for _, tr := range traces {
		if !containsKind(eventKinds(tr), EventSwarm) {
			t.Fatalf("expected every trace to record the contiguous swarm pre-activation, got %v", eventKinds(tr))
		}
	}
}

// Every ResolveTopCard trace preserves the pile's card-id multiset and
// length, and always rotates the active card to the tail.
func TestResolveTopCardPreservesMultiset(t *testing.T) {
	cat := DefaultCatalogue()
	piles := []Pile{
		p(ptr(1, FaceA), ptr(4, FaceA), ptr(7, FaceA)),
		p(ptr(17, FaceA), ptr(1, FaceA), ptr(2, FaceA)),
	}
	for _, pile := range piles {
		for _, tr := range mustResolve(t, cat, pile) {
			if len(tr.Pile) != len(pile) {
				t.Errorf("pile length changed for %s: got %d want %d", FormatPile(pile), len(tr.Pile), len(pile))
			}
			before := map[CardId]int{}
			for _, c := range pile {
				before[c.CardID]++
			}
			after := map[CardId]int{}
			for _, c := range tr.Pile {
				after[c.CardID]++
			}
			for id, n := range before {
				if after[id] != n {
					t.Errorf("card id %d count changed: got %d want %d", id, after[id], n)
				}
			}
		}
	}
}
