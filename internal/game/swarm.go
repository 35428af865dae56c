package game

// resolveSwarm pre-activates every contiguous swarm-eligible ally directly
// behind the active card, one position at a
// time: each eligible ally's swarm row is resolved as if it were itself the
// active card (the same rotate/resolve/unrotate trick as Inspire), then the
// walk advances past it so each position is only ever swarmed once.
func resolveSwarm(cat *Catalogue, pile Pile) (Pile, []Event) {
	var events []Event
	for offset := 1; offset < len(pile); offset++ {
		active := cat.ActiveFace(pile[0])
		next := cat.ActiveFace(pile[offset])
		if next.Swarm == nil || next.Allegiance != active.Allegiance {
			break
		}

		rotated := make(Pile, len(pile))
		copy(rotated, pile[offset:])
		copy(rotated[len(pile)-offset:], pile[:offset])

		trace, ok := resolveEnemyRow(cat, rotated, *next.Swarm)
		if !ok {
			break
		}

		unrotated := make(Pile, len(pile))
		copy(unrotated[offset:], trace.Pile[:len(pile)-offset])
		copy(unrotated[:offset], trace.Pile[len(pile)-offset:])

		events = append(events, simpleEvent(EventSwarm))
		events = append(events, trace.Events...)
		pile = unrotated
	}
	return pile, events
}

// --- piper modifier subset enumeration ---

type modifiedAction struct {
	pile   Pile
	action Action
	events []Event
}

// modifierSubsets enumerates every subset of reachable Modifier-bearing
// cards behind the active one, applying each subset's mandatory self-actions
// and summing their amounts into a's range/count. The empty subset (no
// modifiers applied) is always included first.
func modifierSubsets(cat *Catalogue, pile Pile, a Action) []modifiedAction {
	if ModifierRangeKindFor(a) == ModifierNone {
		return []modifiedAction{{pile: pile, action: a}}
	}
	var bearers []int
	for i := 1; i < len(pile); i++ {
		if cat.ActiveFace(pile[i]).Modifier != nil {
			bearers = append(bearers, i)
		}
	}
	if len(bearers) == 0 {
		return []modifiedAction{{pile: pile, action: a}}
	}

	out := []modifiedAction{{pile: pile, action: a}}
	total := 1 << len(bearers)
	for mask := 1; mask < total; mask++ {
		p := pile.Clone()
		amount := 0
		for bit, idx := range bearers {
			if mask&(1<<bit) == 0 {
				continue
			}
			mod := cat.ActiveFace(pile[idx]).Modifier
			amount += mod.Amount
			if mod.Mandatory != nil {
				p[idx].Key = mod.Mandatory.Apply(p[idx].Key)
			}
		}
		out = append(out, modifiedAction{
			pile:   p,
			action: a.WithModifiedRange(amount),
			events: []Event{simpleEvent(EventUseCardModifiers)},
		})
	}
	return out
}
