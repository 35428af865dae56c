package game

// moveTarget steps targetIdx by delta positions one step at a time,
// handling Roll reactions and Trap triggers along the way (a Trap card fires
// on any mover whose allegiance differs from its own).
func moveTarget(cat *Catalogue, pile Pile, targetIdx, delta int, prefix []Event, kind EventKind) []Trace {
	if delta == 0 {
		return []Trace{{Pile: pile, Events: append(append([]Event{}, prefix...), simpleEvent(EventWhiffHit))}}
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	return moveStep(cat, pile, targetIdx, delta, step, prefix, kind)
}

func moveStep(cat *Catalogue, pile Pile, idx, remaining, step int, prefix []Event, kind EventKind) []Trace {
	dest := idx + step
	if dest < 0 || dest >= len(pile) || remaining == 0 {
		return []Trace{{Pile: pile, Events: append(append([]Event{}, prefix...), Event{Kind: kind, TargetIdx: idx})}}
	}

	swappedOver := cat.ActiveFace(pile[dest])
	moved := pile.Clone()
	moved[idx], moved[dest] = moved[dest], moved[idx]
	events := append(append([]Event{}, prefix...), Event{Kind: EventMoveResult, TargetIdx: dest})

	var out []Trace
	stop := false
	if swappedOver.Reaction != nil && swappedOver.Reaction.Kind == ReactionRoll {
		rollTrace := damageTrace(cat, moved, idx, HitRoll, events)
		out = append(out, rollTrace)
		stop = true
	}
	mover := cat.ActiveFace(moved[dest])
	if swappedOver.Features.Has(FeatureTrap) && mover.Allegiance != swappedOver.Allegiance {
		trapTrace := damageTrace(cat, moved, dest, HitTrap, events)
		out = append(out, trapTrace)
		if mover.Features.Has(FeatureWeight | FeatureInvulnerable) {
			stop = true
		}
	}
	if stop {
		if len(out) == 0 {
			out = append(out, Trace{Pile: moved, Events: events})
		}
		return out
	}

	continued := moveStep(cat, moved, dest, remaining-step*step, step, events, kind)
	return append(out, continued...)
}
