package game

// ResolveTopCard is the activation engine's only entry point: resolve_top_card(pile) -> []Trace. The active card is always the
// one at index 0; every returned trace ends with the active card rotated to
// the tail and a BottomCard event appended, so the returned pile's index 0
// is always the next card to activate.
func ResolveTopCard(cat *Catalogue, pile Pile) []Trace {
	if len(pile) == 0 {
		mustNotHappen("resolve_top_card called on an empty pile")
	}
	active := cat.ActiveFace(pile[0])

	var traces []Trace
	if active.Allegiance == Hero {
		traces = resolveHero(cat, pile)
	} else {
		traces = resolveEnemy(cat, pile)
	}
	if len(traces) == 0 {
		mustNotHappen("activation produced no outcomes; SkipTurn must always be available for heroes and a skip row for enemies")
	}
	return finishActivations(traces)
}

// finishActivations appends BottomCard and rotates the top card to the tail
// of every trace, per the driver algorithm's closing step.
func finishActivations(traces []Trace) []Trace {
	out := make([]Trace, len(traces))
	for i, t := range traces {
		events := append(append([]Event{}, t.Events...), simpleEvent(EventBottomCard))
		out[i] = Trace{Pile: t.Pile.RotateToBottom(), Events: events}
	}
	return out
}

// --- hero resolution ---

func resolveHero(cat *Catalogue, pile Pile) []Trace {
	face := cat.ActiveFace(pile[0])
	traces := []Trace{{Pile: pile.Clone(), Events: []Event{simpleEvent(EventSkipTurn)}}}
	for _, row := range face.Rows {
		traces = append(traces, resolveHeroRow(cat, pile, row)...)
	}
	return traces
}

func resolveHeroRow(cat *Catalogue, pile Pile, row Row) []Trace {
	starts := rowCostChoices(cat, pile, row.Condition)
	var traces []Trace
	for _, start := range starts {
		frontier := []Trace{{Pile: start.pile, Events: append([]Event{simpleEvent(EventPickRow)}, start.events...)}}
		for _, wa := range row.Actions {
			var next []Trace
			for _, t := range frontier {
				next = append(next, expandHeroAction(cat, t, wa)...)
			}
			frontier = dedupeTraces(next)
		}
		if row.Mandatory != nil {
			for i, t := range frontier {
				p := t.Pile.Clone()
				p[0].Key = row.Mandatory.Apply(p[0].Key)
				frontier[i] = Trace{Pile: p, Events: t.Events}
			}
		}
		traces = append(traces, frontier...)
	}
	return traces
}

// expandHeroAction branches over every matching target, plus a SkipAction
// branch, applying any reachable piper modifiers along the way.
func expandHeroAction(cat *Catalogue, t Trace, wa WrappedAction) []Trace {
	if reason, suppressed := SpiderSuppressionReason(cat, t.Pile, 0, Hero, wa); suppressed {
		return []Trace{{Pile: t.Pile, Events: append(t.Events, Event{Kind: EventSkipAction, Reason: reason})}}
	}

	var out []Trace
	out = append(out, Trace{Pile: t.Pile, Events: append(append([]Event{}, t.Events...), Event{Kind: EventSkipAction, Reason: SkipChoice})})

	for _, mod := range modifierSubsets(cat, t.Pile, wa.Action) {
		branches := resolveActionForEveryTarget(cat, mod.pile, mod.action, wa.Target)
		for _, b := range branches {
			out = append(out, Trace{Pile: b.Pile, Events: append(append(append([]Event{}, t.Events...), mod.events...), b.Events...)})
		}
	}
	return out
}

func resolveActionForEveryTarget(cat *Catalogue, pile Pile, a Action, target Target) []Trace {
	active := cat.ActiveFace(pile[0])
	var out []Trace
	for i := 1; i < len(pile); i++ {
		if !IsMoveableTarget(cat, pile[i], active.Allegiance, target) {
			continue
		}
		out = append(out, applyAction(cat, pile, 0, i, a)...)
	}
	return out
}

// --- enemy / werewolf / rat resolution ---

func resolveEnemy(cat *Catalogue, pile Pile) []Trace {
	pile, swarmEvents := resolveSwarm(cat, pile)
	face := cat.ActiveFace(pile[0])

	for _, row := range face.Rows {
		if !rowConditionMet(cat, pile, row.Condition) {
			continue
		}
		trace, ok := resolveEnemyRow(cat, pile, row)
		if ok {
			trace.Events = append(append([]Event{}, swarmEvents...), trace.Events...)
			return []Trace{trace}
		}
	}
	return []Trace{{Pile: pile, Events: append(append([]Event{}, swarmEvents...), simpleEvent(EventSkipTurn))}}
}

// resolveEnemyRow collapses every action in the row to its single
// policy-determined target, with no branching. If nothing in the row fires
// and it isn't is_mandatory, the row is rejected.
func resolveEnemyRow(cat *Catalogue, pile Pile, row Row) (Trace, bool) {
	t := Trace{Pile: pile.Clone(), Events: []Event{simpleEvent(EventPickRow)}}
	anyEffect := false
	for _, wa := range row.Actions {
		next, fired := resolveEnemyAction(cat, t, wa)
		t = next
		if fired {
			anyEffect = true
		}
	}
	if !anyEffect && !row.IsMandatory {
		return Trace{}, false
	}
	if row.Mandatory != nil {
		p := t.Pile.Clone()
		p[0].Key = row.Mandatory.Apply(p[0].Key)
		t.Pile = p
	}
	return t, true
}

// resolveEnemyAction picks the single policy-determined target for wa and
// applies it, or leaves the trace unchanged (fired=false) if suppressed or
// no legal target exists.
func resolveEnemyAction(cat *Catalogue, t Trace, wa WrappedAction) (Trace, bool) {
	if reason, suppressed := SpiderSuppressionReason(cat, t.Pile, 0, cat.ActiveFace(t.Pile[0]).Allegiance, wa); suppressed {
		return Trace{Pile: t.Pile, Events: append(append([]Event{}, t.Events...), Event{Kind: EventSkipAction, Reason: reason})}, false
	}

	idx := pickEnemyTarget(cat, t.Pile, wa)
	if idx < 0 {
		return Trace{Pile: t.Pile, Events: append(append([]Event{}, t.Events...), Event{Kind: EventSkipAction, Reason: SkipNoOption})}, false
	}

	mods := modifierSubsets(cat, t.Pile, wa.Action)
	mod := mods[len(mods)-1] // enemy policy commits to the richest (last-enumerated) reachable subset
	branches := applyAction(cat, mod.pile, 0, idx, mod.action)
	if len(branches) == 0 {
		return Trace{Pile: t.Pile, Events: append(append([]Event{}, t.Events...), Event{Kind: EventSkipAction, Reason: SkipNoOption})}, false
	}
	chosen := branches[0]
	events := append(append(append([]Event{}, t.Events...), mod.events...), chosen.Events...)
	return Trace{Pile: chosen.Pile, Events: events}, true
}

// pickEnemyTarget implements the enemy "target policy per action" table:
// index of the single card the action resolves against, or -1.
func pickEnemyTarget(cat *Catalogue, pile Pile, wa WrappedAction) int {
	active := cat.ActiveFace(pile[0])
	switch wa.Action.Kind {
	case ActionHit, ActionClaws, ActionSpacedClaws, ActionFireball, ActionAblaze, ActionArrow,
		ActionVoid, ActionDeath, ActionBackstab, ActionPoison:
		for i := 1; i < len(pile); i++ {
			if IsMoveableTarget(cat, pile[i], active.Allegiance, wa.Target) && CanBeDamaged(cat, pile, i) && withinRange(i, wa.Action.Range) {
				return i
			}
		}
	case ActionPull, ActionTeleport:
		best := -1
		for i := 1; i < len(pile); i++ {
			if IsMoveableTarget(cat, pile[i], active.Allegiance, wa.Target) && withinRange(i, wa.Action.Range) {
				best = i
			}
		}
		return best
	case ActionPush:
		for i := 1; i < len(pile); i++ {
			if IsMoveableTarget(cat, pile[i], active.Allegiance, wa.Target) && withinRange(i, wa.Action.Range.WithModifier(-1)) {
				return i
			}
		}
	case ActionQuicken, ActionDelay:
		for i := 1; i < len(pile); i++ {
			if IsMoveableTarget(cat, pile[i], active.Allegiance, wa.Target) {
				return i
			}
		}
	case ActionHeal, ActionRevive:
		wantHealth := HealthHalf
		if wa.Action.Kind == ActionRevive {
			wantHealth = HealthEmpty
		}
		return FindFirstMatch(cat, pile, 1, active.Allegiance, wa.Target, wantHealth)
	case ActionInspire:
		for i := 1; i < len(pile); i++ {
			if IsMoveableTarget(cat, pile[i], active.Allegiance, wa.Target) {
				return i
			}
		}
	default:
		for i := 1; i < len(pile); i++ {
			if IsMoveableTarget(cat, pile[i], active.Allegiance, wa.Target) {
				return i
			}
		}
	}
	return -1
}

func withinRange(distance int, r Range) bool {
	if r.Infinite {
		return true
	}
	return distance <= r.N
}
