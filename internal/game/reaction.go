package game

// --- action application, shared by hero (all targets) and enemy (one target) ---

// applyAction applies a to the card at targetIdx, returning every distinct
// outcome trace (a hit may branch into block/dodge/no-reaction; a move may
// branch by step; most other actions yield exactly one outcome).
func applyAction(cat *Catalogue, pile Pile, activeIdx, targetIdx int, a Action) []Trace {
	base := Trace{Pile: pile, Events: []Event{{Kind: EventStartAction, Action: a.Kind}}}
	switch a.Kind {
	case ActionHit, ActionClaws, ActionSpacedClaws, ActionArrow, ActionFireball, ActionAblaze,
		ActionBackstab, ActionPoison, ActionVoid, ActionDeath:
		return resolveHit(cat, pile, activeIdx, targetIdx, hitTypeFor(a.Kind), base.Events)
	case ActionPull:
		return moveTarget(cat, pile, targetIdx, -stepCount(a), base.Events, EventPull)
	case ActionPush:
		return moveTarget(cat, pile, targetIdx, stepCount(a), base.Events, EventPush)
	case ActionQuicken:
		return moveTarget(cat, pile, targetIdx, -a.Count, base.Events, EventMoveResult)
	case ActionDelay:
		return moveTarget(cat, pile, targetIdx, a.Count, base.Events, EventMoveResult)
	case ActionHeal:
		return healTarget(pile, targetIdx, base.Events)
	case ActionRevive:
		return reviveTarget(pile, targetIdx, base.Events)
	case ActionInspire:
		inspired := append(append([]Event{}, base.Events...), Event{Kind: EventInspire, TargetIdx: targetIdx})
		return resolveInspire(cat, pile, targetIdx, inspired)
	case ActionTeleport:
		return moveTarget(cat, pile, targetIdx, len(pile)-1-targetIdx, base.Events, EventTeleport)
	default:
		// Maneuver, CallAssist, CallAssistTwice, Rats, Hypnosis: a single
		// self-action-flavoured effect with no further branching.
		return []Trace{{Pile: pile, Events: base.Events}}
	}
}

func hitTypeFor(k ActionKind) HitType {
	switch k {
	case ActionArrow:
		return HitArrow
	case ActionFireball:
		return HitFireball
	case ActionAblaze:
		return HitAblaze
	case ActionBackstab:
		return HitBackstab
	case ActionPoison:
		return HitPoison
	case ActionClaws, ActionSpacedClaws:
		return HitClaw
	default:
		return HitNormal
	}
}

func stepCount(a Action) int {
	if a.Range.Infinite {
		return 127
	}
	return a.Range.N
}

// resolveHit applies reaction resolution before damage: a
// Standard Block/Dodge reaction, forced when the victim isn't a Hero,
// optional (branch to take the hit anyway) when it is.
func resolveHit(cat *Catalogue, pile Pile, activeIdx, targetIdx int, ht HitType, prefix []Event) []Trace {
	targetFace := cat.ActiveFace(pile[targetIdx])
	attackEvent := append(append([]Event{}, prefix...), Event{Kind: EventAttackCard, TargetIdx: targetIdx, HitType: ht})

	if !CanBeDamaged(cat, pile, targetIdx) {
		return []Trace{{Pile: pile, Events: append(attackEvent, simpleEvent(EventWhiffHit))}}
	}

	var out []Trace
	reacted := false
	if targetFace.Reaction != nil && targetFace.Reaction.Kind == ReactionStandard {
		reactKind := EventBlock
		if targetFace.Reaction.Trigger == TriggerDodge {
			reactKind = EventDodge
		}
		p := pile.Clone()
		if targetFace.Reaction.Outcome != nil {
			p[targetIdx].Key = targetFace.Reaction.Outcome.Apply(p[targetIdx].Key)
		}
		out = append(out, Trace{Pile: p, Events: append(append([]Event{}, attackEvent...), simpleEvent(reactKind))})
		reacted = true
	}
	if targetFace.Reaction != nil && targetFace.Reaction.Kind == ReactionWhenHit {
		sub, _ := resolveEnemyRow(cat, pile.WithFace(0, pile[targetIdx].Key), *targetFace.Reaction.WhenHitRow)
		out = append(out, Trace{Pile: sub.Pile, Events: append(append(append([]Event{}, attackEvent...), simpleEvent(EventOnHurt)), sub.Events...)})
		reacted = true
	}

	optionalSkip := targetFace.Allegiance == Hero
	if !reacted || optionalSkip {
		out = append(out, damageTrace(cat, pile, targetIdx, ht, attackEvent))
	}
	return out
}

// damageTrace moves the target to a lower-health face, or degrades to a
// WhiffHit if it's already at Empty health (e.g. a trap or roll reaction
// triggered by a card that's already defeated) — there's no lower face to
// branch into, but that's an ordinary pile state, not a programmer error.
func damageTrace(cat *Catalogue, pile Pile, targetIdx int, ht HitType, prefix []Event) Trace {
	hurt := FindHurtFaces(cat, pile[targetIdx])
	if len(hurt) == 0 {
		return Trace{Pile: pile, Events: append(append([]Event{}, prefix...), simpleEvent(EventWhiffHit))}
	}
	p := pile.Clone()
	p[targetIdx].Key = hurt[0]
	return Trace{Pile: p, Events: append(append([]Event{}, prefix...), Event{Kind: EventDamage, TargetIdx: targetIdx, HitType: ht})}
}

func healTarget(pile Pile, targetIdx int, prefix []Event) []Trace {
	p := pile.Clone()
	p[targetIdx].Key = RotateKey(p[targetIdx].Key)
	return []Trace{{Pile: p, Events: append(append([]Event{}, prefix...), Event{Kind: EventHeal, TargetIdx: targetIdx})}}
}

func reviveTarget(pile Pile, targetIdx int, prefix []Event) []Trace {
	p := pile.Clone()
	p[targetIdx].Key = FlipKey(p[targetIdx].Key)
	return []Trace{{Pile: p, Events: append(append([]Event{}, prefix...), Event{Kind: EventRevive, TargetIdx: targetIdx})}}
}

// resolveInspire recursively activates the inspired ally in place, as
// the enemy Inspire policy describes; applied uniformly for
// hero-branched Inspire targets too.
func resolveInspire(cat *Catalogue, pile Pile, targetIdx int, prefix []Event) []Trace {
	rotated := make(Pile, len(pile))
	copy(rotated, pile[targetIdx:])
	copy(rotated[len(pile)-targetIdx:], pile[:targetIdx])

	sub := ResolveTopCard(cat, rotated)
	out := make([]Trace, len(sub))
	for i, t := range sub {
		unrotated := make(Pile, len(pile))
		copy(unrotated[targetIdx:], t.Pile[:len(pile)-targetIdx])
		copy(unrotated[:targetIdx], t.Pile[len(pile)-targetIdx:])
		out[i] = Trace{Pile: unrotated, Events: append(append([]Event{}, prefix...), t.Events...)}
	}
	return out
}
