package game

import "fmt"

// EventKind enumerates the observable-fact vocabulary a trace records
//. Events are append-only; nothing is ever removed from a trace.
type EventKind int

const (
	EventPickRow EventKind = iota
	EventSkipTurn
	EventSkipAction
	EventStartAction
	EventAttackCard
	EventDamage
	EventMoveTarget
	EventMoveBy
	EventMoveResult
	EventBlock
	EventDodge
	EventOnHurt
	EventHeal
	EventRevive
	EventPush
	EventPull
	EventTeleport
	EventSwarm
	EventInspire
	EventFireballTarget
	EventAblaze
	EventVoid
	EventDeath
	EventManeuver
	EventPayRowConditionCosts
	EventUseActionAssistCard
	EventUseActionAssistRow
	EventReactAssistUsed
	EventEndPileMoveResult
	EventHypnosis
	EventRat
	EventBottomCard
	EventUseCardModifiers
	EventWhiffHit
	EventSkipHit
)

func (k EventKind) String() string {
	names := [...]string{
		"PickRow", "SkipTurn", "SkipAction", "StartAction", "AttackCard", "Damage",
		"MoveTarget", "MoveBy", "MoveResult", "Block", "Dodge", "OnHurt", "Heal",
		"Revive", "Push", "Pull", "Teleport", "Swarm", "Inspire", "FireballTarget",
		"Ablaze", "Void", "Death", "Maneuver", "PayRowConditionCosts",
		"UseActionAssistCard", "UseActionAssistRow", "ReactAssistUsed",
		"EndPileMoveResult", "Hypnosis", "Rat", "BottomCard", "UseCardModifiers",
		"WhiffHit", "SkipHit",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Event is one observable game fact. Only the fields relevant to Kind are
// meaningful; the rest are zero. This keeps the event vocabulary flat
// record rather than one struct type per kind, keeping traces cheap to copy.
type Event struct {
	Kind      EventKind
	CardIdx   int
	TargetIdx int
	Reason    SkipActionReason
	HitType   HitType
	Amount    int
	Action    ActionKind
}

func (e Event) String() string {
	switch e.Kind {
	case EventSkipAction:
		return fmt.Sprintf("SkipAction(%s)", e.Reason)
	case EventAttackCard, EventDamage:
		return fmt.Sprintf("%s(target=%d,hit=%s)", e.Kind, e.TargetIdx, e.HitType)
	case EventMoveTarget, EventMoveBy, EventMoveResult, EventPush, EventPull, EventTeleport:
		return fmt.Sprintf("%s(target=%d,amount=%d)", e.Kind, e.TargetIdx, e.Amount)
	default:
		return e.Kind.String()
	}
}

// Trace pairs a resulting pile with the ordered events that produced it
//. The zero value's Events may be empty for solver-internal
// traces that only need the resulting pile.
type Trace struct {
	Pile   Pile
	Events []Event
}

func simpleEvent(k EventKind) Event { return Event{Kind: k} }

// dedupeTraces is the inter-action dedupe hook: it
// collapses traces that already share a resulting pile, keeping the first
// one seen. Folding actions left-to-right calls this
// between steps so later actions don't re-explore an already-visited state.
func dedupeTraces(traces []Trace) []Trace {
	seen := make(map[string]bool, len(traces))
	out := make([]Trace, 0, len(traces))
	for _, t := range traces {
		key := FormatPile(t.Pile)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
