package game

// --- row preconditions ---

type costChoice struct {
	pile   Pile
	events []Event
}

// rowCostChoices branches over every legal way to satisfy row.Condition,
// returning the pile (with cost-payers rotated) and a PayRowConditionCosts
// event for each. A nil condition yields exactly one no-op choice.
func rowCostChoices(cat *Catalogue, pile Pile, cond *Condition) []costChoice {
	if cond == nil || cond.Kind != ConditionEnergy {
		if rowConditionMet(cat, pile, cond) {
			return []costChoice{{pile: pile.Clone()}}
		}
		return nil
	}

	var energyIdx []int
	for i := 1; i < len(pile); i++ {
		if cat.ActiveFace(pile[i]).Features.Has(FeatureEnergy) {
			energyIdx = append(energyIdx, i)
		}
	}
	var out []costChoice
	for _, combo := range combinations(energyIdx, cond.Count) {
		p := pile.Clone()
		for _, idx := range combo {
			p[idx].Key = RotateKey(p[idx].Key)
		}
		out = append(out, costChoice{pile: p, events: []Event{simpleEvent(EventPayRowConditionCosts)}})
	}
	return out
}

func combinations(items []int, k int) [][]int {
	if k <= 0 {
		return [][]int{{}}
	}
	if k > len(items) {
		return nil
	}
	var out [][]int
	var pick func(start int, chosen []int)
	pick = func(start int, chosen []int) {
		if len(chosen) == k {
			out = append(out, append([]int{}, chosen...))
			return
		}
		for i := start; i < len(items); i++ {
			pick(i+1, append(chosen, items[i]))
		}
	}
	pick(0, nil)
	return out
}

// rowConditionMet evaluates preconditions that don't need combinatorial
// branching: rage threshold, exhausted-ally count, stance, troupe.
func rowConditionMet(cat *Catalogue, pile Pile, cond *Condition) bool {
	if cond == nil {
		return true
	}
	active := cat.ActiveFace(pile[0])
	switch cond.Kind {
	case ConditionRage:
		sum := 0
		for i := 1; i < len(pile); i++ {
			face := cat.ActiveFace(pile[i])
			if face.Allegiance == active.Allegiance {
				sum += face.Rage
			}
		}
		return sum >= cond.Count
	case ConditionExhaustedAllies:
		n := 0
		for i := 1; i < len(pile); i++ {
			face := cat.ActiveFace(pile[i])
			if face.Allegiance == active.Allegiance && face.Health == HealthEmpty {
				n++
			}
		}
		return n >= cond.Count
	case ConditionStance:
		def, _ := cat.Get(pile[0].CardID)
		return def.Class == cond.Class
	case ConditionTroupe:
		n := 0
		for i := 1; i < len(pile); i++ {
			def, _ := cat.Get(pile[i].CardID)
			if def.Class == cond.Class {
				n++
			}
		}
		return n >= cond.Count
	default:
		return true
	}
}
