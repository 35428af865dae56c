package game

// GameEndMode selects which terminal-classification rule the oracle and the
// solver use.
type GameEndMode int

const (
	ModeStandard GameEndMode = iota
	ModePerHeroClass
)

func (m GameEndMode) String() string {
	if m == ModePerHeroClass {
		return "PerHeroClass"
	}
	return "Standard"
}

// Classify is the end-game oracle: it never looks at the activation
// engine, only at the pile's current faces.
func Classify(cat *Catalogue, p Pile, mode GameEndMode) WinType {
	switch mode {
	case ModePerHeroClass:
		return perHeroClassClassify(cat, p)
	default:
		return standardClassify(cat, p)
	}
}

// standard_check_is_game_winner: a single scan, Werewolf/Rat ignored.
func standardClassify(cat *Catalogue, p Pile) WinType {
	anyHeroAlive, anyMonsterAlive := false, false
	for _, ptr := range p {
		face := cat.ActiveFace(ptr)
		switch face.Allegiance {
		case Hero:
			if face.Health != HealthEmpty {
				anyHeroAlive = true
			}
		case Monster:
			if face.Health != HealthEmpty {
				anyMonsterAlive = true
			}
		}
	}
	if !anyHeroAlive {
		return Lose
	}
	if !anyMonsterAlive {
		return Win
	}
	return Unresolved
}

// perHeroClassClassify ports end_game.rs's per_class_game_resolution: Lose
// triggers per hero class independently of the other hero classes present.
func perHeroClassClassify(cat *Catalogue, p Pile) WinType {
	anyMonsterAlive := false
	classAlive := make(map[Class]bool)
	classSeen := make(map[Class]bool)
	for _, ptr := range p {
		def, _ := cat.Get(ptr.CardID)
		face := def.Face(ptr.Key)
		if face.Allegiance == Monster && face.Health != HealthEmpty {
			anyMonsterAlive = true
		}
		if face.Allegiance == Hero {
			classSeen[def.Class] = true
			if face.Health != HealthEmpty {
				classAlive[def.Class] = true
			}
		}
	}
	if !anyMonsterAlive {
		return Win
	}
	for class := range classSeen {
		if !classAlive[class] {
			return Lose
		}
	}
	return Unresolved
}

// OracleReport is the ClassifyVerbose supplement (SPEC_FULL.md): the same
// verdict plus the tallies that produced it, for the web oracle panel.
type OracleReport struct {
	Verdict       WinType
	Mode          GameEndMode
	HeroesAlive   int
	MonstersAlive int
	DeadClasses   []Class
}

// ClassifyVerbose classifies p and also reports the counts a UI panel would
// want to display alongside the verdict.
func ClassifyVerbose(cat *Catalogue, p Pile, mode GameEndMode) OracleReport {
	report := OracleReport{Mode: mode, Verdict: Classify(cat, p, mode)}
	classSeen := make(map[Class]bool)
	classAlive := make(map[Class]bool)
	for _, ptr := range p {
		def, _ := cat.Get(ptr.CardID)
		face := def.Face(ptr.Key)
		switch face.Allegiance {
		case Hero:
			classSeen[def.Class] = true
			if face.Health != HealthEmpty {
				report.HeroesAlive++
				classAlive[def.Class] = true
			}
		case Monster:
			if face.Health != HealthEmpty {
				report.MonstersAlive++
			}
		}
	}
	for class := range classSeen {
		if !classAlive[class] {
			report.DeadClasses = append(report.DeadClasses, class)
		}
	}
	return report
}
