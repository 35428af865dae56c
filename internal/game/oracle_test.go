package game

import "testing"

func TestStandardClassify(t *testing.T) {
	cat := DefaultCatalogue()

	tests := []struct {
		name string
		pile Pile
		want WinType
	}{
		{
			name: "hero and monster both alive is unresolved",
			pile: p(ptr(1, FaceA), ptr(4, FaceA)),
			want: Unresolved,
		},
		{
			name: "monster dead, hero alive is a win",
			pile: p(ptr(1, FaceA), ptr(4, FaceD)),
			want: Win,
		},
		{
			name: "hero dead, monster alive is a loss",
			pile: p(ptr(1, FaceD), ptr(4, FaceA)),
			want: Lose,
		},
		{
			name: "werewolves and rats are neutral to the standard oracle",
			pile: p(ptr(13, FaceA), ptr(14, FaceA)),
			want: Lose, // no hero present at all counts as no hero alive
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(cat, tt.pile, ModeStandard); got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", FormatPile(tt.pile), got, tt.want)
			}
		})
	}
}

func TestPerHeroClassClassify(t *testing.T) {
	cat := DefaultCatalogue()

	// Paladin (id 1) and Huntress (id 2) both alive alongside a live monster:
	// neither class has been wiped out yet, so the outcome is unresolved.
	unresolved := p(ptr(1, FaceA), ptr(2, FaceA), ptr(4, FaceA))
	if got := Classify(cat, unresolved, ModePerHeroClass); got != Unresolved {
		t.Errorf("Classify(%s, PerHeroClass) = %v, want Unresolved", FormatPile(unresolved), got)
	}

	// Paladin wiped out while Huntress survives and a monster is still up:
	// per-class resolution loses as soon as any seen class is fully dead.
	paladinWiped := p(ptr(1, FaceD), ptr(2, FaceA), ptr(4, FaceA))
	if got := Classify(cat, paladinWiped, ModePerHeroClass); got != Lose {
		t.Errorf("Classify(%s, PerHeroClass) = %v, want Lose", FormatPile(paladinWiped), got)
	}

	// No monster alive and every seen hero class has a live member: a win.
	allMonstersDead := p(ptr(1, FaceA), ptr(2, FaceA), ptr(4, FaceD))
	if got := Classify(cat, allMonstersDead, ModePerHeroClass); got != Win {
		t.Errorf("Classify(%s, PerHeroClass) = %v, want Win", FormatPile(allMonstersDead), got)
	}

	// No monster alive wins outright even when the only seen hero class is
	// also dead: "no Monster alive" is checked before any per-class dead
	// check, not after.
	bothAllDead := p(ptr(1, FaceD), ptr(4, FaceD))
	if got := Classify(cat, bothAllDead, ModePerHeroClass); got != Win {
		t.Errorf("Classify(%s, PerHeroClass) = %v, want Win", FormatPile(bothAllDead), got)
	}
}

func TestClassifyVerboseTallies(t *testing.T) {
	cat := DefaultCatalogue()
	pile := p(ptr(1, FaceA), ptr(2, FaceD), ptr(4, FaceA))

	report := ClassifyVerbose(cat, pile, ModePerHeroClass)
	if report.Mode != ModePerHeroClass {
		t.Errorf("report.Mode = %v, want ModePerHeroClass", report.Mode)
	}
	if report.HeroesAlive != 1 {
		t.Errorf("report.HeroesAlive = %d, want 1", report.HeroesAlive)
	}
	if report.MonstersAlive != 1 {
		t.Errorf("report.MonstersAlive = %d, want 1", report.MonstersAlive)
	}
	if len(report.DeadClasses) != 1 || report.DeadClasses[0] != ClassHuntress {
		t.Errorf("report.DeadClasses = %v, want [ClassHuntress]", report.DeadClasses)
	}
	if report.Verdict != Lose {
		t.Errorf("report.Verdict = %v, want Lose (Huntress class wiped while a monster lives)", report.Verdict)
	}
}

func TestGameEndModeString(t *testing.T) {
	if ModeStandard.String() != "Standard" {
		t.Errorf("ModeStandard.String() = %q, want %q", ModeStandard.String(), "Standard")
	}
	if ModePerHeroClass.String() != "PerHeroClass" {
		t.Errorf("ModePerHeroClass.String() = %q, want %q", ModePerHeroClass.String(), "PerHeroClass")
	}
}
