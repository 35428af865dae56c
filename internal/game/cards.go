package game

// DefaultCatalogue returns the sample card set this module ships with.
// It exercises block, dodge, swarm, traps, web/venom suppression, piper
// modifiers and multi-step movement. Card 18 declares an assist reaction,
// which the engine does not resolve, and no card carries a WhenHit or Roll
// reaction. It is not a full 127-card roster; a
// deployment with its own card database builds one the same way, data-
// driven against this same read-only registry shape.
func DefaultCatalogue() *Catalogue {
	return BuildCatalogue([]*CardDef{
		paladinApprentice(),  // 1: plain hero, single Hit row
		huntressScout(),      // 2: hero with Quicken/Delay rows
		pyroInitiate(),       // 3: hero with Fireball/Ablaze
		ogreGrunt(),          // 4: monster, simple Hit row, no reaction
		ogreShieldbearer(),   // 5: monster with a Block reaction
		vampireThrall(),      // 6: monster with a Dodge reaction, Pull row
		spiderWeaver(),       // 7: monster carrying the Web feature
		demonLeech(),         // 8: monster carrying the Venom feature
		trapConstruct(),      // 9: monster carrying Trap
		wallSentry(),         // 10: Wall/Invulnerable monster
		beastmasterRanger(),  // 11: hero with Heal/Revive rows
		huntressPacksister(), // 12: hero with Inspire row
		werewolfPup(),        // 13: Werewolf allegiance, swarm-eligible
		ratSwarmling1(),      // 14: Rat allegiance, swarm-eligible
		ratSwarmling2(),      // 15: Rat allegiance, swarm-eligible
		piperOfPayne(),       // 16: monster granting a Modifier
		ogreBrute(),          // 17: monster with Push row
		paladinAssistant(),   // 18: hero that provides an assist reaction
		vampireCaller(),      // 19: hero with CallAssist rows
		demonPoisoner(),      // 20: monster with Poison/Backstab rows
	})
}

func face(allegiance Allegiance, health Health, features Features) FaceDef {
	return FaceDef{Allegiance: allegiance, Health: health, Features: features}
}

func paladinApprentice() *CardDef {
	a := face(Hero, HealthFull, FeatureNone)
	a.Rows = []Row{NewRow().Action(Hit(Infinity()), TargetAny).Build()}
	b := face(Hero, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Hit(Int(2)), TargetAny).Build()}
	c := face(Hero, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Hero, HealthEmpty, FeatureNone)
	return &CardDef{ID: 1, Class: ClassPaladin, Faces: [4]FaceDef{a, b, c, d}}
}

func huntressScout() *CardDef {
	a := face(Hero, HealthFull, FeatureNone)
	a.Rows = []Row{
		NewRow().Action(Quicken(3), TargetEnemy).Build(),
		NewRow().Action(Hit(Int(1)), TargetAny).Build(),
	}
	b := face(Hero, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Delay(2), TargetEnemy).Build()}
	c := face(Hero, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Hero, HealthEmpty, FeatureNone)
	return &CardDef{ID: 2, Class: ClassHuntress, Faces: [4]FaceDef{a, b, c, d}}
}

func pyroInitiate() *CardDef {
	a := face(Hero, HealthFull, FeatureNone)
	a.Rows = []Row{NewRow().Action(Fireball(), TargetEnemy).Build()}
	b := face(Hero, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Ablaze(), TargetEnemy).Build()}
	c := face(Hero, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Hero, HealthEmpty, FeatureNone)
	return &CardDef{ID: 3, Class: ClassPyro, Faces: [4]FaceDef{a, b, c, d}}
}

func ogreGrunt() *CardDef {
	a := face(Monster, HealthFull, FeatureNone)
	a.Rows = []Row{NewRow().Action(Hit(Infinity()), TargetAny).Build()}
	b := face(Monster, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Hit(Int(2)), TargetAny).Build()}
	c := face(Monster, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Monster, HealthEmpty, FeatureNone)
	return &CardDef{ID: 4, Class: ClassOgre, Faces: [4]FaceDef{a, b, c, d}}
}

func ogreShieldbearer() *CardDef {
	a := face(Monster, HealthFull, FeatureNone)
	a.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	blockOutcome := SelfRotate
	a.Reaction = &Reaction{Kind: ReactionStandard, Trigger: TriggerBlock, Outcome: &blockOutcome}
	b := face(Monster, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	c := face(Monster, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Monster, HealthEmpty, FeatureNone)
	return &CardDef{ID: 5, Class: ClassOgre, Faces: [4]FaceDef{a, b, c, d}}
}

func vampireThrall() *CardDef {
	a := face(Monster, HealthFull, FeatureNone)
	a.Rows = []Row{NewRow().Action(Pull(Infinity()), TargetEnemy).Build()}
	dodgeOutcome := SelfFlip
	a.Reaction = &Reaction{Kind: ReactionStandard, Trigger: TriggerDodge, Outcome: &dodgeOutcome}
	b := face(Monster, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Hit(Int(2)), TargetAny).Build()}
	c := face(Monster, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Monster, HealthEmpty, FeatureNone)
	return &CardDef{ID: 6, Class: ClassVampire, Faces: [4]FaceDef{a, b, c, d}}
}

func spiderWeaver() *CardDef {
	a := face(Monster, HealthFull, FeatureWeb)
	a.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	b := face(Monster, HealthFull, FeatureWeb)
	b.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	c := face(Monster, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Monster, HealthEmpty, FeatureNone)
	return &CardDef{ID: 7, Class: ClassSpider, Faces: [4]FaceDef{a, b, c, d}}
}

func demonLeech() *CardDef {
	a := face(Monster, HealthFull, FeatureVenom)
	a.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	b := face(Monster, HealthFull, FeatureVenom)
	b.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	c := face(Monster, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Monster, HealthEmpty, FeatureNone)
	return &CardDef{ID: 8, Class: ClassDemon, Faces: [4]FaceDef{a, b, c, d}}
}

func trapConstruct() *CardDef {
	a := face(Monster, HealthFull, FeatureTrap)
	a.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	b := face(Monster, HealthFull, FeatureTrap)
	b.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	c := face(Monster, HealthHalf, FeatureTrap)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Monster, HealthEmpty, FeatureNone)
	return &CardDef{ID: 9, Class: ClassOgre, Faces: [4]FaceDef{a, b, c, d}}
}

func wallSentry() *CardDef {
	a := face(Monster, HealthFull, FeatureWall|FeatureInvulnerable)
	b := face(Monster, HealthFull, FeatureWall|FeatureInvulnerable)
	c := face(Monster, HealthFull, FeatureWall|FeatureInvulnerable)
	d := face(Monster, HealthFull, FeatureWall|FeatureInvulnerable)
	return &CardDef{ID: 10, Class: ClassOgre, Faces: [4]FaceDef{a, b, c, d}}
}

func beastmasterRanger() *CardDef {
	a := face(Hero, HealthFull, FeatureNone)
	a.Rows = []Row{NewRow().Action(Heal(), TargetAlly).Build()}
	b := face(Hero, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Revive(), TargetAlly).Build()}
	c := face(Hero, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Hero, HealthEmpty, FeatureNone)
	return &CardDef{ID: 11, Class: ClassBeastmaster, Faces: [4]FaceDef{a, b, c, d}}
}

func huntressPacksister() *CardDef {
	a := face(Hero, HealthFull, FeatureNone)
	a.Rows = []Row{NewRow().Action(Inspire(), TargetAlly).Build()}
	b := face(Hero, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	c := face(Hero, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Hero, HealthEmpty, FeatureNone)
	return &CardDef{ID: 12, Class: ClassHuntress, Faces: [4]FaceDef{a, b, c, d}}
}

func werewolfPup() *CardDef {
	a := face(Werewolf, HealthFull, FeatureNone)
	a.Swarm = &Row{Actions: []WrappedAction{{Action: Hit(Infinity()), Target: TargetEnemy}}}
	a.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	b := face(Werewolf, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	c := face(Werewolf, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Werewolf, HealthEmpty, FeatureNone)
	return &CardDef{ID: 13, Class: ClassWerewolf, Faces: [4]FaceDef{a, b, c, d}}
}

func ratSwarmling1() *CardDef {
	a := face(Rat, HealthFull, FeatureNone)
	a.Swarm = &Row{Actions: []WrappedAction{{Action: Hit(Infinity()), Target: TargetEnemy}}}
	a.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	b := face(Rat, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	c := face(Rat, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Rat, HealthEmpty, FeatureNone)
	return &CardDef{ID: 14, Class: ClassVerdancy, Faces: [4]FaceDef{a, b, c, d}}
}

func ratSwarmling2() *CardDef {
	d := ratSwarmling1()
	d.ID = 15
	return d
}

func piperOfPayne() *CardDef {
	a := face(Monster, HealthFull, FeatureNone)
	amt := 1
	rot := SelfRotate
	a.Modifier = &Modifier{Amount: amt, Mandatory: &rot}
	a.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	b := face(Monster, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	c := face(Monster, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Monster, HealthEmpty, FeatureNone)
	return &CardDef{ID: 16, Class: ClassDemon, Faces: [4]FaceDef{a, b, c, d}}
}

func ogreBrute() *CardDef {
	a := face(Monster, HealthFull, FeatureNone)
	a.Rows = []Row{NewRow().Action(Push(Int(2)), TargetEnemy).Build()}
	b := face(Monster, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	c := face(Monster, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Monster, HealthEmpty, FeatureNone)
	return &CardDef{ID: 17, Class: ClassOgre, Faces: [4]FaceDef{a, b, c, d}}
}

func paladinAssistant() *CardDef {
	a := face(Hero, HealthFull, FeatureNone)
	rot := SelfRotate
	a.ReactionAssist = &ProvideAssistReaction{Trigger: TriggerBlock, AssistCost: rot}
	a.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	b := face(Hero, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	c := face(Hero, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Hero, HealthEmpty, FeatureNone)
	return &CardDef{ID: 18, Class: ClassPaladin, Faces: [4]FaceDef{a, b, c, d}}
}

func vampireCaller() *CardDef {
	a := face(Hero, HealthFull, FeatureNone)
	a.Rows = []Row{NewRow().Action(CallAssist(), TargetAlly).Build()}
	b := face(Hero, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(CallAssistTwice(), TargetAlly).Build()}
	c := face(Hero, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Hero, HealthEmpty, FeatureNone)
	return &CardDef{ID: 19, Class: ClassVampire, Faces: [4]FaceDef{a, b, c, d}}
}

func demonPoisoner() *CardDef {
	a := face(Monster, HealthFull, FeatureNone)
	a.Rows = []Row{NewRow().Action(Poison(), TargetEnemy).Build()}
	b := face(Monster, HealthFull, FeatureNone)
	b.Rows = []Row{NewRow().Action(Backstab(), TargetEnemy).Build()}
	c := face(Monster, HealthHalf, FeatureNone)
	c.Rows = []Row{NewRow().Action(Hit(Int(1)), TargetAny).Build()}
	d := face(Monster, HealthEmpty, FeatureNone)
	return &CardDef{ID: 20, Class: ClassDemon, Faces: [4]FaceDef{a, b, c, d}}
}
