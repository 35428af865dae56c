package game

import "sort"

// Catalogue is the read-only, process-wide-immutable registry mapping a
// card id to its definition. A Catalogue value is passed explicitly
// through engine APIs rather than hidden behind package-level state.
type Catalogue struct {
	cards map[CardId]*CardDef
}

// BuildCatalogue validates and wraps a set of card definitions. Duplicate
// or out-of-range ids are a fatal panic — callers that want to validate a
// candidate set without panicking should use checkCatalogue directly in a
// test.
func BuildCatalogue(defs []*CardDef) *Catalogue {
	cat, err := checkCatalogue(defs)
	if err != nil {
		panic(err)
	}
	return cat
}

func checkCatalogue(defs []*CardDef) (*Catalogue, error) {
	cards := make(map[CardId]*CardDef, len(defs))
	for _, d := range defs {
		if d.ID == 0 || d.ID > 127 {
			return nil, CatalogueError{CardID: d.ID, Msg: "card id out of range 1..=127"}
		}
		if _, dup := cards[d.ID]; dup {
			return nil, CatalogueError{CardID: d.ID, Msg: "duplicate card id"}
		}
		cards[d.ID] = d
	}
	return &Catalogue{cards: cards}, nil
}

// Get returns the definition for id, or a ParseError if it isn't registered.
func (c *Catalogue) Get(id CardId) (*CardDef, error) {
	d, ok := c.cards[id]
	if !ok {
		return nil, ParseError{Msg: "card id not in catalogue"}
	}
	return d, nil
}

// MustGet is Get but panics (InvariantViolation) on a missing id — used once
// a pile has already passed CheckInvariants.
func (c *Catalogue) MustGet(id CardId) *CardDef {
	d, err := c.Get(id)
	if err != nil {
		mustNotHappen("card %d not catalogue-resolvable: %v", id, err)
	}
	return d
}

// ActiveFace is shorthand for c.MustGet(ptr.CardID).Face(ptr.Key).
func (c *Catalogue) ActiveFace(ptr CardPtr) *FaceDef {
	return c.MustGet(ptr.CardID).Face(ptr.Key)
}

// IDs returns every registered card id in ascending order.
func (c *Catalogue) IDs() []CardId {
	out := make([]CardId, 0, len(c.cards))
	for id := range c.cards {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// --- Row builder DSL ---

// RowBuilder constructs a Row via chained calls. It adds no semantics beyond
// assembling the record: prefer literal Row{} values for simple rows and
// reach for the builder when a row has several actions or a mandatory cost.
type RowBuilder struct {
	row Row
}

func NewRow() *RowBuilder { return &RowBuilder{} }

func (b *RowBuilder) Cost(kind ConditionKind, n int) *RowBuilder {
	b.row.Condition = &Condition{Kind: kind, Count: n}
	return b
}

func (b *RowBuilder) Stance(class Class, n int) *RowBuilder {
	b.row.Condition = &Condition{Kind: ConditionStance, Count: n, Class: class}
	return b
}

func (b *RowBuilder) Action(a Action, t Target) *RowBuilder {
	b.row.Actions = append(b.row.Actions, WrappedAction{Action: a, Target: t})
	return b
}

func (b *RowBuilder) SelfAction(s SelfAction) *RowBuilder {
	b.row.Mandatory = &s
	return b
}

func (b *RowBuilder) Mandatory() *RowBuilder {
	b.row.IsMandatory = true
	return b
}

func (b *RowBuilder) Build() Row { return b.row }

// action constructors, used throughout cards.go for readability.
func Hit(r Range) Action            { return Action{Kind: ActionHit, Range: r} }
func Claws(r Range) Action          { return Action{Kind: ActionClaws, Range: r} }
func SpacedClaws(p ClawSpaceType) Action { return Action{Kind: ActionSpacedClaws, Parity: p} }
func Pull(r Range) Action           { return Action{Kind: ActionPull, Range: r} }
func Push(r Range) Action           { return Action{Kind: ActionPush, Range: r} }
func Quicken(n int) Action          { return Action{Kind: ActionQuicken, Count: n} }
func Delay(n int) Action            { return Action{Kind: ActionDelay, Count: n} }
func Heal() Action                  { return Action{Kind: ActionHeal} }
func Revive() Action                { return Action{Kind: ActionRevive} }
func Inspire() Action               { return Action{Kind: ActionInspire} }
func Maneuver() Action              { return Action{Kind: ActionManeuver} }
func Teleport() Action              { return Action{Kind: ActionTeleport} }
func Fireball() Action              { return Action{Kind: ActionFireball} }
func Ablaze() Action                { return Action{Kind: ActionAblaze} }
func Arrow() Action                 { return Action{Kind: ActionArrow} }
func Void() Action                  { return Action{Kind: ActionVoid} }
func Death() Action                 { return Action{Kind: ActionDeath} }
func CallAssist() Action            { return Action{Kind: ActionCallAssist} }
func CallAssistTwice() Action       { return Action{Kind: ActionCallAssistTwice} }
func Backstab() Action              { return Action{Kind: ActionBackstab} }
func Poison() Action                { return Action{Kind: ActionPoison} }
func Rats() Action                  { return Action{Kind: ActionRats} }
func Hypnosis() Action              { return Action{Kind: ActionHypnosis} }
