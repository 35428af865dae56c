package game

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// MaxPileSize is the maximum pile-local constant N; the shipped
// game uses N=9.
const MaxPileSize = 9

// Pile is an ordered sequence of card pointers; index 0 is the top (active),
// index len-1 is the bottom. The engine never mutates a caller's Pile in
// place — every transformation returns a fresh copy.
type Pile []CardPtr

// Clone returns an independent copy of the pile.
func (p Pile) Clone() Pile {
	out := make(Pile, len(p))
	copy(out, p)
	return out
}

// CardIDs returns the multiset of card ids in the pile, in pile order.
func (p Pile) CardIDs() []CardId {
	out := make([]CardId, len(p))
	for i, c := range p {
		out[i] = c.CardID
	}
	return out
}

// CheckInvariants validates the pile invariants against a catalogue.
// Returns a ParseError describing the first violation found, or nil.
func (p Pile) CheckInvariants(cat *Catalogue) error {
	if len(p) == 0 {
		return ParseError{Msg: "pile must have length >= 1"}
	}
	if len(p) > MaxPileSize {
		return ParseError{Msg: fmt.Sprintf("pile length %d exceeds max %d", len(p), MaxPileSize)}
	}
	seen := make(map[CardId]bool, len(p))
	for _, c := range p {
		if _, err := cat.Get(c.CardID); err != nil {
			return err
		}
		if seen[c.CardID] {
			return ParseError{Msg: fmt.Sprintf("card id %d appears twice in pile", c.CardID)}
		}
		seen[c.CardID] = true
	}
	return nil
}

// RotateToBottom returns a new pile with the top card moved to the tail,
// as the driver algorithm does once an activation finishes.
func (p Pile) RotateToBottom() Pile {
	if len(p) == 0 {
		return p
	}
	out := make(Pile, 0, len(p))
	out = append(out, p[1:]...)
	out = append(out, p[0])
	return out
}

// WithFace returns a copy of the pile with the card at idx set to key.
func (p Pile) WithFace(idx int, key FaceKey) Pile {
	out := p.Clone()
	out[idx].Key = key
	return out
}

// ParsePile parses the pile text format: whitespace- and
// comma-insensitive tokens `<id>[faceLetter]`, faceLetter in {A,B,C,D,a,b,c,d}
// defaulting to A. Truncates to MaxPileSize.
func ParsePile(s string) (Pile, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, ParseError{Input: s, Msg: "empty pile"}
	}
	if len(fields) > MaxPileSize {
		fields = fields[:MaxPileSize]
	}
	out := make(Pile, 0, len(fields))
	for _, tok := range fields {
		ptr, err := parseCardToken(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, ptr)
	}
	return out, nil
}

func parseCardToken(tok string) (CardPtr, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return CardPtr{}, ParseError{Input: tok, Msg: "empty card token"}
	}
	last := tok[len(tok)-1]
	key := FaceA
	numPart := tok
	switch last {
	case 'A', 'a':
		key, numPart = FaceA, tok[:len(tok)-1]
	case 'B', 'b':
		key, numPart = FaceB, tok[:len(tok)-1]
	case 'C', 'c':
		key, numPart = FaceC, tok[:len(tok)-1]
	case 'D', 'd':
		key, numPart = FaceD, tok[:len(tok)-1]
	}
	if numPart == "" {
		return CardPtr{}, ParseError{Input: tok, Msg: "missing card id"}
	}
	n, err := strconv.Atoi(numPart)
	if err != nil || n < 1 || n > 127 {
		return CardPtr{}, ParseError{Input: tok, Msg: "card id must be an integer in 1..=127"}
	}
	return CardPtr{CardID: CardId(n), Key: key}, nil
}

// FormatPile renders a pile back to the text format.
func FormatPile(p Pile) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// NeighborPiles returns one pile per single-card face change (rotate or
// flip).
func NeighborPiles(p Pile) []Pile {
	var out []Pile
	for i := range p {
		out = append(out, p.WithFace(i, RotateKey(p[i].Key)))
		out = append(out, p.WithFace(i, FlipKey(p[i].Key)))
	}
	return out
}

// RandomPile builds a random legal pile from the given card ids, assigning
// each card a uniformly random face.
func RandomPile(ids []CardId, rng *rand.Rand) Pile {
	out := make(Pile, len(ids))
	for i, id := range ids {
		out[i] = CardPtr{CardID: id, Key: FaceKey(rng.Intn(4))}
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// --- Pile predicates ---

// IsMoveableTarget reports whether a card can be the target of a move-like
// action: allegiance must match the target spec, and enemy Weight/Invulnerable
// cards can't be moved by the opposing side.
func IsMoveableTarget(cat *Catalogue, ptr CardPtr, activeAllegiance Allegiance, target Target) bool {
	face := cat.ActiveFace(ptr)
	if !AllegianceMatchesTarget(activeAllegiance, face.Allegiance, target) {
		return false
	}
	if face.Allegiance != activeAllegiance && face.Features.Has(FeatureWeight|FeatureInvulnerable) {
		return false
	}
	return true
}

// CanBeDamaged reports whether the card at targetIdx can take damage at
// all: not Invulnerable, and not already at Empty health (a defeated card
// sitting in the pile has nowhere lower to go).
func CanBeDamaged(cat *Catalogue, p Pile, targetIdx int) bool {
	face := cat.ActiveFace(p[targetIdx])
	return !face.Features.Has(FeatureInvulnerable) && face.Health != HealthEmpty
}

// FindFirstMatch scans the pile from startIdx (inclusive) forward and
// returns the index of the first card matching allegiance/target whose
// health equals targetHealth, or -1.
func FindFirstMatch(cat *Catalogue, p Pile, startIdx int, activeAllegiance Allegiance, target Target, targetHealth Health) int {
	for i := startIdx; i < len(p); i++ {
		face := cat.ActiveFace(p[i])
		if AllegianceMatchesTarget(activeAllegiance, face.Allegiance, target) && face.Health == targetHealth {
			return i
		}
	}
	return -1
}

// FindHurtFaces returns the other face keys on this same card whose health
// equals one-step-down from the current face's health — the legal
// "damage result" faces to branch into.
func FindHurtFaces(cat *Catalogue, ptr CardPtr) []FaceKey {
	def, _ := cat.Get(ptr.CardID)
	cur := def.Face(ptr.Key).Health
	if cur == HealthEmpty {
		return nil
	}
	want := OneDamage(cur)
	var out []FaceKey
	for _, k := range []FaceKey{FaceA, FaceB, FaceC, FaceD} {
		if k == ptr.Key {
			continue
		}
		if def.Face(k).Health == want {
			out = append(out, k)
		}
	}
	return out
}

// IsActionPrevented reports whether the card directly behind activeIdx has
// the given suppressing feature and a different allegiance.
func IsActionPrevented(cat *Catalogue, p Pile, feature Features, activeIdx int, activeAllegiance Allegiance) bool {
	if activeIdx+1 >= len(p) {
		return false
	}
	behind := cat.ActiveFace(p[activeIdx+1])
	return behind.Allegiance != activeAllegiance && behind.Features.Has(feature)
}

// SpiderSuppressionReason returns the SkipActionReason and true for this
// wrapped action if it's suppressed by a Web/Venom neighbour, or (0, false)
// when it is not suppressed.
func SpiderSuppressionReason(cat *Catalogue, p Pile, activeIdx int, activeAllegiance Allegiance, wa WrappedAction) (SkipActionReason, bool) {
	switch wa.Action.Kind {
	case ActionPull, ActionPush, ActionQuicken, ActionDelay, ActionTeleport:
		if IsActionPrevented(cat, p, FeatureWeb, activeIdx, activeAllegiance) {
			return SkipWeb, true
		}
	case ActionHit, ActionClaws, ActionSpacedClaws, ActionVoid, ActionAblaze, ActionFireball,
		ActionArrow, ActionHeal, ActionRevive, ActionRats, ActionManeuver, ActionBackstab, ActionPoison:
		if IsActionPrevented(cat, p, FeatureVenom, activeIdx, activeAllegiance) {
			return SkipVenom, true
		}
	}
	return 0, false
}
