package heuristic

import (
	"bytes"
	"testing"

	"github.com/peterkuimelis/handybrawl/internal/game"
)

func TestScorePileEmptyPileReturnsFlatValue(t *testing.T) {
	cat := game.DefaultCatalogue()
	m := NewEmptyForCards(cat.IDs())
	m.FlatValue = 3.5

	if got := m.ScorePile(cat, nil); got != 3.5 {
		t.Errorf("ScorePile(nil) = %v, want FlatValue 3.5", got)
	}
}

// A lone, featureless card exercises exactly Value, ValueInPosition[0], and
// IsTouchingStartThroughAllies (every energy/adjacency term is gated on
// conditions that can't fire with only one card in the pile).
func TestScorePileSingleCard(t *testing.T) {
	cat := game.DefaultCatalogue()
	m := NewEmptyForCards(cat.IDs())
	const id = game.CardId(1) // paladinApprentice, Hero, FeatureNone

	block := m.CardFaceFeatures[id]
	block[game.FaceA].Value = 2
	block[game.FaceA].ValueInPosition[0] = 1
	block[game.FaceA].IsTouchingStartThroughAllies = 4
	m.CardFaceFeatures[id] = block
	m.FlatValue = 10

	pile := game.Pile{{CardID: id, Key: game.FaceA}}
	want := float32(10 + 2 + 1 + 4)
	if got := m.ScorePile(cat, pile); got != want {
		t.Errorf("ScorePile = %v, want %v", got, want)
	}
}

func TestScorePileUnknownCardContributesZeroFeatures(t *testing.T) {
	cat := game.DefaultCatalogue()
	m := NewEmptyForCards(nil) // no ids registered at all
	m.FlatValue = 7

	pile := game.Pile{{CardID: 1, Key: game.FaceA}}
	if got := m.ScorePile(cat, pile); got != 7 {
		t.Errorf("ScorePile with an unregistered card id = %v, want bare FlatValue 7", got)
	}
}

func TestModelYAMLRoundTrip(t *testing.T) {
	cat := game.DefaultCatalogue()
	m := NewEmptyForCards(cat.IDs())
	m.FlatValue = -1.25
	block := m.CardFaceFeatures[2]
	block[game.FaceB].Value = 9
	block[game.FaceB].BadTouchingInfrontCoeff = 0.5
	m.CardFaceFeatures[2] = block

	var buf bytes.Buffer
	if err := Save(&buf, m); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.FlatValue != m.FlatValue {
		t.Errorf("FlatValue round-trip: got %v, want %v", loaded.FlatValue, m.FlatValue)
	}
	gotBlock := loaded.CardFaceFeatures[2]
	if gotBlock[game.FaceB].Value != 9 || gotBlock[game.FaceB].BadTouchingInfrontCoeff != 0.5 {
		t.Errorf("card 2 face B features round-trip mismatch: got %+v", gotBlock[game.FaceB])
	}
	if len(loaded.CardFaceFeatures) != len(m.CardFaceFeatures) {
		t.Errorf("card count round-trip: got %d, want %d", len(loaded.CardFaceFeatures), len(m.CardFaceFeatures))
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	r := bytes.NewReader([]byte("flat_value: 1\nnot_a_real_field: true\n"))
	if _, err := Load(r); err == nil {
		t.Error("expected Load to reject an unknown top-level field")
	}
}
