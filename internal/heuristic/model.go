// Package heuristic implements the linear pile-scoring model: a dense parameter vector addressed by card face, with adjacency
// and start-of-pile features accumulated in two linear passes.
package heuristic

import (
	"fmt"
	"io"

	"github.com/peterkuimelis/handybrawl/internal/game"
	"gopkg.in/yaml.v3"
)

// FaceFeatures holds every coefficient the model assigns to one card face
type FaceFeatures struct {
	Value                        float32    `yaml:"value"`
	ValueInPosition              [9]float32 `yaml:"value_in_position"`
	SingleBadTouchingInfront     float32    `yaml:"single_bad_touching_infront"`
	SingleBadTouchingBehind      float32    `yaml:"single_bad_touching_behind"`
	BadTouchingInfrontCoeff      float32    `yaml:"bad_touching_infront_coeff"`
	BadTouchingBehindCoeff       float32    `yaml:"bad_touching_behind_coeff"`
	SingleGoodTouchingInfront    float32    `yaml:"single_good_touching_infront"`
	SingleGoodTouchingBehind     float32    `yaml:"single_good_touching_behind"`
	GoodTouchingInfrontCoeff     float32    `yaml:"good_touching_infront_coeff"`
	GoodTouchingBehindCoeff      float32    `yaml:"good_touching_behind_coeff"`
	IsTouchingStartThroughAllies float32    `yaml:"is_touching_start_through_allies"`
	IsStartNumConsecutiveAllies  float32    `yaml:"is_start_num_consecutive_allies"`
	IsStartNumConsecutiveEnemies float32    `yaml:"is_start_num_consecutive_enemies"`
	NumEnergy                    float32    `yaml:"num_energy"`
	IsStartNumEnergy             float32    `yaml:"is_start_num_energy"`
}

// CardFaceBlock is the four faces' worth of features for one card id, in
// A,B,C,D order, matching the on-disk array shape.
type CardFaceBlock [4]FaceFeatures

// Model is the scoring model's on-disk and in-memory representation.
type Model struct {
	FlatValue        float32                        `yaml:"flat_value"`
	CardFaceFeatures map[game.CardId]CardFaceBlock `yaml:"card_face_features"`
}

// NewEmptyForCards returns a model with zeroed features for exactly the
// given card ids, as a starting point for training.
func NewEmptyForCards(ids []game.CardId) *Model {
	m := &Model{CardFaceFeatures: make(map[game.CardId]CardFaceBlock, len(ids))}
	for _, id := range ids {
		m.CardFaceFeatures[id] = CardFaceBlock{}
	}
	return m
}

func (m *Model) faceFeatures(ptr game.CardPtr) *FaceFeatures {
	block, ok := m.CardFaceFeatures[ptr.CardID]
	if !ok {
		return &FaceFeatures{}
	}
	return &block[ptr.Key]
}

// ScorePile is the model's contract: score(pile) -> f32,
// computed as a forward pass (value, value-in-position, infront adjacency,
// touching-start-through-allies, energy count) followed by a backward pass
// (behind adjacency, num_energy, and at i==0 start energy plus
// start-consecutive-allies/enemies).
// "Good" means Hero allegiance; everything else (Monster, Werewolf, Rat)
// counts as "bad".
func (m *Model) ScorePile(cat *game.Catalogue, pile game.Pile) float32 {
	total := m.FlatValue
	if len(pile) == 0 {
		return total
	}

	totalEnergy := 0
	{
		numBadInfront, numGoodInfront := 0, 0
		var touchingStart *game.Allegiance
		for i, ptr := range pile {
			face := cat.ActiveFace(ptr)
			ff := m.faceFeatures(ptr)

			total += ff.Value
			total += ff.ValueInPosition[i]

			if numBadInfront > 0 {
				total += ff.SingleBadTouchingInfront
				total += float32(numBadInfront) * ff.BadTouchingInfrontCoeff
			}
			if numGoodInfront > 0 {
				total += ff.SingleGoodTouchingInfront
				total += float32(numGoodInfront) * ff.GoodTouchingInfrontCoeff
			}

			if face.Allegiance == game.Hero {
				numGoodInfront++
				numBadInfront = 0
			} else {
				numBadInfront++
				numGoodInfront = 0
			}

			if i == 0 {
				total += ff.IsTouchingStartThroughAllies
				a := face.Allegiance
				touchingStart = &a
			} else if touchingStart != nil && face.Allegiance == *touchingStart {
				total += ff.IsTouchingStartThroughAllies
			} else {
				touchingStart = nil
			}

			if face.Features.Has(game.FeatureEnergy) {
				totalEnergy++
			}
		}
	}

	{
		numBadBehind, numGoodBehind := 0, 0
		startType := cat.ActiveFace(pile[0]).Allegiance
		numAllyOfStart, numEnemyOfStart := 0, 0
		for i := len(pile) - 1; i >= 0; i-- {
			ptr := pile[i]
			face := cat.ActiveFace(ptr)
			ff := m.faceFeatures(ptr)

			if numBadBehind > 0 {
				total += ff.SingleBadTouchingBehind
				total += float32(numBadBehind) * ff.BadTouchingBehindCoeff
			}
			if numGoodBehind > 0 {
				total += ff.SingleGoodTouchingBehind
				total += float32(numGoodBehind) * ff.GoodTouchingBehindCoeff
			}

			if face.Allegiance == game.Hero {
				numGoodBehind++
				numBadBehind = 0
			} else {
				numBadBehind++
				numGoodBehind = 0
			}

			total += float32(totalEnergy) * ff.NumEnergy
			if i == 0 {
				total += float32(totalEnergy) * ff.IsStartNumEnergy
				total += float32(numAllyOfStart) * ff.IsStartNumConsecutiveAllies
				total += float32(numEnemyOfStart) * ff.IsStartNumConsecutiveEnemies
			} else {
				if face.Allegiance == startType {
					numAllyOfStart++
					numEnemyOfStart = 0
				} else {
					numEnemyOfStart++
					numAllyOfStart = 0
				}
			}
		}
	}

	return total
}

// Load decodes a Model from its YAML on-disk format. Unknown
// fields are rejected; missing numeric fields default to zero via the
// struct's zero value.
func Load(r io.Reader) (*Model, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var m Model
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if m.CardFaceFeatures == nil {
		m.CardFaceFeatures = make(map[game.CardId]CardFaceBlock)
	}
	return &m, nil
}

// Save encodes m to its YAML on-disk format.
func Save(w io.Writer, m *Model) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(m)
}
