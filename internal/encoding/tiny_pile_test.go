package encoding

import (
	"testing"

	"github.com/peterkuimelis/handybrawl/internal/game"
)

func seedPile() game.Pile {
	p := make(game.Pile, pileSize)
	for i := 0; i < pileSize; i++ {
		p[i] = game.CardPtr{CardID: game.CardId(i + 1), Key: game.FaceA}
	}
	return p
}

// The permutation/number bijection must cover every one of 9! = 362880
// indices exactly once in each direction, mirroring tiny_pile.rs's own
// test_converter_all_numbers.
func TestOrderingNumberBijectionCoversAllPermutations(t *testing.T) {
	const total = 362880 // 9!
	seen := make(map[orderingType]bool, total)
	for number := uint32(0); number < total; number++ {
		order := numberToOrdering(number)
		if seen[order] {
			t.Fatalf("ordering %v produced twice, first via a smaller number than %d", order, number)
		}
		seen[order] = true

		back := orderToNumber(order)
		if back != number {
			t.Fatalf("orderToNumber(numberToOrdering(%d)) = %d, want %d", number, back, number)
		}
	}
	if len(seen) != total {
		t.Fatalf("got %d distinct orderings, want %d", len(seen), total)
	}
}

func TestPileEncoderRoundTrip(t *testing.T) {
	seed := seedPile()
	enc, err := NewPileEncoder(seed)
	if err != nil {
		t.Fatalf("NewPileEncoder: %v", err)
	}

	cases := []game.Pile{
		seed,
		func() game.Pile {
			p := make(game.Pile, pileSize)
			copy(p, seed)
			p[0], p[8] = p[8], p[0]
			return p
		}(),
		func() game.Pile {
			p := make(game.Pile, pileSize)
			copy(p, seed)
			for i := range p {
				p[i].Key = game.FaceKey(i % 4)
			}
			return p
		}(),
	}

	for _, pile := range cases {
		key, err := enc.Encode(pile)
		if err != nil {
			t.Fatalf("Encode(%v): %v", pile, err)
		}
		got := enc.Decode(key)
		if len(got) != len(pile) {
			t.Fatalf("Decode length = %d, want %d", len(got), len(pile))
		}
		for i := range pile {
			if got[i] != pile[i] {
				t.Errorf("slot %d: got %+v, want %+v", i, got[i], pile[i])
			}
		}
	}
}

func TestPileEncoderRejectsWrongSize(t *testing.T) {
	seed := seedPile()
	if _, err := NewPileEncoder(seed[:8]); err == nil {
		t.Error("expected NewPileEncoder to reject a short seed pile")
	}

	enc, err := NewPileEncoder(seed)
	if err != nil {
		t.Fatalf("NewPileEncoder: %v", err)
	}
	if _, err := enc.Encode(seed[:8]); err == nil {
		t.Error("expected Encode to reject a short pile")
	}
}

func TestPileEncoderRejectsUnknownCard(t *testing.T) {
	enc, err := NewPileEncoder(seedPile())
	if err != nil {
		t.Fatalf("NewPileEncoder: %v", err)
	}
	other := seedPile()
	other[0].CardID = 99
	if _, err := enc.Encode(other); err == nil {
		t.Error("expected Encode to reject a pile with a card id outside the encoder's multiset")
	}
}

func TestKeyLess(t *testing.T) {
	a := Key{PermIndex: 1, Faces: [3]byte{0, 0, 0}}
	b := Key{PermIndex: 2, Faces: [3]byte{0, 0, 0}}
	if !a.Less(b) || b.Less(a) {
		t.Error("Key.Less must order by PermIndex first")
	}

	c := Key{PermIndex: 1, Faces: [3]byte{0, 0, 1}}
	if !a.Less(c) || c.Less(a) {
		t.Error("Key.Less must fall back to Faces when PermIndex is equal")
	}

	if a.Less(a) {
		t.Error("Key.Less must be irreflexive")
	}
}
