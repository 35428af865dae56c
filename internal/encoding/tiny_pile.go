// Package encoding implements the compact pile encoding: a bijection between
// a pile with a fixed card-id multiset and a small key, suitable for use as
// a visited-set and priority-queue key in the solver's search.
package encoding

import (
	"fmt"

	"github.com/peterkuimelis/handybrawl/internal/game"
)

const pileSize = game.MaxPileSize

// orderingType is a permutation of 0..8 over slot index.
type orderingType [pileSize]int

// Key is the small, ordered, hashable value a PileEncoder produces: a
// factorial-number-system permutation index plus three packed bytes holding
// four 2-bit face keys each. It implements a total order so it
// can back an ordered map.
type Key struct {
	PermIndex uint32
	Faces     [3]byte
}

// Less gives Key a total order (permutation index first, then faces),
// matching the Rust TinyPile's derived Ord.
func (k Key) Less(other Key) bool {
	if k.PermIndex != other.PermIndex {
		return k.PermIndex < other.PermIndex
	}
	for i := range k.Faces {
		if k.Faces[i] != other.Faces[i] {
			return k.Faces[i] < other.Faces[i]
		}
	}
	return false
}

// PileEncoder converts between a pile and its Key, for any pile sharing the
// card-id multiset it was built from. Built once per distinct multiset;
// thereafter conversion is O(N).
type PileEncoder struct {
	indexOf map[game.CardId]int
	idOf    [pileSize]game.CardId
}

// NewPileEncoder builds an encoder keyed on seed's card-id multiset. seed
// must have exactly MaxPileSize cards.
func NewPileEncoder(seed game.Pile) (*PileEncoder, error) {
	if len(seed) != pileSize {
		return nil, fmt.Errorf("encoding requires a %d-card pile, got %d", pileSize, len(seed))
	}
	enc := &PileEncoder{indexOf: make(map[game.CardId]int, pileSize)}
	for i, ptr := range seed {
		enc.indexOf[ptr.CardID] = i
		enc.idOf[i] = ptr.CardID
	}
	return enc, nil
}

// Encode converts a pile (same multiset as the seed) to its Key.
func (e *PileEncoder) Encode(p game.Pile) (Key, error) {
	if len(p) != pileSize {
		return Key{}, fmt.Errorf("encoding requires a %d-card pile, got %d", pileSize, len(p))
	}
	var order orderingType
	for i, ptr := range p {
		idx, ok := e.indexOf[ptr.CardID]
		if !ok {
			return Key{}, fmt.Errorf("card id %d not in this encoder's multiset", ptr.CardID)
		}
		order[i] = idx
	}
	return Key{PermIndex: orderToNumber(order), Faces: packFaces(p)}, nil
}

// Decode converts a Key back to a pile.
func (e *PileEncoder) Decode(k Key) game.Pile {
	order := numberToOrdering(k.PermIndex)
	p := make(game.Pile, pileSize)
	for i := 0; i < pileSize; i++ {
		p[i] = game.CardPtr{CardID: e.idOf[order[i]], Key: faceKeyFromByte(k.Faces, i)}
	}
	return p
}

// numberToOrdering and orderToNumber implement the standard bijection
// between 0..9! and permutations of 0..8 (see
// http://antoinecomeau.blogspot.com/2014/07/mapping-between-permutations-and.html),
// ported verbatim from tiny_pile.rs.
func numberToOrdering(number uint32) orderingType {
	const n = pileSize
	var result orderingType
	elems := [n]int{0, 1, 2, 3, 4, 5, 6, 7, 8}

	m := int(number)
	for i := 0; i < n; i++ {
		ind := m % (n - i)
		m = m / (n - i)
		result[i] = elems[ind]
		elems[ind] = elems[n-i-1]
	}
	return result
}

func orderToNumber(perm orderingType) uint32 {
	const n = pileSize
	k, m := 0, 1
	pos := [n]int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	elems := [n]int{0, 1, 2, 3, 4, 5, 6, 7, 8}

	for i := 0; i < n-1; i++ {
		k += m * pos[perm[i]]
		m = m * (n - i)
		pos[elems[n-i-1]] = pos[perm[i]]
		elems[pos[perm[i]]] = elems[n-i-1]
	}
	return uint32(k)
}

func faceToByte(k game.FaceKey) byte {
	switch k {
	case game.FaceA:
		return 0
	case game.FaceB:
		return 1
	case game.FaceC:
		return 2
	default:
		return 3
	}
}

func byteToFace(b byte) game.FaceKey {
	switch b & 0b11 {
	case 0:
		return game.FaceA
	case 1:
		return game.FaceB
	case 2:
		return game.FaceC
	default:
		return game.FaceD
	}
}

// packFaces packs the 9 face keys (2 bits each) into 3 bytes: 4 faces in
// the first byte, 4 in the second, 1 in the low 2 bits of the third.
func packFaces(p game.Pile) [3]byte {
	pack4 := func(a, b, c, d game.FaceKey) byte {
		return faceToByte(a)<<6 | faceToByte(b)<<4 | faceToByte(c)<<2 | faceToByte(d)
	}
	return [3]byte{
		pack4(p[0].Key, p[1].Key, p[2].Key, p[3].Key),
		pack4(p[4].Key, p[5].Key, p[6].Key, p[7].Key),
		faceToByte(p[8].Key),
	}
}

func faceKeyFromByte(faces [3]byte, slot int) game.FaceKey {
	switch {
	case slot < 4:
		return byteToFace(faces[0] >> ((3 - slot) * 2))
	case slot < 8:
		return byteToFace(faces[1] >> ((3 - (slot - 4)) * 2))
	default:
		return byteToFace(faces[2])
	}
}
