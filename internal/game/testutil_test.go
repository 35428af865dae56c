package game

// p builds a pile literal from (id, faceKey) pairs for test brevity.
func p(ptrs ...CardPtr) Pile {
	out := make(Pile, len(ptrs))
	copy(out, ptrs)
	return out
}

func ptr(id CardId, key FaceKey) CardPtr { return CardPtr{CardID: id, Key: key} }

// eventKinds extracts the Kind of each event in a trace, for assertions
// that don't care about the other fields.
func eventKinds(t Trace) []EventKind {
	out := make([]EventKind, len(t.Events))
	for i, e := range t.Events {
		out[i] = e.Kind
	}
	return out
}

func containsKind(kinds []EventKind, k EventKind) bool {
	for _, kk := range kinds {
		if kk == k {
			return true
		}
	}
	return false
}
