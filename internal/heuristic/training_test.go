package heuristic

import (
	"bytes"
	"testing"

	"github.com/peterkuimelis/handybrawl/internal/game"
)

func TestEvaluationJSONRoundTrip(t *testing.T) {
	cases := []Evaluation{
		{Won: true, Depth: 0},
		{Won: true, Depth: 12},
		{Won: false},
	}
	for _, want := range cases {
		data, err := want.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%+v): %v", want, err)
		}
		var got Evaluation
		if err := got.UnmarshalJSON(data); err != nil {
			t.Fatalf("UnmarshalJSON(%s): %v", data, err)
		}
		if got != want {
			t.Errorf("round trip %+v: got %+v via wire %s", want, got, data)
		}
	}
}

func TestEvaluationUnmarshalRejectsGarbageString(t *testing.T) {
	var e Evaluation
	if err := e.UnmarshalJSON([]byte(`"Win"`)); err == nil {
		t.Error("expected an error for a string that isn't \"Loss\"")
	}
}

func TestExampleFromPileRoundTrip(t *testing.T) {
	pile := game.Pile{
		{CardID: 1, Key: game.FaceA},
		{CardID: 4, Key: game.FaceC},
	}
	ex := ExampleFromPile(pile, Evaluation{Won: true, Depth: 3})

	got, err := ex.ToPile()
	if err != nil {
		t.Fatalf("ToPile: %v", err)
	}
	if len(got) != len(pile) {
		t.Fatalf("ToPile length = %d, want %d", len(got), len(pile))
	}
	for i := range pile {
		if got[i] != pile[i] {
			t.Errorf("slot %d: got %+v, want %+v", i, got[i], pile[i])
		}
	}
}

func TestLoadSaveExamplesRoundTrip(t *testing.T) {
	examples := []TrainingExample{
		ExampleFromPile(game.Pile{{CardID: 1, Key: game.FaceA}, {CardID: 4, Key: game.FaceA}}, Evaluation{Won: true, Depth: 5}),
		ExampleFromPile(game.Pile{{CardID: 2, Key: game.FaceB}}, Evaluation{Won: false}),
	}

	var buf bytes.Buffer
	if err := SaveExamples(&buf, examples); err != nil {
		t.Fatalf("SaveExamples: %v", err)
	}

	loaded, err := LoadExamples(&buf)
	if err != nil {
		t.Fatalf("LoadExamples: %v", err)
	}
	if len(loaded) != len(examples) {
		t.Fatalf("got %d examples, want %d", len(loaded), len(examples))
	}
	for i, want := range examples {
		got := loaded[i]
		if got.Eval != want.Eval {
			t.Errorf("example %d eval: got %+v, want %+v", i, got.Eval, want.Eval)
		}
		if len(got.Pile) != len(want.Pile) {
			t.Errorf("example %d pile len: got %d, want %d", i, len(got.Pile), len(want.Pile))
			continue
		}
		for j := range want.Pile {
			if got.Pile[j] != want.Pile[j] {
				t.Errorf("example %d token %d: got %q, want %q", i, j, got.Pile[j], want.Pile[j])
			}
		}
	}
}

func TestLoadExamplesSkipsBlankLines(t *testing.T) {
	input := "\n" + `{"pile":["1a"],"eval":"Loss"}` + "\n\n"
	loaded, err := LoadExamples(bytes.NewBufferString(input))
	if err != nil {
		t.Fatalf("LoadExamples: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("got %d examples, want 1", len(loaded))
	}
	if loaded[0].Eval.Won {
		t.Errorf("expected a Loss evaluation, got %+v", loaded[0].Eval)
	}
}
