package heuristic

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/peterkuimelis/handybrawl/internal/game"
)

// Evaluation is the tagged Win{depth}/Loss outcome a training example
// records for a pile. Exactly one of Depth (when Won) is
// meaningful.
type Evaluation struct {
	Won   bool
	Depth uint32
}

func (e Evaluation) MarshalJSON() ([]byte, error) {
	if e.Won {
		return json.Marshal(struct {
			Win uint32 `json:"Win"`
		}{e.Depth})
	}
	return json.Marshal("Loss")
}

func (e *Evaluation) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString != "Loss" {
			return fmt.Errorf("unrecognised evaluation string %q", asString)
		}
		*e = Evaluation{Won: false}
		return nil
	}
	var asWin struct {
		Win uint32 `json:"Win"`
	}
	if err := json.Unmarshal(data, &asWin); err != nil {
		return fmt.Errorf("decode evaluation: %w", err)
	}
	*e = Evaluation{Won: true, Depth: asWin.Win}
	return nil
}

// TrainingExample is one JSON-lines record: a pile in its
// text-token form, plus the evaluation the trainer should fit toward.
type TrainingExample struct {
	Pile []string   `json:"pile"`
	Eval Evaluation `json:"eval"`
}

// ToPile parses the example's token array back into a game.Pile.
func (t TrainingExample) ToPile() (game.Pile, error) {
	return game.ParsePile(strings.Join(t.Pile, " "))
}

// ExampleFromPile builds a training example from a pile and its evaluation.
func ExampleFromPile(p game.Pile, eval Evaluation) TrainingExample {
	tokens := make([]string, len(p))
	for i, ptr := range p {
		tokens[i] = ptr.String()
	}
	return TrainingExample{Pile: tokens, Eval: eval}
}

// LoadExamples reads newline-delimited training examples.
func LoadExamples(r io.Reader) ([]TrainingExample, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var out []TrainingExample
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var ex TrainingExample
		if err := json.Unmarshal([]byte(line), &ex); err != nil {
			return nil, fmt.Errorf("decode training example: %w", err)
		}
		out = append(out, ex)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read training examples: %w", err)
	}
	return out, nil
}

// SaveExamples writes examples as newline-delimited JSON.
func SaveExamples(w io.Writer, examples []TrainingExample) error {
	enc := json.NewEncoder(w)
	for _, ex := range examples {
		if err := enc.Encode(ex); err != nil {
			return fmt.Errorf("encode training example: %w", err)
		}
	}
	return nil
}
