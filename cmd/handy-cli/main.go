// Command handy-cli is the local command-line surface over the engine,
// oracle and solver: subcommand dispatch over os.Args[1] (activate/
// classify/solve/bench/find-puzzle/gen).
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/peterkuimelis/handybrawl/internal/game"
	"github.com/peterkuimelis/handybrawl/internal/heuristic"
	"github.com/peterkuimelis/handybrawl/internal/log"
	"github.com/peterkuimelis/handybrawl/internal/solver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "activate":
		runActivate(os.Args[2:])
	case "classify":
		runClassify(os.Args[2:])
	case "solve":
		runSolve(os.Args[2:])
	case "bench":
		runBench(os.Args[2:])
	case "find-puzzle":
		runFindPuzzle(os.Args[2:])
	case "gen":
		runGen(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  handy-cli activate --pile PILE")
	fmt.Println("  handy-cli classify --pile PILE [--mode standard|per_hero_class]")
	fmt.Println("  handy-cli solve --pile PILE --model FILE [--mode standard|per_hero_class]")
	fmt.Println("  handy-cli bench --model FILE --n N [--mode standard|per_hero_class]")
	fmt.Println("  handy-cli find-puzzle --model FILE --depth D [--tries N]")
	fmt.Println("  handy-cli gen --cards ID,ID,... [--seed N]")
}

func runActivate(args []string) {
	fs := flag.NewFlagSet("activate", flag.ExitOnError)
	pileText := fs.String("pile", "", "pile text, e.g. '1A 9C 3B 5'")
	fs.Parse(args)

	cat := game.DefaultCatalogue()
	pile, err := game.ParsePile(*pileText)
	fatalOn(err)

	traces := game.ResolveTopCard(cat, pile)
	for i, t := range traces {
		fmt.Printf("--- outcome %d/%d ---\n", i+1, len(traces))
		fmt.Println(log.FormatTrace(t))
	}
}

func runClassify(args []string) {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	pileText := fs.String("pile", "", "pile text")
	modeFlag := fs.String("mode", "standard", "standard|per_hero_class")
	fs.Parse(args)

	cat := game.DefaultCatalogue()
	pile, err := game.ParsePile(*pileText)
	fatalOn(err)

	report := game.ClassifyVerbose(cat, pile, parseMode(*modeFlag))
	fmt.Printf("%+v\n", report)
}

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	pileText := fs.String("pile", "", "seed pile text")
	modelPath := fs.String("model", "", "heuristic model YAML path")
	modeFlag := fs.String("mode", "standard", "standard|per_hero_class")
	fs.Parse(args)

	cat := game.DefaultCatalogue()
	pile, err := game.ParsePile(*pileText)
	fatalOn(err)
	model := loadModel(*modelPath)

	s, err := solver.New(cat, model, []game.Pile{pile}, solver.DefaultConfig(parseMode(*modeFlag)))
	fatalOn(err)

	result := solver.Continue
	for result == solver.Continue {
		result = s.SingleIter()
	}
	path, found := s.BestPath()
	if !found {
		fmt.Println("no win found")
		return
	}
	for _, p := range path {
		fmt.Println(game.FormatPile(p))
	}
}

// runBench batch-runs the solver over N random seed piles, each a random
// 9-card draw from the catalogue, and reports a win-depth histogram.
func runBench(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	modelPath := fs.String("model", "", "heuristic model YAML path")
	n := fs.Int("n", 100, "number of random seed piles to try")
	modeFlag := fs.String("mode", "standard", "standard|per_hero_class")
	seed := fs.Int64("seed", 1, "PRNG seed")
	fs.Parse(args)

	cat := game.DefaultCatalogue()
	model := loadModel(*modelPath)
	ids := cat.IDs()
	rng := rand.New(rand.NewSource(*seed))
	mode := parseMode(*modeFlag)

	histogram := make(map[int]int)
	unsolved := 0
	for i := 0; i < *n; i++ {
		pick := pickCards(ids, 9, rng)
		pile := game.RandomPile(pick, rng)
		s, err := solver.New(cat, model, []game.Pile{pile}, solver.DefaultConfig(mode))
		if err != nil {
			continue
		}
		result := solver.Continue
		for result == solver.Continue {
			result = s.SingleIter()
		}
		if path, found := s.BestPath(); found {
			histogram[len(path)-1]++
		} else {
			unsolved++
		}
	}
	maxDepth := int(solver.DefaultConfig(mode).MaxDepth)
	for depth := 0; depth <= maxDepth; depth++ {
		if count, ok := histogram[depth]; ok {
			fmt.Printf("depth %d: %d\n", depth, count)
		}
	}
	fmt.Printf("unsolved: %d\n", unsolved)
}

// runFindPuzzle searches random seed piles until it finds one whose best
// win is exactly at the requested depth.
func runFindPuzzle(args []string) {
	fs := flag.NewFlagSet("find-puzzle", flag.ExitOnError)
	modelPath := fs.String("model", "", "heuristic model YAML path")
	depth := fs.Int("depth", 3, "exact win depth to search for")
	tries := fs.Int("tries", 1000, "maximum random seed piles to try")
	modeFlag := fs.String("mode", "standard", "standard|per_hero_class")
	seed := fs.Int64("seed", 1, "PRNG seed")
	fs.Parse(args)

	cat := game.DefaultCatalogue()
	model := loadModel(*modelPath)
	ids := cat.IDs()
	rng := rand.New(rand.NewSource(*seed))
	mode := parseMode(*modeFlag)

	for i := 0; i < *tries; i++ {
		pick := pickCards(ids, 9, rng)
		pile := game.RandomPile(pick, rng)
		s, err := solver.New(cat, model, []game.Pile{pile}, solver.DefaultConfig(mode))
		if err != nil {
			continue
		}
		result := solver.Continue
		for result == solver.Continue {
			result = s.SingleIter()
		}
		path, found := s.BestPath()
		if found && len(path)-1 == *depth {
			fmt.Println(game.FormatPile(pile))
			return
		}
	}
	fmt.Println("no matching puzzle found")
}

// runGen prints a random legal pile over the given card ids.
func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	cardsFlag := fs.String("cards", "", "comma-separated card ids, e.g. '1,2,3'")
	seed := fs.Int64("seed", 1, "PRNG seed")
	fs.Parse(args)

	ids, err := parseIDs(*cardsFlag)
	fatalOn(err)
	rng := rand.New(rand.NewSource(*seed))
	fmt.Println(game.FormatPile(game.RandomPile(ids, rng)))
}

func pickCards(ids []game.CardId, n int, rng *rand.Rand) []game.CardId {
	shuffled := make([]game.CardId, len(ids))
	copy(shuffled, ids)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func parseIDs(s string) ([]game.CardId, error) {
	if s == "" {
		return nil, fmt.Errorf("--cards is required")
	}
	var ids []game.CardId
	var n int
	for _, tok := range splitComma(s) {
		if _, err := fmt.Sscanf(tok, "%d", &n); err != nil {
			return nil, fmt.Errorf("bad card id %q: %w", tok, err)
		}
		ids = append(ids, game.CardId(n))
	}
	return ids, nil
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func loadModel(path string) *heuristic.Model {
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: --model is required")
		os.Exit(1)
	}
	f, err := os.Open(path)
	fatalOn(err)
	defer f.Close()
	m, err := heuristic.Load(f)
	fatalOn(err)
	return m
}

func parseMode(s string) game.GameEndMode {
	if s == "per_hero_class" {
		return game.ModePerHeroClass
	}
	return game.ModeStandard
}

func fatalOn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
