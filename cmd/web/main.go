// Command web serves the solver's browser UI (static assets + websocket
// bridge to a solver.Worker, internal/web).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterkuimelis/handybrawl/internal/game"
	"github.com/peterkuimelis/handybrawl/internal/heuristic"
	"github.com/peterkuimelis/handybrawl/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	modelPath := flag.String("model", "", "path to a heuristic model YAML file (enables solving)")
	flag.Parse()

	cat := game.DefaultCatalogue()

	var model *heuristic.Model
	if *modelPath != "" {
		f, err := os.Open(*modelPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		m, err := heuristic.Load(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
			os.Exit(1)
		}
		model = m
	}

	srv := web.NewServer(cat, model)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("handy-brawl web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
