// Command handy-solved is a background solver daemon: each TCP connection
// gets its own solver.Worker, fed and drained over a newline-delimited JSON
// protocol matching solver.Control/solver.Output.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/google/uuid"

	"github.com/peterkuimelis/handybrawl/internal/game"
	"github.com/peterkuimelis/handybrawl/internal/heuristic"
	"github.com/peterkuimelis/handybrawl/internal/solver"
)

func main() {
	port := flag.String("port", "9100", "TCP port to listen on")
	modelPath := flag.String("model", "", "path to a heuristic model YAML file")
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

	ln, err := net.Listen("tcp", ":"+*port)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer ln.Close()
	log.Printf("handy-solved listening on :%s", *port)

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Printf("accept: %v", err)
			continue
		}
		go serve(conn, cat, model)
	}
}

// lineControl is the newline-delimited JSON wire shape clients send.
type lineControl struct {
	Kind  string   `json:"kind"` // set_root_piles | clear_root_piles | set_game_end_mode | end
	Piles []string `json:"piles,omitempty"`
	Mode  string   `json:"mode,omitempty"`
}

// lineOutput is the newline-delimited JSON wire shape the daemon writes.
type lineOutput struct {
	Kind        string   `json:"kind"`
	RunID       string   `json:"run_id,omitempty"`
	GameEndMode string   `json:"game_end_mode,omitempty"`
	Path        []string `json:"path,omitempty"`
	Err         string   `json:"error,omitempty"`
}

func serve(conn net.Conn, cat *game.Catalogue, model *heuristic.Model) {
	defer conn.Close()

	control := make(chan solver.Control)
	output := make(chan solver.Output, 16)
	worker := solver.NewWorker(cat, control, output)
	go worker.Run()

	done := make(chan struct{})
	go func() {
		defer close(done)
		enc := json.NewEncoder(conn)
		for out := range output {
			wo := lineOutput{Kind: out.Kind.String(), GameEndMode: out.GameEndMode.String()}
			if out.RunID != uuid.Nil {
				wo.RunID = out.RunID.String()
			}
			if out.Err != nil {
				wo.Err = out.Err.Error()
			}
			for _, p := range out.Path {
				wo.Path = append(wo.Path, game.FormatPile(p))
			}
			if err := enc.Encode(wo); err != nil {
				return
			}
		}
	}()

	if model != nil {
		control <- solver.Control{Kind: solver.ControlSetModel, Model: model}
	}

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var msg lineControl
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			continue
		}
		switch msg.Kind {
		case "set_root_piles":
			var piles []game.Pile
			for _, text := range msg.Piles {
				if p, err := game.ParsePile(text); err == nil {
					piles = append(piles, p)
				}
			}
			control <- solver.Control{Kind: solver.ControlSetRootPiles, RootPiles: piles}
		case "clear_root_piles":
			control <- solver.Control{Kind: solver.ControlClearRootPiles}
		case "set_game_end_mode":
			mode := game.ModeStandard
			if msg.Mode == "per_hero_class" {
				mode = game.ModePerHeroClass
			}
			control <- solver.Control{Kind: solver.ControlSetGameEndMode, GameEnd: mode}
		case "end":
			control <- solver.Control{Kind: solver.ControlEnd}
			close(control)
			<-done
			return
		}
	}
	close(control)
	<-done
}
