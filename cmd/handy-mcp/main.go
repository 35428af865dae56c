// Command handy-mcp serves the activation engine, oracle and solver as MCP
// tools over stdio.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	handymcp "github.com/peterkuimelis/handybrawl/internal/mcp"
	"github.com/peterkuimelis/handybrawl/internal/heuristic"
)

func main() {
	modelPath := flag.String("model", "", "path to a heuristic model YAML file (enables start_solve/get_best_path)")
	flag.Parse()

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
		handymcp.SetModel(m)
	}

	s := server.NewMCPServer("handy-brawl", "1.0.0")
	handymcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
