// Package mcp exposes the activation engine, oracle and solver as MCP
// tools (a RegisterTools(s) entry point
// plus one tool-definition/handler pair per capability), adapted from a
// human-vs-Claude duel session to a stateless engine/solver surface.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/handybrawl/internal/game"
	"github.com/peterkuimelis/handybrawl/internal/heuristic"
	"github.com/peterkuimelis/handybrawl/internal/solver"
)

// activeRuns holds every solver started by start_solve, keyed by the
// "run-N" id that start_solve returned; get_best_path drops a run once it
// reports Done.
var activeRuns = make(map[string]*solver.Solver)

var catalogue = game.DefaultCatalogue()
var model *heuristic.Model

// SetModel installs the heuristic model used by start_solve; main() loads
// it from --model before starting the server.
func SetModel(m *heuristic.Model) { model = m }

// RegisterTools adds every game tool to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(resolveTopCardTool(), handleResolveTopCard)
	s.AddTool(classifyPileTool(), handleClassifyPile)
	s.AddTool(startSolveTool(), handleStartSolve)
	s.AddTool(getBestPathTool(), handleGetBestPath)
}

// --- Tool definitions ---

func resolveTopCardTool() mcp.Tool {
	return mcp.NewTool("resolve_top_card",
		mcp.WithDescription("Enumerate every legal next-pile (with its event trace) one activation of the top card can produce."),
		mcp.WithString("pile", mcp.Required(), mcp.Description("Pile text, e.g. '1A 9C 3B 5'")),
	)
}

func classifyPileTool() mcp.Tool {
	return mcp.NewTool("classify_pile",
		mcp.WithDescription("Classify a pile as Win, Lose, or Unresolved under a given end-game mode."),
		mcp.WithString("pile", mcp.Required(), mcp.Description("Pile text, e.g. '1A 9C 3B 5'")),
		mcp.WithString("mode", mcp.Description("'standard' (default) or 'per_hero_class'")),
	)
}

func startSolveTool() mcp.Tool {
	return mcp.NewTool("start_solve",
		mcp.WithDescription("Start an A* search from a seed pile. Returns a run id; each get_best_path call advances the search by one batch."),
		mcp.WithString("pile", mcp.Required(), mcp.Description("Seed pile text")),
		mcp.WithString("mode", mcp.Description("'standard' (default) or 'per_hero_class'")),
	)
}

func getBestPathTool() mcp.Tool {
	return mcp.NewTool("get_best_path",
		mcp.WithDescription("Advance a running solve by one batch of iterations and return its current best winning path, if any."),
		mcp.WithString("run_id", mcp.Required(), mcp.Description("Run id returned by start_solve")),
	)
}

// --- Tool handlers ---

func handleResolveTopCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pileText, err := requirePileArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pile, err := game.ParsePile(pileText)
	if err != nil {
		return mcp.NewToolResultErrorf("bad pile: %v", err), nil
	}
	traces := game.ResolveTopCard(catalogue, pile)

	type traceView struct {
		Pile   string   `json:"pile"`
		Events []string `json:"events"`
	}
	out := make([]traceView, len(traces))
	for i, t := range traces {
		events := make([]string, len(t.Events))
		for j, e := range t.Events {
			events[j] = e.String()
		}
		out[i] = traceView{Pile: game.FormatPile(t.Pile), Events: events}
	}
	return mcp.NewToolResultText(respondJSON(out)), nil
}

func handleClassifyPile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pileText, err := requirePileArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pile, err := game.ParsePile(pileText)
	if err != nil {
		return mcp.NewToolResultErrorf("bad pile: %v", err), nil
	}
	mode := parseMode(request.GetString("mode", "standard"))
	report := game.ClassifyVerbose(catalogue, pile, mode)
	return mcp.NewToolResultText(respondJSON(report)), nil
}

func handleStartSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if model == nil {
		return mcp.NewToolResultError("no heuristic model loaded; start the server with --model"), nil
	}
	pileText, err := requirePileArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pile, err := game.ParsePile(pileText)
	if err != nil {
		return mcp.NewToolResultErrorf("bad pile: %v", err), nil
	}
	mode := parseMode(request.GetString("mode", "standard"))

	s, err := solver.New(catalogue, model, []game.Pile{pile}, solver.DefaultConfig(mode))
	if err != nil {
		return mcp.NewToolResultErrorf("could not start solve: %v", err), nil
	}
	runID := fmt.Sprintf("run-%d", len(activeRuns)+1)
	activeRuns[runID] = s

	return mcp.NewToolResultText(respondJSON(map[string]string{"run_id": runID})), nil
}

func handleGetBestPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	runID := request.GetString("run_id", "")
	s, ok := activeRuns[runID]
	if !ok {
		return mcp.NewToolResultErrorf("unknown run_id %q", runID), nil
	}

	result := solver.Continue
	for i := 0; i < 1000 && result == solver.Continue; i++ {
		result = s.SingleIter()
	}

	path, found := s.BestPath()
	resp := struct {
		Status string   `json:"status"`
		Path   []string `json:"path,omitempty"`
	}{Status: result.String()}
	if found {
		resp.Path = make([]string, len(path))
		for i, p := range path {
			resp.Path[i] = game.FormatPile(p)
		}
	}
	if result == solver.Done {
		delete(activeRuns, runID)
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

// --- helpers ---

// requirePileArg reads the "pile" argument, falling back to jsonparser for
// clients that send the whole tool call as a raw JSON object rather than
// through the typed mcp.CallToolRequest accessors.
func requirePileArg(request mcp.CallToolRequest) (string, error) {
	if p := request.GetString("pile", ""); p != "" {
		return p, nil
	}
	raw, err := json.Marshal(request.GetArguments())
	if err != nil {
		return "", fmt.Errorf("missing required argument: pile")
	}
	v, err := jsonparser.GetString(raw, "pile")
	if err != nil || v == "" {
		return "", fmt.Errorf("missing required argument: pile")
	}
	return v, nil
}

func parseMode(s string) game.GameEndMode {
	if s == "per_hero_class" {
		return game.ModePerHeroClass
	}
	return game.ModeStandard
}

func respondJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
