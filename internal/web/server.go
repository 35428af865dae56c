// Package web serves the solver over HTTP for a browser UI: static assets
// plus a /ws endpoint that bridges a websocket connection directly to an
// internal/solver.Worker's control and output channels.
package web

import (
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/peterkuimelis/handybrawl/internal/game"
	"github.com/peterkuimelis/handybrawl/internal/heuristic"
	"github.com/peterkuimelis/handybrawl/internal/solver"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	ID    game.CardId `json:"id"`
	Class string      `json:"class"`
	Faces []FaceInfo  `json:"faces"`
}

// FaceInfo is the JSON representation of one face of a card.
type FaceInfo struct {
	Key        string `json:"key"`
	Allegiance string `json:"allegiance"`
	Health     string `json:"health"`
}

// Server is the Handy Brawl solver web UI server.
type Server struct {
	cat     *game.Catalogue
	model   *heuristic.Model
	mux     *http.ServeMux
	history *solver.CrumbHistory
}

// NewServer creates a new web server backed by the given catalogue and an
// optional heuristic model (nil disables solving: each /ws worker never
// receives a model, so set_root_piles starts no search).
func NewServer(cat *game.Catalogue, model *heuristic.Model) *Server {
	s := &Server{cat: cat, model: model, mux: http.NewServeMux(), history: solver.NewCrumbHistory()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for _, id := range s.cat.IDs() {
		def := s.cat.MustGet(id)
		ci := CardInfo{ID: id, Class: def.Class.String()}
		for _, key := range []game.FaceKey{game.FaceA, game.FaceB, game.FaceC, game.FaceD} {
			face := def.Face(key)
			ci.Faces = append(ci.Faces, FaceInfo{
				Key:        key.String(),
				Allegiance: face.Allegiance.String(),
				Health:     face.Health.String(),
			})
		}
		cards = append(cards, ci)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

// wsControl is the client->server wire shape for a /ws control message.
type wsControl struct {
	Type  string   `json:"type"` // set_root_piles | clear_root_piles | set_game_end_mode | end
	Piles []string `json:"piles,omitempty"`
	Mode  string   `json:"mode,omitempty"` // standard | per_hero_class
}

// wsOutput is the server->client wire shape for a /ws output message.
type wsOutput struct {
	Kind        string   `json:"kind"`
	RunID       string   `json:"run_id,omitempty"`
	GameEndMode string   `json:"game_end_mode,omitempty"`
	Path        []string `json:"path,omitempty"`
	Err         string   `json:"error,omitempty"`
}

// handleWebSocket bridges one browser connection to a dedicated Worker: a
// goroutine runs the Worker, another relays its Output channel to the
// socket, and the request goroutine relays incoming control messages to it.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("websocket accept: %v", err)
		return
	}
	defer conn.CloseNow()
	ctx := r.Context()

	control := make(chan solver.Control)
	output := make(chan solver.Output, 16)
	worker := solver.NewWorker(s.cat, control, output)
	go worker.Run()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for out := range output {
			s.history.Record(out)
			data, err := json.Marshal(toWireOutput(out))
			if err != nil {
				continue
			}
			if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		}
	}()

	for _, mode := range []game.GameEndMode{game.ModeStandard, game.ModePerHeroClass} {
		if crumb, ok := s.history.Latest(mode); ok {
			if data, err := json.Marshal(toWireOutput(crumb)); err == nil {
				conn.Write(ctx, websocket.MessageText, data)
			}
		}
	}

	if s.model != nil {
		control <- solver.Control{Kind: solver.ControlSetModel, Model: s.model}
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			break
		}
		var msg wsControl
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		ctrl, stop := fromWireControl(msg)
		if ctrl.Kind == solver.ControlSetRootPiles {
			s.history.Clear()
		}
		control <- ctrl
		if stop {
			break
		}
	}
	close(control)
	<-done
	conn.Close(websocket.StatusNormalClosure, "done")
}

func fromWireControl(msg wsControl) (solver.Control, bool) {
	switch msg.Type {
	case "set_root_piles":
		piles := make([]game.Pile, 0, len(msg.Piles))
		for _, text := range msg.Piles {
			if p, err := game.ParsePile(text); err == nil {
				piles = append(piles, p)
			}
		}
		return solver.Control{Kind: solver.ControlSetRootPiles, RootPiles: piles}, false
	case "set_game_end_mode":
		mode := game.ModeStandard
		if msg.Mode == "per_hero_class" {
			mode = game.ModePerHeroClass
		}
		return solver.Control{Kind: solver.ControlSetGameEndMode, GameEnd: mode}, false
	case "end":
		return solver.Control{Kind: solver.ControlEnd}, true
	default:
		return solver.Control{Kind: solver.ControlClearRootPiles}, false
	}
}

func toWireOutput(out solver.Output) wsOutput {
	wo := wsOutput{Kind: out.Kind.String(), GameEndMode: out.GameEndMode.String()}
	if out.RunID != uuid.Nil {
		wo.RunID = out.RunID.String()
	}
	if out.Err != nil {
		wo.Err = out.Err.Error()
	}
	for _, p := range out.Path {
		wo.Path = append(wo.Path, game.FormatPile(p))
	}
	return wo
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
