package solver

import (
	"time"

	"github.com/google/uuid"

	"github.com/peterkuimelis/handybrawl/internal/game"
	"github.com/peterkuimelis/handybrawl/internal/heuristic"
)

// batchSize is the bounded number of solver iterations a worker tick
// performs before yielding back to the control channel.
const batchSize = 1000

// idlePoll is how long the worker sleeps between polls when it has no
// active solver.
const idlePoll = 100 * time.Millisecond

// ControlKind tags a message sent on the worker's control channel.
type ControlKind int

const (
	ControlSetModel ControlKind = iota
	ControlSetRootPiles
	ControlClearRootPiles
	ControlSetGameEndMode
	ControlEnd
)

// Control is one control-channel message. Only the field relevant to Kind
// is read.
type Control struct {
	Kind      ControlKind
	Model     *heuristic.Model
	RootPiles []game.Pile
	GameEnd   game.GameEndMode
}

// OutputKind tags a message sent on the worker's output channel.
type OutputKind int

const (
	OutputStart OutputKind = iota
	OutputInit
	OutputWorking
	OutputSleeping
	OutputDone
	OutputSolutionCrumb
)

func (k OutputKind) String() string {
	names := [...]string{"Start", "Init", "Working", "Sleeping", "Done", "SolutionCrumb"}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Output is one output-channel message. GameEndMode tags SolutionCrumb
// so the UI can discard crumbs from a superseded mode.
type Output struct {
	Kind        OutputKind
	RunID       uuid.UUID
	GameEndMode game.GameEndMode
	Path        []game.Pile
	Err         error
}

// Worker runs a cooperative loop: each tick consumes one control message,
// or (lower priority) performs a bounded batch of solver iterations and
// yields. It owns at most one Solver at a time.
type Worker struct {
	cat     *game.Catalogue
	control <-chan Control
	output  chan<- Output

	model   *heuristic.Model
	gameEnd game.GameEndMode
	solver  *Solver
	runID   uuid.UUID
}

// NewWorker builds a worker reading control messages from control and
// writing output messages to output. The caller owns both channels' other
// ends and is responsible for closing control to let Run return.
func NewWorker(cat *game.Catalogue, control <-chan Control, output chan<- Output) *Worker {
	return &Worker{cat: cat, control: control, output: output}
}

// Run is the worker's cooperative loop. It returns when a Control{Kind:
// ControlEnd} message arrives or control is closed.
func (w *Worker) Run() {
	w.output <- Output{Kind: OutputStart}
	for {
		select {
		case msg, ok := <-w.control:
			if !ok {
				return
			}
			if w.handleControl(msg) {
				return
			}
		default:
			if w.solver == nil {
				w.output <- Output{Kind: OutputSleeping}
				time.Sleep(idlePoll)
				continue
			}
			w.runBatch()
		}
	}
}

func (w *Worker) handleControl(msg Control) (stop bool) {
	switch msg.Kind {
	case ControlSetModel:
		w.model = msg.Model
		w.restartSolver()
	case ControlSetRootPiles:
		w.restartSolverWithSeeds(msg.RootPiles)
	case ControlClearRootPiles:
		w.solver = nil
	case ControlSetGameEndMode:
		w.gameEnd = msg.GameEnd
		w.restartSolver()
	case ControlEnd:
		w.output <- Output{Kind: OutputDone, RunID: w.runID}
		return true
	}
	return false
}

func (w *Worker) restartSolver() {
	if w.solver == nil {
		return
	}
	// SetModel/SetGameEndMode drop the current solver state; callers must re-issue SetRootPiles to resume search.
	w.solver = nil
}

func (w *Worker) restartSolverWithSeeds(seeds []game.Pile) {
	if w.model == nil || len(seeds) == 0 {
		w.solver = nil
		return
	}
	cfg := DefaultConfig(w.gameEnd)
	s, err := New(w.cat, w.model, seeds, cfg)
	if err != nil {
		w.output <- Output{Kind: OutputDone, Err: err}
		return
	}
	w.runID = uuid.New()
	w.solver = s
	w.output <- Output{Kind: OutputInit, RunID: w.runID, GameEndMode: w.gameEnd}
}

func (w *Worker) runBatch() {
	w.output <- Output{Kind: OutputWorking, RunID: w.runID, GameEndMode: w.gameEnd}
	for i := 0; i < batchSize; i++ {
		switch w.solver.SingleIter() {
		case NewBest:
			path, ok := w.solver.BestPath()
			if ok {
				w.output <- Output{Kind: OutputSolutionCrumb, RunID: w.runID, GameEndMode: w.gameEnd, Path: path}
			}
		case Done:
			w.output <- Output{Kind: OutputDone, RunID: w.runID, GameEndMode: w.gameEnd}
			w.solver = nil
			return
		}
	}
}
