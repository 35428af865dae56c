package solver

import (
	"testing"
	"time"

	"github.com/peterkuimelis/handybrawl/internal/game"
	"github.com/peterkuimelis/handybrawl/internal/heuristic"
)

func recvOutput(t *testing.T, out <-chan Output) Output {
	t.Helper()
	select {
	case o := <-out:
		return o
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for worker output")
		return Output{}
	}
}

// The worker's cooperative loop should start sleeping with no root piles,
// then run a batch and report a solution crumb and Done once seeded, then
// report Done a second time (and stop) on ControlEnd.
func TestWorkerEndToEnd(t *testing.T) {
	cat := game.DefaultCatalogue()
	m := heuristic.NewEmptyForCards(cat.IDs())

	control := make(chan Control)
	output := make(chan Output, 64)
	w := NewWorker(cat, control, output)
	go w.Run()

	if got := recvOutput(t, output); got.Kind != OutputStart {
		t.Fatalf("first output = %v, want Start", got.Kind)
	}

	control <- Control{Kind: ControlSetModel, Model: m}
	control <- Control{Kind: ControlSetRootPiles, RootPiles: []game.Pile{winSeedPile()}}

	var sawInit, sawCrumb, sawDone bool
	for i := 0; i < 2000 && !sawDone; i++ {
		switch o := recvOutput(t, output); o.Kind {
		case OutputInit:
			sawInit = true
		case OutputSolutionCrumb:
			sawCrumb = true
			if len(o.Path) < 2 {
				t.Errorf("solution crumb path too short: %d piles", len(o.Path))
			}
		case OutputDone:
			sawDone = true
		}
	}
	if !sawInit {
		t.Error("expected an Init output after SetRootPiles")
	}
	if !sawCrumb {
		t.Error("expected at least one SolutionCrumb before Done")
	}
	if !sawDone {
		t.Fatal("expected the worker to reach Done for a pile with an immediate winning hit")
	}

	control <- Control{Kind: ControlEnd}
	var sawFinalDone bool
	for i := 0; i < 50 && !sawFinalDone; i++ {
		if recvOutput(t, output).Kind == OutputDone {
			sawFinalDone = true
		}
	}
	if !sawFinalDone {
		t.Fatal("expected a Done output in response to ControlEnd")
	}
}

func TestWorkerClearRootPilesStopsSolving(t *testing.T) {
	cat := game.DefaultCatalogue()
	m := heuristic.NewEmptyForCards(cat.IDs())

	control := make(chan Control)
	output := make(chan Output, 64)
	w := NewWorker(cat, control, output)
	go w.Run()

	recvOutput(t, output) // Start

	control <- Control{Kind: ControlSetModel, Model: m}
	control <- Control{Kind: ControlClearRootPiles}

	// With no root piles the worker should keep sleeping, never producing
	// Init/Working/SolutionCrumb/Done.
	for i := 0; i < 3; i++ {
		if got := recvOutput(t, output); got.Kind != OutputSleeping {
			t.Fatalf("output %d = %v, want Sleeping", i, got.Kind)
		}
	}

	control <- Control{Kind: ControlEnd}
	var sawDone bool
	for i := 0; i < 50 && !sawDone; i++ {
		if recvOutput(t, output).Kind == OutputDone {
			sawDone = true
		}
	}
	if !sawDone {
		t.Fatal("expected a Done output in response to ControlEnd")
	}
}
