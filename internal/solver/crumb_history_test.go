package solver

import (
	"testing"

	"github.com/peterkuimelis/handybrawl/internal/game"
)

func crumbFor(mode game.GameEndMode, pile game.Pile) Output {
	return Output{Kind: OutputSolutionCrumb, GameEndMode: mode, Path: []game.Pile{pile}}
}

func TestCrumbHistoryLatestEmpty(t *testing.T) {
	h := NewCrumbHistory()
	if _, ok := h.Latest(game.ModeStandard); ok {
		t.Fatal("expected no crumb recorded yet")
	}
}

func TestCrumbHistoryRecordsPerMode(t *testing.T) {
	h := NewCrumbHistory()
	standard := game.Pile{{CardID: 1}}
	perClass := game.Pile{{CardID: 2}}

	h.Record(crumbFor(game.ModeStandard, standard))
	h.Record(crumbFor(game.ModePerHeroClass, perClass))

	got, ok := h.Latest(game.ModeStandard)
	if !ok || len(got.Path) != 1 || got.Path[0][0].CardID != 1 {
		t.Fatalf("wrong standard-mode crumb: %+v", got)
	}
	got, ok = h.Latest(game.ModePerHeroClass)
	if !ok || len(got.Path) != 1 || got.Path[0][0].CardID != 2 {
		t.Fatalf("wrong per-hero-class crumb: %+v", got)
	}
}

func TestCrumbHistoryNonCrumbIgnored(t *testing.T) {
	h := NewCrumbHistory()
	h.Record(Output{Kind: OutputWorking, GameEndMode: game.ModeStandard})
	if _, ok := h.Latest(game.ModeStandard); ok {
		t.Fatal("non-crumb output should not be recorded")
	}
}

func TestCrumbHistoryLatestIsMostRecent(t *testing.T) {
	h := NewCrumbHistory()
	for i := game.CardId(1); i <= 3; i++ {
		h.Record(crumbFor(game.ModeStandard, game.Pile{{CardID: i}}))
	}
	got, ok := h.Latest(game.ModeStandard)
	if !ok || got.Path[0][0].CardID != 3 {
		t.Fatalf("expected the latest recorded crumb (id 3), got %+v", got)
	}
	all := h.All(game.ModeStandard)
	if len(all) != 3 {
		t.Fatalf("expected all 3 crumbs retained within ring size, got %d", len(all))
	}
}

func TestCrumbHistoryRingEvictsOldest(t *testing.T) {
	h := NewCrumbHistory()
	for i := game.CardId(1); i <= crumbRingSize+2; i++ {
		h.Record(crumbFor(game.ModeStandard, game.Pile{{CardID: i}}))
	}
	all := h.All(game.ModeStandard)
	if len(all) != crumbRingSize {
		t.Fatalf("expected ring capped at %d entries, got %d", crumbRingSize, len(all))
	}
	if all[0].Path[0][0].CardID != 3 {
		t.Fatalf("expected oldest surviving entry to be id 3, got %+v", all[0])
	}
	if all[len(all)-1].Path[0][0].CardID != game.CardId(crumbRingSize+2) {
		t.Fatalf("expected newest entry last, got %+v", all[len(all)-1])
	}
}

func TestCrumbHistoryClear(t *testing.T) {
	h := NewCrumbHistory()
	h.Record(crumbFor(game.ModeStandard, game.Pile{{CardID: 1}}))
	h.Clear()
	if _, ok := h.Latest(game.ModeStandard); ok {
		t.Fatal("expected history to be empty after Clear")
	}
}
