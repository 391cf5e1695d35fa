package chess

import "testing"

func TestGameMoveStrAppendsHistory(t *testing.T) {
	g := NewGame()
	for _, san := range []string{"e4", "e5", "Nf3", "Nc6"} {
		if err := g.MoveStr(san); err != nil {
			t.Fatalf("MoveStr(%q) error: %v", san, err)
		}
	}
	if len(g.Moves()) != 4 {
		t.Fatalf("len(Moves()) = %d, want 4", len(g.Moves()))
	}
	if len(g.Positions()) != 5 {
		t.Fatalf("len(Positions()) = %d, want 5 (including the starting position)", len(g.Positions()))
	}
	if g.Outcome() != OutcomeInProgress {
		t.Fatalf("Outcome() = %v, want OutcomeInProgress", g.Outcome())
	}
}

func TestGameSyncOutcomeOnCheckmate(t *testing.T) {
	g := NewGame()
	for _, san := range []string{"f3", "e5", "g4", "Qh4#"} {
		if err := g.MoveStr(san); err != nil {
			t.Fatalf("MoveStr(%q) error: %v", san, err)
		}
	}
	if g.Outcome() != OutcomeBlackWins {
		t.Fatalf("Outcome() = %v, want OutcomeBlackWins", g.Outcome())
	}
	if g.Method() != MethodCheckmate {
		t.Fatalf("Method() = %v, want MethodCheckmate", g.Method())
	}
}

func TestGameResignSetsOutcomeOnce(t *testing.T) {
	g := NewGame()
	if err := g.Resign(White); err != nil {
		t.Fatalf("Resign error: %v", err)
	}
	if g.Outcome() != OutcomeBlackWins {
		t.Fatalf("Outcome() = %v, want OutcomeBlackWins", g.Outcome())
	}
	if g.Method() != MethodResignation {
		t.Fatalf("Method() = %v, want MethodResignation", g.Method())
	}
	if err := g.Resign(Black); err != ErrAlreadyDecided {
		t.Fatalf("second Resign error = %v, want ErrAlreadyDecided", err)
	}
}

func TestGameOfferDrawSetsOutcome(t *testing.T) {
	g := NewGame()
	if err := g.OfferDraw(); err != nil {
		t.Fatalf("OfferDraw error: %v", err)
	}
	if g.Outcome() != OutcomeDraw || g.Method() != MethodDrawAgreed {
		t.Fatalf("Outcome/Method = %v/%v, want OutcomeDraw/MethodDrawAgreed", g.Outcome(), g.Method())
	}
}

func TestGameTagPairs(t *testing.T) {
	g := NewGame()
	if existed := g.AddTagPair("Event", "Test"); existed {
		t.Fatalf("AddTagPair reported an overwrite on a fresh key")
	}
	tp, ok := g.GetTagPair("Event")
	if !ok || tp.Value != "Test" {
		t.Fatalf("GetTagPair(Event) = %v, %v; want Test, true", tp, ok)
	}
	if !g.RemoveTagPair("Event") {
		t.Fatalf("RemoveTagPair(Event) = false, want true")
	}
	if _, ok := g.GetTagPair("Event"); ok {
		t.Fatalf("GetTagPair(Event) found a tag pair after removal")
	}
}

func TestGameMoveRejectsIllegalMove(t *testing.T) {
	g := NewGame()
	err := g.Move(Move{Origin: E2, Destination: E5, Kind: QuietMove})
	if err == nil {
		t.Fatalf("expected an error for an illegal move")
	}
}

func TestNewGameFromFEN(t *testing.T) {
	g, err := NewGameFromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN error: %v", err)
	}
	if len(g.Moves()) != 0 {
		t.Fatalf("fresh FEN-loaded game should have no move history")
	}
	if err := g.MoveStr("O-O"); err != nil {
		t.Fatalf("MoveStr(O-O) error: %v", err)
	}
}
