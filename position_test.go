package chess

import "testing"

// perft counts the leaf positions reachable in depth plies. It walks legal
// moves only, matching spec.md's perft definition.
func perft(raw rawPosition, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range raw.LegalMoves() {
		clone, ok := raw.tryFeed(m)
		if !ok {
			continue
		}
		nodes += perft(clone, depth-1)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281}
	raw := newStartingRawPosition()
	for depth, w := range want {
		if got := perft(raw, depth); got != w {
			t.Errorf("perft(start, %d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	want := []uint64{1, 48, 2039, 97862}
	for depth, w := range want {
		if got := perft(p.raw, depth); got != w {
			t.Errorf("perft(kiwipete, %d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	p, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	want := []uint64{1, 14, 191, 2812, 43238, 674624}
	for depth, w := range want {
		if got := perft(p.raw, depth); got != w {
			t.Errorf("perft(position3, %d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftMaximaPosition(t *testing.T) {
	fen := "R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - - 0 1"
	p, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	if got := len(p.Moves()); got != 218 {
		t.Fatalf("legal move count = %d, want 218", got)
	}
}

func TestStalemate(t *testing.T) {
	// Black king on a8, no legal moves, not in check.
	p, err := FromFEN("k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	if len(p.Moves()) != 0 {
		t.Fatalf("expected no legal moves in stalemate position")
	}
	if p.Result().Kind != Draw {
		t.Fatalf("Result().Kind = %v, want Draw", p.Result().Kind)
	}
}

func TestFoolsMateCheckmate(t *testing.T) {
	p := Default()
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}
	for _, m := range moves {
		if err := p.TryFeedUCI(m); err != nil {
			t.Fatalf("TryFeedUCI(%q) error: %v", m, err)
		}
	}
	if p.Result().Kind != Checkmate {
		t.Fatalf("Result().Kind = %v, want Checkmate", p.Result().Kind)
	}
	if p.Result().Winner != Black {
		t.Fatalf("Result().Winner = %v, want Black", p.Result().Winner)
	}
}

func TestFiftyMoveRuleDraw(t *testing.T) {
	p, err := FromFEN("k7/8/1K6/8/8/8/8/7R w - - 99 50")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	if err := p.TryFeedUCI("h1h2"); err != nil {
		t.Fatalf("TryFeedUCI error: %v", err)
	}
	if p.Result().Kind != Draw {
		t.Fatalf("Result().Kind = %v, want Draw after fifty-move rule", p.Result().Kind)
	}
}

func TestEnPassantOnlyAvailableImmediately(t *testing.T) {
	p := Default()
	for _, m := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		if err := p.TryFeedUCI(m); err != nil {
			t.Fatalf("TryFeedUCI(%q) error: %v", m, err)
		}
	}
	// e5 pawn may capture en passant on d6 right now.
	found := false
	for _, m := range p.Moves() {
		if m.Origin == E5 && m.Destination == D6 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected e5xd6 en passant to be available")
	}

	if err := p.TryFeedUCI("h2h3"); err != nil {
		t.Fatalf("TryFeedUCI error: %v", err)
	}
	if err := p.TryFeedUCI("a6a5"); err != nil {
		t.Fatalf("TryFeedUCI error: %v", err)
	}
	// The en-passant opportunity against d5 should be gone one ply later.
	for _, m := range p.Moves() {
		if m.Origin == E5 && m.Destination == D6 {
			t.Fatalf("en passant capture still available after the window closed")
		}
	}
}

func TestCastlingRevokedOnRookCapture(t *testing.T) {
	// Black bishop on a8 can dive the long diagonal to take the white
	// rook sitting on h1.
	p, err := FromFEN("b3k3/8/8/8/8/8/8/4K2R b K - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	if err := p.TryFeedUCI("a8h1"); err != nil {
		t.Fatalf("TryFeedUCI error: %v", err)
	}
	if p.raw.White.CastlingRights.Has(KingSide) {
		t.Fatalf("expected king-side castling right to be revoked once the rook is captured")
	}
}

func TestPromotionProducesFourChoices(t *testing.T) {
	p, err := FromFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	count := 0
	for _, m := range p.Moves() {
		if m.Origin == A7 && m.Destination == A8 {
			count++
		}
	}
	if count != 4 {
		t.Fatalf("promotion choice count = %d, want 4", count)
	}
}
