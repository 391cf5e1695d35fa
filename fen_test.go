package chess

import "testing"

func TestDefaultMatchesStartFEN(t *testing.T) {
	p := Default()
	if got := p.ToFEN(); got != startFEN {
		t.Fatalf("Default().ToFEN() = %q, want %q", got, startFEN)
	}
}

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		startFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"8/8/8/8/8/8/8/R3K3 w Q - 0 1",
	}
	for _, fen := range cases {
		p, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q) error: %v", fen, err)
		}
		if got := p.ToFEN(); got != fen {
			t.Errorf("round trip %q: got %q", fen, got)
		}
	}
}

func TestFENRejectsMalformedRecords(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XYkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
	}
	for _, fen := range cases {
		if _, err := FromFEN(fen); err == nil {
			t.Errorf("FromFEN(%q) expected error, got nil", fen)
		}
	}
}

func TestFENSanityChecksCastlingRights(t *testing.T) {
	// White king-side rook isn't on h1, so the K right should be dropped
	// even though the FEN record claims it.
	p, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w K - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	if p.raw.White.CastlingRights.Has(KingSide) {
		t.Fatalf("expected king-side castling right to be dropped when rook is absent")
	}
}
