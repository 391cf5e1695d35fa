package chess

import "testing"

func TestEncodeSANBasicMoves(t *testing.T) {
	p := Default()
	e4, err := p.DecodeMove("e2e4")
	if err != nil {
		t.Fatalf("DecodeMove error: %v", err)
	}
	if got := p.EncodeSAN(e4); got != "e4" {
		t.Fatalf("EncodeSAN(e4) = %q, want %q", got, "e4")
	}
}

func TestEncodeSANCaptureAndCheck(t *testing.T) {
	p := Default()
	for _, uci := range []string{"e2e4", "d7d5"} {
		if err := p.TryFeedUCI(uci); err != nil {
			t.Fatalf("TryFeedUCI(%q) error: %v", uci, err)
		}
	}
	exd5, err := p.DecodeMove("e4d5")
	if err != nil {
		t.Fatalf("DecodeMove error: %v", err)
	}
	if got := p.EncodeSAN(exd5); got != "exd5" {
		t.Fatalf("EncodeSAN(exd5) = %q, want %q", got, "exd5")
	}
}

func TestEncodeSANCheckAndMateSuffix(t *testing.T) {
	p := Default()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4"} {
		if err := p.TryFeedUCI(uci); err != nil {
			t.Fatalf("TryFeedUCI(%q) error: %v", uci, err)
		}
	}
	qh4, err := p.DecodeMove("d8h4")
	if err != nil {
		t.Fatalf("DecodeMove error: %v", err)
	}
	if got := p.EncodeSAN(qh4); got != "Qh4#" {
		t.Fatalf("EncodeSAN(fool's mate) = %q, want %q", got, "Qh4#")
	}
}

func TestEncodeSANCastle(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	m, err := p.DecodeMove("e1g1")
	if err != nil {
		t.Fatalf("DecodeMove error: %v", err)
	}
	if got := p.EncodeSAN(m); got != "O-O" {
		t.Fatalf("EncodeSAN(castle) = %q, want %q", got, "O-O")
	}
}

func TestEncodeSANDisambiguatesByFile(t *testing.T) {
	// Two white knights, both able to reach d2: one from b1, one from f3.
	p, err := FromFEN("4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	m, err := p.DecodeMove("b1d2")
	if err != nil {
		t.Fatalf("DecodeMove error: %v", err)
	}
	if got := p.EncodeSAN(m); got != "Nbd2" {
		t.Fatalf("EncodeSAN(disambiguated knight move) = %q, want %q", got, "Nbd2")
	}
}

func TestDecodeSANRoundTripsWithEncodeSAN(t *testing.T) {
	p := Default()
	for _, m := range p.Moves() {
		san := p.EncodeSAN(m)
		decoded, err := p.DecodeSAN(san)
		if err != nil {
			t.Fatalf("DecodeSAN(%q) error: %v", san, err)
		}
		if decoded != m {
			t.Fatalf("DecodeSAN(%q) = %v, want %v", san, decoded, m)
		}
	}
}

func TestDecodeUCITagsCastle(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	m, err := p.DecodeUCI("e1g1")
	if err != nil {
		t.Fatalf("DecodeUCI error: %v", err)
	}
	if !m.IsCastle() || m.Kind.CastleSide != KingSide {
		t.Fatalf("DecodeUCI(e1g1) did not resolve to a king-side castle: %+v", m)
	}
}
