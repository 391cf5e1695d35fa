package chess

// rawPosition is two side states plus whose turn it is and the move clocks
// (spec.md §3 "Position (raw)"). It is cheap to copy by value — nothing in
// it allocates — which is the mechanism the searcher and the legal-move
// filter use to explore alternatives: clone, mutate, discard.
//
// rawPosition enforces none of the "king safety" rule itself; Position
// (game_result.go) is the only publicly constructible type and is what
// refuses illegal moves and tracks the game's outcome.
type rawPosition struct {
	White, Black  sideState
	Turn          Side
	HalfmoveClock int
	FullmoveClock int
}

func (p *rawPosition) sideState(side Side) *sideState {
	if side == White {
		return &p.White
	}
	return &p.Black
}

// newStartingRawPosition returns the standard chess opening array.
func newStartingRawPosition() rawPosition {
	var p rawPosition
	p.White = newSideState(White)
	p.Black = newSideState(Black)
	placeStartingPieces(&p.White, &p.Black)
	p.Turn = White
	p.FullmoveClock = 1
	p.recomputeThreatsAndChecks()
	return p
}

var startingBackRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func placeStartingPieces(white, black *sideState) {
	for f := FileA; f <= FileH; f++ {
		white.Put(NewSquare(f, Rank1), startingBackRank[f])
		white.Put(NewSquare(f, Rank2), Pawn)
		black.Put(NewSquare(f, Rank8), startingBackRank[f])
		black.Put(NewSquare(f, Rank7), Pawn)
	}
}

// recomputeThreatsAndChecks rebuilds both sides' threats and king_in_check
// flags from the current piece placement (spec.md §4.4, invariant 3-4).
// Called after every mutation rather than maintained incrementally — the
// spec only mandates correctness, and a full recompute is simplest.
func (p *rawPosition) recomputeThreatsAndChecks() {
	combined := p.White.Occupancy.With(p.Black.Occupancy)
	p.White.RecomputeThreats(combined)
	p.Black.RecomputeThreats(combined)
	p.White.KingInCheck = p.White.Pieces[King].Only(p.Black.Threats) != EmptyBoard
	p.Black.KingInCheck = p.Black.Pieces[King].Only(p.White.Threats) != EmptyBoard
}

// normalizeCastle rewrites m's Kind to Castle(side) if it's a king stepping
// two files from its own square — the form ParseUCIMove and the PGN/SAN
// decoders hand back before the board knows it's a castle (spec.md §4.5/§4.7
// step 2).
func (p *rawPosition) normalizeCastle(m Move) Move {
	mover := p.sideState(p.Turn)
	if mover.PieceAt(m.Origin) != King {
		return m
	}
	switch int(m.Destination.File()) - int(m.Origin.File()) {
	case 2:
		m.Kind = Castle(KingSide)
	case -2:
		m.Kind = Castle(QueenSide)
	}
	return m
}

// feedUnchecked applies m without validating that it leaves the mover's own
// king safe (spec.md §4.7 steps 1-7). Callers that need the safety guarantee
// use tryFeed.
func (p *rawPosition) feedUnchecked(m Move) {
	mover := p.sideState(p.Turn)
	opp := p.sideState(p.Turn.Other())

	originIsPawn := mover.PieceAt(m.Origin) == Pawn
	isEnPassant := originIsPawn && m.Destination == opp.EnPassant

	mover.Update(m)

	captured := false
	if isEnPassant {
		capturedSquare := m.Destination.NextRank(p.Turn.Other())
		opp.Remove(capturedSquare)
		captured = true
	}
	if opp.Remove(m.Destination) != NoPieceType {
		captured = true
	}

	p.recomputeThreatsAndChecks()

	if originIsPawn || captured {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if p.Turn == Black {
		p.FullmoveClock++
	}
	p.Turn = p.Turn.Other()
}

// IsBorked reports whether the side that just moved (Turn.Other(), since
// feedUnchecked already swapped Turn) left its own king in check — an
// illegal intermediate result only feedUnchecked can produce.
func (p *rawPosition) IsBorked() bool {
	return p.sideState(p.Turn.Other()).KingInCheck
}

// tryFeed normalizes castle detection, clones, applies, and rejects moves
// that leave the mover's king in check (spec.md §4.7 "try_feed").
func (p rawPosition) tryFeed(m Move) (rawPosition, bool) {
	m = p.normalizeCastle(m)
	clone := p
	clone.feedUnchecked(m)
	if clone.IsBorked() {
		return rawPosition{}, false
	}
	return clone, true
}

// PseudoLegalMoves enumerates every pseudo-legal move for the side to move.
func (p *rawPosition) PseudoLegalMoves() []Move {
	own := p.sideState(p.Turn)
	opp := p.sideState(p.Turn.Other())
	return GeneratePseudoLegal(own, opp, p.Turn)
}

// LegalMoves filters PseudoLegalMoves down to the ones that don't leave the
// mover's own king in check, by cloning and replaying each candidate
// (spec.md §4.7: "the move generator exposes both forms").
func (p *rawPosition) LegalMoves() []Move {
	pseudo := p.PseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		clone := *p
		clone.feedUnchecked(m)
		if !clone.IsBorked() {
			legal = append(legal, m)
		}
	}
	return legal
}
