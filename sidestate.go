package chess

// sideState holds everything about one color's half of a position
// (spec.md §3/§4.4): its piece placement, the squares it attacks, and the
// rights/flags that placement implies. It knows nothing about the other
// color; rawPosition (position.go) is what ties both halves together and
// recomputes the cross-side fields (king_in_check, threats) that depend on
// combined occupancy.
type sideState struct {
	Color Side

	Occupancy Bitboard
	Pieces    [6]Bitboard

	Threats       Bitboard
	PiecesThreats [6]Bitboard

	EnPassant   Square
	KingInCheck bool

	CastlingRights CastlingRights
}

func newSideState(color Side) sideState {
	return sideState{
		Color:          color,
		EnPassant:      NoSquare,
		CastlingRights: CastlingBoth,
	}
}

func kingHomeSquare(side Side) Square {
	if side == White {
		return E1
	}
	return E8
}

func rookHomeSquare(side Side, castleSide CastleSide) Square {
	switch {
	case side == White && castleSide == KingSide:
		return H1
	case side == White && castleSide == QueenSide:
		return A1
	case side == Black && castleSide == KingSide:
		return H8
	default:
		return A8
	}
}

func castleRookDestination(side Side, castleSide CastleSide) Square {
	switch {
	case side == White && castleSide == KingSide:
		return F1
	case side == White && castleSide == QueenSide:
		return D1
	case side == Black && castleSide == KingSide:
		return F8
	default:
		return D8
	}
}

func castleKingDestination(side Side, castleSide CastleSide) Square {
	switch {
	case side == White && castleSide == KingSide:
		return G1
	case side == White && castleSide == QueenSide:
		return C1
	case side == Black && castleSide == KingSide:
		return G8
	default:
		return C8
	}
}

// PieceAt returns the piece this side has on sq, or NoPieceType.
func (s *sideState) PieceAt(sq Square) PieceType {
	for _, p := range allPieceTypes {
		if s.Pieces[p].Get(sq) {
			return p
		}
	}
	return NoPieceType
}

// Put places piece p on sq. Used by FEN loading; does not touch threats,
// since threats require the opponent's occupancy too (spec.md §4.4).
func (s *sideState) Put(sq Square, p PieceType) {
	s.Pieces[p] = s.Pieces[p].Set(sq)
	s.Occupancy = s.Occupancy.Set(sq)
}

// Remove clears whatever piece sits on sq and returns it (NoPieceType if
// the square was empty). If the removed piece was a rook standing on its
// original corner, the matching castling right is revoked (spec.md §3
// invariant 5: captured rook drops rights same as a rook that moved away).
func (s *sideState) Remove(sq Square) PieceType {
	p := s.PieceAt(sq)
	if p == NoPieceType {
		return NoPieceType
	}
	s.Pieces[p] = s.Pieces[p].Reset(sq)
	s.Occupancy = s.Occupancy.Reset(sq)
	if p == Rook {
		s.revokeCastlingIfHomeRook(sq)
	}
	return p
}

func (s *sideState) revokeCastlingIfHomeRook(sq Square) {
	if sq == rookHomeSquare(s.Color, KingSide) {
		s.CastlingRights = s.CastlingRights.Without(KingSide)
	} else if sq == rookHomeSquare(s.Color, QueenSide) {
		s.CastlingRights = s.CastlingRights.Without(QueenSide)
	}
}

// Update applies a move that this side is making: it moves the mover's own
// piece, carries the rook along on a castle, tracks promotion, revokes
// castling rights the move itself forfeits, and sets or clears en_passant
// (spec.md §4.4). It does not touch the opponent's side state — capturing
// whatever sat on the destination square is the caller's job (position.go),
// since that lives on the other sideState.
func (s *sideState) Update(m Move) {
	origin := s.PieceAt(m.Origin)

	s.Pieces[origin] = s.Pieces[origin].Reset(m.Origin)
	s.Occupancy = s.Occupancy.Reset(m.Origin)

	landing := origin
	if m.Kind.Tag == PromoteKind {
		landing = m.Kind.PromotePiece
	}
	s.Pieces[landing] = s.Pieces[landing].Set(m.Destination)
	s.Occupancy = s.Occupancy.Set(m.Destination)

	if m.Kind.Tag == CastleKind {
		rookFrom := rookHomeSquare(s.Color, m.Kind.CastleSide)
		rookTo := castleRookDestination(s.Color, m.Kind.CastleSide)
		s.Pieces[Rook] = s.Pieces[Rook].Reset(rookFrom).Set(rookTo)
		s.Occupancy = s.Occupancy.Reset(rookFrom).Set(rookTo)
	}

	switch {
	case origin == King:
		s.CastlingRights = CastlingNone
	case origin == Rook:
		s.revokeCastlingIfHomeRook(m.Origin)
	}

	s.EnPassant = NoSquare
	if origin == Pawn {
		diff := int(m.Destination) - int(m.Origin)
		if diff == 16 || diff == -16 {
			s.EnPassant = Square((int(m.Origin) + int(m.Destination)) / 2)
		}
	}
}

// attackSet returns the squares piece p standing on sq attacks given
// combined occupancy occ, using capture (not push) tables for pawns, per
// spec.md §4.4.
func attackSet(p PieceType, sq Square, occ Bitboard, side Side) Bitboard {
	switch p {
	case King:
		return kingAttacks[sq]
	case Knight:
		return knightAttacks[sq]
	case Rook:
		return RookAttacks(sq, occ)
	case Bishop:
		return BishopAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case Pawn:
		return pawnCaptures[side][sq]
	}
	return EmptyBoard
}

// RecomputeThreats rebuilds PiecesThreats and Threats from scratch against
// combined occupancy. Unlike move generation, threats are not masked by own
// occupancy: a square defended by one's own piece still counts as a threat
// (it matters for king safety and castling-through-check checks).
func (s *sideState) RecomputeThreats(combined Bitboard) {
	var all Bitboard
	for _, p := range allPieceTypes {
		var pt Bitboard
		for _, sq := range s.Pieces[p].Squares() {
			pt = pt.With(attackSet(p, sq, combined, s.Color))
		}
		s.PiecesThreats[p] = pt
		all = all.With(pt)
	}
	s.Threats = all
}
