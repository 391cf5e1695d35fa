package chess

// GeneratePseudoLegal enumerates every pseudo-legal move for the side to
// move in a position built from the two sideStates plus the mover's color
// (spec.md §4.6). It knows nothing about self-check: the caller (rawPosition)
// filters the result down to legal moves by replaying each one.
//
// The order pieces are walked in (king, queen, rook, bishop, knight, pawn,
// then castles) is stable but, per spec.md, otherwise unspecified.
func GeneratePseudoLegal(own, opp *sideState, turn Side) []Move {
	moves := make([]Move, 0, 48)
	combined := own.Occupancy.With(opp.Occupancy)

	for _, p := range allPieceTypes {
		for _, sq := range own.Pieces[p].Squares() {
			switch p {
			case Pawn:
				moves = appendPawnMoves(moves, own, opp, sq, turn)
			case King:
				dests := kingAttacks[sq].Without(own.Occupancy).Without(opp.Threats)
				moves = appendQuietMoves(moves, sq, dests)
			default:
				dests := attackSet(p, sq, combined, turn).Without(own.Occupancy)
				moves = appendQuietMoves(moves, sq, dests)
			}
		}
	}

	moves = appendCastleMoves(moves, own, opp, turn)
	return moves
}

func appendQuietMoves(moves []Move, origin Square, dests Bitboard) []Move {
	for _, d := range dests.Squares() {
		moves = append(moves, Move{Origin: origin, Destination: d, Kind: QuietMove})
	}
	return moves
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func lastRankFor(side Side) Rank {
	if side == White {
		return Rank8
	}
	return Rank1
}

func appendPawnDestination(moves []Move, origin, dest Square, side Side) []Move {
	if dest.Rank() == lastRankFor(side) {
		for _, promo := range promotionPieces {
			moves = append(moves, Move{Origin: origin, Destination: dest, Kind: Promote(promo)})
		}
		return moves
	}
	return append(moves, Move{Origin: origin, Destination: dest, Kind: QuietMove})
}

func appendPawnMoves(moves []Move, own, opp *sideState, sq Square, side Side) []Move {
	occupied := own.Occupancy.With(opp.Occupancy)

	pushes := pawnPushes[side][sq]
	if one, ok := sq.CheckedNextRank(side); ok {
		if occupied.Get(one) {
			pushes = pushes.Without(bbForSquare(one))
			if two, ok := one.CheckedNextRank(side); ok {
				pushes = pushes.Without(bbForSquare(two))
			}
		}
	}
	pushes = pushes.Without(occupied)
	for _, d := range pushes.Squares() {
		moves = appendPawnDestination(moves, sq, d, side)
	}

	captureTargets := opp.Occupancy
	if opp.EnPassant != NoSquare {
		captureTargets = captureTargets.With(bbForSquare(opp.EnPassant))
	}
	captures := pawnCaptures[side][sq].Only(captureTargets)
	for _, d := range captures.Squares() {
		moves = appendPawnDestination(moves, sq, d, side)
	}

	return moves
}

// castleThroughSquares are the squares (besides the king's own square) that
// must be unattacked for a given color/side to castle through, and
// castleEmptySquares are the squares that must be unoccupied between king
// and rook.
func castleThroughSquares(color Side, castleSide CastleSide) []Square {
	switch {
	case color == White && castleSide == KingSide:
		return []Square{F1, G1}
	case color == White && castleSide == QueenSide:
		return []Square{C1, D1}
	case color == Black && castleSide == KingSide:
		return []Square{F8, G8}
	default:
		return []Square{C8, D8}
	}
}

func castleEmptySquares(color Side, castleSide CastleSide) Bitboard {
	switch {
	case color == White && castleSide == KingSide:
		return bbForSquare(F1).With(bbForSquare(G1))
	case color == White && castleSide == QueenSide:
		return bbForSquare(B1).With(bbForSquare(C1)).With(bbForSquare(D1))
	case color == Black && castleSide == KingSide:
		return bbForSquare(F8).With(bbForSquare(G8))
	default:
		return bbForSquare(B8).With(bbForSquare(C8)).With(bbForSquare(D8))
	}
}

func appendCastleMoves(moves []Move, own, opp *sideState, turn Side) []Move {
	if own.KingInCheck {
		return moves
	}
	combined := own.Occupancy.With(opp.Occupancy)
	king := kingHomeSquare(turn)

	for _, side := range [2]CastleSide{KingSide, QueenSide} {
		if !own.CastlingRights.Has(side) {
			continue
		}
		if combined.Only(castleEmptySquares(turn, side)) != EmptyBoard {
			continue
		}
		if anyAttacked(opp.Threats, castleThroughSquares(turn, side)) {
			continue
		}
		moves = append(moves, Move{
			Origin:      king,
			Destination: castleKingDestination(turn, side),
			Kind:        Castle(side),
		})
	}
	return moves
}

func anyAttacked(threats Bitboard, squares []Square) bool {
	for _, sq := range squares {
		if threats.Get(sq) {
			return true
		}
	}
	return false
}
