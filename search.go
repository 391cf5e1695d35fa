package chess

import (
	"context"
	"sort"
	"time"
)

// Search constants (spec.md §4.10): default full-ply depth and the
// capture-only quiescence extension's own depth limit.
const (
	DefaultDepth        = 4
	DefaultQuiesceDepth = 2
)

// ExitReason reports whether a search completed its full depth or was cut
// short by its deadline.
type ExitReason uint8

const (
	FullDepth ExitReason = iota
	Timeout
)

// SearchOptions configures a single Search call.
type SearchOptions struct {
	// Depth is the number of full plies to search; zero selects
	// DefaultDepth.
	Depth int
	// MoveTime, if non-zero, bounds wall-clock time spent on the search.
	// Checked cooperatively on entry to every search and quiescence node.
	MoveTime time.Duration
}

// GoResult is the outcome of a Search call: the best move found (nil if no
// legal move exists) and whether the search ran to completion.
type GoResult struct {
	Movement *Move
	Exit     ExitReason
}

// searchState carries the deadline and cancellation context through a
// search's recursive calls; it has no other purpose than the deadline
// polling done on entry to each node.
type searchState struct {
	ctx      context.Context
	deadline time.Time
	expired  bool
}

func (s *searchState) checkExpired() bool {
	if s.expired {
		return true
	}
	if !s.deadline.IsZero() && !time.Now().Before(s.deadline) {
		s.expired = true
		return true
	}
	select {
	case <-s.ctx.Done():
		s.expired = true
		return true
	default:
		return false
	}
}

// Search runs a fixed-depth negamax (color-aware, not sign-negated) alpha-
// beta search with capture-only quiescence at the frontier (spec.md §4.10).
func Search(ctx context.Context, p *Position, opts SearchOptions) GoResult {
	if ctx == nil {
		ctx = context.Background()
	}
	depth := opts.Depth
	if depth == 0 {
		depth = DefaultDepth
	}

	s := &searchState{ctx: ctx}
	if opts.MoveTime > 0 {
		s.deadline = time.Now().Add(opts.MoveTime)
	}

	best, _, ok := search(s, &p.raw, depth, -WinScore-1, WinScore+1)
	if !ok {
		return GoResult{Exit: Timeout}
	}
	if best == nil {
		return GoResult{Exit: FullDepth}
	}
	return GoResult{Movement: best, Exit: FullDepth}
}

// search implements spec.md §4.10's numbered node algorithm. It returns the
// best move found (nil at a terminal node), the node's score, and whether
// the call completed before the deadline.
func search(s *searchState, raw *rawPosition, depth int, alpha, beta Score) (*Move, Score, bool) {
	if s.checkExpired() {
		return nil, 0, false
	}
	if depth == 0 {
		return nil, quiescence(s, raw, alpha, beta, DefaultQuiesceDepth), true
	}

	maximizing := raw.Turn == White
	moves := orderMoves(raw, raw.PseudoLegalMoves())

	var best Move
	haveBest := false
	tried := false
	timedOut := false

	for _, m := range moves {
		m = raw.normalizeCastle(m)
		clone := *raw
		clone.feedUnchecked(m)
		if clone.IsBorked() {
			continue
		}
		tried = true

		_, childScore, ok := search(s, &clone, depth-1, alpha, beta)
		if !ok {
			timedOut = true
			break
		}
		childScore = childScore.push()

		if maximizing {
			if childScore > alpha {
				alpha, best, haveBest = childScore, m, true
			}
			if alpha >= beta {
				break
			}
		} else {
			if childScore < beta {
				beta, best, haveBest = childScore, m, true
			}
			if beta <= alpha {
				break
			}
		}
	}

	if timedOut {
		return nil, 0, false
	}
	if !tried {
		return nil, terminalScore(raw), true
	}
	if !haveBest {
		if maximizing {
			return nil, alpha, true
		}
		return nil, beta, true
	}
	if maximizing {
		return &best, alpha, true
	}
	return &best, beta, true
}

// terminalScore is the static result for a node with no legal moves: mate
// against the side to move, or stalemate.
func terminalScore(raw *rawPosition) Score {
	mover := raw.sideState(raw.Turn)
	if !mover.KingInCheck {
		return 0
	}
	if raw.Turn == White {
		return -checkmateIn(0)
	}
	return checkmateIn(0)
}

// quiescence extends search along captures only, bounded by DefaultQuiesceDepth,
// to avoid evaluating mid-exchange (spec.md §4.10 "Quiescence search").
func quiescence(s *searchState, raw *rawPosition, alpha, beta Score, depth int) Score {
	if s.checkExpired() {
		return evaluateRaw(raw)
	}

	standPat := evaluateRaw(raw)
	maximizing := raw.Turn == White

	if maximizing {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return standPat
		}
		if standPat < beta {
			beta = standPat
		}
	}

	if depth == 0 {
		return standPat
	}

	for _, m := range orderMoves(raw, captureMoves(raw)) {
		m = raw.normalizeCastle(m)
		clone := *raw
		clone.feedUnchecked(m)
		if clone.IsBorked() {
			continue
		}
		score := quiescence(s, &clone, alpha, beta, depth-1)
		if maximizing {
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				return alpha
			}
		} else {
			if score < beta {
				beta = score
			}
			if beta <= alpha {
				return beta
			}
		}
	}

	if maximizing {
		return alpha
	}
	return beta
}

// captureMoves filters pseudo-legal moves down to captures (including
// en-passant), the only moves quiescence search explores.
func captureMoves(raw *rawPosition) []Move {
	all := raw.PseudoLegalMoves()
	opp := raw.sideState(raw.Turn.Other())
	mover := raw.sideState(raw.Turn)

	out := make([]Move, 0, len(all))
	for _, m := range all {
		if opp.Occupancy.Get(m.Destination) {
			out = append(out, m)
			continue
		}
		if mover.PieceAt(m.Origin) == Pawn && m.Destination == opp.EnPassant {
			out = append(out, m)
		}
	}
	return out
}

const (
	queenPromotionBonus Score = 150
	minorPromotionBonus Score = 120
	castleOrderBonus    Score = 50
)

// orderMoves sorts moves by the cheap heuristic spec.md §4.10 step 2
// describes: captures by victim value, promotions by piece, castle next.
func orderMoves(raw *rawPosition, moves []Move) []Move {
	opp := raw.sideState(raw.Turn.Other())
	mover := raw.sideState(raw.Turn)

	key := func(m Move) Score {
		switch {
		case m.IsCastle():
			return castleOrderBonus
		case m.IsPromotion():
			if m.Kind.PromotePiece == Queen {
				return queenPromotionBonus
			}
			return minorPromotionBonus
		}
		if victim := opp.PieceAt(m.Destination); victim != NoPieceType {
			return pieceValue[victim]
		}
		if mover.PieceAt(m.Origin) == Pawn && m.Destination == opp.EnPassant {
			return pieceValue[Pawn]
		}
		return 0
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return key(moves[i]) > key(moves[j])
	})
	return moves
}
