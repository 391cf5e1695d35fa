package chess

import "errors"

// ResultKind distinguishes the three shapes a game's outcome can take
// (spec.md §3 "Position (validated)").
type ResultKind uint8

const (
	// Undecided means the game is still in progress.
	Undecided ResultKind = iota
	// Draw means the fifty-move rule or stalemate ended the game.
	Draw
	// Checkmate means one side delivered mate; GameResult.Winner names it.
	Checkmate
)

// GameResult is Undecided, Draw, or Checkmate by a specific side.
type GameResult struct {
	Kind   ResultKind
	Winner Side // valid iff Kind == Checkmate
}

// CheckmateBy builds the GameResult for side delivering checkmate.
func CheckmateBy(side Side) GameResult {
	return GameResult{Kind: Checkmate, Winner: side}
}

// Errors returned by Position.TryFeed.
var (
	ErrGameOver    = errors.New("chess: position is already decided")
	ErrIllegalMove = errors.New("chess: move is not legal in this position")
)

// Position is a validated chess position: the only publicly constructible
// position type (spec.md §9 design note — "an implementation should expose
// only the validated form publicly"). It wraps rawPosition and keeps
// GameResult current, recomputing it after every accepted move.
type Position struct {
	raw    rawPosition
	result GameResult
}

// Default returns the standard starting position.
func Default() Position {
	p := Position{raw: newStartingRawPosition()}
	p.recomputeResult()
	return p
}

// TryFeed applies m if it is legal in the current position and the game
// isn't already decided (spec.md §4.7 "try_feed"). On success, Result() and
// Moves() reflect the new position.
func (p *Position) TryFeed(m Move) error {
	if p.result.Kind != Undecided {
		return ErrGameOver
	}
	legal, err := matchLegalMove(p, m)
	if err != nil {
		return err
	}
	next, ok := p.raw.tryFeed(legal)
	if !ok {
		return ErrIllegalMove
	}
	p.raw = next
	p.recomputeResult()
	return nil
}

// TryFeedUCI parses s as UCI coordinate notation and applies it via TryFeed.
func (p *Position) TryFeedUCI(s string) error {
	m, err := ParseUCIMove(s)
	if err != nil {
		return err
	}
	return p.TryFeed(m)
}

// recomputeResult implements spec.md §4.7's post-move result derivation:
// fifty-move rule first, then checkmate/stalemate by move count, else
// Undecided.
func (p *Position) recomputeResult() {
	if p.raw.HalfmoveClock >= 100 {
		p.result = GameResult{Kind: Draw}
		return
	}
	if len(p.raw.LegalMoves()) == 0 {
		mover := p.raw.sideState(p.raw.Turn)
		if mover.KingInCheck {
			p.result = CheckmateBy(p.raw.Turn.Other())
		} else {
			p.result = GameResult{Kind: Draw}
		}
		return
	}
	p.result = GameResult{Kind: Undecided}
}

// Moves returns the legal moves available in the current position.
func (p *Position) Moves() []Move {
	return p.raw.LegalMoves()
}

// Turn returns the side to move.
func (p *Position) Turn() Side {
	return p.raw.Turn
}

// Result returns the position's current game result.
func (p *Position) Result() GameResult {
	return p.result
}
