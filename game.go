package chess

import (
	"errors"
	"fmt"
	"io"
)

// Outcome is the PGN-style result tag for a finished (or in-progress) game.
type Outcome string

const (
	// OutcomeInProgress indicates the game hasn't ended yet.
	OutcomeInProgress Outcome = "*"
	// OutcomeWhiteWins indicates white won.
	OutcomeWhiteWins Outcome = "1-0"
	// OutcomeBlackWins indicates black won.
	OutcomeBlackWins Outcome = "0-1"
	// OutcomeDraw indicates the game was drawn.
	OutcomeDraw Outcome = "1/2-1/2"
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	return string(o)
}

// Method is how a game's outcome came about. Distinct from GameResult.Kind:
// GameResult only knows what the position engine itself can derive
// (checkmate, fifty-move draw, stalemate); Method additionally covers
// outside-the-board endings a Game layers on top (resignation, agreed
// draw).
type Method uint8

const (
	MethodNone Method = iota
	MethodCheckmate
	MethodStalemate
	MethodFiftyMoveRule
	MethodResignation
	MethodDrawAgreed
)

// TagPair is a PGN metadata key/value pair.
type TagPair struct {
	Key   string
	Value string
}

// Game is a chess game: a position plus its move history, tag pairs, and
// outcome. Unlike Position, which only knows what one position looks like,
// Game accumulates everything a PGN record carries.
type Game struct {
	Notation  Notation
	tagPairs  map[string]string
	moves     []Move
	positions []Position
	pos       Position
	outcome   Outcome
	method    Method
}

// NewGame returns a game in the standard starting position.
func NewGame() *Game {
	pos := Default()
	g := &Game{
		Notation:  SANNotation,
		pos:       pos,
		positions: []Position{pos},
		outcome:   OutcomeInProgress,
	}
	return g
}

// NewGameFromFEN builds a game whose current (and only recorded) position
// is fen. Since FEN carries no move history, Moves() is empty.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := FromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Notation:  SANNotation,
		pos:       pos,
		positions: []Position{pos},
	}
	g.syncOutcome()
	return g, nil
}

// NewGameFromPGN reads a single PGN game from r.
func NewGameFromPGN(r io.Reader) (*Game, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decodePGN(string(b))
}

// Move applies m (which must be legal in the current position) to the
// game, appending to its move and position history.
func (g *Game) Move(m Move) error {
	legal, err := matchLegalMove(&g.pos, m)
	if err != nil {
		return err
	}
	if err := g.pos.TryFeed(legal); err != nil {
		return err
	}
	g.moves = append(g.moves, legal)
	g.positions = append(g.positions, g.pos)
	g.syncOutcome()
	return nil
}

// MoveStr decodes s using the position's own notation guesser and applies
// it via Move.
func (g *Game) MoveStr(s string) error {
	m, err := g.pos.DecodeMove(s)
	if err != nil {
		return err
	}
	return g.Move(m)
}

// ValidMoves returns the legal moves in the current position.
func (g *Game) ValidMoves() []Move {
	return g.pos.Moves()
}

// Positions returns the position history, starting position included.
func (g *Game) Positions() []Position {
	return append([]Position(nil), g.positions...)
}

// Moves returns the move history in order played.
func (g *Game) Moves() []Move {
	return append([]Move(nil), g.moves...)
}

// TagPairs returns the game's PGN tag pairs in no particular order.
func (g *Game) TagPairs() []TagPair {
	if g.tagPairs == nil {
		return nil
	}
	out := make([]TagPair, 0, len(g.tagPairs))
	for k, v := range g.tagPairs {
		out = append(out, TagPair{Key: k, Value: v})
	}
	return out
}

// Position returns the game's current position.
func (g *Game) Position() Position {
	return g.pos
}

// Outcome returns the game's PGN-style result.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Method returns how the outcome came about.
func (g *Game) Method() Method {
	return g.method
}

// FEN returns the current position's FEN record.
func (g *Game) FEN() string {
	return g.pos.ToFEN()
}

// String renders the game as PGN.
func (g *Game) String() string {
	return encodePGN(g)
}

// MarshalText implements encoding.TextMarshaler.
func (g *Game) MarshalText() ([]byte, error) {
	return []byte(encodePGN(g)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, replacing g's contents
// with the parsed PGN.
func (g *Game) UnmarshalText(text []byte) error {
	other, err := decodePGN(string(text))
	if err != nil {
		return err
	}
	*g = *other
	return nil
}

// ErrAlreadyDecided is returned by Resign and OfferDraw once a game already
// has an outcome.
var ErrAlreadyDecided = errors.New("chess: game already has an outcome")

// Resign ends the game with the other side winning.
func (g *Game) Resign(side Side) error {
	if g.outcome != OutcomeInProgress {
		return ErrAlreadyDecided
	}
	if side == White {
		g.outcome = OutcomeBlackWins
	} else {
		g.outcome = OutcomeWhiteWins
	}
	g.method = MethodResignation
	return nil
}

// OfferDraw ends the game as an agreed draw. The position engine has no
// notion of repetition, so this is the only draw method a Game can reach
// beyond what Position itself already derives (fifty-move rule, stalemate).
func (g *Game) OfferDraw() error {
	if g.outcome != OutcomeInProgress {
		return ErrAlreadyDecided
	}
	g.outcome = OutcomeDraw
	g.method = MethodDrawAgreed
	return nil
}

// AddTagPair adds or overwrites a tag pair, reporting whether a value was
// overwritten.
func (g *Game) AddTagPair(k, v string) bool {
	if g.tagPairs == nil {
		g.tagPairs = make(map[string]string)
	}
	_, existed := g.tagPairs[k]
	g.tagPairs[k] = v
	return existed
}

// GetTagPair returns the tag pair for k, or (TagPair{}, false) if absent.
func (g *Game) GetTagPair(k string) (TagPair, bool) {
	v, ok := g.tagPairs[k]
	if !ok {
		return TagPair{}, false
	}
	return TagPair{Key: k, Value: v}, true
}

// RemoveTagPair removes the tag pair for k, reporting whether it existed.
func (g *Game) RemoveTagPair(k string) bool {
	if g.tagPairs == nil {
		return false
	}
	_, ok := g.tagPairs[k]
	delete(g.tagPairs, k)
	return ok
}

// MoveHistory is one played move along with the positions immediately
// before and after it.
type MoveHistory struct {
	PrePosition  Position
	PostPosition Position
	Move         Move
}

// MoveHistory returns the moves in order along with their surrounding
// positions.
func (g *Game) MoveHistory() []MoveHistory {
	h := make([]MoveHistory, 0, len(g.moves))
	for i, m := range g.moves {
		h = append(h, MoveHistory{
			PrePosition:  g.positions[i],
			PostPosition: g.positions[i+1],
			Move:         m,
		})
	}
	return h
}

// syncOutcome derives Outcome/Method from the current position's
// GameResult, leaving an already-decided outcome (resignation, agreed
// draw) untouched.
func (g *Game) syncOutcome() {
	if g.outcome != "" && g.outcome != OutcomeInProgress {
		return
	}
	switch g.pos.Result().Kind {
	case Checkmate:
		g.method = MethodCheckmate
		if g.pos.Result().Winner == White {
			g.outcome = OutcomeWhiteWins
		} else {
			g.outcome = OutcomeBlackWins
		}
	case Draw:
		g.outcome = OutcomeDraw
		if g.pos.raw.HalfmoveClock >= 100 {
			g.method = MethodFiftyMoveRule
		} else {
			g.method = MethodStalemate
		}
	default:
		g.outcome = OutcomeInProgress
		g.method = MethodNone
	}
}

var errGameDecodeMove = errors.New("chess: pgn move decode error")

func gameMoveDecodeError(err error, moveIdx int) error {
	return fmt.Errorf("%w: %s on move %d", errGameDecodeMove, err, moveIdx)
}
