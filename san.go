package chess

import (
	"fmt"
	"strings"
)

// Notation selects a move-text encoding for EncodeMove/DecodeMove.
type Notation int

const (
	SANNotation Notation = iota
	UCINotation
	LongAlgebraicNotation
)

// EncodeMove renders m in the given notation relative to pos.
func (pos *Position) EncodeMove(m Move, n Notation) string {
	switch n {
	case UCINotation:
		return pos.EncodeUCI(m)
	case LongAlgebraicNotation:
		return pos.EncodeLongAlgebraic(m)
	default:
		return pos.EncodeSAN(m)
	}
}

// DecodeMove tries UCI first, since it's unambiguous, then falls back to
// SAN/long-algebraic.
func (pos *Position) DecodeMove(s string) (Move, error) {
	if m, err := pos.DecodeUCI(s); err == nil {
		return m, nil
	}
	if m, err := pos.DecodeLongAlgebraic(s); err == nil {
		return m, nil
	}
	return Move{}, fmt.Errorf("chess: failed to decode notation text %q for position %s", s, pos.ToFEN())
}

// EncodeUCI renders m as UCI coordinate notation.
func (pos *Position) EncodeUCI(m Move) string {
	return m.String()
}

// DecodeUCI parses s as UCI coordinate notation and resolves it against
// pos's legal moves, so a king step of two files always comes back tagged
// as the matching Castle move even though ParseUCIMove itself never tags
// castles.
func (pos *Position) DecodeUCI(s string) (Move, error) {
	m, err := ParseUCIMove(s)
	if err != nil {
		return Move{}, err
	}
	return matchLegalMove(pos, m)
}

func matchLegalMove(pos *Position, m Move) (Move, error) {
	normalized := pos.raw.normalizeCastle(m)
	for _, legal := range pos.Moves() {
		if legal.Origin != normalized.Origin || legal.Destination != normalized.Destination {
			continue
		}
		if legal.IsPromotion() != normalized.IsPromotion() {
			continue
		}
		if legal.IsPromotion() && legal.Kind.PromotePiece != normalized.Kind.PromotePiece {
			continue
		}
		return legal, nil
	}
	return Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, m.String())
}

// EncodeSAN renders m as standard algebraic notation relative to pos,
// disambiguating by file/rank only when another legal move of the same
// piece type reaches the same destination.
func (pos *Position) EncodeSAN(m Move) string {
	if m.IsCastle() {
		s := "O-O"
		if m.Kind.CastleSide == QueenSide {
			s = "O-O-O"
		}
		return s + checkSuffix(pos, m)
	}

	mover := pos.raw.sideState(pos.raw.Turn)
	opp := pos.raw.sideState(pos.raw.Turn.Other())
	piece := mover.PieceAt(m.Origin)
	isCapture := opp.Occupancy.Get(m.Destination) || (piece == Pawn && m.Destination == opp.EnPassant)

	var sb strings.Builder
	sb.WriteString(pieceLetter(piece))
	sb.WriteString(disambiguate(pos, m, piece))
	if isCapture {
		if piece == Pawn && sb.Len() == 0 {
			sb.WriteString(m.Origin.File().String())
		}
		sb.WriteString("x")
	}
	sb.WriteString(m.Destination.String())
	if m.IsPromotion() {
		sb.WriteString("=" + pieceLetter(m.Kind.PromotePiece))
	}
	sb.WriteString(checkSuffix(pos, m))
	return sb.String()
}

// EncodeLongAlgebraic is EncodeSAN but always spells out the origin square
// instead of disambiguating minimally.
func (pos *Position) EncodeLongAlgebraic(m Move) string {
	if m.IsCastle() {
		s := "O-O"
		if m.Kind.CastleSide == QueenSide {
			s = "O-O-O"
		}
		return s + checkSuffix(pos, m)
	}

	mover := pos.raw.sideState(pos.raw.Turn)
	opp := pos.raw.sideState(pos.raw.Turn.Other())
	piece := mover.PieceAt(m.Origin)
	isCapture := opp.Occupancy.Get(m.Destination) || (piece == Pawn && m.Destination == opp.EnPassant)

	var sb strings.Builder
	sb.WriteString(pieceLetter(piece))
	sb.WriteString(m.Origin.String())
	if isCapture {
		sb.WriteString("x")
	}
	sb.WriteString(m.Destination.String())
	if m.IsPromotion() {
		sb.WriteString("=" + pieceLetter(m.Kind.PromotePiece))
	}
	sb.WriteString(checkSuffix(pos, m))
	return sb.String()
}

// DecodeLongAlgebraic matches s against every legal move's long-algebraic
// rendering (ignoring a missing or extra +/# suffix), then falls back to
// DecodeSAN: the renderer that produced the text is ambiguous from the
// reader's side, so both forms are accepted.
func (pos *Position) DecodeLongAlgebraic(s string) (Move, error) {
	s = sanQualityStripper.Replace(strings.TrimSpace(s))
	for _, m := range pos.Moves() {
		if strings.TrimRight(pos.EncodeLongAlgebraic(m), "+#") == strings.TrimRight(s, "+#") {
			return m, nil
		}
	}
	return pos.DecodeSAN(s)
}

var sanQualityStripper = strings.NewReplacer("!", "", "?", "")

// DecodeSAN decodes s by rendering every legal move's SAN text and matching
// against it, the way the teacher repo's DecodeSAN does it -- generating
// candidates rather than parsing s directly avoids re-implementing
// disambiguation rules in reverse.
func (pos *Position) DecodeSAN(s string) (Move, error) {
	s = sanQualityStripper.Replace(strings.TrimSpace(s))

	for _, m := range pos.Moves() {
		if pos.EncodeSAN(m) == s {
			return m, nil
		}
	}
	// Tolerate a caller that dropped the trailing +/# a checking move always
	// carries, or appended text after the move: accept a rendering that starts
	// with s, or an s that starts with the rendering minus its +/#. A missing
	// or surplus disambiguator is not tolerated.
	for _, m := range pos.Moves() {
		rendered := pos.EncodeSAN(m)
		trimmed := strings.TrimRight(rendered, "+#")
		if strings.HasPrefix(rendered, s) || strings.HasPrefix(s, trimmed) {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("chess: could not decode SAN %q for position %s", s, pos.ToFEN())
}

func checkSuffix(pos *Position, m Move) string {
	clone := *pos
	if err := clone.TryFeed(m); err != nil {
		return ""
	}
	switch {
	case clone.Result().Kind == Checkmate:
		return "#"
	case clone.raw.sideState(clone.raw.Turn).KingInCheck:
		return "+"
	default:
		return ""
	}
}

// disambiguate returns the minimal file/rank prefix needed to distinguish m
// from other legal moves of the same piece type landing on the same
// destination (pawns and the king never need one).
func disambiguate(pos *Position, m Move, piece PieceType) string {
	if piece == Pawn || piece == King {
		return ""
	}

	mover := pos.raw.sideState(pos.raw.Turn)
	var ambiguous, needFile, needRank bool
	for _, other := range pos.Moves() {
		if other.Destination != m.Destination || other.Origin == m.Origin {
			continue
		}
		if mover.PieceAt(other.Origin) != piece {
			continue
		}
		ambiguous = true
		if other.Origin.File() == m.Origin.File() {
			needRank = true
		}
		if other.Origin.Rank() == m.Origin.Rank() {
			needFile = true
		}
	}
	if !ambiguous {
		return ""
	}

	s := ""
	if needFile || !needRank {
		s = m.Origin.File().String()
	}
	if needRank {
		s += m.Origin.Rank().String()
	}
	return s
}

func pieceLetter(p PieceType) string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}
