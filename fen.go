package chess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned by decodeFEN, matching the defect names in spec.md §4.8.
var (
	ErrFENMissingField     = errors.New("chess: fen record has too few fields")
	ErrFENExtraField       = errors.New("chess: fen record has too many fields")
	ErrFENPieceOverflow    = errors.New("chess: fen rank describes more than eight files")
	ErrFENPieceUnderflow   = errors.New("chess: fen rank describes fewer than eight files")
	ErrFENUnknownPiece     = errors.New("chess: fen contains an unrecognized piece letter")
	ErrFENBadTurn          = errors.New("chess: fen active-color field must be \"w\" or \"b\"")
	ErrFENBadCastlingRights = errors.New("chess: fen castling-rights field is malformed")
	ErrFENBadEnPassant     = errors.New("chess: fen en-passant field is not a square or \"-\"")
	ErrFENBadHalfmoveClock = errors.New("chess: fen halfmove clock is not a non-negative integer")
	ErrFENBadFullmoveClock = errors.New("chess: fen fullmove number is not a positive integer")
	ErrFENBadAlignment     = errors.New("chess: fen rank does not cover exactly eight files")
)

// startFEN is the standard opening, used only as a cross-check in tests —
// newStartingRawPosition builds it directly rather than round-tripping
// through the decoder.
const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// decodeFEN parses a standard six-field FEN record into a rawPosition
// (spec.md §4.8).
func decodeFEN(s string) (rawPosition, error) {
	fields := strings.Fields(s)
	if len(fields) < 6 {
		return rawPosition{}, fmt.Errorf("%w: %q", ErrFENMissingField, s)
	}
	if len(fields) > 6 {
		return rawPosition{}, fmt.Errorf("%w: %q", ErrFENExtraField, s)
	}

	var p rawPosition
	p.White = newSideState(White)
	p.Black = newSideState(Black)

	if err := decodeFENPlacement(fields[0], &p.White, &p.Black); err != nil {
		return rawPosition{}, err
	}

	switch fields[1] {
	case "w":
		p.Turn = White
	case "b":
		p.Turn = Black
	default:
		return rawPosition{}, fmt.Errorf("%w: %q", ErrFENBadTurn, fields[1])
	}

	if err := decodeFENCastlingRights(fields[2], &p.White, &p.Black); err != nil {
		return rawPosition{}, err
	}
	sanityCheckCastlingRights(&p.White)
	sanityCheckCastlingRights(&p.Black)

	if fields[3] != "-" {
		epSquare, err := ParseSquare(fields[3])
		if err != nil {
			return rawPosition{}, fmt.Errorf("%w: %q", ErrFENBadEnPassant, fields[3])
		}
		p.sideState(p.Turn.Other()).EnPassant = epSquare
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return rawPosition{}, fmt.Errorf("%w: %q", ErrFENBadHalfmoveClock, fields[4])
	}
	p.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return rawPosition{}, fmt.Errorf("%w: %q", ErrFENBadFullmoveClock, fields[5])
	}
	p.FullmoveClock = fullmove

	p.recomputeThreatsAndChecks()
	return p, nil
}

// fenSquareOrder lists all 64 squares in the order FEN's piece-placement
// field visits them: rank 8 down to rank 1, file a to file h within a rank.
var fenSquareOrder = func() [64]Square {
	var order [64]Square
	i := 0
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			order[i] = NewSquare(f, r)
			i++
		}
		if r == Rank1 {
			break
		}
	}
	return order
}()

func decodeFENPlacement(field string, white, black *sideState) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrFENBadAlignment, len(ranks))
	}

	idx := 0
	for _, rank := range ranks {
		filesInRank := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				filesInRank += int(ch - '0')
				idx += int(ch - '0')
				if filesInRank > 8 {
					return fmt.Errorf("%w: rank %q", ErrFENPieceOverflow, rank)
				}
				continue
			}
			piece := pieceTypeFromChar(byte(ch))
			if piece == NoPieceType {
				return fmt.Errorf("%w: %q", ErrFENUnknownPiece, string(ch))
			}
			filesInRank++
			if filesInRank > 8 {
				return fmt.Errorf("%w: rank %q", ErrFENPieceOverflow, rank)
			}
			side := black
			if ch >= 'A' && ch <= 'Z' {
				side = white
			}
			side.Put(fenSquareOrder[idx], piece)
			idx++
		}
		if filesInRank < 8 {
			return fmt.Errorf("%w: rank %q covers %d files", ErrFENPieceUnderflow, rank, filesInRank)
		}
		if filesInRank > 8 {
			return fmt.Errorf("%w: rank %q", ErrFENBadAlignment, rank)
		}
	}
	return nil
}

func decodeFENCastlingRights(field string, white, black *sideState) error {
	white.CastlingRights = CastlingNone
	black.CastlingRights = CastlingNone
	if field == "-" {
		return nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			white.CastlingRights |= CastlingKingSide
		case 'Q':
			white.CastlingRights |= CastlingQueenSide
		case 'k':
			black.CastlingRights |= CastlingKingSide
		case 'q':
			black.CastlingRights |= CastlingQueenSide
		default:
			return fmt.Errorf("%w: %q", ErrFENBadCastlingRights, field)
		}
	}
	return nil
}

// sanityCheckCastlingRights drops any right whose rook isn't actually on
// its home square — spec.md §4.8 "discards impossible FENs silently" (see
// also the open question in §9 about this being overly permissive).
func sanityCheckCastlingRights(s *sideState) {
	if s.CastlingRights.Has(KingSide) && !s.Pieces[Rook].Get(rookHomeSquare(s.Color, KingSide)) {
		s.CastlingRights = s.CastlingRights.Without(KingSide)
	}
	if s.CastlingRights.Has(QueenSide) && !s.Pieces[Rook].Get(rookHomeSquare(s.Color, QueenSide)) {
		s.CastlingRights = s.CastlingRights.Without(QueenSide)
	}
}

// encodeFEN is the inverse of decodeFEN.
func encodeFEN(p *rawPosition) string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		if rank > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < 8; file++ {
			sq := fenSquareOrder[rank*8+file]
			piece, side, ok := pieceOnSquare(p, sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(fenChar(side, piece))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.Turn.String())

	sb.WriteByte(' ')
	sb.WriteString(encodeCastlingRights(&p.White, &p.Black))

	sb.WriteByte(' ')
	ep := p.sideState(p.Turn.Other()).EnPassant
	if ep == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(ep.String())
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveClock)
	return sb.String()
}

func pieceOnSquare(p *rawPosition, sq Square) (PieceType, Side, bool) {
	if piece := p.White.PieceAt(sq); piece != NoPieceType {
		return piece, White, true
	}
	if piece := p.Black.PieceAt(sq); piece != NoPieceType {
		return piece, Black, true
	}
	return NoPieceType, White, false
}

func encodeCastlingRights(white, black *sideState) string {
	var sb strings.Builder
	if white.CastlingRights.Has(KingSide) {
		sb.WriteByte('K')
	}
	if white.CastlingRights.Has(QueenSide) {
		sb.WriteByte('Q')
	}
	if black.CastlingRights.Has(KingSide) {
		sb.WriteByte('k')
	}
	if black.CastlingRights.Has(QueenSide) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// FromFEN parses s into a validated Position.
func FromFEN(s string) (Position, error) {
	raw, err := decodeFEN(s)
	if err != nil {
		return Position{}, err
	}
	p := Position{raw: raw}
	p.recomputeResult()
	return p, nil
}

// ToFEN renders the position as a standard six-field FEN record.
func (p *Position) ToFEN() string {
	return encodeFEN(&p.raw)
}
