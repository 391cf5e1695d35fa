package chess

import (
	"errors"
	"fmt"
)

// Square is a board position in 0..63, index = rank*8 + file, with rank 0
// being white's back rank and file 0 being the a-file.
type Square int8

// NoSquare is the sentinel for "no square", used for an absent en-passant
// target or a missing king.
const NoSquare Square = -1

const numOfSquaresInBoard = 64
const numOfSquaresInRow = 8

// File is a board file, 0 (a-file) through 7 (h-file).
type File int8

// Rank is a board rank, 0 (white's back rank) through 7 (black's back rank).
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// NewSquare builds a square from a file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// File returns the square's file.
func (s Square) File() File {
	return File(int(s) % 8)
}

// Rank returns the square's rank.
func (s Square) Rank() Rank {
	return Rank(int(s) / 8)
}

// NextRank returns the square one rank closer to the opponent's side for
// the given side, without checking for board edges.
func (s Square) NextRank(side Side) Square {
	if side == White {
		return s + 8
	}
	return s - 8
}

// CheckedNextRank is NextRank but returns (NoSquare, false) if the result
// would fall off the board.
func (s Square) CheckedNextRank(side Side) (Square, bool) {
	r := s.Rank()
	if side == White {
		if r == Rank8 {
			return NoSquare, false
		}
		return s + 8, true
	}
	if r == Rank1 {
		return NoSquare, false
	}
	return s - 8, true
}

func (f File) String() string {
	return string(rune('a' + int(f)))
}

func (r Rank) String() string {
	return string(rune('1' + int(r)))
}

// String renders a square in two-character notation, e.g. "e4".
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// ErrBadSquare is returned by ParseSquare when the text isn't a valid
// two-character square.
var ErrBadSquare = errors.New("chess: invalid square notation")

// ParseSquare parses two-character notation such as "a1" or "h8".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	if r < '1' || r > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return NewSquare(File(f-'a'), Rank(r-'1')), nil
}

// Named squares used throughout castling/geometry logic.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)
