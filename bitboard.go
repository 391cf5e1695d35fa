package chess

import (
	"math/bits"
	"strconv"
	"strings"
)

// Bitboard is a 64-bit set of squares, bit i set meaning square i is a
// member. Square 0 (a1) is the least significant bit.
type Bitboard uint64

// EmptyBoard is a Bitboard with no squares set.
const EmptyBoard Bitboard = 0

// FullBoard is a Bitboard with every square set.
const FullBoard Bitboard = 0xFFFFFFFFFFFFFFFF

func bbForSquare(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Set returns a copy of b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | bbForSquare(sq)
}

// Reset returns a copy of b with sq removed.
func (b Bitboard) Reset(sq Square) Bitboard {
	return b &^ bbForSquare(sq)
}

// Get reports whether sq is a member of b.
func (b Bitboard) Get(sq Square) bool {
	return b&bbForSquare(sq) != 0
}

// Count returns the population count (number of set squares).
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// With returns the union of b and other.
func (b Bitboard) With(other Bitboard) Bitboard {
	return b | other
}

// Without returns b with every square in other removed.
func (b Bitboard) Without(other Bitboard) Bitboard {
	return b &^ other
}

// Only returns the intersection of b and other.
func (b Bitboard) Only(other Bitboard) Bitboard {
	return b & other
}

// Opposite returns the complement of b.
func (b Bitboard) Opposite() Bitboard {
	return ^b
}

// First returns the least-significant set square and true, or
// (NoSquare, false) if b is empty.
func (b Bitboard) First() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// Reverse returns b with its bit order reversed end-to-end (a1<->h8).
func (b Bitboard) Reverse() Bitboard {
	return Bitboard(bits.Reverse64(uint64(b)))
}

// PushRank shifts the whole mask one rank toward the opponent for side;
// bits shifted off the top or bottom represent off-board squares and are
// discarded.
func (b Bitboard) PushRank(side Side) Bitboard {
	if side == White {
		return b << 8
	}
	return b >> 8
}

// Squares returns the set squares in LSB-first order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for bb := b; bb != 0; {
		sq, _ := bb.First()
		out = append(out, sq)
		bb = bb.Reset(sq)
	}
	return out
}

// Next pops and returns the least-significant square from *b, mutating the
// receiver, for "iteration is destructive on a copy" loops. ok is false once
// the board is empty.
func (b *Bitboard) Next() (sq Square, ok bool) {
	sq, ok = b.First()
	if ok {
		*b = b.Reset(sq)
	}
	return sq, ok
}

// Variations returns 2^k, where k is the number of set bits in b — the
// count of distinct subsets of b.
func (b Bitboard) Variations() int {
	return 1 << uint(b.Count())
}

// Variation returns the i-th subset of b's set bits (bit j of i selects
// whether the j-th set bit of b, in LSB order, is included).
func (b Bitboard) Variation(i int) Bitboard {
	var out Bitboard
	squares := b.Squares()
	for j, sq := range squares {
		if i&(1<<uint(j)) != 0 {
			out = out.Set(sq)
		}
	}
	return out
}

// String returns a 64-character string of 1s and 0s, most significant bit
// (h8) first.
func (b Bitboard) String() string {
	s := strconv.FormatUint(uint64(b), 2)
	return strings.Repeat("0", numOfSquaresInBoard-len(s)) + s
}

// Draw returns a human-readable board diagram, useful for debugging.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String())
		sb.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			if b.Get(NewSquare(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString("0 ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
