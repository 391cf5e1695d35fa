package bitflip

import "testing"

func TestStraightAttacksEmptyBoard(t *testing.T) {
	// D4 (square index 3*8+3=27) on an empty board attacks the entire
	// fourth rank and d-file minus its own square.
	got := StraightAttacks(0, 27)
	want := (rankMasks[3] | fileMasks[3]) &^ squareMask(27)
	if got != want {
		t.Fatalf("StraightAttacks(0, d4) = %064b, want %064b", got, want)
	}
}

func TestDiagonalAttacksBlocked(t *testing.T) {
	// Put a blocker two squares up-right of a1 (c3, index 18); bishop
	// attacks from a1 along that diagonal should stop there (inclusive).
	occ := squareMask(18)
	got := DiagonalAttacks(occ, 0)
	want := squareMask(9) | squareMask(18)
	if got != want {
		t.Fatalf("DiagonalAttacks(a1, blocker c3) = %064b, want %064b", got, want)
	}
}

func TestQueenAttacksIsUnionOfBoth(t *testing.T) {
	occ := uint64(0)
	sq := 27
	got := QueenAttacks(occ, sq)
	want := DiagonalAttacks(occ, sq) | StraightAttacks(occ, sq)
	if got != want {
		t.Fatalf("QueenAttacks did not equal union of straight+diagonal")
	}
}
