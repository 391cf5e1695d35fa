package bitflip

// QueenAttacks returns the combined rook+bishop attack set from sq given
// combined occupancy occ.
func QueenAttacks(occ uint64, sq int) uint64 {
	return DiagonalAttacks(occ, sq) | StraightAttacks(occ, sq)
}
