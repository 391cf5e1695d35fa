package chess

// CastleSide names which side of the board a castle move or castling
// right refers to.
type CastleSide uint8

const (
	// KingSide is the right side of the board from white's perspective.
	KingSide CastleSide = iota
	// QueenSide is the left side of the board from white's perspective.
	QueenSide
)

// CastlingRights records which castling moves one side still has available.
// It is a small bitset so None/QueenSide/KingSide/Both can be compared and
// combined directly, the way the teacher's CastleRights treats its FEN
// letters as set membership.
type CastlingRights uint8

const (
	// CastlingNone means neither castle is available.
	CastlingNone CastlingRights = 0
	// CastlingKingSide means only king-side castling is available.
	CastlingKingSide CastlingRights = 1 << iota
	// CastlingQueenSide means only queen-side castling is available.
	CastlingQueenSide
	// CastlingBoth means both castles are available.
	CastlingBoth = CastlingKingSide | CastlingQueenSide
)

// Has reports whether cr grants the given side.
func (cr CastlingRights) Has(side CastleSide) bool {
	if side == KingSide {
		return cr&CastlingKingSide != 0
	}
	return cr&CastlingQueenSide != 0
}

// Without returns cr with the given side's right removed.
func (cr CastlingRights) Without(side CastleSide) CastlingRights {
	if side == KingSide {
		return cr &^ CastlingKingSide
	}
	return cr &^ CastlingQueenSide
}

// QueenSideOnly reports whether cr is exactly CastlingQueenSide.
func (cr CastlingRights) QueenSideOnly() bool {
	return cr == CastlingQueenSide
}

// KingSideOnly reports whether cr is exactly CastlingKingSide.
func (cr CastlingRights) KingSideOnly() bool {
	return cr == CastlingKingSide
}

// fenCastleChar returns the FEN letter for (side-to-move-color, castle
// side), e.g. white king-side is 'K', black queen-side is 'q'.
func fenCastleChar(color Side, side CastleSide) byte {
	var c byte
	if side == KingSide {
		c = 'k'
	} else {
		c = 'q'
	}
	if color == White {
		return c - ('a' - 'A')
	}
	return c
}
