package chess

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	squareSize  = 45
	boardPixels = squareSize * 8
)

var (
	lightSquareFill = "fill:#f0d9b5"
	darkSquareFill  = "fill:#b58863"
)

// RenderSVG draws the position as an 8x8 board with Unicode piece glyphs,
// rank 8 at the top, to w.
func (p *Position) RenderSVG(w io.Writer) error {
	canvas := svg.New(w)
	canvas.Start(boardPixels, boardPixels)
	defer canvas.End()

	for rank := Rank8; ; rank-- {
		for file := FileA; file <= FileH; file++ {
			x := int(file) * squareSize
			y := (7 - int(rank)) * squareSize
			style := lightSquareFill
			if (int(file)+int(rank))%2 == 0 {
				style = darkSquareFill
			}
			canvas.Rect(x, y, squareSize, squareSize, style)

			sq := NewSquare(file, rank)
			if glyph, side, ok := pieceOnSquare(&p.raw, sq); ok {
				canvas.Text(x+squareSize/2, y+squareSize*2/3, unicodeGlyphs[side][glyph],
					"text-anchor:middle;font-size:32px")
			}
		}
		if rank == Rank1 {
			break
		}
	}
	return nil
}
