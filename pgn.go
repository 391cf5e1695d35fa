package chess

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Scanner reads chess games from concatenated PGN text the way bufio.Scanner
// reads lines -- built to stream very large PGN database files without
// holding the whole file in memory.
type Scanner struct {
	scanr *bufio.Scanner
	game  *Game
	err   error
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{scanr: bufio.NewScanner(r)}
}

type scanState int

const (
	notInPGN scanState = iota
	inTagPairs
	inMoves
)

// Scan reads the next game, returning false on error or EOF. Use Next and
// Err to retrieve the result.
func (s *Scanner) Scan() bool {
	if s.err == io.EOF {
		return false
	}
	s.err = nil

	var sb strings.Builder
	state := notInPGN
	setGame := func() bool {
		game, err := decodePGN(sb.String())
		if err != nil {
			s.err = err
			return false
		}
		s.game = game
		return true
	}

	for {
		if !s.scanr.Scan() {
			s.err = s.scanr.Err()
			if s.err == nil {
				s.err = io.EOF
			}
			if sb.Len() == 0 {
				return false
			}
			return setGame()
		}
		line := strings.TrimSpace(s.scanr.Text())
		isTagPair := strings.HasPrefix(line, "[")
		isMoveSeq := strings.HasPrefix(line, "1. ")
		switch state {
		case notInPGN:
			if !isTagPair {
				continue
			}
			state = inTagPairs
			sb.WriteString(line + "\n")
		case inTagPairs:
			if isMoveSeq {
				state = inMoves
			}
			sb.WriteString(line + "\n")
		case inMoves:
			if line == "" {
				return setGame()
			}
			sb.WriteString(line + "\n")
		}
	}
}

// Next returns the game parsed by the most recent Scan.
func (s *Scanner) Next() *Game {
	return s.game
}

// Err returns the error that stopped scanning, typically io.EOF.
func (s *Scanner) Err() error {
	return s.err
}

// ParsePGN decodes a single PGN-formatted game.
func ParsePGN(pgn string) (*Game, error) {
	return decodePGN(pgn)
}

func decodePGN(pgn string) (*Game, error) {
	tagPairs := getTagPairs(pgn)
	moves, outcome := moveListWithComments(pgn)

	var g *Game
	var err error
	for _, tp := range tagPairs {
		if strings.EqualFold(tp.Key, "fen") {
			g, err = NewGameFromFEN(tp.Value)
			if err != nil {
				return nil, fmt.Errorf("chess: pgn decode error %s on tag %s", err, tp.Key)
			}
			break
		}
	}
	if g == nil {
		g = NewGame()
	}
	for _, t := range tagPairs {
		g.AddTagPair(t.Key, t.Value)
	}

	for i, move := range moves {
		m, err := g.pos.DecodeMove(move)
		if err != nil {
			return nil, gameMoveDecodeError(err, i)
		}
		if err := g.Move(m); err != nil {
			return nil, gameMoveDecodeError(err, i)
		}
	}
	if outcome != "" {
		g.outcome = outcome
	}
	return g, nil
}

func encodePGN(g *Game) string {
	var sb strings.Builder
	for k, v := range g.tagPairs {
		fmt.Fprintf(&sb, "[%s %q]\n", k, v)
	}
	sb.WriteString("\n")
	for i, move := range g.moves {
		pos := g.positions[i]
		txt := pos.EncodeMove(move, g.Notation)
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. %s", (i/2)+1, txt)
		} else {
			fmt.Fprintf(&sb, " %s ", txt)
		}
	}
	sb.WriteString(" " + string(g.outcome))
	return sb.String()
}

var tagPairRegex = regexp.MustCompile(`\[(.*)\s"(.*)"\]`)

func getTagPairs(pgn string) []TagPair {
	var pairs []TagPair
	for _, m := range tagPairRegex.FindAllStringSubmatch(pgn, -1) {
		pairs = append(pairs, TagPair{Key: m[1], Value: m[2]})
	}
	return pairs
}

var moveListTokenRe = regexp.MustCompile(`(?:\d+\.)|(O-O(?:-O)?|\w*[abcdefgh][12345678]\w*(?:=[QRBN])?(?:\+|#)?)|(?:\{[^}]*\})|(?:\([^)]*\))|(\*|0-1|1-0|1\/2-1\/2)`)

func moveListWithComments(pgn string) ([]string, Outcome) {
	pgn = stripTagPairs(pgn)
	var outcome Outcome
	var moves []string

	for _, match := range moveListTokenRe.FindAllStringSubmatch(pgn, -1) {
		move, outcomeText := match[1], match[2]
		if outcomeText != "" {
			outcome = Outcome(outcomeText)
			break
		}
		if move != "" {
			moves = append(moves, move)
		}
	}
	return moves, outcome
}

func stripTagPairs(pgn string) string {
	lines := strings.Split(pgn, "\n")
	cp := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "[") {
			cp = append(cp, line)
		}
	}
	return strings.Join(cp, "\n")
}
