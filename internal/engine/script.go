package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ScriptMove is one move of a coordinate-pair script.
type ScriptMove struct {
	From chess.Square
	To   chess.Square
	Line int // 1-based source line
}

// ParseScript reads a move script: one move per line as "fx fy tx ty"
// (commas are accepted as separators). Blank lines and text after '#' are
// ignored. name is used in error messages.
func ParseScript(r io.Reader, name string) ([]ScriptMove, error) {
	var moves []ScriptMove
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, &errors.ParseError{
				Err:      errors.ErrParseFailure,
				File:     name,
				Line:     lineNum,
				Expected: "4 coordinates",
				Got:      strconv.Itoa(len(fields)),
			}
		}

		var coords [4]int
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil || n < 0 || n >= chess.BoardSize {
				return nil, &errors.ParseError{
					Err:      errors.ErrParseFailure,
					File:     name,
					Line:     lineNum,
					Expected: "coordinate 0-7",
					Got:      strconv.Quote(f),
				}
			}
			coords[i] = n
		}

		moves = append(moves, ScriptMove{
			From: chess.Sq(coords[0], coords[1]),
			To:   chess.Sq(coords[2], coords[3]),
			Line: lineNum,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return moves, nil
}

// Replay plays moves on g in order and stops at the first rejected move.
// It returns the number of moves applied.
func Replay(g *Game, moves []ScriptMove) (int, error) {
	for i, m := range moves {
		if _, err := g.Move(m.From, m.To); err != nil {
			return i, fmt.Errorf("line %d: %w", m.Line, err)
		}
	}
	return len(moves), nil
}
