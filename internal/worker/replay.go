package worker

import (
	stderrors "errors"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveObserver is told about every committed move of a replay.
// It is called from worker goroutines and must be safe for concurrent use.
type MoveObserver func(script string, rec engine.Record)

// NewReplayFunc returns a ProcessFunc that replays each script on a fresh
// game set up from startFEN ("" for the standard start). A nil observer is
// allowed.
func NewReplayFunc(startFEN string, observe MoveObserver) ProcessFunc {
	if startFEN == "" {
		startFEN = engine.InitialFEN
	}
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Name: item.Name, Index: item.Index, Total: len(item.Moves)}

		board, err := engine.NewBoardFromFEN(startFEN)
		if err != nil {
			res.Error = err
			return res
		}
		g := engine.NewGameFromBoard(board)

		for _, m := range item.Moves {
			rec, err := g.Move(m.From, m.To)
			if err != nil {
				res.Error = annotate(err, item.Name, m.Line)
				break
			}
			res.Applied++
			if observe != nil {
				observe(item.Name, rec)
			}
		}

		res.Game = g
		res.Status = g.Status()
		res.FinalFEN = engine.ToFEN(g.Board())
		return res
	}
}

// annotate stamps a rejected move with the script location it came from.
func annotate(err error, script string, line int) error {
	var moveErr *errors.MoveError
	if stderrors.As(err, &moveErr) {
		moveErr.Script = fmt.Sprintf("%s:%d", script, line)
		return moveErr
	}
	return errors.Wrapf(err, "%s:%d", script, line)
}
