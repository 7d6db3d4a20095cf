package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// loadScript parses one move script.
func loadScript(r io.Reader, name string) (worker.WorkItem, error) {
	moves, err := engine.ParseScript(r, name)
	if err != nil {
		return worker.WorkItem{}, err
	}
	return worker.WorkItem{Name: name, Moves: moves}, nil
}

// loadScriptFile opens and parses the script at path.
func loadScriptFile(path string) (worker.WorkItem, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return worker.WorkItem{}, errors.Wrapf(err, "opening script %s", path)
	}
	defer file.Close() //nolint:errcheck // read-only

	return loadScript(file, path)
}

// readFileList reads script paths one per line, skipping blanks and '#' comments.
func readFileList(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

// replayAll replays every item through a worker pool and returns the results
// in submission order.
//
// Workers only touch their own game. Move commentary is serialised through a
// mutex since it shares cfg.LogFile; everything else is written by the caller
// after the pool has drained.
func replayAll(cfg *config.Config, items []worker.WorkItem) []worker.ProcessResult {
	if len(items) == 0 {
		return nil
	}

	var logMu sync.Mutex
	var observe worker.MoveObserver
	if cfg.Verbosity >= 2 {
		observe = func(script string, rec engine.Record) {
			logMu.Lock()
			defer logMu.Unlock()
			cfg.Logf(2, "%s\n", describeMove(script, rec))
		}
	}

	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(cfg.Workers, bufferSize, worker.NewReplayFunc(cfg.StartFEN, observe))
	pool.Start()

	go func() {
		for i, item := range items {
			item.Index = i
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]worker.ProcessResult, len(items))
	for res := range pool.Results() {
		results[res.Index] = res
	}
	return results
}

// describeMove renders one committed move for the log.
func describeMove(script string, rec engine.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d. %s %s %s->%s", script, rec.Ply, rec.Piece.Colour, rec.Piece.Kind, rec.From, rec.To)
	if rec.Captured != nil {
		fmt.Fprintf(&sb, " takes %s %s", rec.Captured.Colour, rec.Captured.Kind)
	}
	if rec.Status != engine.Ongoing {
		fmt.Fprintf(&sb, " (%s)", rec.Status)
	}
	return sb.String()
}

// writeResult prints the outcome of one script to the output file.
func writeResult(cfg *config.Config, res worker.ProcessResult) {
	out := cfg.OutputFile
	if res.Error != nil {
		fmt.Fprintf(out, "%s: stopped after %d/%d moves: %v\n", res.Name, res.Applied, res.Total, res.Error)
	} else {
		fmt.Fprintf(out, "%s: %d moves, %s\n", res.Name, res.Applied, res.Status)
	}
	if res.Game == nil {
		return
	}

	fmt.Fprintf(out, "%s\n", res.FinalFEN)
	if cfg.ShowBoard {
		fmt.Fprint(out, res.Game.Board())
	}
	if cfg.ListMoves {
		writeLegalMoves(out, res.Game)
	}
}

// writeLegalMoves lists, per piece of the side to move, the squares it may
// legally move to.
func writeLegalMoves(w io.Writer, g *engine.Game) {
	for _, p := range g.Board().Pieces(g.Turn()) {
		moves, err := g.LegalMoves(p.Square)
		if err != nil || len(moves) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s:%s\n", p, formatSquares(moves))
	}
}

func formatSquares(squares []chess.Square) string {
	var sb strings.Builder
	for _, sq := range squares {
		sb.WriteByte(' ')
		sb.WriteString(sq.String())
	}
	return sb.String()
}

// reportStatistics prints the final summary to the log.
func reportStatistics(cfg *config.Config, results []worker.ProcessResult, failed int) {
	counts := make(map[engine.Status]int)
	for _, res := range results {
		if res.Error == nil {
			counts[res.Status]++
		}
	}
	fmt.Fprintf(cfg.LogFile, "%d script(s) replayed, %d failed: %d checkmate, %d stalemate, %d in check, %d ongoing.\n",
		len(results), failed,
		counts[engine.Checkmate], counts[engine.Stalemate], counts[engine.Check], counts[engine.Ongoing])
}
