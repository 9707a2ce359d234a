package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/internal/engine"
	"othello/internal/othello"
)

func main() {
	grid := flag.String("grid", "", "64-char grid (w/b/.) instead of the opening")
	side := flag.String("side", "black", "side to move (white|black)")
	depth := flag.Int("depth", 0, "if > 0, also search this many plies")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})

	pos, s, err := loadPosition(*grid, *side)
	if err != nil {
		log.Fatal().Err(err).Msg("bad position")
	}

	legal := pos.Legal(s)
	fmt.Println("Grid:", pos.Encode())
	fmt.Print(pos.Render(legal))
	var list othello.MoveList
	list.Fill(legal)
	fmt.Printf("%s to move, %d legal moves:", s, list.Len())
	for i := 0; i < list.Len(); i++ {
		fmt.Print(" ", othello.SquareName(list.At(i)))
	}
	fmt.Println()
	w := engine.DefaultWeights()
	fmt.Println("Eval:", engine.Evaluate(pos, s, &w))

	if *depth > 0 {
		cfg := engine.DefaultConfig()
		cfg.MaxDepth = *depth
		cfg.TableSize = 1 << 16
		res := engine.NewEngine(cfg).Search(pos, s, engine.SearchConfig{MaxDepth: *depth})
		fmt.Printf("Best: %s Score: %d Nodes: %d Time: %v\n",
			othello.SquareName(res.Move), res.Score, res.Nodes, res.TimeUsed)
	}
}

// loadPosition parses the -grid and -side flags; an empty grid is the opening.
func loadPosition(grid, side string) (*othello.Position, othello.Side, error) {
	var s othello.Side
	switch strings.ToLower(side) {
	case "black", "b":
		s = othello.Black
	case "white", "w":
		s = othello.White
	default:
		return nil, othello.Empty, errors.Errorf("unknown side %q", side)
	}
	if grid == "" {
		return othello.NewInitialPosition(), s, nil
	}
	pos, err := othello.ParseGrid(grid)
	if err != nil {
		return nil, othello.Empty, errors.Wrap(err, "grid")
	}
	return pos, s, nil
}
