package main

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"othello/internal/engine"
)

type benchScore struct {
	aWins, bWins, draws int
	aDiscs, bDiscs      int
}

// runBenchmark plays depth A against depth B, swapping colours every game.
// Each game owns its players and tables, so games run in parallel.
func runBenchmark(games, depthA, depthB, parallel int) error {
	cfgA := engine.DefaultConfig()
	cfgA.MaxDepth = depthA
	cfgA.TableSize = 1 << 16
	cfgB := cfgA
	cfgB.MaxDepth = depthB

	var (
		mu    sync.Mutex
		score benchScore
	)

	var g errgroup.Group
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			aIsBlack := i%2 == 0
			black, white := cfgA, cfgB
			if !aIsBlack {
				black, white = cfgB, cfgA
			}
			res, err := playGame(black, white, -1, nil)
			if err != nil {
				return err
			}

			a, b := res.Black, res.White
			if !aIsBlack {
				a, b = b, a
			}
			mu.Lock()
			defer mu.Unlock()
			score.aDiscs += a
			score.bDiscs += b
			switch {
			case a > b:
				score.aWins++
			case b > a:
				score.bWins++
			default:
				score.draws++
			}
			log.Info().Int("game", i+1).Int("a", a).Int("b", b).Bool("aBlack", aIsBlack).Msg("game done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("depth %d: %d wins, %d discs\n", depthA, score.aWins, score.aDiscs)
	fmt.Printf("depth %d: %d wins, %d discs\n", depthB, score.bWins, score.bDiscs)
	fmt.Printf("Draws: %d\n", score.draws)
	return nil
}
