package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/internal/engine"
	"othello/internal/othello"
)

func main() {
	depth := flag.Int("depth", 6, "search depth for both sides")
	msPerGame := flag.Int("ms", -1, "time budget per side per game in ms (-1 = fixed depth)")
	bench := flag.Bool("bench", false, "run the depth benchmark instead of a single game")
	games := flag.Int("games", 10, "benchmark: number of games")
	depthA := flag.Int("depth-a", 3, "benchmark: depth of player A")
	depthB := flag.Int("depth-b", 5, "benchmark: depth of player B")
	parallel := flag.Int("parallel", 4, "benchmark: games played at once")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	if *bench {
		if err := runBenchmark(*games, *depthA, *depthB, *parallel); err != nil {
			log.Fatal().Err(err).Msg("benchmark failed")
		}
		return
	}

	cfg := engine.DefaultConfig()
	cfg.MaxDepth = *depth
	cfg.Logger = log.Logger

	res, err := playGame(cfg, cfg, *msPerGame, func(ply int, side othello.Side, mv *othello.Move, took time.Duration) {
		name := "pass"
		if mv != nil {
			name = mv.String()
		}
		fmt.Printf("%2d %-5s %-4s %v\n", ply+1, side, name, took.Round(time.Millisecond))
	})
	if err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}

	fmt.Println(res.Final.Render(0))
	fmt.Printf("White %d, Black %d, winner %s\n", res.White, res.Black, res.winnerName())
}

type gameResult struct {
	Final othello.Position
	White int
	Black int
}

func (r gameResult) winnerName() string {
	switch {
	case r.White > r.Black:
		return othello.White.String()
	case r.Black > r.White:
		return othello.Black.String()
	}
	return "draw"
}

// playGame drives two players until both pass in a row. Black moves first.
func playGame(blackCfg, whiteCfg engine.Config, msPerGame int, onMove func(int, othello.Side, *othello.Move, time.Duration)) (gameResult, error) {
	players := [2]*engine.Player{
		othello.White: engine.NewPlayer(othello.White, whiteCfg),
		othello.Black: engine.NewPlayer(othello.Black, blackCfg),
	}
	left := [2]int{msPerGame, msPerGame}

	side := othello.Black
	var last *othello.Move
	passes := 0
	for ply := 0; passes < 2; ply++ {
		p := players[side]
		start := time.Now()
		mv, err := p.DoMove(last, left[side])
		took := time.Since(start)
		if err != nil {
			return gameResult{}, err
		}
		if left[side] >= 0 {
			left[side] -= int(took.Milliseconds())
			if left[side] < 0 {
				left[side] = 0
			}
		}
		if onMove != nil {
			onMove(ply, side, mv, took)
		}
		if mv == nil {
			passes++
		} else {
			passes = 0
		}
		last = mv
		side = side.Opposite()
	}

	// The player that moved last has the complete board.
	final := players[side.Opposite()].Position()
	return gameResult{
		Final: final,
		White: final.Count(othello.White),
		Black: final.Count(othello.Black),
	}, nil
}
