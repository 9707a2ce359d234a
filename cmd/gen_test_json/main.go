package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog/log"

	"othello/internal/othello"
)

// TestCase is one position of a random game: the grid, the side to move,
// its legal move mask and the flip mask of every legal move.
type TestCase struct {
	Grid  string            `json:"grid"`
	White uint64            `json:"white"`
	Black uint64            `json:"black"`
	Side  string            `json:"side"`
	Legal uint64            `json:"legal"`
	Flips map[string]uint64 `json:"flips"`
	Hash  uint64            `json:"hash"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase

	for g := 0; g < *numGames; g++ {
		pos := othello.NewInitialPosition()
		side := othello.Black
		for !pos.GameOver() {
			legal := pos.Legal(side)
			if legal == 0 {
				side = side.Opposite()
				continue
			}

			var list othello.MoveList
			list.Fill(legal)
			flips := make(map[string]uint64, list.Len())
			for i := 0; i < list.Len(); i++ {
				sq := list.At(i)
				flips[othello.SquareName(sq)] = pos.FlipsFor(side, sq)
			}
			testCases = append(testCases, TestCase{
				Grid:  pos.Encode(),
				White: pos.Bits[othello.White],
				Black: pos.Bits[othello.Black],
				Side:  side.String(),
				Legal: legal,
				Flips: flips,
				Hash:  pos.Hash,
			})

			// 随机选一步
			pos.Play(side, list.At(rng.Intn(list.Len())))
			side = side.Opposite()
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("marshal")
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal().Err(err).Str("file", *out).Msg("write")
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
