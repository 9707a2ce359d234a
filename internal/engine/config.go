package engine

import "github.com/rs/zerolog"

const (
	// Deepest search the arena can hold; a game never has more than 60 plies.
	maxSupportedDepth = 60

	defaultMaxDepth  = 6
	defaultTableSize = 1 << 20
)

// Weight interpolates linearly from Start at turn 0 to End at turn 60.
type Weight struct {
	Start int32 `json:"start"`
	End   int32 `json:"end"`
}

func (w Weight) At(turn int) int32 {
	return w.Start + (w.End-w.Start)*int32(turn)/60
}

// Weights of the heuristic features. EndGame scales the stone
// differential of a finished game.
type Weights struct {
	Stones            Weight `json:"stones"`
	Mobility          Weight `json:"mobility"`
	PotentialMobility Weight `json:"potential_mobility"`
	Corners           Weight `json:"corners"`
	PotentialCorners  Weight `json:"potential_corners"`
	Safe              Weight `json:"safe"`
	EndGame           int32  `json:"end_game"`
}

// 早期重视行动力，后期子数才真正重要
func DefaultWeights() Weights {
	return Weights{
		Stones:            Weight{Start: -50, End: 300},
		Mobility:          Weight{Start: 500, End: 0},
		PotentialMobility: Weight{Start: 300, End: 0},
		Corners:           Weight{Start: 1000, End: 600},
		PotentialCorners:  Weight{Start: 400, End: 0},
		Safe:              Weight{Start: 200, End: 400},
		EndGame:           10000,
	}
}

type Config struct {
	MaxDepth int // 最大搜索深度（ply），决定搜索栈大小

	// TableSize is the requested number of table buckets, rounded down to a
	// power of two. TableBudget caps the bucket array in bytes (0 = no cap);
	// either limit shrinks the table by 4x until it fits.
	TableSize   uint64
	TableBudget uint64

	// DisableTable searches without the transposition table.
	DisableTable bool

	Weights Weights
	Logger  zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:  defaultMaxDepth,
		TableSize: defaultTableSize,
		Weights:   DefaultWeights(),
		Logger:    zerolog.Nop(),
	}
}

func (c Config) normalized() Config {
	if c.MaxDepth <= 0 {
		c.MaxDepth = defaultMaxDepth
	}
	if c.MaxDepth > maxSupportedDepth {
		c.MaxDepth = maxSupportedDepth
	}
	if c.TableSize == 0 {
		c.TableSize = defaultTableSize
	}
	if c.Weights == (Weights{}) {
		c.Weights = DefaultWeights()
	}
	return c
}
