package generator

import (
	"math/rand"
	"time"

	"github.com/ascendlifequest/questseed/internal/random"
	"go.uber.org/zap"
)

// NewSeededRNG creates a seeded random number generator.
// If seed is 0, picks a random seed and logs it for reproducibility.
func NewSeededRNG(seed int64, logger *zap.SugaredLogger) *rand.Rand {
	if seed == 0 {
		generated, err := random.NewSeed()
		if err != nil {
			generated = time.Now().UnixNano()
		}
		seed = generated
		if logger != nil {
			logger.Infow("using generated seed", "seed", seed)
		}
	}
	return rand.New(rand.NewSource(seed))
}
