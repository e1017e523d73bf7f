package particle

import (
	"math/rand/v2"
	"sync/atomic"
	"time"
)

var streamSeq atomic.Uint64

// NewRand returns a time-seeded generator; each call gets a distinct stream
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), streamSeq.Add(1)))
}

// NewSeededRand returns a deterministic generator for tests and replays
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
