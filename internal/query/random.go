package query

import (
	"math/rand"

	"github.com/harrison/fortuner/internal/models"
)

// Source produces uniformly distributed indexes.
type Source interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a deterministic Source when seed is non-nil and an
// entropy-backed Source otherwise.
func NewSource(seed *uint64) Source {
	if seed != nil {
		return NewSeededSource(*seed)
	}
	return entropySource{}
}

// SeededSource is a SplitMix64 generator. The same seed always yields the
// same sequence on every platform.
type SeededSource struct {
	state uint64
}

// NewSeededSource creates a SeededSource starting from seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{state: seed}
}

// Uint64 returns the next value in the sequence.
func (s *SeededSource) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// IntN returns an unbiased value in [0, n) by rejecting the low values
// that would make the modulo uneven.
func (s *SeededSource) IntN(n int) int {
	if n <= 0 {
		panic("query: invalid argument to IntN")
	}
	bound := uint64(n)
	threshold := -bound % bound
	for {
		x := s.Uint64()
		if x >= threshold {
			return int(x % bound)
		}
	}
}

// entropySource draws from the runtime-seeded math/rand/v2 generator.
type entropySource struct{}

func (entropySource) IntN(n int) int { return rand.Intn(n) }

// Pick returns the text of one record chosen uniformly from the whole
// collection. ok is false when the collection is empty.
func Pick(collection models.Collection, src Source) (text string, ok bool) {
	record, ok := PickRecord(collection, src)
	return record.Text, ok
}

// PickRecord is like Pick but returns the whole record.
func PickRecord(collection models.Collection, src Source) (models.Record, bool) {
	if len(collection) == 0 {
		return models.Record{}, false
	}
	return collection[src.IntN(len(collection))], true
}
