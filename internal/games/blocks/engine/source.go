package engine

import "math/rand"

// KindSource supplies the kind of each new piece.
// Implementations must only return valid kinds.
type KindSource interface {
	NextKind() Kind
}

// UniformSource picks each kind independently with equal probability.
type UniformSource struct {
	rng *rand.Rand
}

// NewUniformSource creates a source seeded for reproducible sequences.
func NewUniformSource(seed int64) *UniformSource {
	return &UniformSource{rng: rand.New(rand.NewSource(seed))}
}

// NextKind returns a random kind in 1-7.
func (u *UniformSource) NextKind() Kind {
	return Kind(u.rng.Intn(KindCount) + 1)
}

// SequenceSource replays a fixed list of kinds, wrapping at the end.
// Handy for scripted demos and tests.
type SequenceSource struct {
	kinds []Kind
	next  int
}

// NewSequenceSource creates a source cycling through kinds.
// An empty list cycles through the whole catalog.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	return &SequenceSource{kinds: kinds}
}

// NextKind returns the next kind in the sequence.
func (s *SequenceSource) NextKind() Kind {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return k
}
