package appointment

import (
	"crypto/rand"
	"math/big"
	"sync"
)

type ReferenceGenerator interface {
	Generate(year int) (Reference, error)
}

type RandomReferenceGenerator struct{}

func NewRandomReferenceGenerator() *RandomReferenceGenerator {
	return &RandomReferenceGenerator{}
}

func (g *RandomReferenceGenerator) Generate(year int) (Reference, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return Reference{}, err
	}
	return NewReference(year, int(n.Int64()))
}

// SequenceReferenceGenerator hands out the given serials in order, then repeats
// the last one. Used to force collisions in tests.
type SequenceReferenceGenerator struct {
	mu      sync.Mutex
	serials []int
	next    int
}

func NewSequenceReferenceGenerator(serials ...int) *SequenceReferenceGenerator {
	return &SequenceReferenceGenerator{serials: serials}
}

func (g *SequenceReferenceGenerator) Generate(year int) (Reference, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.serials) == 0 {
		return NewReference(year, 0)
	}
	i := g.next
	if i >= len(g.serials) {
		i = len(g.serials) - 1
	} else {
		g.next++
	}
	return NewReference(year, g.serials[i])
}
