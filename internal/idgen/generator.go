// Package idgen issues order identifiers.
//
// Identifiers are 32 hex characters taken from a random UUID. Every issued or
// observed identifier is added to a Bloom filter; a filter hit is confirmed
// against the caller's store before a fresh identifier is drawn.
package idgen

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/google/uuid"
)

const falsePositiveRate = 0.001

// Generator issues unique order identifiers
type Generator struct {
	mu     sync.Mutex
	issued *bloom.BloomFilter
	newID  func() string
}

// New creates a generator sized for roughly capacity identifiers
func New(capacity uint) *Generator {
	if capacity == 0 {
		capacity = 1
	}
	return &Generator{
		issued: bloom.NewWithEstimates(capacity, falsePositiveRate),
		newID:  randomID,
	}
}

// Next returns an identifier that taken does not report as in use
func (g *Generator) Next(taken func(id string) bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		id := g.newID()
		if g.issued.TestString(id) && taken != nil && taken(id) {
			continue
		}
		g.issued.AddString(id)
		return id
	}
}

// Observe records an identifier that was assigned elsewhere, e.g. seed data
func (g *Generator) Observe(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued.AddString(id)
}

// MaybeIssued reports whether id may have been issued or observed.
// False means definitely not.
func (g *Generator) MaybeIssued(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.issued.TestString(id)
}

// ApproximateCount estimates how many identifiers the filter has seen
func (g *Generator) ApproximateCount() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.issued.ApproximatedSize()
}

func randomID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
