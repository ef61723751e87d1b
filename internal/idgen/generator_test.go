package idgen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestGenerator_Next(t *testing.T) {
	g := New(100)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.Next(func(id string) bool { return seen[id] })
		require.Regexp(t, hexID, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		assert.True(t, g.MaybeIssued(id))
	}
}

func TestGenerator_RetriesOnCollision(t *testing.T) {
	g := New(10)
	g.Observe("dup")

	ids := []string{"dup", "dup", "fresh"}
	calls := 0
	g.newID = func() string {
		id := ids[calls]
		calls++
		return id
	}

	id := g.Next(func(id string) bool { return id == "dup" })

	assert.Equal(t, "fresh", id)
	assert.Equal(t, 3, calls)
}

func TestGenerator_FilterHitWithoutCollision(t *testing.T) {
	g := New(10)
	g.Observe("reused")
	g.newID = func() string { return "reused" }

	// the store says the id is free, so a filter hit alone is not a collision
	id := g.Next(func(string) bool { return false })
	assert.Equal(t, "reused", id)
}

func TestGenerator_Observe(t *testing.T) {
	g := New(0)

	assert.False(t, g.MaybeIssued("seed-1"))
	g.Observe("seed-1")
	assert.True(t, g.MaybeIssued("seed-1"))
	assert.GreaterOrEqual(t, g.ApproximateCount(), uint32(1))
}
