package mocksmith_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mocksmith/mocksmith"
)

func TestSource_DeterministicSequence(t *testing.T) {
	a := mocksmith.NewSource(99)
	b := mocksmith.NewSource(99)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.IntBetween(0, 1_000_000), b.IntBetween(0, 1_000_000), "draw %d", i)
	}
	require.Equal(t, a.Email(), b.Email())
	require.Equal(t, a.UUID(), b.UUID())
	require.Equal(t, a.Word(), b.Word())
}

func TestSource_IntBetween(t *testing.T) {
	src := mocksmith.NewSource(7)
	for i := 0; i < 200; i++ {
		v := src.IntBetween(3, 9)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 9)
	}
	// Inverted bounds swap rather than fail.
	for i := 0; i < 50; i++ {
		v := src.IntBetween(9, 3)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 9)
	}
	assert.Equal(t, 5, src.IntBetween(5, 5))
}

func TestSource_DateBetween(t *testing.T) {
	src := mocksmith.NewSource(7)
	min := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		v := src.DateBetween(min, max)
		assert.False(t, v.Before(min))
		assert.False(t, v.After(max))
	}
	assert.Equal(t, min, src.DateBetween(min, min.Add(-time.Hour)))
}

func TestSource_WordOfLength(t *testing.T) {
	src := mocksmith.NewSource(7)
	for _, n := range []int{1, 3, 5, 8, 12} {
		assert.Len(t, src.WordOfLength(n), n)
	}
	assert.Equal(t, "", src.WordOfLength(0))
}

func TestSource_UUIDShape(t *testing.T) {
	src := mocksmith.NewSource(7)
	uuidRe := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, uuidRe, src.UUID())
	}
}

func TestSource_Regex(t *testing.T) {
	src := mocksmith.NewSource(7)
	re := regexp.MustCompile(`^[A-Z]{2}-[0-9]{4}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, re, src.Regex(`[A-Z]{2}-[0-9]{4}`))
	}
}

func TestSource_ReseedReplays(t *testing.T) {
	src := mocksmith.NewSource(1, 2, 3)
	first := []int{src.IntBetween(0, 1<<30), src.IntBetween(0, 1<<30)}
	src.Seed(1, 2, 3)
	assert.Equal(t, first[0], src.IntBetween(0, 1<<30))
	assert.Equal(t, first[1], src.IntBetween(0, 1<<30))
}
