package cachestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIsStableAndDistinct(t *testing.T) {
	a := Key("https://rest.ensembl.org/lookup/id/ENST00000352904")
	b := Key("https://rest.ensembl.org/lookup/id/ENST00000389048")

	assert.Equal(t, a, Key("https://rest.ensembl.org/lookup/id/ENST00000352904"))
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "varlift:v1:")
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	require.NoError(t, c.Set("k", []byte("body"), time.Minute))
	val, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("body"), val)

	require.NoError(t, c.Delete("k"))
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	require.NoError(t, c.Set("k", []byte("body"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestMemoryCacheClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	require.NoError(t, c.Set("a", []byte("1"), time.Minute))
	require.NoError(t, c.Set("b", []byte("2"), time.Minute))
	require.NoError(t, c.Clear())

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestLayeredPromotion(t *testing.T) {
	front := NewMemoryCache(time.Minute, time.Minute)
	back := NewMemoryCache(time.Minute, time.Minute)
	l := NewLayered(front, back)

	// Seed only the back store; a layered read promotes into the front.
	require.NoError(t, back.Set("k", []byte("body"), time.Minute))

	val, ok := l.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("body"), val)

	val, ok = front.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("body"), val)
}

func TestLayeredWriteAndDelete(t *testing.T) {
	front := NewMemoryCache(time.Minute, time.Minute)
	back := NewMemoryCache(time.Minute, time.Minute)
	l := NewLayered(front, back)

	require.NoError(t, l.Set("k", []byte("body"), time.Minute))

	_, ok := front.Get("k")
	assert.True(t, ok)
	_, ok = back.Get("k")
	assert.True(t, ok)

	require.NoError(t, l.Delete("k"))
	_, ok = l.Get("k")
	assert.False(t, ok)
}
