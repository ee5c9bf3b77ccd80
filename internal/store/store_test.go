package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avsouza/leaseguard/internal/engine"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func sampleEntry(hash string) Entry {
	return Entry{
		FileHash:    hash,
		Filename:    "contrato.pdf",
		TextPreview: "contrato de locação comercial...",
		RuleReport:  engine.ScoreDocument("o locatário renuncia ao direito de renovação"),
		Narrative:   "análise narrativa",
	}
}

func TestCache_GetMiss(t *testing.T) {
	c := openTestCache(t)
	e, err := c.Get(context.Background(), "deadbeef")
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestCache_PutGet(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	in := sampleEntry("abc123")
	require.NoError(t, c.Put(ctx, in))

	out, err := c.Get(ctx, "abc123")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Filename, out.Filename)
	assert.Equal(t, in.TextPreview, out.TextPreview)
	assert.Equal(t, in.Narrative, out.Narrative)
	assert.Equal(t, in.RuleReport, out.RuleReport)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestCache_PutReplacesSameHash(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	first := sampleEntry("abc123")
	require.NoError(t, c.Put(ctx, first))

	second := sampleEntry("abc123")
	second.Filename = "contrato-v2.pdf"
	second.Narrative = "análise atualizada"
	require.NoError(t, c.Put(ctx, second))

	out, err := c.Get(ctx, "abc123")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "contrato-v2.pdf", out.Filename)
	assert.Equal(t, "análise atualizada", out.Narrative)

	all, err := c.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCache_Recent(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		e := sampleEntry(fmt.Sprintf("hash-%d", i))
		e.Filename = fmt.Sprintf("contrato-%d.pdf", i)
		require.NoError(t, c.Put(ctx, e))
	}

	got, err := c.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Newest first; equal timestamps fall back to insertion order.
	assert.Equal(t, "contrato-4.pdf", got[0].Filename)
	assert.Equal(t, "contrato-3.pdf", got[1].Filename)
	assert.Equal(t, "contrato-2.pdf", got[2].Filename)
}

func TestOpen_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")
	c, err := Open(path)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Put(context.Background(), sampleEntry("abc")))
}
