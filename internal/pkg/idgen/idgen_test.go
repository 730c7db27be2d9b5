package idgen

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	g := NewUUID("")
	a, b := g.Generate(), g.Generate()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)

	p := NewUUID("ent").Generate()
	assert.True(t, strings.HasPrefix(p, "ent_"))
	_, err = uuid.Parse(strings.TrimPrefix(p, "ent_"))
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	g := NewSequential("chunk")
	assert.Equal(t, "chunk_1", g.Generate())
	assert.Equal(t, "chunk_2", g.Generate())

	bare := NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequentialGeneratorConcurrent(t *testing.T) {
	g := NewSequential("")
	var (
		mu   sync.Mutex
		seen = map[string]bool{}
		wg   sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := g.Generate()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 800)
}

func TestNew(t *testing.T) {
	g, err := New("sequential", "e")
	require.NoError(t, err)
	assert.Equal(t, "e_1", g.Generate())

	g, err = New("", "")
	require.NoError(t, err)
	assert.IsType(t, &UUIDGenerator{}, g)

	_, err = New("snowflake", "")
	assert.Error(t, err)
}
