package grammar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// byteSourceFunc adapts a function to the ByteSource interface.
type byteSourceFunc func(n int) []byte

func (f byteSourceFunc) Take(ctx context.Context, n int) []byte { return f(n) }

func newTestCluster(t *testing.T, sizing ByteSource) *Cluster {
	t.Helper()
	engine, err := NewEngine(singleWordLists(), zeroSource{})
	require.NoError(t, err)
	cluster, err := NewCluster(engine, sizing, 0, 0)
	require.NoError(t, err)
	return cluster
}

func TestClusterSizeBounds(t *testing.T) {
	for b := 0; b <= 255; b++ {
		fixed := byte(b)
		cluster := newTestCluster(t, byteSourceFunc(func(n int) []byte {
			return []byte{fixed}
		}))

		size := cluster.Size(context.Background())
		assert.GreaterOrEqual(t, size, DefaultClusterMin, "byte %d", b)
		assert.LessOrEqual(t, size, DefaultClusterMax, "byte %d", b)
		assert.Equal(t, DefaultClusterMin+b%(DefaultClusterMax-DefaultClusterMin+1), size, "byte %d", b)
	}
}

func TestClusterCustomBounds(t *testing.T) {
	engine, err := NewEngine(singleWordLists(), zeroSource{})
	require.NoError(t, err)

	cluster, err := NewCluster(engine, zeroSource{}, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, cluster.Size(context.Background()), "byte 0 maps to min")

	_, err = NewCluster(engine, zeroSource{}, 9, 3)
	require.Error(t, err, "min above max is rejected")
}

func TestClusterRunStreamsAllSentences(t *testing.T) {
	// Size byte 2 with default bounds: 4 + 2%17 = 6 sentences.
	first := true
	cluster := newTestCluster(t, byteSourceFunc(func(n int) []byte {
		if first {
			first = false
			return []byte{2}
		}
		return make([]byte, n)
	}))

	var sentences []string
	n := cluster.Run(context.Background(), func(s string) {
		sentences = append(sentences, s)
	})

	assert.Equal(t, 6, n)
	require.Len(t, sentences, 6)
	for _, s := range sentences {
		assert.NotEmpty(t, s)
	}
}

func TestClusterEmitExactCount(t *testing.T) {
	cluster := newTestCluster(t, zeroSource{})

	count := 0
	cluster.Emit(context.Background(), 3, func(string) { count++ })
	assert.Equal(t, 3, count)
}
