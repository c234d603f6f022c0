package grammar

import (
	"context"
	"fmt"
)

// Cluster size bounds, inclusive.
const (
	DefaultClusterMin = 4
	DefaultClusterMax = 20
)

// Cluster decides, from one entropy byte, how many sentences one batch
// holds and drives the engine that many times.
type Cluster struct {
	engine *Engine
	bytes  ByteSource
	min    int
	max    int
}

// NewCluster creates a cluster controller. Non-positive bounds select the
// defaults; min must not exceed max.
func NewCluster(engine *Engine, bytes ByteSource, min, max int) (*Cluster, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if bytes == nil {
		return nil, fmt.Errorf("byte source is required")
	}
	if min <= 0 {
		min = DefaultClusterMin
	}
	if max <= 0 {
		max = DefaultClusterMax
	}
	if min > max {
		return nil, fmt.Errorf("cluster min %d exceeds max %d", min, max)
	}

	return &Cluster{engine: engine, bytes: bytes, min: min, max: max}, nil
}

// Size draws one byte and maps it into [min, max].
func (c *Cluster) Size(ctx context.Context) int {
	b := c.bytes.Take(ctx, 1)[0]
	return c.min + int(b)%(c.max-c.min+1)
}

// Emit generates exactly n sentences, streaming each to emit as it is
// produced.
func (c *Cluster) Emit(ctx context.Context, n int, emit func(sentence string)) {
	for i := 0; i < n; i++ {
		emit(c.engine.Generate(ctx))
	}
}

// Run generates one cluster, streaming each sentence to emit as it is
// produced. It returns the cluster size.
func (c *Cluster) Run(ctx context.Context, emit func(sentence string)) int {
	n := c.Size(ctx)
	c.Emit(ctx, n, emit)
	return n
}
