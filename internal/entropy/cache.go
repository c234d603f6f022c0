package entropy

import (
	"context"
	"sync"
)

// DefaultChunkSize is how many bytes each underlying fetch requests.
const DefaultChunkSize = 1024

// Cache buffers fetched bytes and serves exact-length slices in the order
// they were produced. Each byte is handed out exactly once. Refills happen
// transparently in chunk-size fetches whenever the buffer cannot cover a
// request, so one Take may trigger several fetches before returning.
type Cache struct {
	mu        sync.Mutex
	buf       []byte
	fetcher   Fetcher
	chunkSize int
	origin    Origin
	fetched   bool
}

// NewCache creates a byte cache over the given fetcher. Non-positive chunk
// sizes select the default.
func NewCache(fetcher Fetcher, chunkSize int) *Cache {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	return &Cache{
		fetcher:   fetcher,
		chunkSize: chunkSize,
	}
}

// Take returns exactly n bytes, consuming them from the front of the buffer.
// The whole operation holds the lock so two callers can never be issued the
// same bytes.
func (c *Cache) Take(ctx context.Context, n int) []byte {
	if n <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for len(c.buf) < n {
		res := c.fetcher.Fetch(ctx, c.chunkSize)
		c.buf = append(c.buf, res.Bytes...)
		c.origin = res.Origin
		c.fetched = true
	}

	out := make([]byte, n)
	copy(out, c.buf[:n])
	c.buf = c.buf[n:]

	return out
}

// Buffered reports how many bytes are currently cached.
func (c *Cache) Buffered() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buf)
}

// Origin reports which path produced the most recent refill. The second
// return is false until the first refill has happened.
func (c *Cache) Origin() (Origin, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.origin, c.fetched
}
