package detours

import (
	"sync"

	"github.com/theoremus-urban-solutions/detour-board/board"
)

type snapshotKey struct {
	routes, alerts uint64
}

// messageCache memoizes board output for the current snapshot pair. Entries
// for older snapshots are flushed as soon as a newer pair is seen.
type messageCache struct {
	mu       sync.Mutex
	snapshot snapshotKey
	results  map[string]board.Result[[]board.Message]
}

func newMessageCache() *messageCache {
	return &messageCache{results: map[string]board.Result[[]board.Message]{}}
}

func (c *messageCache) get(key snapshotKey, filterKey string) (board.Result[[]board.Message], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key != c.snapshot {
		return board.Result[[]board.Message]{}, false
	}
	res, ok := c.results[filterKey]
	return res, ok
}

func (c *messageCache) put(key snapshotKey, filterKey string, res board.Result[[]board.Message]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key != c.snapshot {
		// An older snapshot must not overwrite a newer one.
		if key.routes < c.snapshot.routes || key.alerts < c.snapshot.alerts {
			return
		}
		c.snapshot = key
		clear(c.results)
	}
	c.results[filterKey] = res
}

func (c *messageCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}
