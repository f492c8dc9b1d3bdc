package fonts

import (
	"container/list"
	"sync"
)

// measureCache is an LRU cache of text measurements keyed by size and text.
type measureCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[measureKey]*list.Element
	lru     *list.List // Front = most recently used
}

type measureKey struct {
	size uint
	text string
}

type measureEntry struct {
	key           measureKey
	width, height float32
}

func newMeasureCache(maxSize int) *measureCache {
	return &measureCache{
		maxSize: maxSize,
		entries: make(map[measureKey]*list.Element),
		lru:     list.New(),
	}
}

func (c *measureCache) get(key measureKey) (float32, float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		e := elem.Value.(*measureEntry)
		return e.width, e.height, true
	}
	return 0, 0, false
}

func (c *measureCache) put(key measureKey, width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		e := elem.Value.(*measureEntry)
		e.width, e.height = width, height
		return
	}

	for c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*measureEntry).key)
	}

	c.entries[key] = c.lru.PushFront(&measureEntry{key: key, width: width, height: height})
}

func (c *measureCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
