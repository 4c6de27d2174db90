package lay

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// Cache keeps recently parsed layouts by path, so that a pipeline touching
// the same lay file over and over parses it once.
//
// Returned layouts are shared between callers and must not be modified.
// Failed parses are not cached. Concurrent misses on the same path may parse
// the file more than once.
type Cache struct {
	layouts *lru.Cache[string, *Layout]
	parse   func(path string) (*Layout, error)
}

// NewCache returns a cache holding up to size layouts.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[string, *Layout](size)
	if err != nil {
		return nil, errors.Wrap(err, "creating layout cache")
	}
	return &Cache{layouts: c, parse: ParseFile}, nil
}

// Get returns the layout of the file at path, parsing it on a miss.
func (c *Cache) Get(path string) (*Layout, error) {
	if l, ok := c.layouts.Get(path); ok {
		return l, nil
	}
	l, err := c.parse(path)
	if err != nil {
		return nil, err
	}
	c.layouts.Add(path, l)
	return l, nil
}

// Forget drops the layout of path, if cached.
func (c *Cache) Forget(path string) {
	c.layouts.Remove(path)
}

// Purge drops all cached layouts.
func (c *Cache) Purge() {
	c.layouts.Purge()
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int {
	return c.layouts.Len()
}
