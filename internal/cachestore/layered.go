package cachestore

import "time"

// Layered combines a fast front cache (memory) with a slower persistent
// back cache. Reads check the front first and promote back-cache hits;
// writes go to both layers.
type Layered struct {
	front Cache
	back  Cache
}

// NewLayered creates a layered cache over front and back stores.
func NewLayered(front, back Cache) *Layered {
	return &Layered{front: front, back: back}
}

// Get retrieves a value, promoting back-cache hits into the front cache.
func (l *Layered) Get(key string) ([]byte, bool) {
	if val, ok := l.front.Get(key); ok {
		return val, true
	}
	val, ok := l.back.Get(key)
	if !ok {
		return nil, false
	}
	// Promotion failure is not a read failure.
	_ = l.front.Set(key, val, 0)
	return val, true
}

// Set stores a value in both layers.
func (l *Layered) Set(key string, value []byte, ttl time.Duration) error {
	if err := l.front.Set(key, value, ttl); err != nil {
		return err
	}
	return l.back.Set(key, value, ttl)
}

// Delete removes a value from both layers.
func (l *Layered) Delete(key string) error {
	if err := l.front.Delete(key); err != nil {
		return err
	}
	return l.back.Delete(key)
}

// Clear removes all values from both layers.
func (l *Layered) Clear() error {
	if err := l.front.Clear(); err != nil {
		return err
	}
	return l.back.Clear()
}
