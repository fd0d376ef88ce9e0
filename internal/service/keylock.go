package service

import "sync"

// keyLock serializes access per key. Entries are reference-counted and
// removed when the last holder releases, so the map stays bounded by the
// number of in-flight requests.
type keyLock struct {
	mu   sync.Mutex
	held map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{held: make(map[string]*lockEntry)}
}

// Lock blocks until the key is exclusively held by the caller.
func (k *keyLock) Lock(key string) {
	k.mu.Lock()
	e, ok := k.held[key]
	if !ok {
		e = &lockEntry{}
		k.held[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the key. It must pair with a previous Lock of the same key.
func (k *keyLock) Unlock(key string) {
	k.mu.Lock()
	e := k.held[key]
	e.refs--
	if e.refs == 0 {
		delete(k.held, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
