package escrow

import "sync"

// keyedMutex serializes operations per escrow id: at most one in-flight state
// transition per escrow, full parallelism across different escrows. Entries
// are reference counted so the map does not grow with every escrow ever seen.
type keyedMutex struct {
	mu 		sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu 	 sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) {
	k.mu.Lock()
	if k.entries == nil {
		k.entries = make(map[string]*lockEntry)
	}
	entry, ok := k.entries[key]
	if !ok {
		entry = &lockEntry{}
		k.entries[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
}

func (k *keyedMutex) unlock(key string) {
	k.mu.Lock()
	entry := k.entries[key]
	entry.refs--
	if entry.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	entry.mu.Unlock()
}
