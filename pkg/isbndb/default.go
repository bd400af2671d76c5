package isbndb

import "sync"

var (
	defaultMu  sync.RWMutex
	defaultKey string
)

// SetDefaultAccessKey sets the process-wide key used when a caller has no key
// of its own.
func SetDefaultAccessKey(key string) {
	defaultMu.Lock()
	defaultKey = key
	defaultMu.Unlock()
}

// DefaultAccessKey returns the process-wide key, empty if none was set.
func DefaultAccessKey() string {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultKey
}
