package objpath

import "sync"

// maxCacheSize bounds the normalization cache. Dynamically generated path
// strings would otherwise grow it without limit; a full reset past the
// threshold is simpler than LRU and good enough.
const maxCacheSize = 500

var cache = struct {
	sync.Mutex
	paths map[string][]string
}{paths: make(map[string][]string, 64)}

// normalize tokenizes a compound path, memoized by the path string.
// Safe for concurrent use.
func normalize(path string) []string {
	cache.Lock()
	if keys, ok := cache.paths[path]; ok {
		cache.Unlock()
		return keys
	}
	cache.Unlock()

	keys := tokenize(path)

	cache.Lock()
	if len(cache.paths) >= maxCacheSize {
		cache.paths = make(map[string][]string, 64)
	}
	cache.paths[path] = keys
	cache.Unlock()
	return keys
}

func cacheSize() int {
	cache.Lock()
	defer cache.Unlock()
	return len(cache.paths)
}
