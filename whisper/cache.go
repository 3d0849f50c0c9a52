package whisper

import "sync"

// headerCache is the optional process-wide header memoization. It never
// invalidates entries on its own - once a path is cached, it stays cached
// until [EvictHeaderCache] removes it (which [Resize] does for the file it
// rewrites), even if the file changes on disk. [sync.Map] gives
// the concurrent-insertion safety required without a package-level mutex
// guarding lookups on the hot path.
var headerCache sync.Map // map[string]Header

// EnableHeaderCache turns on the process-wide header cache and is
// equivalent to setting [CacheHeaders] = true directly; it exists for
// callers that prefer a verb to a bare assignment.
func EnableHeaderCache() {
	CacheHeaders = true
}

// EvictHeaderCache removes path's cached header, if any. The reference
// implementation exposes no automatic invalidation; this is the explicit
// escape hatch an implementation may reasonably expose instead.
func EvictHeaderCache(path string) {
	headerCache.Delete(path)
}

// cachedHeader returns the header for path, reading and caching it via
// openAndRead if it is not already cached or caching is disabled.
func cachedHeader(path string, openAndRead func() (Header, error)) (Header, error) {
	if !CacheHeaders {
		return openAndRead()
	}

	if h, ok := headerCache.Load(path); ok {
		return h.(Header), nil //nolint:forcetypeassert
	}

	h, err := openAndRead()
	if err != nil {
		return Header{}, err
	}

	actual, _ := headerCache.LoadOrStore(path, h)

	return actual.(Header), nil //nolint:forcetypeassert
}
