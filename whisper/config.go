package whisper

// AutoFlush controls whether [Create], [Update], and [UpdateMany] issue an
// fsync before closing the file. Default false (rely on OS buffering).
//
// This is a process-wide switch read without synchronization, same as the
// reference implementation's module-level flag - it is not meant to be
// toggled concurrently with in-flight operations, so no atomic or mutex
// wraps it.
var AutoFlush = false

// CacheHeaders enables the process-wide header cache. Default
// false. The cache itself (see cache.go) uses a concurrent-map discipline
// once enabled; this switch is the same read-without-synchronization knob
// as AutoFlush.
var CacheHeaders = false

// Locking enables OS-level advisory file locking (flock(2), via
// internal/wfs) around every [Create], [Info], [Fetch], [Update], and
// [UpdateMany] call. Default false: by default none of these operations
// take a lock, so a writer never blocks a concurrent reader (or vice
// versa) - a reader may observe a torn 16-byte point, which is a
// documented property of the format, not a bug.
//
// flock(2) gives an exclusive lock priority over shared locks on the same
// inode, so turning this on makes Update/UpdateMany fully serialize
// against any concurrent Info/Fetch for the duration of the write and its
// propagation cascade. Enable it only when that serialization is what you
// want (e.g. a single-writer-plus-readers setup that cannot tolerate a
// torn read), not as a default-on safety net.
//
// Read without synchronization, same as AutoFlush and CacheHeaders.
var Locking = false
