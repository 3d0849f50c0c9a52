// Package whisper implements a fixed-size round-robin time-series database
// file format and the algorithms that create, read, and update such files.
// It is a compatible reimplementation of the storage engine behind
// Graphite's Whisper: one file stores one metric as a series of concentric
// archives at progressively coarser resolutions, and writes into the
// highest-resolution archive are downsampled into coarser archives
// automatically as they are written.
//
// # Scope
//
// This package is the storage engine only: binary header layout, the
// circular-buffer archive addressing arithmetic, write-path propagation
// across archives, and read-path assembly of a contiguous time window that
// may wrap the ring. It does not implement network protocols, multi-file
// aggregation, a query language, or concurrent multi-writer coordination
// beyond OS file locks.
//
// # Concurrency
//
// Every exported operation (Create, Info, Fetch, Update, UpdateMany) is a
// short, synchronous critical section: it opens the file, performs bounded
// seeks and I/O, and closes it. By default none of them take an OS-level
// lock, so a writer never blocks a concurrent reader or another writer: a
// reader may observe a torn 16-byte point, which is a documented property
// of the format, not a bug.
//
// [Locking] opts into an OS-level advisory flock(2) around each operation:
// Create and Update/UpdateMany take it exclusively, Info/Fetch take it
// shared. flock(2) gives the exclusive lock priority over shared ones on
// the same inode, so enabling Locking makes Update/UpdateMany fully
// serialize against a concurrent Info/Fetch, trading the torn-read
// possibility above for reduced write/read concurrency.
//
// # Header cache
//
// [EnableHeaderCache] turns on a process-wide cache of parsed headers keyed
// by file path. Once populated, an entry is not invalidated when the file
// changes on disk; if a file is deleted and recreated with a different
// archive layout while cached, reads against the cached path will see the
// stale header. Only [EvictHeaderCache] removes an entry; [Resize] calls it
// for the file it rewrites.
package whisper
