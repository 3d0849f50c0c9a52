// Package wfs provides the filesystem abstraction the whisper engine opens
// its data files through.
//
// The only implementation callers need is [Real], which is a thin
// pass-through to the [os] package. The interface exists so tests can swap
// in a fault-injecting or in-memory filesystem without touching engine
// logic, and so the share-lock discipline the engine depends on (see
// package whisper's doc comment) lives in one place.
package wfs

import (
	"io"
	"os"

	"github.com/google/renameio"
)

// File represents an open file descriptor.
//
// This interface is satisfied by [os.File] and by anything else that wants
// to stand in for a real file in tests.
type File interface {
	io.ReadWriteCloser
	io.Seeker

	// Fd returns the file descriptor, used for flock(2) via package unix.
	Fd() uintptr

	// Sync commits the file's contents to disk. See [os.File.Sync].
	Sync() error

	// Truncate changes the size of the file. See [os.File.Truncate].
	Truncate(size int64) error
}

// FS defines the filesystem operations the whisper engine needs.
//
// [Real] is the only production implementation; it wraps the [os] package.
type FS interface {
	// OpenForCreate opens path with O_RDWR|O_CREATE|O_EXCL, failing if the
	// file already exists. Used by [whisper.Create], which opens exclusive
	// with no sharing.
	OpenForCreate(path string, perm os.FileMode) (File, error)

	// OpenForRead opens path read-only. Used by info/fetch, which share read
	// and write access with other handles.
	OpenForRead(path string) (File, error)

	// OpenForWrite opens path read/write for an existing file. Used by
	// update. It takes no lock, so it does not exclude a concurrent second
	// writer; exclusion comes only from [LockExclusive].
	OpenForWrite(path string) (File, error)

	// Stat returns file info. See [os.Stat].
	Stat(path string) (os.FileInfo, error)

	// Remove deletes a file. See [os.Remove].
	Remove(path string) error

	// Rename atomically replaces newpath with oldpath. See [os.Rename].
	// Used by [whisper.Resize] to swap a re-laid-out file into place.
	Rename(oldpath, newpath string) error
}

// Real implements [FS] using the real filesystem.
type Real struct{}

// NewReal returns a new [Real] filesystem.
func NewReal() *Real {
	return &Real{}
}

func (r *Real) OpenForCreate(path string, perm os.FileMode) (File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
}

func (r *Real) OpenForRead(path string) (File, error) {
	return os.OpenFile(path, os.O_RDONLY, 0)
}

func (r *Real) OpenForWrite(path string) (File, error) {
	return os.OpenFile(path, os.O_RDWR, 0)
}

func (r *Real) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (r *Real) Remove(path string) error {
	return os.Remove(path)
}

// Rename fsyncs oldpath and its parent directory before renaming it over
// newpath, via [renameio.Rename], so [whisper.Resize]'s swap survives a
// crash between the rename and the next fsync of the directory entry - a
// plain [os.Rename] is atomic but not itself durable.
func (r *Real) Rename(oldpath, newpath string) error {
	return renameio.Rename(oldpath, newpath)
}

// Compile-time interface checks.
var (
	_ File = (*os.File)(nil)
	_ FS   = (*Real)(nil)
)
