package whisper

import (
	"fmt"

	"github.com/calvinalkan/whisper/internal/wfs"
)

// nopCloser satisfies io.Closer without taking any lock, used when
// [Locking] is disabled.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// lockExclusive takes an exclusive advisory lock on f if [Locking] is
// enabled, otherwise it is a no-op. See [Locking] for why the default is
// to not lock at all.
func lockExclusive(path string, f wfs.File) (closer, error) {
	if !Locking {
		return nopCloser{}, nil
	}

	lock, err := wfs.LockExclusive(f)
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}

	return lock, nil
}

// lockShared takes a shared advisory lock on f if [Locking] is enabled,
// otherwise it is a no-op. See [Locking] for why the default is to not
// lock at all.
func lockShared(path string, f wfs.File) (closer, error) {
	if !Locking {
		return nopCloser{}, nil
	}

	lock, err := wfs.LockShared(f)
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}

	return lock, nil
}

// closer is the subset of [io.Closer] both [*wfs.Lock] and [nopCloser]
// satisfy.
type closer interface {
	Close() error
}
