package wfs

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Lock represents a held advisory file lock. Call [Lock.Close] to release it.
type Lock struct {
	fd int
}

// Close releases the lock. Idempotent.
func (l *Lock) Close() error {
	if l.fd < 0 {
		return nil
	}

	fd := l.fd
	l.fd = -1

	if err := flockRetryEINTR(fd, unix.LOCK_UN); err != nil {
		return fmt.Errorf("unlocking: %w", err)
	}

	return nil
}

// LockExclusive takes an exclusive advisory lock on the open file, blocking
// until it is acquired. A writer opens read/write and shares read only with
// other handles - a concurrent second writer must block (or, on platforms
// without blocking flock semantics, fail) rather than corrupt the file.
func LockExclusive(f File) (*Lock, error) {
	fd := int(f.Fd())
	if err := flockRetryEINTR(fd, unix.LOCK_EX); err != nil {
		return nil, fmt.Errorf("acquiring exclusive lock: %w", err)
	}

	return &Lock{fd: fd}, nil
}

// LockShared takes a shared advisory lock on the open file, blocking until
// it is acquired. Multiple shared locks coexist, but flock(2) gives an
// exclusive lock on the same inode priority over them: while any
// LockExclusive holder is active, a concurrent LockShared call blocks until
// it releases, and vice versa. Callers that need a reader to never block
// behind a writer (or a writer to never block behind a reader) must not
// call this - see whisper.Locking.
func LockShared(f File) (*Lock, error) {
	fd := int(f.Fd())
	if err := flockRetryEINTR(fd, unix.LOCK_SH); err != nil {
		return nil, fmt.Errorf("acquiring shared lock: %w", err)
	}

	return &Lock{fd: fd}, nil
}

func flockRetryEINTR(fd int, how int) error {
	for {
		err := unix.Flock(fd, how)
		if errors.Is(err, unix.EINTR) {
			continue
		}

		return err
	}
}
