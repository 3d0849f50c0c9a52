package wfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLockExclusive_AcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fsys := NewReal()

	f, err := fsys.OpenForWrite(path)
	require.NoError(t, err)
	defer f.Close()

	lock, err := LockExclusive(f)
	require.NoError(t, err)
	require.NoError(t, lock.Close())

	// Closing twice must be a no-op, not an error.
	require.NoError(t, lock.Close())
}

func TestLockShared_MultipleReadersDoNotBlockEachOther(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fsys := NewReal()

	f1, err := fsys.OpenForRead(path)
	require.NoError(t, err)
	defer f1.Close()

	f2, err := fsys.OpenForRead(path)
	require.NoError(t, err)
	defer f2.Close()

	lock1, err := LockShared(f1)
	require.NoError(t, err)
	defer lock1.Close()

	lock2, err := LockShared(f2)
	require.NoError(t, err)
	defer lock2.Close()
}
