package whisper

import (
	"fmt"

	"github.com/calvinalkan/whisper/internal/wfs"
)

// Info reads and returns path's header.
// Opens read-only. With [Locking] disabled (the default) this takes no
// lock and always runs concurrently with other readers and writers; with
// it enabled, takes a shared advisory lock that blocks behind a
// concurrent writer.
func Info(path string) (Header, error) {
	return cachedHeader(path, func() (Header, error) {
		return readHeaderFromPath(wfs.NewReal(), path)
	})
}

// readHeaderFromPath opens path read-only, takes a shared lock if
// [Locking] is enabled, and decodes the header, wrapping any failure as
// [ErrCorruptWhisperFile].
func readHeaderFromPath(fsys wfs.FS, path string) (Header, error) {
	f, err := fsys.OpenForRead(path)
	if err != nil {
		return Header{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	lock, err := lockShared(path, f)
	if err != nil {
		return Header{}, err
	}
	defer lock.Close()

	h, err := readHeader(f)
	if err != nil {
		return Header{}, corrupt(path, "header", err)
	}

	return h, nil
}
