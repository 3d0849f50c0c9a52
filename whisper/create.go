package whisper

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/calvinalkan/whisper/internal/wfs"
)

const zeroFillChunkSize = 16 * 1024

// CreateOptions configures [Create]. Use [DefaultCreateOptions] to get
// sensible defaults and override only what you need.
type CreateOptions struct {
	// XFilesFactor is the minimum fraction of known finer-archive slots
	// required to emit a coarser point, in [0,1]. Default 0.5.
	XFilesFactor float64

	// AggregationMethod is the downsampling function propagation uses.
	// Default [Average].
	AggregationMethod AggregationMethod

	// Sparse, when true, creates a sparse file (seeks to the last byte and
	// writes a single zero byte) instead of writing zeros for the entire
	// data region. Whether this actually produces holes depends on
	// filesystem support.
	Sparse bool

	// Perm is the file mode used for the new file. Default 0644.
	Perm os.FileMode
}

// DefaultCreateOptions returns the standard defaults: XFilesFactor 0.5,
// AggregationMethod Average, Sparse false.
func DefaultCreateOptions() CreateOptions {
	return CreateOptions{
		XFilesFactor:      0.5,
		AggregationMethod: Average,
		Perm:              0o644,
	}
}

// Create lays out a new whisper file at path. archives is
// validated and sorted in place by [ValidateArchiveList]. Create fails with
// [ErrFileExists] (wrapping [ErrInvalidConfiguration]) if path already
// exists.
func Create(path string, archives []ArchiveInfo, opts CreateOptions) error {
	return create(wfs.NewReal(), path, archives, opts)
}

func create(fsys wfs.FS, path string, archives []ArchiveInfo, opts CreateOptions) error {
	if opts.Perm == 0 {
		opts.Perm = 0o644
	}

	if err := ValidateArchiveList(archives); err != nil {
		return err
	}

	if opts.XFilesFactor < 0 || opts.XFilesFactor > 1 {
		return fmt.Errorf("%w: xFilesFactor must be in [0,1], got %v", ErrInvalidConfiguration, opts.XFilesFactor)
	}

	if !opts.AggregationMethod.valid() {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, ErrInvalidAggregationMethod)
	}

	f, err := fsys.OpenForCreate(path, opts.Perm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfiguration, path, ErrFileExists)
		}

		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	lock, err := lockExclusive(path, f)
	if err != nil {
		return err
	}
	defer lock.Close()

	var maxRetention uint64

	offset := uint64(MetadataSize + ArchiveInfoSize*len(archives))

	for i := range archives {
		archives[i].Offset = offset
		offset += archives[i].Size()

		if r := archives[i].Retention(); r > maxRetention {
			maxRetention = r
		}
	}

	header := Header{
		AggregationType: opts.AggregationMethod,
		MaxRetention:    maxRetention,
		XFilesFactor:    opts.XFilesFactor,
		Archives:        archives,
	}

	if err := writeHeader(f, header); err != nil {
		_ = f.Close()
		_ = fsys.Remove(path)

		return fmt.Errorf("writing header for %s: %w", path, err)
	}

	totalDataBytes := offset - uint64(MetadataSize+ArchiveInfoSize*len(archives))

	if opts.Sparse {
		err = sparseFill(f, totalDataBytes)
	} else {
		err = zeroFill(f, totalDataBytes)
	}

	if err != nil {
		_ = f.Close()
		_ = fsys.Remove(path)

		return fmt.Errorf("allocating data region for %s: %w", path, err)
	}

	if AutoFlush {
		if err := f.Sync(); err != nil {
			return fmt.Errorf("syncing %s: %w", path, err)
		}
	}

	return nil
}

// zeroFill writes n zero bytes to f's current position, 16KiB at a time
// 16KiB at a time.
func zeroFill(f wfs.File, n uint64) error {
	buf := make([]byte, zeroFillChunkSize)

	for n > 0 {
		chunk := buf
		if n < uint64(len(chunk)) {
			chunk = buf[:n]
		}

		written, err := f.Write(chunk)
		if err != nil {
			return err
		}

		n -= uint64(written)
	}

	return nil
}

// sparseFill seeks to the last byte of the data region and writes a single
// zero byte, relying on the filesystem to leave a hole for the rest. If
// n == 0 there is nothing to do.
func sparseFill(f wfs.File, n uint64) error {
	if n == 0 {
		return nil
	}

	if _, err := f.Seek(int64(n)-1, io.SeekCurrent); err != nil {
		return err
	}

	_, err := f.Write([]byte{0})

	return err
}
