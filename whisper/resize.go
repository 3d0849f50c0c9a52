package whisper

import (
	"fmt"
	"os"

	"github.com/calvinalkan/whisper/internal/wfs"
)

// ResizeOptions configures [Resize]. Nil fields fall back to the source
// file's existing header values.
type ResizeOptions struct {
	// AggregationMethod overrides the aggregation method carried into the
	// resized file. Nil keeps the source file's method.
	AggregationMethod *AggregationMethod

	// XFilesFactor overrides the propagation threshold carried into the
	// resized file. Nil keeps the source file's xFilesFactor.
	XFilesFactor *float64

	// Now is the reference "current time" used to decide how much of each
	// archive's history still fits the source file's own retention. Nil
	// means the real current time. Exposed mainly for deterministic tests.
	Now *uint64

	// Perm is the file mode used for the resized file. Default 0644.
	Perm os.FileMode
}

// Resize re-lays out path onto newArchives, migrating existing data forward
// with the same [Fetch]/[UpdateMany] primitives the library exposes
// everywhere else - there is no separate on-disk migration format. This is
// the standard companion operation to [Create] in the reference tool
// family: a whisper file's archive list is otherwise immutable once created.
//
// Migration walks the source archives from coarsest to finest, fetching
// each one's full retention window and writing it into a freshly created
// replacement file. Finer archives are migrated last so that, where a
// timestamp could be explained by data in more than one source archive,
// the higher-resolution value overwrites the coarser one - coarser values
// only survive on intervals the finer archives left empty. The replacement file is swapped
// into place with a single rename, so concurrent readers either see the
// old layout in full or the new one; they never observe a partial rewrite.
func Resize(path string, newArchives []ArchiveInfo, opts ResizeOptions) error {
	if opts.Perm == 0 {
		opts.Perm = 0o644
	}

	nowVal := now()
	if opts.Now != nil {
		nowVal = *opts.Now
	}

	fsys := wfs.NewReal()

	oldHeader, err := readHeaderFromPath(fsys, path)
	if err != nil {
		return err
	}

	aggregationMethod := oldHeader.AggregationType
	if opts.AggregationMethod != nil {
		aggregationMethod = *opts.AggregationMethod
	}

	xFilesFactor := oldHeader.XFilesFactor
	if opts.XFilesFactor != nil {
		xFilesFactor = *opts.XFilesFactor
	}

	tmpPath := path + ".resize.tmp"

	_ = fsys.Remove(tmpPath) // best effort: clear a leftover from a prior failed resize.

	createErr := create(fsys, tmpPath, newArchives, CreateOptions{
		XFilesFactor:      xFilesFactor,
		AggregationMethod: aggregationMethod,
		Perm:              opts.Perm,
	})
	if createErr != nil {
		return fmt.Errorf("laying out resized file for %s: %w", path, createErr)
	}

	if err := migrateArchives(path, tmpPath, oldHeader.Archives, nowVal); err != nil {
		_ = fsys.Remove(tmpPath)

		return fmt.Errorf("migrating data into resized %s: %w", path, err)
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)

		return fmt.Errorf("swapping resized file into place for %s: %w", path, err)
	}

	EvictHeaderCache(path)

	return nil
}

// migrateArchives copies every point still live in each of oldArchives into
// dstPath, coarsest archive first, so that each finer archive's points
// overwrite the coarser values written before them.
func migrateArchives(srcPath, dstPath string, oldArchives []ArchiveInfo, nowVal uint64) error {
	for i := len(oldArchives) - 1; i >= 0; i-- {
		archive := oldArchives[i]

		var from uint64
		if archive.Retention() < nowVal {
			from = nowVal - archive.Retention()
		}

		fetched, err := Fetch(srcPath, from, FetchOptions{Until: &nowVal, Now: &nowVal})
		if err != nil {
			return fmt.Errorf("reading archive at %d seconds per point: %w", archive.SecondsPerPoint, err)
		}

		if fetched == nil || len(fetched.Values) == 0 {
			continue
		}

		if err := UpdateMany(dstPath, fetched.Values, UpdateManyOptions{Now: &nowVal}); err != nil {
			return fmt.Errorf("writing archive at %d seconds per point: %w", archive.SecondsPerPoint, err)
		}
	}

	return nil
}
