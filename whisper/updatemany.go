package whisper

import (
	"fmt"

	"github.com/calvinalkan/whisper/internal/wfs"
)

// UpdateManyOptions supplies the optional Now parameter for [UpdateMany].
type UpdateManyOptions struct {
	// Now is the reference "current time" used to check retention
	// coverage for every point. Nil means the real current time.
	Now *uint64
}

// UpdateMany writes a batch of points in one file open/lock/close cycle.
//
// UpdateMany groups input points by the finest archive that covers each
// one, writes each group, then runs Propagate once per (archive,
// aligned-interval) pair touched - nothing finer than that. Points with no
// covering archive (too old or in the future, the same condition Update
// rejects with ErrTimestampNotCovered) are silently dropped rather than
// aborting the whole batch, matching the reference tool family's tolerance
// for partially stale bulk loads.
func UpdateMany(path string, points []Point, opts UpdateManyOptions) error {
	if len(points) == 0 {
		return nil
	}

	nowVal := now()
	if opts.Now != nil {
		nowVal = *opts.Now
	}

	for _, p := range points {
		if p.Timestamp == 0 {
			return ErrZeroTimestamp
		}
	}

	fsys := wfs.NewReal()

	f, err := fsys.OpenForWrite(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	lock, err := lockExclusive(path, f)
	if err != nil {
		return err
	}
	defer lock.Close()

	header, err := readHeader(f)
	if err != nil {
		return corrupt(path, "header", err)
	}

	// Group points by the finest archive that covers them.
	type touched struct {
		archiveIdx int
		interval   uint64
	}

	groups := make(map[int][]Point, len(header.Archives))

	var order []touched

	seen := make(map[touched]bool)

	for _, p := range points {
		diffSigned := int64(nowVal) - int64(p.Timestamp)
		if diffSigned < 0 || uint64(diffSigned) >= header.MaxRetention {
			continue // not covered by any archive; drop.
		}

		diff := uint64(diffSigned)

		idx := -1

		for i, a := range header.Archives {
			if a.Retention() >= diff {
				idx = i
				break
			}
		}

		if idx < 0 {
			continue
		}

		archive := header.Archives[idx]
		interval := p.Timestamp - (p.Timestamp % archive.SecondsPerPoint)

		groups[idx] = append(groups[idx], Point{Timestamp: interval, Value: p.Value})

		key := touched{archiveIdx: idx, interval: interval}
		if !seen[key] {
			seen[key] = true

			order = append(order, key)
		}
	}

	for idx, groupPoints := range groups {
		archive := header.Archives[idx]

		for _, p := range groupPoints {
			if err := writePointAt(f, archive, p); err != nil {
				return fmt.Errorf("writing point to %s: %w", path, err)
			}
		}
	}

	for _, t := range order {
		archive := header.Archives[t.archiveIdx]
		lowerArchives := header.Archives[t.archiveIdx+1:]

		if err := propagateChain(f, header, archive, lowerArchives, t.interval); err != nil {
			return fmt.Errorf("propagating in %s: %w", path, err)
		}
	}

	if AutoFlush {
		if err := f.Sync(); err != nil {
			return fmt.Errorf("syncing %s: %w", path, err)
		}
	}

	return nil
}
