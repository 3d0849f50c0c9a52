package whisper

import (
	"fmt"

	"github.com/calvinalkan/whisper/internal/wfs"
)

// UpdateOptions supplies the optional Timestamp/Now parameters of
// update(path, value, timestamp=None, now=None).
type UpdateOptions struct {
	// Timestamp is the point's time. Nil means "now".
	Timestamp *uint64

	// Now is the reference "current time" used to check retention
	// coverage. Nil means the real current time. Exposed mainly for
	// deterministic tests.
	Now *uint64
}

// Update writes a single point into path's finest covering archive and
// propagates the aggregated value into each coarser archive in turn.
func Update(path string, value float64, opts UpdateOptions) error {
	nowVal := now()
	if opts.Now != nil {
		nowVal = *opts.Now
	}

	timestamp := nowVal
	if opts.Timestamp != nil {
		timestamp = *opts.Timestamp
	}

	if timestamp == 0 {
		return ErrZeroTimestamp
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

	higher, lowerArchives, err := selectWriteArchive(header, timestamp, nowVal)
	if err != nil {
		return err
	}

	myInterval := timestamp - (timestamp % higher.SecondsPerPoint)

	if err := writePointAt(f, higher, Point{Timestamp: myInterval, Value: value}); err != nil {
		return fmt.Errorf("writing point to %s: %w", path, err)
	}

	if err := propagateChain(f, header, higher, lowerArchives, myInterval); err != nil {
		return fmt.Errorf("propagating in %s: %w", path, err)
	}

	if AutoFlush {
		if err := f.Sync(); err != nil {
			return fmt.Errorf("syncing %s: %w", path, err)
		}
	}

	return nil
}

// selectWriteArchive picks the finest archive covering timestamp given now,
// and returns the archives coarser than it, in ascending resolution order
// in ascending resolution order.
func selectWriteArchive(header Header, timestamp, nowVal uint64) (ArchiveInfo, []ArchiveInfo, error) {
	diffSigned := int64(nowVal) - int64(timestamp)
	if diffSigned < 0 || uint64(diffSigned) >= header.MaxRetention {
		return ArchiveInfo{}, nil, ErrTimestampNotCovered
	}

	diff := uint64(diffSigned)

	for i, a := range header.Archives {
		if a.Retention() >= diff {
			return a, header.Archives[i+1:], nil
		}
	}

	// Cannot happen when the MaxRetention invariant holds.
	return ArchiveInfo{}, nil, ErrTimestampNotCovered
}

// propagateChain runs [propagate] across the chain of progressively
// coarser archives, cascading from each successfully-propagated-into
// archive into the next (the standard Whisper downsampling cascade: "higher"
// becomes the archive just written to before considering the next, coarser
// one). It stops at the first archive Propagate declines to write.
func propagateChain(f wfs.File, header Header, higher ArchiveInfo, lowerArchives []ArchiveInfo, timestamp uint64) error {
	for _, lower := range lowerArchives {
		wrote, err := propagate(f, header.AggregationType, header.XFilesFactor, higher, lower, timestamp)
		if err != nil {
			return err
		}

		if !wrote {
			break
		}

		higher = lower
	}

	return nil
}

// propagate downsamples higher's points covering timestamp's lower-archive
// bucket into lower. It returns false (not an
// error) when there is nothing to propagate: no known points, or the known
// fraction is below xFilesFactor.
func propagate(f wfs.File, method AggregationMethod, xFilesFactor float64, higher, lower ArchiveInfo, timestamp uint64) (bool, error) {
	lowerIntervalStart := timestamp - (timestamp % lower.SecondsPerPoint)

	higherFirstOffset, err := pointOffset(f, higher, lowerIntervalStart)
	if err != nil {
		return false, err
	}

	higherPoints := lower.SecondsPerPoint / higher.SecondsPerPoint
	higherPointsSize := higherPoints * PointSize

	relativeFirstOffset := higherFirstOffset - higher.Offset
	relativeLastOffset := (relativeFirstOffset + higherPointsSize) % higher.Size()
	higherLastOffset := higher.Offset + relativeLastOffset

	// When relativeFirstOffset == relativeLastOffset the window spans the
	// whole archive (e.g. lower.SecondsPerPoint/higher.SecondsPerPoint ==
	// higher.Points); readRing's wrap branch reads exactly higher.Size()
	// bytes starting at higherFirstOffset in that case, which is what we
	// want.
	raw, err := readRing(f, higher, higherFirstOffset, higherLastOffset)
	if err != nil {
		return false, err
	}

	candidates := decodePoints(raw)

	// Propagate does NOT verify that candidate timestamps
	// land on the expected grid - any nonzero timestamp counts as "known".
	// Stale slots left by an earlier, differently-aligned write are
	// overwritten the next time an update reaches them.
	known := make([]float64, 0, len(candidates))

	for _, p := range candidates {
		if !p.empty() {
			known = append(known, p.Value)
		}
	}

	if len(known) == 0 {
		return false, nil
	}

	knownFraction := float64(len(known)) / float64(higherPoints)
	if knownFraction < xFilesFactor {
		return false, nil
	}

	aggregate, err := Aggregate(method, known)
	if err != nil {
		return false, err
	}

	if err := writePointAt(f, lower, Point{Timestamp: lowerIntervalStart, Value: aggregate}); err != nil {
		return false, err
	}

	return true, nil
}
