package whisper

import (
	"fmt"

	"github.com/calvinalkan/whisper/internal/wfs"
)

// TimeInfo describes the aligned time window a fetch covers.
// FromInterval and UntilInterval mark bucket *ends*: the "+step" applied in
// [Fetch] is intentional - do not "fix" it away.
type TimeInfo struct {
	FromInterval  uint64
	UntilInterval uint64
	Step          uint64
}

// ArchiveFetch is the result of a successful [Fetch]. Values is sparse: it
// only contains occupied slots. Callers reconstruct gaps using TimeInfo.
type ArchiveFetch struct {
	TimeInfo TimeInfo
	Values   []Point
}

// FetchOptions supplies the optional Until/Now parameters of a fetch
// request: fetch(path, from, until=None, now=None).
type FetchOptions struct {
	// Until is the end of the requested window. Nil means "now".
	Until *uint64

	// Now is the reference "current time". Nil means the real current
	// time. Exposed mainly for deterministic tests.
	Now *uint64
}

// Fetch reads the time window [from, until) from path's finest archive that
// covers it, synthesizing gaps as described by the returned [TimeInfo]. It
// returns (nil, nil) - not an error - when the requested window
// falls entirely outside the file's retention.
func Fetch(path string, from uint64, opts FetchOptions) (*ArchiveFetch, error) {
	nowVal := now()
	if opts.Now != nil {
		nowVal = *opts.Now
	}

	until := nowVal
	if opts.Until != nil {
		until = *opts.Until
	}

	if from > until {
		return nil, ErrInvalidTimeInterval
	}

	header, err := cachedHeader(path, func() (Header, error) {
		return readHeaderFromPath(wfs.NewReal(), path)
	})
	if err != nil {
		return nil, err
	}

	var oldestTime uint64
	if header.MaxRetention < nowVal {
		oldestTime = nowVal - header.MaxRetention
	}

	if from > nowVal {
		return nil, nil //nolint:nilnil
	}

	if until < oldestTime {
		return nil, nil //nolint:nilnil
	}

	if from < oldestTime {
		from = oldestTime
	}

	if until > nowVal {
		until = nowVal
	}

	archive, ok := selectArchive(header.Archives, nowVal-from)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	step := archive.SecondsPerPoint
	fromInterval := alignUp(from, step)
	untilInterval := alignUp(until, step)

	timeInfo := TimeInfo{FromInterval: fromInterval, UntilInterval: untilInterval, Step: step}

	n := (untilInterval - fromInterval) / step

	candidates, err := readCandidatePoints(path, archive, fromInterval, untilInterval, n)
	if err != nil {
		return nil, err
	}

	values := make([]Point, 0, len(candidates))

	for _, p := range candidates {
		if !p.empty() {
			values = append(values, p)
		}
	}

	return &ArchiveFetch{TimeInfo: timeInfo, Values: values}, nil
}

// alignUp aligns t to step and adds one step, marking the end of the bucket
// t falls in - the interval label marks the bucket's end, which is
// load-bearing: do not simplify it to the bucket's start.
func alignUp(t, step uint64) uint64 {
	return t - (t % step) + step
}

// selectArchive returns the finest archive whose retention covers diff
// seconds of history. Archives must already
// be sorted ascending by SecondsPerPoint.
func selectArchive(archives []ArchiveInfo, diff uint64) (ArchiveInfo, bool) {
	for _, a := range archives {
		if a.Retention() >= diff {
			return a, true
		}
	}

	return ArchiveInfo{}, false
}

// readCandidatePoints opens path for reading and returns the n points
// spanning [fromInterval, untilInterval) in archive: an all-empty slice if
// the archive has never been written, otherwise the decoded ring slice
// the archive has never been written, otherwise the decoded ring slice.
func readCandidatePoints(path string, archive ArchiveInfo, fromInterval, untilInterval, n uint64) ([]Point, error) {
	fsys := wfs.NewReal()

	f, err := fsys.OpenForRead(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	lock, err := lockShared(path, f)
	if err != nil {
		return nil, err
	}
	defer lock.Close()

	base, err := readSlotZero(f, archive)
	if err != nil {
		return nil, corrupt(path, "archive base point", err)
	}

	if base.empty() {
		return make([]Point, n), nil
	}

	if n == 0 {
		return nil, nil
	}

	fromOffset, err := pointOffset(f, archive, fromInterval)
	if err != nil {
		return nil, corrupt(path, "from offset", err)
	}

	untilOffset, err := pointOffset(f, archive, untilInterval)
	if err != nil {
		return nil, corrupt(path, "until offset", err)
	}

	raw, err := readRing(f, archive, fromOffset, untilOffset)
	if err != nil {
		return nil, corrupt(path, "archive data", err)
	}

	return decodePoints(raw), nil
}
