package whisper

import (
	"fmt"
	"sort"
)

// ValidateArchiveList checks an archive list for well-formedness and sorts
// it ascending by SecondsPerPoint in place. It is called
// automatically by [Create], and is exported so callers can validate a
// layout before attempting to create a file with it.
func ValidateArchiveList(archives []ArchiveInfo) error {
	if len(archives) == 0 {
		return fmt.Errorf("%w: archive list cannot be empty", ErrInvalidConfiguration)
	}

	sort.Slice(archives, func(i, j int) bool {
		return archives[i].SecondsPerPoint < archives[j].SecondsPerPoint
	})

	for i := 0; i < len(archives)-1; i++ {
		lo, hi := archives[i], archives[i+1]

		if !(hi.SecondsPerPoint > lo.SecondsPerPoint) {
			return fmt.Errorf("%w: archives %d and %d: a duplicate or out-of-order precision (%d, then %d seconds per point)",
				ErrInvalidConfiguration, i, i+1, lo.SecondsPerPoint, hi.SecondsPerPoint)
		}

		if hi.SecondsPerPoint%lo.SecondsPerPoint != 0 {
			return fmt.Errorf("%w: archives %d and %d: %d does not evenly divide %d seconds per point",
				ErrInvalidConfiguration, i, i+1, lo.SecondsPerPoint, hi.SecondsPerPoint)
		}

		if !(hi.Retention() > lo.Retention()) {
			return fmt.Errorf("%w: archives %d and %d: archive %d must cover a larger time span than archive %d",
				ErrInvalidConfiguration, i, i+1, i+1, i)
		}

		needed := hi.SecondsPerPoint / lo.SecondsPerPoint
		if lo.Points < needed {
			return fmt.Errorf("%w: archive %d needs at least %d points to consolidate into archive %d, has %d",
				ErrInvalidConfiguration, i, needed, i+1, lo.Points)
		}
	}

	return nil
}
