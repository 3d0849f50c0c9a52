package whisper

import "errors"

// Sentinel errors returned by whisper operations.
//
// Callers should use [errors.Is] to check error kinds rather than concrete
// types.
var (
	// ErrInvalidConfiguration is raised by [ValidateArchiveList] and
	// [Create] when an archive list violates the well-formedness rules for
	// archive lists, or when [Create] targets a path that already exists.
	ErrInvalidConfiguration = errors.New("whisper: invalid configuration")

	// ErrFileExists is raised by [Create] when the target path already
	// exists. It wraps/accompanies [ErrInvalidConfiguration] (errors.Is
	// matches both).
	ErrFileExists = errors.New("whisper: file already exists")

	// ErrInvalidTimeInterval is raised by [Fetch] when fromTime > untilTime
	// after defaults are applied.
	ErrInvalidTimeInterval = errors.New("whisper: invalid time interval")

	// ErrTimestampNotCovered is raised by [Update] when a point's age is
	// negative or at least the file's maximum retention. [UpdateMany] does
	// not raise it; it drops such points from the batch instead.
	ErrTimestampNotCovered = errors.New("whisper: timestamp not covered by any archive")

	// ErrInvalidAggregationMethod is raised by [Aggregate] for an unknown
	// enum discriminant.
	ErrInvalidAggregationMethod = errors.New("whisper: invalid aggregation method")

	// ErrCorruptWhisperFile is raised by the header codec and [Fetch] on a
	// short read, a decode failure, or an internally inconsistent header.
	ErrCorruptWhisperFile = errors.New("whisper: corrupt file")

	// ErrZeroTimestamp is raised when a caller attempts to write a point
	// whose timestamp is exactly 0 - that value is the on-disk sentinel for
	// an "unwritten slot" and is unrepresentable as data.
	ErrZeroTimestamp = errors.New("whisper: timestamp 0 is reserved for empty slots")
)
