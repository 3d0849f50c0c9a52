package whisper

import (
	"fmt"
	"io"

	"github.com/calvinalkan/whisper/internal/wfs"
)

// mod is Euclidean modulo: 0 <= mod(a,b) < b for positive b, even when a is
// negative. This is load-bearing because byteDistance can be negative when
// writing a point earlier than an archive's base interval; Go's native %
// can return a negative result, which a plain (a%b) would turn into a
// negative, out-of-range slot offset.
func mod(a, b int64) int64 {
	return ((a % b) + b) % b
}

// pointOffset computes the byte offset of timestamp's slot within archive.
// timestamp must already be aligned to archive.SecondsPerPoint.
func pointOffset(f wfs.File, archive ArchiveInfo, timestamp uint64) (uint64, error) {
	base, err := readSlotZero(f, archive)
	if err != nil {
		return 0, err
	}

	if base.empty() {
		return archive.Offset, nil
	}

	timeDistance := int64(timestamp) - int64(base.Timestamp)
	pointDistance := timeDistance / int64(archive.SecondsPerPoint)
	byteDistance := pointDistance * PointSize

	return archive.Offset + uint64(mod(byteDistance, int64(archive.Size()))), nil
}

// readSlotZero reads the first point of archive, which anchors all modular
// addressing within it: the "base interval".
func readSlotZero(f wfs.File, archive ArchiveInfo) (Point, error) {
	if _, err := f.Seek(int64(archive.Offset), io.SeekStart); err != nil {
		return Point{}, fmt.Errorf("seeking to archive base: %w", err)
	}

	buf := make([]byte, PointSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		return Point{}, fmt.Errorf("reading archive base point: %w", err)
	}

	return decodePoint(buf), nil
}

// readRing reads the ring slice [from, until) of archive as raw bytes,
// transparently stitching together the two pieces of a wrapped read: a
// request spanning the archive's wraparound point produces two contiguous
// byte ranges on disk that must be combined into one logical buffer.
func readRing(f wfs.File, archive ArchiveInfo, from, until uint64) ([]byte, error) {
	if from < until {
		n := until - from
		buf := make([]byte, n)

		if _, err := f.Seek(int64(from), io.SeekStart); err != nil {
			return nil, fmt.Errorf("seeking into archive: %w", err)
		}

		if _, err := io.ReadFull(f, buf); err != nil {
			return nil, fmt.Errorf("reading archive slice: %w", err)
		}

		return buf, nil
	}

	// Wrap: [from .. archiveEnd) followed by [archiveStart .. until).
	tailLen := archive.End() - from
	headLen := until - archive.Offset
	buf := make([]byte, tailLen+headLen)

	if _, err := f.Seek(int64(from), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking into archive: %w", err)
	}

	if _, err := io.ReadFull(f, buf[:tailLen]); err != nil {
		return nil, fmt.Errorf("reading archive tail: %w", err)
	}

	if headLen > 0 {
		if _, err := f.Seek(int64(archive.Offset), io.SeekStart); err != nil {
			return nil, fmt.Errorf("seeking to archive start: %w", err)
		}

		if _, err := io.ReadFull(f, buf[tailLen:]); err != nil {
			return nil, fmt.Errorf("reading archive head: %w", err)
		}
	}

	return buf, nil
}

// writePointAt writes a single point at the slot for timestamp within
// archive. A single point never
// spans the ring boundary since PointSize always divides archive.Size().
func writePointAt(f wfs.File, archive ArchiveInfo, p Point) error {
	offset, err := pointOffset(f, archive, p.Timestamp)
	if err != nil {
		return err
	}

	buf := make([]byte, PointSize)
	encodePoint(buf, p)

	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		return fmt.Errorf("seeking to point slot: %w", err)
	}

	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("writing point: %w", err)
	}

	return nil
}
