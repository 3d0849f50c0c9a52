package whisper

import (
	"fmt"
	"io"

	"github.com/calvinalkan/whisper/internal/wfs"
)

// readHeader decodes the metadata block and archive index from the start of
// f. It does not restore the caller's file position - every
// caller in this package reads the header as the first thing it does with a
// freshly opened handle, so there is nothing to restore.
func readHeader(f wfs.File) (Header, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Header{}, fmt.Errorf("seeking to header: %w", err)
	}

	metaBuf := make([]byte, MetadataSize)
	if _, err := io.ReadFull(f, metaBuf); err != nil {
		return Header{}, fmt.Errorf("reading metadata: %w", err)
	}

	aggregationType := AggregationMethod(readUint64(metaBuf[0:8]))
	maxRetention := readUint64(metaBuf[8:16])
	xFilesFactor := readFloat64(metaBuf[16:24])
	archiveCount := readUint64(metaBuf[24:32])
	if archiveCount > maxArchiveCount {
		return Header{}, fmt.Errorf("%w: archive count %d exceeds %d", ErrCorruptWhisperFile, archiveCount, maxArchiveCount)
	}

	archives := make([]ArchiveInfo, archiveCount)

	archiveBuf := make([]byte, ArchiveInfoSize)

	for i := range archives {
		if _, err := io.ReadFull(f, archiveBuf); err != nil {
			return Header{}, fmt.Errorf("reading archive index entry %d: %w", i, err)
		}

		archives[i] = ArchiveInfo{
			Offset:          readUint64(archiveBuf[0:8]),
			SecondsPerPoint: readUint64(archiveBuf[8:16]),
			Points:          readUint64(archiveBuf[16:24]),
		}
	}

	return Header{
		AggregationType: aggregationType,
		MaxRetention:    maxRetention,
		XFilesFactor:    xFilesFactor,
		Archives:        archives,
	}, nil
}

// writeHeader encodes the metadata block and archive index at the start of
// f. Used only by [Create].
func writeHeader(f wfs.File, h Header) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to header: %w", err)
	}

	metaBuf := make([]byte, MetadataSize)
	putUint64(metaBuf[0:8], uint64(h.AggregationType))
	putUint64(metaBuf[8:16], h.MaxRetention)
	putFloat64(metaBuf[16:24], h.XFilesFactor)
	putUint64(metaBuf[24:32], uint64(len(h.Archives)))

	if _, err := f.Write(metaBuf); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}

	archiveBuf := make([]byte, ArchiveInfoSize)

	for _, a := range h.Archives {
		putUint64(archiveBuf[0:8], a.Offset)
		putUint64(archiveBuf[8:16], a.SecondsPerPoint)
		putUint64(archiveBuf[16:24], a.Points)

		if _, err := f.Write(archiveBuf); err != nil {
			return fmt.Errorf("writing archive index entry: %w", err)
		}
	}

	return nil
}

// corrupt wraps err as an [ErrCorruptWhisperFile] naming path and field.
func corrupt(path, field string, err error) error {
	return fmt.Errorf("%w: %s: %s: %w", ErrCorruptWhisperFile, path, field, err)
}
