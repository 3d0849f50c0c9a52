package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calvinalkan/whisper/whisper"
)

// parseRetentionDef parses one "precision:retention" archive definition,
// the format the reference whisper-create.py tool and Graphite's
// storage-schemas.conf both use (e.g. "1s:1d", "1m:7d", "60:1440"). Each
// side is either a bare integer number of seconds or an integer followed
// by one of s/m/h/d/w/y.
func parseRetentionDef(def string) (whisper.ArchiveInfo, error) {
	precisionStr, retentionStr, ok := strings.Cut(def, ":")
	if !ok {
		return whisper.ArchiveInfo{}, fmt.Errorf("retention %q: expected PRECISION:RETENTION", def)
	}

	precision, err := parseDuration(precisionStr)
	if err != nil {
		return whisper.ArchiveInfo{}, fmt.Errorf("retention %q: precision: %w", def, err)
	}

	retention, err := parseDuration(retentionStr)
	if err != nil {
		return whisper.ArchiveInfo{}, fmt.Errorf("retention %q: retention: %w", def, err)
	}

	if precision == 0 {
		return whisper.ArchiveInfo{}, fmt.Errorf("retention %q: precision must be > 0", def)
	}

	if retention%precision != 0 {
		return whisper.ArchiveInfo{}, fmt.Errorf("retention %q: %d does not evenly divide into %d seconds of retention", def, precision, retention)
	}

	return whisper.ArchiveInfo{
		SecondsPerPoint: precision,
		Points:          retention / precision,
	}, nil
}

// parseRetentionDefs parses a comma-separated list of retention
// definitions, e.g. "1s:1d,1m:7d,10m:1y".
func parseRetentionDefs(spec string) ([]whisper.ArchiveInfo, error) {
	parts := strings.Split(spec, ",")
	archives := make([]whisper.ArchiveInfo, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		archive, err := parseRetentionDef(part)
		if err != nil {
			return nil, err
		}

		archives = append(archives, archive)
	}

	if len(archives) == 0 {
		return nil, fmt.Errorf("no archives given")
	}

	return archives, nil
}

var durationUnits = map[byte]uint64{
	's': 1,
	'm': 60,
	'h': 60 * 60,
	'd': 60 * 60 * 24,
	'w': 60 * 60 * 24 * 7,
	'y': 60 * 60 * 24 * 365,
}

// parseDuration parses a bare integer (seconds) or an integer followed by
// one of s/m/h/d/w/y.
func parseDuration(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}

	last := s[len(s)-1]
	if unit, ok := durationUnits[last]; ok {
		n, err := strconv.ParseUint(s[:len(s)-1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing %q: %w", s, err)
		}

		return n * unit, nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}

	return n, nil
}
