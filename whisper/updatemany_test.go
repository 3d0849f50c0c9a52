package whisper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateMany_WritesAllCoveredPoints(t *testing.T) {
	archives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 100}} // 6000s retention
	path := newTestFile(t, archives, 0.5)

	now := uint64(6000)

	points := []Point{
		{Timestamp: 60, Value: 1},
		{Timestamp: 120, Value: 2},
		{Timestamp: 180, Value: 3},
	}

	require.NoError(t, UpdateMany(path, points, UpdateManyOptions{Now: &now}))

	until := now
	fetch, err := Fetch(path, 0, FetchOptions{Until: &until, Now: &now})
	require.NoError(t, err)
	require.Len(t, fetch.Values, 3)
}

func TestUpdateMany_DropsUncoveredPoints(t *testing.T) {
	archives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 10}} // 600s retention
	path := newTestFile(t, archives, 0.5)

	now := uint64(10000)

	points := []Point{
		{Timestamp: 9980, Value: 1},  // covered
		{Timestamp: 1, Value: 2},     // far too old, dropped
		{Timestamp: 20000, Value: 3}, // in the future, dropped
	}

	require.NoError(t, UpdateMany(path, points, UpdateManyOptions{Now: &now}))

	until := now
	fetch, err := Fetch(path, 9000, FetchOptions{Until: &until, Now: &now})
	require.NoError(t, err)
	require.Len(t, fetch.Values, 1)
	require.InDelta(t, 1.0, fetch.Values[0].Value, 1e-9)
}

func TestUpdateMany_ZeroTimestampRejected(t *testing.T) {
	archives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 10}}
	path := newTestFile(t, archives, 0.5)

	now := uint64(1000)
	points := []Point{{Timestamp: 0, Value: 1}}

	err := UpdateMany(path, points, UpdateManyOptions{Now: &now})
	require.ErrorIs(t, err, ErrZeroTimestamp)
}

func TestUpdateMany_Empty(t *testing.T) {
	archives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 10}}
	path := newTestFile(t, archives, 0.5)

	require.NoError(t, UpdateMany(path, nil, UpdateManyOptions{}))
}

func TestUpdateMany_PropagatesAcrossArchives(t *testing.T) {
	archives := []ArchiveInfo{
		{SecondsPerPoint: 1, Points: 1000},
		{SecondsPerPoint: 10, Points: 1000},
	}
	path := newTestFile(t, archives, 0.5)

	now := uint64(10000)

	base := uint64(9000)

	points := make([]Point, 0, 10)
	for i := uint64(0); i < 10; i++ {
		points = append(points, Point{Timestamp: base + i, Value: float64(i)})
	}

	require.NoError(t, UpdateMany(path, points, UpdateManyOptions{Now: &now}))

	until := now
	// now-1001 is older than the fine archive's 1000s retention, so Fetch
	// reads the coarse (10s) archive.
	coarse, err := Fetch(path, now-1001, FetchOptions{Until: &until, Now: &now})
	require.NoError(t, err)

	found := false

	for _, p := range coarse.Values {
		if p.Timestamp == base {
			found = true
		}
	}

	require.True(t, found, "a fully covered coarse bucket must have propagated")
}
