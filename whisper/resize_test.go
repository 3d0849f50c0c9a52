package whisper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResize_MigratesExistingData(t *testing.T) {
	oldArchives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 100}} // 6000s retention
	path := newTestFile(t, oldArchives, 0.5)

	now := uint64(6000)

	ts := uint64(3000)
	require.NoError(t, Update(path, 99, UpdateOptions{Timestamp: &ts, Now: &now}))

	newArchives := []ArchiveInfo{
		{SecondsPerPoint: 60, Points: 200}, // same precision, longer retention
	}

	require.NoError(t, Resize(path, newArchives, ResizeOptions{Now: &now}))

	header, err := Info(path)
	require.NoError(t, err)
	require.Len(t, header.Archives, 1)
	require.Equal(t, uint64(200), header.Archives[0].Points)

	until := now
	fetch, err := Fetch(path, 0, FetchOptions{Until: &until, Now: &now})
	require.NoError(t, err)
	require.Len(t, fetch.Values, 1)
	require.Equal(t, ts, fetch.Values[0].Timestamp)
	require.InDelta(t, 99.0, fetch.Values[0].Value, 1e-9)
}

func TestResize_PreservesAggregationAndXFilesFactorByDefault(t *testing.T) {
	oldArchives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 100}}
	path := newTestFile(t, oldArchives, 0.75)

	now := uint64(1000)

	newArchives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 50}}
	require.NoError(t, Resize(path, newArchives, ResizeOptions{Now: &now}))

	header, err := Info(path)
	require.NoError(t, err)
	require.InDelta(t, 0.75, header.XFilesFactor, 1e-9)
	require.Equal(t, Average, header.AggregationType)
}

func TestResize_OverridesAggregationAndXFilesFactor(t *testing.T) {
	oldArchives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 100}}
	path := newTestFile(t, oldArchives, 0.5)

	now := uint64(1000)

	newXFF := 0.9
	newMethod := Max

	newArchives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 50}}
	require.NoError(t, Resize(path, newArchives, ResizeOptions{
		Now:               &now,
		XFilesFactor:      &newXFF,
		AggregationMethod: &newMethod,
	}))

	header, err := Info(path)
	require.NoError(t, err)
	require.InDelta(t, 0.9, header.XFilesFactor, 1e-9)
	require.Equal(t, Max, header.AggregationType)
}

func TestResize_EvictsStaleCachedHeader(t *testing.T) {
	CacheHeaders = true

	t.Cleanup(func() { CacheHeaders = false })

	oldArchives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 100}}
	path := newTestFile(t, oldArchives, 0.5)

	_, err := Info(path) // populate the cache with the old layout
	require.NoError(t, err)

	now := uint64(1000)
	newArchives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 50}}
	require.NoError(t, Resize(path, newArchives, ResizeOptions{Now: &now}))

	header, err := Info(path)
	require.NoError(t, err)
	require.Equal(t, uint64(50), header.Archives[0].Points, "Info must not serve the stale pre-resize header")
}
