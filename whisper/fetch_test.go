package whisper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetch_InvalidInterval(t *testing.T) {
	archives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 10}}
	path := newTestFile(t, archives, 0.5)

	now := uint64(1000)
	until := uint64(10)

	_, err := Fetch(path, 500, FetchOptions{Until: &until, Now: &now})
	require.ErrorIs(t, err, ErrInvalidTimeInterval)
}

func TestFetch_WindowEntirelyBeyondRetention(t *testing.T) {
	archives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 10}} // 600s retention
	path := newTestFile(t, archives, 0.5)

	now := uint64(100000)
	from := uint64(1)
	until := uint64(2)

	fetch, err := Fetch(path, from, FetchOptions{Until: &until, Now: &now})
	require.NoError(t, err)
	require.Nil(t, fetch)
}

func TestFetch_WindowEntirelyInFuture(t *testing.T) {
	archives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 10}}
	path := newTestFile(t, archives, 0.5)

	now := uint64(1000)
	from := uint64(2000)
	until := uint64(3000)

	fetch, err := Fetch(path, from, FetchOptions{Until: &until, Now: &now})
	require.NoError(t, err)
	require.Nil(t, fetch)
}

func TestFetch_NeverWrittenArchiveIsAllGaps(t *testing.T) {
	archives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 10}}
	path := newTestFile(t, archives, 0.5)

	now := uint64(600)
	from := uint64(0)
	until := now

	fetch, err := Fetch(path, from, FetchOptions{Until: &until, Now: &now})
	require.NoError(t, err)
	require.NotNil(t, fetch)
	require.Empty(t, fetch.Values, "an archive with no writes yet must fetch as entirely sparse")
}

func TestFetch_SparseResultOmitsGaps(t *testing.T) {
	archives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 10}}
	path := newTestFile(t, archives, 0.5)

	now := uint64(600)

	ts1 := uint64(60)
	ts2 := uint64(240)

	require.NoError(t, Update(path, 1, UpdateOptions{Timestamp: &ts1, Now: &now}))
	require.NoError(t, Update(path, 2, UpdateOptions{Timestamp: &ts2, Now: &now}))

	from := uint64(0)
	until := now

	fetch, err := Fetch(path, from, FetchOptions{Until: &until, Now: &now})
	require.NoError(t, err)
	require.Len(t, fetch.Values, 2, "only the two written slots should appear, not the gaps between them")

	require.Equal(t, ts1, fetch.Values[0].Timestamp)
	require.Equal(t, ts2, fetch.Values[1].Timestamp)
}

func TestFetch_BucketEndConvention(t *testing.T) {
	archives := []ArchiveInfo{{SecondsPerPoint: 60, Points: 100}}
	path := newTestFile(t, archives, 0.5)

	now := uint64(6000)

	fetch, err := Fetch(path, 121, FetchOptions{Now: &now})
	require.NoError(t, err)
	require.NotNil(t, fetch)

	// 121 falls inside the [120,180) bucket; its interval label is the
	// bucket's end, 180, not its start.
	require.Equal(t, uint64(180), fetch.TimeInfo.FromInterval)
}
