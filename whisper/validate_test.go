package whisper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateArchiveList_SortsAscending(t *testing.T) {
	archives := []ArchiveInfo{
		{SecondsPerPoint: 60, Points: 1440},
		{SecondsPerPoint: 1, Points: 86400},
	}

	require.NoError(t, ValidateArchiveList(archives))
	require.Equal(t, uint64(1), archives[0].SecondsPerPoint)
	require.Equal(t, uint64(60), archives[1].SecondsPerPoint)
}

func TestValidateArchiveList_Empty(t *testing.T) {
	err := ValidateArchiveList(nil)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestValidateArchiveList_DuplicatePrecision(t *testing.T) {
	archives := []ArchiveInfo{
		{SecondsPerPoint: 60, Points: 1440},
		{SecondsPerPoint: 60, Points: 1440},
	}

	err := ValidateArchiveList(archives)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestValidateArchiveList_NonEvenDivision(t *testing.T) {
	archives := []ArchiveInfo{
		{SecondsPerPoint: 60, Points: 1440},
		{SecondsPerPoint: 90, Points: 1000},
	}

	err := ValidateArchiveList(archives)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestValidateArchiveList_RetentionMustIncrease(t *testing.T) {
	archives := []ArchiveInfo{
		{SecondsPerPoint: 60, Points: 1440}, // 86400s
		{SecondsPerPoint: 120, Points: 720}, // 86400s, not larger
	}

	err := ValidateArchiveList(archives)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestValidateArchiveList_InsufficientPointsToConsolidate(t *testing.T) {
	archives := []ArchiveInfo{
		{SecondsPerPoint: 60, Points: 5}, // needs >= 10 points to consolidate into 600s archive
		{SecondsPerPoint: 600, Points: 1000},
	}

	err := ValidateArchiveList(archives)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	require.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestValidateArchiveList_Valid(t *testing.T) {
	archives := []ArchiveInfo{
		{SecondsPerPoint: 1, Points: 86400},
		{SecondsPerPoint: 60, Points: 10080},
		{SecondsPerPoint: 3600, Points: 8760},
	}

	require.NoError(t, ValidateArchiveList(archives))
}
