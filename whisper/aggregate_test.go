package whisper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name   string
		method AggregationMethod
		values []float64
		want   float64
	}{
		{"average", Average, []float64{1, 2, 3, 4}, 2.5},
		{"sum", Sum, []float64{1, 2, 3, 4}, 10},
		{"last", Last, []float64{1, 2, 3, 4}, 4},
		{"max", Max, []float64{3, 1, 4, 1, 5}, 5},
		{"min", Min, []float64{3, 1, 4, 1, 5}, 1},
		{"single value", Average, []float64{42}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Aggregate(tt.method, tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAggregate_NoValues(t *testing.T) {
	_, err := Aggregate(Average, nil)
	require.ErrorIs(t, err, ErrInvalidAggregationMethod)
}

func TestAggregate_UnknownMethod(t *testing.T) {
	_, err := Aggregate(AggregationMethod(99), []float64{1})
	require.ErrorIs(t, err, ErrInvalidAggregationMethod)
}

func TestAggregationMethod_String(t *testing.T) {
	assert.Equal(t, "average", Average.String())
	assert.Equal(t, "sum", Sum.String())
	assert.Equal(t, "unknown", AggregationMethod(0).String())
}
