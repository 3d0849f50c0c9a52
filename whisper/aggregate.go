package whisper

import "fmt"

// Aggregate reduces a non-empty sequence of values using method.
func Aggregate(method AggregationMethod, values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: no values to aggregate", ErrInvalidAggregationMethod)
	}

	switch method {
	case Average:
		var sum float64
		for _, v := range values {
			sum += v
		}

		return sum / float64(len(values)), nil

	case Sum:
		var sum float64
		for _, v := range values {
			sum += v
		}

		return sum, nil

	case Last:
		return values[len(values)-1], nil

	case Max:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}

		return max, nil

	case Min:
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}

		return min, nil

	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidAggregationMethod, method)
	}
}
