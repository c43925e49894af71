package audio

import (
	"fmt"

	"github.com/radio-control/sdrhal/internal/device"
)

// CoerceChannelMapping normalizes a channel-mapping specification into a gain
// matrix: one output row per produced signal component (two rows for IQ, one
// for a real signal), with one gain per hardware input channel.
//
// Accepted forms:
//
//	nil            default, same as "IQ"
//	"IQ"           [[1,0],[0,1]]
//	"QI"           [[0,1],[1,0]]
//	n (integer)    one row of n gains selecting hardware channel n
//	matrix         1 or 2 rows of numeric gains, equal length, ≥ 1 column
//
// Anything else is a configuration error.
func CoerceChannelMapping(spec any) ([][]float64, error) {
	switch v := spec.(type) {
	case nil:
		return CoerceChannelMapping("IQ")
	case string:
		switch v {
		case "IQ":
			return [][]float64{{1, 0}, {0, 1}}, nil
		case "QI":
			return [][]float64{{0, 1}, {1, 0}}, nil
		default:
			return nil, fmt.Errorf("%w: channel_mapping must be a channel number, \"IQ\", \"QI\", or a gain matrix, got %q", device.ErrConfiguration, v)
		}
	case int:
		return channelSelector(v)
	case int64:
		return channelSelector(int(v))
	case [][]float64:
		return coerceMatrix(v)
	case []any:
		matrix := make([][]float64, 0, len(v))
		for i, rawRow := range v {
			row, ok := rawRow.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: channel_mapping[%d] must be a list of input channel gains", device.ErrConfiguration, i)
			}
			gains := make([]float64, 0, len(row))
			for j, rawGain := range row {
				gain, ok := toFloat(rawGain)
				if !ok {
					return nil, fmt.Errorf("%w: channel_mapping[%d][%d] must be a numeric gain value", device.ErrConfiguration, i, j)
				}
				gains = append(gains, gain)
			}
			matrix = append(matrix, gains)
		}
		return coerceMatrix(matrix)
	default:
		return nil, fmt.Errorf("%w: channel_mapping must be a channel number, \"IQ\", \"QI\", or a gain matrix, got %T", device.ErrConfiguration, spec)
	}
}

// channelSelector builds the single-row matrix picking hardware channel n.
func channelSelector(n int) ([][]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: channel_mapping channel number must be greater than 0, got %d", device.ErrConfiguration, n)
	}
	row := make([]float64, n)
	row[n-1] = 1
	return [][]float64{row}, nil
}

func coerceMatrix(matrix [][]float64) ([][]float64, error) {
	if len(matrix) < 1 || len(matrix) > 2 {
		return nil, fmt.Errorf("%w: channel_mapping must have 1 or 2 rows, got %d", device.ErrConfiguration, len(matrix))
	}
	if len(matrix) == 2 && len(matrix[0]) != len(matrix[1]) {
		return nil, fmt.Errorf("%w: channel_mapping rows must have the same number of input channels, got %d and %d", device.ErrConfiguration, len(matrix[0]), len(matrix[1]))
	}
	if len(matrix[0]) == 0 {
		return nil, fmt.Errorf("%w: channel_mapping must specify at least one input channel", device.ErrConfiguration)
	}
	return matrix, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
