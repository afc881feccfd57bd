package reader

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// NoPrecision leaves numbers formatted with the shortest exact representation.
const NoPrecision = -1

func formatNumber(value float64, precision int) string {
	d := decimal.NewFromFloat(value)
	if precision < 0 {
		return d.String()
	}
	return d.StringFixed(int32(precision))
}

// formatText rounds numeric text to precision and keeps any other text intact.
func formatText(text string, precision int) string {
	if precision < 0 {
		return text
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return text
	}
	return d.StringFixed(int32(precision))
}

// summarize renders a single value as is and several values as "mean (+/- stdev)".
func summarize(values []float64, precision int) (string, error) {
	switch len(values) {
	case 0:
		return "", errors.New("no values to summarize")
	case 1:
		return formatNumber(values[0], precision), nil
	}

	data := stats.Float64Data(values)
	mean, err := data.Mean()
	if err != nil {
		return "", errors.Wrap(err, "could not compute mean")
	}
	stdev, err := data.StandardDeviation()
	if err != nil {
		return "", errors.Wrap(err, "could not compute standard deviation")
	}
	return fmt.Sprintf("%s (+/- %s)", formatNumber(mean, precision), formatNumber(stdev, precision)), nil
}
