package giteditor

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// MinCommitSpacing is the minimum time between two consecutive generated
// commit timestamps.
const MinCommitSpacing = 3 * time.Hour

// GenerateTimestamps produces n strictly increasing timestamps inside
// [start, end], with the first timestamp exactly at start and at least
// [MinCommitSpacing] between consecutive ones.
//
// The spacing floor reserves 3h×(n-1) of the interval; the remaining slack
// is split across the gaps with normalized uniform random weights, so the
// cadence is uneven rather than metronomic. It returns [ErrRangeTooSmall]
// when the interval cannot fit n commits with the floor applied, and
// [ErrStartNotBeforeEnd] when start is not before end.
func GenerateTimestamps(start, end time.Time, n int) ([]time.Time, error) {
	if !start.Before(end) {
		return nil, ErrStartNotBeforeEnd
	}

	if n < 1 {
		return nil, ErrEmptyHistory
	}

	if n == 1 {
		return []time.Time{start}, nil
	}

	minSpan := MinCommitSpacing * time.Duration(n-1)
	totalSpan := end.Sub(start)

	if totalSpan < minSpan {
		return nil, fmt.Errorf("%w: %d commits need at least %s, have %s",
			ErrRangeTooSmall, n, minSpan, totalSpan)
	}

	slack := (totalSpan - minSpan).Seconds()

	weights := make([]float64, n-1)
	sum := 0.0
	for i := range weights {
		weights[i] = rand.Float64()
		sum += weights[i]
	}

	timestamps := make([]time.Time, 0, n)
	current := start
	timestamps = append(timestamps, current)

	// rounding is per gap, half away from zero; the budget keeps the
	// accumulated rounding surplus from pushing the last timestamp past end
	budget := int64(slack)
	for _, w := range weights {
		extra := int64(math.Round(w / sum * slack))
		if extra > budget {
			extra = budget
		}
		budget -= extra

		secs := extra + int64(MinCommitSpacing/time.Second)
		current = current.Add(time.Duration(secs) * time.Second)
		timestamps = append(timestamps, current)
	}

	return timestamps, nil
}

// GenerateRangeTimestamps spreads n timestamps evenly over [start, end].
// The first timestamp is start and the last is end. n of 0 returns an empty
// slice and n of 1 returns only start.
func GenerateRangeTimestamps(start, end time.Time, n int) []time.Time {
	if n == 0 {
		return []time.Time{}
	}

	if n == 1 {
		return []time.Time{start}
	}

	step := end.Sub(start) / time.Duration(n-1)

	timestamps := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		timestamps = append(timestamps, start.Add(step*time.Duration(i)))
	}

	return timestamps
}
