package giteditor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	giteditor "github.com/rohansen856/git-editor"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()

	parsed, err := giteditor.ParseTime(s)
	require.NoError(t, err)

	return parsed
}

func TestGenerateTimestampsRangeTooSmall(t *testing.T) {
	// 5 commits need 12h of floor, the interval only has 10h
	start := mustTime(t, "2023-01-01 00:00:00")
	end := mustTime(t, "2023-01-01 10:00:00")

	_, err := giteditor.GenerateTimestamps(start, end, 5)
	require.ErrorIs(t, err, giteditor.ErrRangeTooSmall)
}

func TestGenerateTimestampsInvertedRange(t *testing.T) {
	start := mustTime(t, "2023-01-02 00:00:00")
	end := mustTime(t, "2023-01-01 00:00:00")

	_, err := giteditor.GenerateTimestamps(start, end, 3)
	require.ErrorIs(t, err, giteditor.ErrStartNotBeforeEnd)

	_, err = giteditor.GenerateTimestamps(start, start, 1)
	require.ErrorIs(t, err, giteditor.ErrStartNotBeforeEnd)
}

func TestGenerateTimestampsSingleCommit(t *testing.T) {
	start := mustTime(t, "2023-01-01 00:00:00")
	end := mustTime(t, "2023-01-01 00:00:01")

	timestamps, err := giteditor.GenerateTimestamps(start, end, 1)
	require.NoError(t, err)
	require.Len(t, timestamps, 1)
	assert.True(t, timestamps[0].Equal(start))
}

func TestGenerateTimestampsThreeCommits(t *testing.T) {
	start := mustTime(t, "2023-01-01 00:00:00")
	end := mustTime(t, "2023-01-10 00:00:00")

	timestamps, err := giteditor.GenerateTimestamps(start, end, 3)
	require.NoError(t, err)
	require.Len(t, timestamps, 3)

	assert.True(t, timestamps[0].Equal(start))
	for i := 1; i < len(timestamps); i++ {
		gap := timestamps[i].Sub(timestamps[i-1])
		assert.GreaterOrEqual(t, gap, giteditor.MinCommitSpacing)
	}
	assert.False(t, timestamps[2].After(end))
}

// The slack distribution is random, so only the invariants are asserted:
// first timestamp at start, strict monotonicity with the 3h floor, and
// every timestamp inside [start, end].
func TestGenerateTimestampsProperties(t *testing.T) {
	base := mustTime(t, "2023-01-01 00:00:00")

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 50).Draw(rt, "n")
		start := base.Add(time.Duration(rapid.Int64Range(0, 1_000_000).Draw(rt, "offset")) * time.Second)

		minSpan := int64(n-1) * 3 * 3600
		span := rapid.Int64Range(minSpan, minSpan+90*24*3600).Draw(rt, "span")
		end := start.Add(time.Duration(span) * time.Second)

		timestamps, err := giteditor.GenerateTimestamps(start, end, n)
		if err != nil {
			rt.Fatal(err)
		}

		if len(timestamps) != n {
			rt.Fatalf("got %d timestamps, want %d", len(timestamps), n)
		}
		if !timestamps[0].Equal(start) {
			rt.Fatalf("first timestamp %v is not start %v", timestamps[0], start)
		}

		for i := 1; i < n; i++ {
			gap := timestamps[i].Sub(timestamps[i-1])
			if gap < giteditor.MinCommitSpacing {
				rt.Fatalf("gap %d is %v, below the %v floor", i, gap, giteditor.MinCommitSpacing)
			}
		}

		last := timestamps[n-1]
		if last.Before(start) || last.After(end) {
			rt.Fatalf("last timestamp %v outside [%v, %v]", last, start, end)
		}
	})
}

func TestGenerateRangeTimestamps(t *testing.T) {
	start := mustTime(t, "2023-01-01 00:00:00")
	end := mustTime(t, "2023-01-01 10:00:00")

	timestamps := giteditor.GenerateRangeTimestamps(start, end, 5)
	require.Len(t, timestamps, 5)
	assert.True(t, timestamps[0].Equal(start))
	assert.True(t, timestamps[4].Equal(end))

	for i := 1; i < len(timestamps); i++ {
		assert.False(t, timestamps[i].Before(timestamps[i-1]))
	}
}

func TestGenerateRangeTimestampsEdgeCases(t *testing.T) {
	start := mustTime(t, "2023-01-01 00:00:00")
	end := mustTime(t, "2023-01-01 10:00:00")

	assert.Empty(t, giteditor.GenerateRangeTimestamps(start, end, 0))

	single := giteditor.GenerateRangeTimestamps(start, end, 1)
	require.Len(t, single, 1)
	assert.True(t, single[0].Equal(start))
}
