package giteditor

import (
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CommitSnapshot is an immutable view of one commit's metadata as read from
// the repository. It is produced once per history read and never mutated.
type CommitSnapshot struct {
	Hash        plumbing.Hash
	ShortHash   string
	When        time.Time
	AuthorName  string
	AuthorEmail string
	Message     string
	ParentCount int
}

// NewCommitSnapshot builds a [CommitSnapshot] from a commit object.
func NewCommitSnapshot(c *object.Commit) *CommitSnapshot {
	return &CommitSnapshot{
		Hash:        c.Hash,
		ShortHash:   c.Hash.String()[:8],
		When:        c.Author.When,
		AuthorName:  c.Author.Name,
		AuthorEmail: c.Author.Email,
		Message:     c.Message,
		ParentCount: c.NumParents(),
	}
}

// Summary returns the first line of the commit message.
func (c *CommitSnapshot) Summary() string {
	for i := 0; i < len(c.Message); i++ {
		if c.Message[i] == '\n' {
			return c.Message[:i]
		}
	}

	return c.Message
}

// HistoryStats aggregates summary numbers over a commit history.
type HistoryStats struct {
	TotalCommits int
	Earliest     time.Time
	Latest       time.Time
	Authors      []string
}

// SpanDays is the number of whole days between the earliest and the latest
// commit.
func (s *HistoryStats) SpanDays() int {
	return int(s.Latest.Sub(s.Earliest).Hours() / 24)
}

// ComputeStats aggregates the total count, the date span and the distinct
// author names of the input snapshots. Authors are reported in first-seen
// order.
func ComputeStats(snapshots []*CommitSnapshot) *HistoryStats {
	stats := &HistoryStats{
		TotalCommits: len(snapshots),
	}

	seen := make(map[string]empty)
	for i, c := range snapshots {
		if i == 0 || c.When.Before(stats.Earliest) {
			stats.Earliest = c.When
		}
		if i == 0 || c.When.After(stats.Latest) {
			stats.Latest = c.When
		}

		if _, found := seen[c.AuthorName]; !found {
			seen[c.AuthorName] = empty{}
			stats.Authors = append(stats.Authors, c.AuthorName)
		}
	}

	return stats
}
