package giteditor_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/require"

	giteditor "github.com/rohansen856/git-editor"
)

var testBase = time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestRepo builds an in-memory repository with n linear commits authored
// by "Old Author", one new file per commit.
func newTestRepo(t *testing.T, n int) *git.Repository {
	t.Helper()

	fs := memfs.New()
	repo, err := git.Init(memory.NewStorage(), fs)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("file%d.txt", i)
		require.NoError(t, util.WriteFile(fs, name, []byte(fmt.Sprintf("content %d\n", i)), 0o644))

		_, err = wt.Add(name)
		require.NoError(t, err)

		_, err = wt.Commit(fmt.Sprintf("commit %d", i), &git.CommitOptions{
			Author: &object.Signature{
				Name:  "Old Author",
				Email: "old@example.com",
				When:  testBase.Add(time.Duration(i) * time.Hour),
			},
		})
		require.NoError(t, err)
	}

	return repo
}

// snapshotFixture builds standalone snapshots with synthetic hashes for
// tests that do not need a repository.
func snapshotFixture(t *testing.T, n int) []*giteditor.CommitSnapshot {
	t.Helper()

	snapshots := make([]*giteditor.CommitSnapshot, 0, n)
	for i := 1; i <= n; i++ {
		hash := giteditor.MustDecodeHashHex(fmt.Sprintf("%040x", i))

		snapshots = append(snapshots, &giteditor.CommitSnapshot{
			Hash:        hash,
			ShortHash:   hash.String()[:8],
			When:        testBase.Add(time.Duration(i) * time.Hour),
			AuthorName:  "Old Author",
			AuthorEmail: "old@example.com",
			Message:     fmt.Sprintf("commit %d\n\nbody %d\n", i, i),
			ParentCount: min(i-1, 1),
		})
	}

	return snapshots
}
