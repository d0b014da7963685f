package giteditor

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// Rewrite recreates the current branch's commit chain, applying the plan's
// transforms and remapping parent identities through the commits already
// rewritten. Trees are reused as-is, so the content at every revision is
// unchanged; GPG signatures are dropped since the commit identities change.
//
// The branch reference is updated exactly once, after the whole chain has
// been recreated, and the new tip hash is returned. Any failure before that
// point leaves the original branch untouched; commits created up to the
// failure stay unreferenced.
func Rewrite(ctx context.Context, repo *git.Repository, plan Plan) (plumbing.Hash, error) {
	ref, err := repo.Head()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: %w", ErrEmptyHistory, err)
	}

	if !ref.Name().IsBranch() {
		return plumbing.ZeroHash, ErrDetachedHead
	}

	commits, err := LoadCommits(ctx, repo)
	if err != nil {
		return plumbing.ZeroHash, err
	}

	if len(commits) == 0 {
		return plumbing.ZeroHash, ErrEmptyHistory
	}

	fromorigtonew := make(map[plumbing.Hash]plumbing.Hash)
	tip := plumbing.ZeroHash
	n := len(commits)

	for i, c := range commits {
		select {
		case <-ctx.Done():
			return plumbing.ZeroHash, ctx.Err()
		default:
		}

		parents := make([]plumbing.Hash, 0, c.NumParents())
		for _, p := range c.ParentHashes {
			// parents outside the rewritten span pass through verbatim
			if newparent, found := fromorigtonew[p]; found {
				parents = append(parents, newparent)
			} else {
				parents = append(parents, p)
			}
		}

		newcommit := rewriteCommit(c, parents, plan[c.Hash])

		newhash, err := saveCommit(repo.Storer, newcommit)
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("failed to save commit at %d for %s: %w", i, c.Hash.String(), err)
		}

		fromorigtonew[c.Hash] = newhash
		tip = newhash

		logger.Debug("processing commit", "id", i, "total", n, "hash", c.Hash, "newcommit", newhash)
	}

	if err := repo.Storer.SetReference(plumbing.NewHashReference(ref.Name(), tip)); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to update reference %s: %w", ref.Name().String(), err)
	}

	logger.Info("rewrote branch", "branch", ref.Name().Short(), "total", n, "tip", tip)

	return tip, nil
}

// rewriteCommit builds the replacement commit for c with the resolved
// parents and the transform's overrides applied. The committer mirrors the
// rewritten author unless the transform keeps it.
func rewriteCommit(c *object.Commit, parents []plumbing.Hash, t *FieldTransform) *object.Commit {
	author := c.Author
	committer := c.Committer
	message := c.Message

	if t != nil {
		if t.AuthorName != nil {
			author.Name = *t.AuthorName
		}
		if t.AuthorEmail != nil {
			author.Email = *t.AuthorEmail
		}
		if t.When != nil {
			author.When = *t.When
		}
		if t.Message != nil {
			message = *t.Message
		}
		if !t.KeepCommitter {
			committer = author
		}
	}

	return &object.Commit{
		TreeHash:     c.TreeHash,
		Author:       author,
		Committer:    committer,
		Message:      message,
		ParentHashes: parents,
	}
}

func saveCommit(s storer.Storer, c *object.Commit) (plumbing.Hash, error) {
	obj := s.NewEncodedObject()
	if err := c.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to encode commit: %w", err)
	}

	return s.SetEncodedObject(obj)
}
