package giteditor

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type historyNode struct {
	data      *object.Commit
	nparent   int
	nextvisit int
}

type historyBuilder struct {
	seen  HashSet
	stack []*historyNode
}

func newHistoryBuilder() *historyBuilder {
	return &historyBuilder{
		stack: make([]*historyNode, 0),
		seen:  make(HashSet),
	}
}

func (gb *historyBuilder) add(v *object.Commit) {
	hash := v.Hash
	if _, seen := gb.seen[hash]; seen {
		return
	}

	gb.seen[hash] = empty{}
	gb.stack = append(gb.stack, &historyNode{
		data:      v,
		nparent:   v.NumParents(),
		nextvisit: 0,
	})
}

func (gb *historyBuilder) pop() error {
	if len(gb.stack) == 0 {
		return fmt.Errorf("failed to pop empty stack")
	}

	gb.stack = gb.stack[:len(gb.stack)-1]

	return nil
}

func (gb *historyBuilder) top() *historyNode {
	if len(gb.stack) == 0 {
		return nil
	}

	return gb.stack[len(gb.stack)-1]
}

// walkHistory produces a deterministic depth first search path from the head
// commit. The head commit is the last element of the returned slice and a
// root commit is the first, so every commit appears after all of its
// ancestors. The search always visits the first parent, then the second, and
// so on.
func walkHistory(ctx context.Context, head *object.Commit) ([]*object.Commit, error) {
	result := make([]*object.Commit, 0)
	gb := newHistoryBuilder()

	gb.add(head)

addloop:
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		current := gb.top()

		if current == nil {
			break addloop
		}

		if current.nextvisit == current.nparent {
			result = append(result, current.data)
			if err := gb.pop(); err != nil {
				return nil, err
			}
			continue
		}

		p, err := current.data.Parent(current.nextvisit)
		if err != nil {
			return nil, fmt.Errorf(
				"cannot get parent %d for %s: %w",
				current.nextvisit,
				current.data.Hash.String(),
				err)
		}
		current.nextvisit += 1
		gb.add(p)
	}

	return result, nil
}

// LoadCommits enumerates the current branch's commits, oldest first,
// following the ancestry of HEAD. It returns [ErrEmptyHistory] when the
// repository has no current revision.
func LoadCommits(ctx context.Context, repo *git.Repository) ([]*object.Commit, error) {
	ref, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptyHistory, err)
	}

	head, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("cannot read head commit %s: %w", ref.Hash().String(), err)
	}

	return walkHistory(ctx, head)
}

// LoadHistory materializes the current branch's commits as snapshots, oldest
// first.
func LoadHistory(ctx context.Context, repo *git.Repository) ([]*CommitSnapshot, error) {
	commits, err := LoadCommits(ctx, repo)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*CommitSnapshot, 0, len(commits))
	for _, c := range commits {
		snapshots = append(snapshots, NewCommitSnapshot(c))
	}

	return snapshots, nil
}
