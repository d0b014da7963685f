package giteditor

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
)

// FieldTransform carries optional per-commit metadata overrides. A nil field
// keeps the original value. KeepCommitter leaves the original committer
// signature in place instead of mirroring the rewritten author.
type FieldTransform struct {
	AuthorName    *string
	AuthorEmail   *string
	When          *time.Time
	Message       *string
	KeepCommitter bool
}

// IsZero reports whether the transform carries no override at all.
func (t *FieldTransform) IsZero() bool {
	return t == nil ||
		(t.AuthorName == nil && t.AuthorEmail == nil && t.When == nil && t.Message == nil)
}

// Plan maps original commit hashes to their transforms. Commits absent from
// the plan pass through a rewrite with their metadata intact, receiving only
// remapped parent identities.
type Plan map[plumbing.Hash]*FieldTransform

// Exclude drops the transforms for the given commits, leaving their
// metadata untouched by a rewrite.
func (p Plan) Exclude(hashes HashSet) {
	for h := range hashes {
		delete(p, h)
	}
}

// PlannedChange pairs an original snapshot with the transform that would be
// applied to it. It feeds both [Rewrite] (through [NewPlan]) and [Simulate].
type PlannedChange struct {
	Snapshot  *CommitSnapshot
	Transform *FieldTransform
}

// HasChanges reports whether the change carries any non-identity override.
func (p *PlannedChange) HasChanges() bool {
	return !p.Transform.IsZero()
}

// NewPlan collects the non-identity changes into a [Plan].
func NewPlan(changes []*PlannedChange) Plan {
	plan := make(Plan)
	for _, c := range changes {
		if c == nil || !c.HasChanges() {
			continue
		}
		plan[c.Snapshot.Hash] = c.Transform
	}

	return plan
}

// FullRewritePlan assigns every commit the new author identity and its
// generated timestamp. Messages are preserved. The timestamps slice must
// have exactly one entry per snapshot.
func FullRewritePlan(snapshots []*CommitSnapshot, name, email string, timestamps []time.Time) (Plan, error) {
	if len(timestamps) != len(snapshots) {
		return nil, fmt.Errorf("%w: %d timestamps for %d commits",
			ErrTimestampCount, len(timestamps), len(snapshots))
	}

	plan := make(Plan, len(snapshots))
	for i, c := range snapshots {
		when := timestamps[i]
		plan[c.Hash] = &FieldTransform{
			AuthorName:  &name,
			AuthorEmail: &email,
			When:        &when,
		}
	}

	return plan, nil
}

// SinglePlan targets exactly one commit with the given transform. The
// original committer is kept unless the transform changes the timestamp.
// The caller's transform is copied, not mutated.
func SinglePlan(hash plumbing.Hash, transform *FieldTransform) Plan {
	if transform.IsZero() {
		return Plan{}
	}

	t := *transform
	t.KeepCommitter = t.When == nil

	return Plan{hash: &t}
}

// FullRewriteChanges materializes the per-commit [PlannedChange] list a full
// rewrite would apply, for simulation.
func FullRewriteChanges(snapshots []*CommitSnapshot, name, email string, timestamps []time.Time) ([]*PlannedChange, error) {
	plan, err := FullRewritePlan(snapshots, name, email, timestamps)
	if err != nil {
		return nil, err
	}

	return PlanChanges(snapshots, plan), nil
}

// PlanChanges pairs every snapshot with its transform from the plan,
// preserving history order. Snapshots outside the plan get an identity
// change.
func PlanChanges(snapshots []*CommitSnapshot, plan Plan) []*PlannedChange {
	changes := make([]*PlannedChange, 0, len(snapshots))
	for _, c := range snapshots {
		changes = append(changes, &PlannedChange{
			Snapshot:  c,
			Transform: plan[c.Hash],
		})
	}

	return changes
}
