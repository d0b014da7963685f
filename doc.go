// giteditor rewrites commit metadata of a git repository.
// It recreates the current branch's commit chain with new author identity,
// timestamps, or messages while keeping every commit's tree untouched.
//
// See [Rewrite] for the core procedure, [GenerateTimestamps] for the
// timestamp scheduler, and [Simulate] for previewing a rewrite without
// touching the repository.
package giteditor
