// Package types contains the core value types shared across dotvar:
// the environment fingerprint, the widget/variant/program-folder tree
// discovered from a repository, and the records produced by a run
// (resolved installs, conflict reports, per-file outcomes).
package types
