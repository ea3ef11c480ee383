package types

// FileStatus describes the outcome of a single file apply.
type FileStatus string

const (
	// FileCopied means the file was written and no backup was needed
	FileCopied FileStatus = "copied"

	// FileBackedUp means the pre-existing destination was backed up
	// before being overwritten
	FileBackedUp FileStatus = "backed-up-and-copied"

	// FileFailed means the copy (or a required backup) failed; the
	// reason is recorded and the run continues
	FileFailed FileStatus = "failed"

	// FileWouldCopy is reported under dry-run instead of writing
	FileWouldCopy FileStatus = "would-copy"
)

// FileResult is the per-file apply outcome. Failures are collected
// here rather than aborting the run.
type FileResult struct {
	Widget  string
	Program string
	Source  string
	Dest    string
	Status  FileStatus

	// BackupPath is set when Status is FileBackedUp
	BackupPath string

	// Reason is set when Status is FileFailed
	Reason string
}

// WidgetOutcome records how resolution went for one widget.
type WidgetOutcome struct {
	Widget string

	// Variant is the chosen variant name, empty when skipped
	Variant string

	// Skipped is true when the widget had neither a matching nor a
	// default variant
	Skipped bool

	// SkipReason explains the skip for the report
	SkipReason string
}

// RunResult is the structured result of one plan or install run,
// handed to the reporting sink.
type RunResult struct {
	// Fingerprint is the environment the run resolved against
	Fingerprint EnvironmentFingerprint

	// Widgets holds the per-widget resolution outcome in discovery order
	Widgets []WidgetOutcome

	// Installs is the full resolved install list
	Installs []ResolvedInstall

	// Conflicts are the advisory singleton conflicts
	Conflicts []ConflictReport

	// Files holds per-file apply outcomes; empty for a pure plan
	Files []FileResult

	// DryRun is true when nothing was written
	DryRun bool
}

// FailedFiles returns the file results that did not apply cleanly.
func (r *RunResult) FailedFiles() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Status == FileFailed {
			failed = append(failed, f)
		}
	}
	return failed
}

// SkippedWidgets returns the outcomes for widgets that failed to resolve.
func (r *RunResult) SkippedWidgets() []WidgetOutcome {
	var skipped []WidgetOutcome
	for _, w := range r.Widgets {
		if w.Skipped {
			skipped = append(skipped, w)
		}
	}
	return skipped
}
