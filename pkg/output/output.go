// Package output renders run results, conflict warnings, and listings
// for the terminal. Styling is applied only when writing to a tty and
// NO_COLOR is unset.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/dotvar/dotvar/pkg/gitrepo"
	"github.com/dotvar/dotvar/pkg/repolist"
	"github.com/dotvar/dotvar/pkg/types"
)

// Renderer writes human-readable reports.
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer creates a renderer for w. Color is enabled only when w
// is a terminal and the NO_COLOR convention does not disable it;
// noColor forces plain output.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	color := !noColor && !termenv.EnvNoColor()
	if f, ok := w.(*os.File); ok {
		color = color && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	} else {
		color = false
	}
	return &Renderer{w: w, color: color}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// RenderError prints a command error in the error style.
func (r *Renderer) RenderError(err error) {
	r.printf("%s\n", r.style(errorStyle, fmt.Sprintf("Error: %v", err)))
}

// RenderFingerprint prints the detected environment.
func (r *Renderer) RenderFingerprint(fp types.EnvironmentFingerprint) {
	r.printf("%s\n", r.style(headerStyle, "Detected environment"))
	for _, dim := range types.Dimensions {
		value := fp.Value(dim)
		if value == types.Unknown {
			value = r.style(dimStyle, value)
		}
		r.printf("  %-15s %s\n", string(dim)+":", value)
	}
}

// RenderRun prints the full result of an install or dry run.
func (r *Renderer) RenderRun(result *types.RunResult) {
	if result.DryRun {
		r.printf("%s\n\n", r.style(warningStyle, "Dry run: nothing will be written"))
	}

	for _, widget := range result.Widgets {
		if widget.Skipped {
			r.printf("%s %s %s\n",
				r.style(warningStyle, "skip"),
				r.style(nameStyle, widget.Widget),
				r.style(dimStyle, widget.SkipReason))
			continue
		}
		r.printf("%s %s %s\n",
			r.style(successStyle, "  ok"),
			r.style(nameStyle, widget.Widget),
			r.style(dimStyle, "variant "+widget.Variant))
	}

	r.RenderConflicts(result.Conflicts)

	if len(result.Files) > 0 {
		r.printf("\n")
	}
	for _, file := range result.Files {
		switch file.Status {
		case types.FileWouldCopy:
			r.printf("  %s %s\n", r.style(dimStyle, "would copy"), file.Dest)
		case types.FileCopied:
			r.printf("  %s %s\n", r.style(successStyle, "copied"), file.Dest)
		case types.FileBackedUp:
			r.printf("  %s %s %s\n",
				r.style(successStyle, "copied"), file.Dest,
				r.style(dimStyle, "(backup: "+file.BackupPath+")"))
		case types.FileFailed:
			r.printf("  %s %s: %s\n",
				r.style(errorStyle, "failed"), file.Dest, file.Reason)
		}
	}

	r.renderSummary(result)
}

func (r *Renderer) renderSummary(result *types.RunResult) {
	failed := len(result.FailedFiles())
	skipped := len(result.SkippedWidgets())

	r.printf("\n%d widget(s), %d file(s)", len(result.Widgets), len(result.Files))
	if skipped > 0 {
		r.printf(", %s", r.style(warningStyle, fmt.Sprintf("%d skipped", skipped)))
	}
	if failed > 0 {
		r.printf(", %s", r.style(errorStyle, fmt.Sprintf("%d failed", failed)))
	}
	r.printf("\n")
}

// RenderConflicts prints advisory singleton-program warnings.
func (r *Renderer) RenderConflicts(conflicts []types.ConflictReport) {
	for _, conflict := range conflicts {
		r.printf("\n%s %s\n",
			r.style(warningStyle, "conflict:"),
			r.style(nameStyle, conflict.Program))
		r.printf("  %s\n", conflict.Warning)
		for _, source := range conflict.Sources {
			r.printf("  - %s/%s (%d file(s))\n", source.Widget, source.Variant, len(source.Files))
		}
		if conflict.Suggestion != "" {
			r.printf("  %s\n", r.style(dimStyle, conflict.Suggestion))
		}
	}
}

// RenderWidgetList prints discovered widgets with their variants.
func (r *Renderer) RenderWidgetList(widgets []types.Widget) {
	if len(widgets) == 0 {
		r.printf("%s\n", r.style(dimStyle, "No widgets found"))
		return
	}
	r.printf("%s\n", r.style(headerStyle, "Widgets"))
	for _, widget := range widgets {
		r.printf("  %s %s\n",
			r.style(nameStyle, widget.Name),
			r.style(dimStyle, fmt.Sprintf("%v", widget.VariantNames())))
	}
}

// RenderWidgetInfo prints one widget's variants and program folders.
func (r *Renderer) RenderWidgetInfo(widget types.Widget) {
	r.printf("%s\n", r.style(headerStyle, widget.Name))
	for _, variant := range widget.Variants {
		r.printf("  %s\n", r.style(nameStyle, variant.Name))
		for _, program := range variant.Programs {
			r.printf("    %s %s\n", program.Name,
				r.style(dimStyle, fmt.Sprintf("(%d file(s))", len(program.Files))))
		}
		for _, loose := range variant.LooseFiles {
			r.printf("    %s\n", r.style(dimStyle, loose.RelPath))
		}
	}
}

// RenderRepos prints the compatible-repository registry.
func (r *Renderer) RenderRepos(repos []repolist.Repo) {
	if len(repos) == 0 {
		r.printf("%s\n", r.style(dimStyle, "No repositories registered"))
		return
	}
	r.printf("%s\n", r.style(headerStyle, "Compatible repositories"))
	for _, repo := range repos {
		r.printf("  %s %s\n", r.style(nameStyle, repo.Name), r.style(dimStyle, repo.URL))
		if repo.Description != "" {
			r.printf("    %s\n", repo.Description)
		}
		if len(repo.Tags) > 0 {
			r.printf("    %s\n", r.style(dimStyle, fmt.Sprintf("tags: %v", repo.Tags)))
		}
	}
}

// RenderCompatibility prints a repository's structural census.
func (r *Renderer) RenderCompatibility(name string, compat gitrepo.Compatibility) {
	if compat.Compatible {
		r.printf("%s %s\n", r.style(successStyle, "compatible:"), r.style(nameStyle, name))
	} else {
		r.printf("%s %s\n", r.style(errorStyle, "incompatible:"), r.style(nameStyle, name))
		for _, issue := range compat.Issues {
			r.printf("  %s\n", issue)
		}
		return
	}
	r.printf("  widgets:      %v\n", compat.Widgets)
	r.printf("  environments: %v\n", compat.Environments)
	r.printf("  programs:     %v\n", compat.Programs)
}
