// Package analyze detects cross-widget conflicts: programs that can
// only hold one active configuration being targeted by more than one
// resolved install. The analysis is a pure aggregation pass over the
// resolved install list and never blocks installation.
package analyze

import (
	"sort"

	"github.com/dotvar/dotvar/pkg/compat"
	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/types"
)

// Analyze groups the run's resolved installs by program identifier and
// emits one ConflictReport per singleton program targeted by more than
// one distinct (widget, variant) pair. Reports are sorted by program
// name; sources keep install order.
func Analyze(installs []types.ResolvedInstall, db *compat.Database) []types.ConflictReport {
	logger := logging.GetLogger("analyze")

	byProgram := make(map[string][]types.ResolvedInstall)
	for _, install := range installs {
		byProgram[install.Program] = append(byProgram[install.Program], install)
	}

	var reports []types.ConflictReport
	for program, group := range byProgram {
		info, singleton := db.Singleton(program)
		if !singleton {
			continue
		}
		if countDistinctPairs(group) < 2 {
			continue
		}

		report := types.ConflictReport{
			Program:    program,
			Warning:    info.Warning,
			Suggestion: info.Suggestion,
		}
		for _, install := range group {
			report.Sources = append(report.Sources, types.ConflictSource{
				Widget:  install.Widget,
				Variant: install.Variant,
				Files:   install.SourceNames(),
			})
		}
		reports = append(reports, report)

		logger.Warn().
			Str("program", program).
			Int("sources", len(report.Sources)).
			Msg("Singleton program targeted by multiple installs")
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Program < reports[j].Program
	})
	return reports
}

func countDistinctPairs(installs []types.ResolvedInstall) int {
	type pair struct{ widget, variant string }
	seen := make(map[pair]struct{}, len(installs))
	for _, install := range installs {
		seen[pair{install.Widget, install.Variant}] = struct{}{}
	}
	return len(seen)
}
