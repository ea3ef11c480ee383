// Package resolver selects, for each widget, the variant that applies
// under the current environment fingerprint. Matching is hierarchical:
// an exact folder-name match on a fingerprint dimension wins, then a
// bidirectional substring match, then the default variant.
package resolver

import (
	"strings"

	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/types"
)

// Resolve picks the single best-matching variant for the widget.
// Resolution is deterministic for a fixed widget tree and fingerprint:
// dimensions are tried in priority order (window manager, compositor,
// shell, terminal) and variants in directory order.
//
// A widget with neither a matching nor a default variant yields a
// NO_VARIANT error; callers treat that as a per-widget skip.
func Resolve(widget types.Widget, fp types.EnvironmentFingerprint) (types.Variant, error) {
	logger := logging.GetLogger("resolver")

	if v, ok := exactMatch(widget, fp); ok {
		logger.Debug().
			Str("widget", widget.Name).
			Str("variant", v.Name).
			Msg("Exact variant match")
		return v, nil
	}

	if v, ok := partialMatch(widget, fp); ok {
		logger.Debug().
			Str("widget", widget.Name).
			Str("variant", v.Name).
			Msg("Partial variant match")
		return v, nil
	}

	if v, ok := widget.Variant(types.DefaultVariantName); ok {
		logger.Debug().Str("widget", widget.Name).Msg("Falling back to default variant")
		return v, nil
	}

	return types.Variant{}, errors.New(errors.ErrNoVariant, "no matching or default variant").
		WithDetail("widget", widget.Name).
		WithDetail("variants", widget.VariantNames()).
		WithDetail("fingerprint", fp.String())
}

// exactMatch looks for a variant folder literally named after a
// fingerprint value. The first dimension in priority order that has
// both a known value and a matching folder wins.
func exactMatch(widget types.Widget, fp types.EnvironmentFingerprint) (types.Variant, bool) {
	for _, dim := range types.Dimensions {
		if !fp.Known(dim) {
			continue
		}
		value := fp.Value(dim)
		for _, v := range widget.Variants {
			if v.Name == types.DefaultVariantName {
				continue
			}
			if v.Name == value {
				return v, true
			}
		}
	}
	return types.Variant{}, false
}

// partialMatch accepts a variant whose name is a substring of a
// fingerprint value or vice versa, case-insensitive. Ties break on
// first dimension in priority order, then first variant in directory
// order.
func partialMatch(widget types.Widget, fp types.EnvironmentFingerprint) (types.Variant, bool) {
	for _, dim := range types.Dimensions {
		if !fp.Known(dim) {
			continue
		}
		value := strings.ToLower(fp.Value(dim))
		for _, v := range widget.Variants {
			if v.Name == types.DefaultVariantName {
				continue
			}
			name := strings.ToLower(v.Name)
			if name == "" || value == "" {
				continue
			}
			if strings.Contains(value, name) || strings.Contains(name, value) {
				return v, true
			}
		}
	}
	return types.Variant{}, false
}
