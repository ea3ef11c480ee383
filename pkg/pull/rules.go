package pull

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dotvar/dotvar/pkg/errors"
)

//go:embed defaults.toml
var defaultRules []byte

// Rules filter which config directories a pull considers and how many
// it will take in one run. Categories inside include_programs and
// exclude_directories are organizational only; the engine flattens
// them.
type Rules struct {
	IncludePrograms       map[string][]string `toml:"include_programs"`
	ExcludeDirectories    map[string][]string `toml:"exclude_directories"`
	IncludeKeywords       []string            `toml:"include_keywords"`
	IgnorePatterns        []string            `toml:"ignore_patterns"`
	ConfirmationThreshold int                 `toml:"confirmation_threshold"`
	MaxConfigsPerPull     int                 `toml:"max_configs_per_pull"`
}

// DefaultRules returns the embedded rule set.
func DefaultRules() Rules {
	var rules Rules
	if err := toml.Unmarshal(defaultRules, &rules); err != nil {
		panic("pull: embedded defaults.toml is invalid: " + err.Error())
	}
	return rules
}

// LoadRules reads a rules file, falling back to the embedded defaults
// when the path is empty or the file does not exist.
func LoadRules(path string) (Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRules(), nil
		}
		return Rules{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to read pull rules").
			WithDetail("path", path)
	}
	var rules Rules
	if err := toml.Unmarshal(data, &rules); err != nil {
		return Rules{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse pull rules").
			WithDetail("path", path)
	}
	return rules, nil
}

// includeSet flattens the include_programs categories into one set.
func (r Rules) includeSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, programs := range r.IncludePrograms {
		for _, p := range programs {
			set[p] = struct{}{}
		}
	}
	return set
}

// excludeSet flattens the exclude_directories categories into one set.
func (r Rules) excludeSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, dirs := range r.ExcludeDirectories {
		for _, d := range dirs {
			set[d] = struct{}{}
		}
	}
	return set
}

// matchesKeyword reports whether the directory name contains any
// include keyword, case-insensitively.
func (r Rules) matchesKeyword(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range r.IncludeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
