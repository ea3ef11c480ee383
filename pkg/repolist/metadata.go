package repolist

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/types"
)

// Metadata describes a repository, read from its info file or README.
type Metadata struct {
	Description   string   `json:"description" yaml:"description"`
	Tags          []string `json:"tags" yaml:"tags"`
	Author        string   `json:"author" yaml:"author"`
	Version       string   `json:"version" yaml:"version"`
	Compatibility []string `json:"compatibility" yaml:"compatibility"`
}

// metadataFiles are probed in order; the first parsable one wins.
var metadataFiles = []string{
	"dotvar-info.json",
	"dotvar-info.yaml",
	"dotvar-info.yml",
	".dotvar-info.json",
	"README.md",
}

var readmeTagPattern = regexp.MustCompile(`#(\w+)`)

// ReadMetadata extracts repository metadata from an info file, falling
// back to the README's first heading and hashtags. It never fails; a
// repository without metadata yields the zero value.
func ReadMetadata(fsys types.FS, repoPath string) Metadata {
	logger := logging.GetLogger("repolist")

	for _, name := range metadataFiles {
		path := filepath.Join(repoPath, name)
		data, err := fsys.ReadFile(path)
		if err != nil {
			continue
		}

		var meta Metadata
		switch {
		case strings.HasSuffix(name, ".json"):
			err = json.Unmarshal(data, &meta)
		case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
			err = yaml.Unmarshal(data, &meta)
		default:
			meta = readmeMetadata(string(data))
		}
		if err != nil {
			logger.Warn().Err(err).
				Str("file", name).
				Msg("Could not parse repository metadata, trying next source")
			continue
		}
		return meta
	}
	return Metadata{}
}

// readmeMetadata takes the first top-level heading as the description
// and collects hashtag-style words as tags.
func readmeMetadata(content string) Metadata {
	var meta Metadata

	lines := strings.Split(content, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "# ") {
			meta.Description = strings.TrimSpace(line[2:])
			break
		}
	}

	seen := make(map[string]struct{})
	for _, match := range readmeTagPattern.FindAllStringSubmatch(content, -1) {
		if _, dup := seen[match[1]]; dup {
			continue
		}
		seen[match[1]] = struct{}{}
		meta.Tags = append(meta.Tags, match[1])
	}
	sort.Strings(meta.Tags)
	return meta
}
