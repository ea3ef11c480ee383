// Package repolist manages the registry of compatible dotfile
// repositories: a pipe-delimited text file with one
// name|url|description|tags line per repository.
package repolist

import (
	"fmt"
	neturl "net/url"
	"strings"

	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/types"
)

const fileHeader = `# Compatible Dotfile Repositories
# Format: name|url|description|tags (comma-separated)
# Example: my-theme|https://github.com/user/my-theme.git|A beautiful theme|hyprland,eww

`

// Repo is one registry entry.
type Repo struct {
	Name        string
	URL         string
	Description string
	Tags        []string
}

// HasTag reports whether the repo carries any of the given tags.
func (r Repo) HasTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range r.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Load reads the registry file. A missing file is an empty registry,
// not an error. Malformed lines are logged and skipped.
func Load(fsys types.FS, path string) ([]Repo, error) {
	logger := logging.GetLogger("repolist")

	data, err := fsys.ReadFile(path)
	if err != nil {
		if _, statErr := fsys.Stat(path); statErr != nil {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read repository list").
			WithDetail("path", path)
	}

	var repos []Repo
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			logger.Warn().
				Int("line", i+1).
				Str("content", line).
				Msg("Invalid repository list line, skipping")
			continue
		}
		repo := Repo{
			Name: strings.TrimSpace(parts[0]),
			URL:  strings.TrimSpace(parts[1]),
		}
		if len(parts) > 2 {
			repo.Description = strings.TrimSpace(parts[2])
		}
		if len(parts) > 3 {
			repo.Tags = splitTags(parts[3])
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// Save writes the registry file, replacing its contents.
func Save(fsys types.FS, path string, repos []Repo) error {
	var sb strings.Builder
	sb.WriteString(fileHeader)
	for _, repo := range repos {
		fmt.Fprintf(&sb, "%s|%s|%s|%s\n",
			repo.Name, repo.URL, repo.Description, strings.Join(repo.Tags, ","))
	}
	if err := fsys.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to write repository list").
			WithDetail("path", path)
	}
	return nil
}

// Add appends a repository, rejecting duplicate names or URLs.
func Add(fsys types.FS, path string, repo Repo) error {
	repos, err := Load(fsys, path)
	if err != nil {
		return err
	}
	for _, existing := range repos {
		if existing.Name == repo.Name || existing.URL == repo.URL {
			return errors.New(errors.ErrRepoExists, "repository already registered").
				WithDetail("name", existing.Name)
		}
	}
	return Save(fsys, path, append(repos, repo))
}

// Remove deletes the named repository from the registry.
func Remove(fsys types.FS, path, name string) error {
	repos, err := Load(fsys, path)
	if err != nil {
		return err
	}
	kept := repos[:0]
	for _, repo := range repos {
		if repo.Name != name {
			kept = append(kept, repo)
		}
	}
	if len(kept) == len(repos) {
		return errors.Newf(errors.ErrRepoNotFound, "repository %q not found", name)
	}
	return Save(fsys, path, kept)
}

// Find returns the named repository.
func Find(repos []Repo, name string) (Repo, bool) {
	for _, repo := range repos {
		if repo.Name == name {
			return repo, true
		}
	}
	return Repo{}, false
}

// FilterByTags keeps repositories carrying at least one of the tags.
// An empty tag list keeps everything.
func FilterByTags(repos []Repo, tags []string) []Repo {
	if len(tags) == 0 {
		return repos
	}
	var filtered []Repo
	for _, repo := range repos {
		if repo.HasTag(tags) {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}

// ExtractRepoName derives a repository name from its URL: the last
// path segment with any .git suffix removed.
func ExtractRepoName(rawURL string) string {
	path := rawURL
	if parsed, err := neturl.Parse(rawURL); err == nil && parsed.Path != "" {
		path = parsed.Path
	}
	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	if path == "" {
		return "unknown-repo"
	}
	// scp-style git URLs (git@host:user/repo) keep the host prefix in
	// the path, so split on ':' as well.
	if i := strings.LastIndex(path, ":"); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	if path == "" {
		return "unknown-repo"
	}
	return path
}

func splitTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
