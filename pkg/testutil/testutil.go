// Package testutil provides helpers for building widget repository
// trees on an in-memory filesystem, shared by tests across packages.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/dotvar/dotvar/pkg/filesystem"
	"github.com/dotvar/dotvar/pkg/types"
)

// MemFS returns a fresh in-memory filesystem.
func MemFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// RepoBuilder assembles a widget/variant/program tree for tests.
type RepoBuilder struct {
	t    *testing.T
	FS   types.FS
	Root string
}

// NewRepo creates a builder writing into root on a new in-memory fs.
func NewRepo(t *testing.T, root string) *RepoBuilder {
	t.Helper()
	b := &RepoBuilder{t: t, FS: MemFS(), Root: root}
	if err := b.FS.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create repo root: %v", err)
	}
	return b
}

// File writes one file under a program folder:
// <root>/<widget>/<variant>/<program>/<relPath>.
func (b *RepoBuilder) File(widget, variant, program, relPath, content string) *RepoBuilder {
	b.t.Helper()
	b.write(filepath.Join(b.Root, widget, variant, program, relPath), content)
	return b
}

// LooseFile writes a file directly under a variant, with no program
// folder.
func (b *RepoBuilder) LooseFile(widget, variant, name, content string) *RepoBuilder {
	b.t.Helper()
	b.write(filepath.Join(b.Root, widget, variant, name), content)
	return b
}

// Variant creates an empty variant directory.
func (b *RepoBuilder) Variant(widget, variant string) *RepoBuilder {
	b.t.Helper()
	if err := b.FS.MkdirAll(filepath.Join(b.Root, widget, variant), 0755); err != nil {
		b.t.Fatalf("failed to create variant dir: %v", err)
	}
	return b
}

func (b *RepoBuilder) write(path, content string) {
	b.t.Helper()
	if err := b.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		b.t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := b.FS.WriteFile(path, []byte(content), 0644); err != nil {
		b.t.Fatalf("failed to write %s: %v", path, err)
	}
}

// WriteFile writes an arbitrary file on the builder's filesystem.
func (b *RepoBuilder) WriteFile(path, content string) *RepoBuilder {
	b.t.Helper()
	b.write(path, content)
	return b
}
