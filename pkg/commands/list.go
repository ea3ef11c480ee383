package commands

import (
	"github.com/dotvar/dotvar/pkg/repo"
	"github.com/dotvar/dotvar/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	// RepoRoot is the dotfile repository path
	RepoRoot string
}

// List returns every widget in the repository with its variants.
func List(opts ListOptions) ([]types.Widget, error) {
	rt, err := NewRuntime(opts.RepoRoot)
	if err != nil {
		return nil, err
	}
	return repo.DiscoverWidgets(rt.FS, rt.Paths.RepoRoot())
}

// InfoOptions defines the options for the Info command.
type InfoOptions struct {
	// RepoRoot is the dotfile repository path
	RepoRoot string

	// Widget is the widget to describe
	Widget string
}

// Info loads one widget's full variant and program tree.
func Info(opts InfoOptions) (types.Widget, error) {
	rt, err := NewRuntime(opts.RepoRoot)
	if err != nil {
		return types.Widget{}, err
	}
	return repo.LoadWidget(rt.FS, rt.Paths.RepoRoot(), opts.Widget)
}
