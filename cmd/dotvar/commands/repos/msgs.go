package repos

// Message constants
const (
	MsgShort = "Manage the compatible-repository registry"
	MsgLong  = `Maintains a registry of other dotfile repositories that follow the
widget/variant/program layout. Registered repositories can be cloned
under git_repos/ and installed from directly.`

	MsgExample = `  # Register a repository (metadata is read from the clone)
  dotvar repos add https://github.com/user/rose-pine-rice.git

  # List repositories tagged for hyprland
  dotvar repos list --tags hyprland

  # Install the bar widget from a registered repository
  dotvar repos install rose-pine-rice bar`
)
