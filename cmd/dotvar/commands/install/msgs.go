package install

// Message constants
const (
	MsgShort = "Install widget configurations for the current environment"
	MsgLong  = `Resolves the best variant of every widget against the detected
environment and copies its program configurations into the config
directory. Existing files are backed up first unless --no-backup is
given.`

	MsgExample = `  # Install every widget
  dotvar install

  # Install one widget
  dotvar install bar

  # Preview without writing
  dotvar install --dry-run

  # Force a specific environment
  dotvar install --env window_manager=hyprland`
)
