package pull

// Message constants
const (
	MsgShort = "Pull existing configurations into the repository"
	MsgLong  = `Copies program configuration directories from your config directory
into a widget variant, so an existing setup can be captured in the
repository. Candidates are filtered by the auto-config rules
(pull_rules.toml); lock files, sockets, and caches are skipped.`

	MsgExample = `  # Capture the current setup into the detected environment's variant
  dotvar pull desktop

  # Pull into an explicit variant
  dotvar pull desktop --environment hyprland

  # Pull only selected programs
  dotvar pull desktop --programs kitty,waybar`
)
