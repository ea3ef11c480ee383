package commands

// Message constants
const (
	MsgShort = "Environment-aware dotfile installer"
	MsgLong  = `dotvar installs per-program configuration files from a structured
repository, picking the right variant for your running desktop
environment (window manager, compositor, shell, terminal).

A repository is laid out as widget/variant/program:

  dotfiles/
    bar/
      hyprland/waybar/config.jsonc
      default/waybar/config.jsonc
    launcher/
      sway/wofi/config

Point dotvar at the repository with --repo or $DOTVAR_REPO.`
)
