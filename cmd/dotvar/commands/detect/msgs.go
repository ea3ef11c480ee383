package detect

// Message constants
const (
	MsgShort = "Show the detected desktop environment"
	MsgLong  = `Probes environment variables and the process table to determine the
running window manager, compositor, shell, and terminal. These are the
dimensions variant resolution matches against.`
)
