package compat

// Message constants
const (
	MsgShort = "Check whether a registered repository follows the widget layout"
	MsgLong  = `Clones (or reuses the clone of) a registered repository and reports
its widgets, environments, and programs, or the reasons it cannot be
installed from.`
)
