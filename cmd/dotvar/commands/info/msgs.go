package info

// Message constants
const (
	MsgShort = "Show a widget's variants and programs"
	MsgLong  = `Shows one widget's variant folders and the program configurations
each variant contains.`
)
