package list

// Message constants
const (
	MsgShort = "List widgets in the repository"
	MsgLong  = `Lists every widget in the repository together with its available
variants.`
)
