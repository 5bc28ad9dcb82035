package tui

// Key bindings.
const (
	keyQuit    = "q"
	keyCtrlC   = "ctrl+c"
	keyEsc     = "esc"
	keySpace   = " "
	keyEnter   = "enter"
	keyYes     = "y"
	keyYesUp   = "Y"
	keyNo      = "n"
	keyNoUpper = "N"
)
