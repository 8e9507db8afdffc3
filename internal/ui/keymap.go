package ui

// Key binding constants used by the screens.
const (
	KeyQuit      = "q"
	KeyCtrlC     = "ctrl+c"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyJ         = "j"
	KeyK         = "k"
	KeyPgUp      = "pgup"
	KeyPgDown    = "pgdown"
	KeyEnter     = "enter"
	KeyEsc       = "esc"
	KeyBackspace = "backspace"
	KeySearch    = "/"
	KeyBookmarks = "b"
	KeyToggle    = " "
	KeyToggleAlt = "m"
	KeyRemove    = "x"
	KeyZoomIn    = "+"
	KeyZoomInAlt = "="
	KeyZoomOut   = "-"
	KeyZoomReset = "0"
	KeyDoubleTap = "z"
	KeyPanLeft   = "h"
	KeyPanRight  = "l"
	KeyLeft      = "left"
	KeyRight     = "right"
)

const (
	pinchStep = 1.25
	panStep   = 4
)
