package consolefmt

import "fmt"

// Color is a name from the fixed palette.
type Color string

const (
	// Black is ANSI colour 0.
	Black Color = "BLACK"
	// Red is ANSI colour 1.
	Red Color = "RED"
	// Green is ANSI colour 2.
	Green Color = "GREEN"
	// Yellow is ANSI colour 3.
	Yellow Color = "YELLOW"
	// Blue is ANSI colour 4.
	Blue Color = "BLUE"
	// Magenta is ANSI colour 5.
	Magenta Color = "MAGENTA"
	// Cyan is ANSI colour 6.
	Cyan Color = "CYAN"
	// White is ANSI colour 7, the fallback text colour.
	White Color = "WHITE"
)

// Reset clears every ANSI attribute.
const Reset = "\x1b[0m"

var ansiText = map[Color]string{
	Black:   "\x1b[30m",
	Red:     "\x1b[31m",
	Green:   "\x1b[32m",
	Yellow:  "\x1b[33m",
	Blue:    "\x1b[34m",
	Magenta: "\x1b[35m",
	Cyan:    "\x1b[36m",
	White:   "\x1b[37m",
}

var ansiBackground = map[Color]string{
	Black:   "\x1b[40m",
	Red:     "\x1b[41m",
	Green:   "\x1b[42m",
	Yellow:  "\x1b[43m",
	Blue:    "\x1b[44m",
	Magenta: "\x1b[45m",
	Cyan:    "\x1b[46m",
	White:   "\x1b[47m",
}

var hexColors = map[Color]string{
	Black:   "#000000",
	Red:     "#FF0000",
	Green:   "#00FF00",
	Yellow:  "#FFFF00",
	Blue:    "#0000FF",
	Magenta: "#FF00FF",
	Cyan:    "#00FFFF",
	White:   "#FFFFFF",
}

var serverStyles = map[Level]string{
	LevelLog:    ansiText[White],
	LevelInfo:   ansiText[Blue],
	LevelWarn:   ansiText[Yellow],
	LevelError:  ansiBackground[Red] + ansiText[White],
	LevelDebug:  ansiText[Magenta],
	LevelTrace:  ansiText[Blue],
	LevelTable:  ansiText[Green],
	LevelAssert: ansiText[White],
	levelCustom: "",
}

var browserStyles = map[Level]string{
	LevelLog:    "",
	LevelInfo:   "color: aqua;",
	LevelWarn:   "color: yellow;",
	LevelError:  "",
	LevelDebug:  "color: magenta;",
	LevelTrace:  "color: cyan;",
	LevelTable:  "color: green;",
	LevelAssert: "",
	levelCustom: "",
}

// ServerStyle returns the ANSI sequence for level, white text when unknown.
func ServerStyle(level Level) string {
	if s, ok := serverStyles[level]; ok {
		return s
	}
	return ansiText[White]
}

// BrowserStyle returns the CSS directive for level, empty when unknown.
func BrowserStyle(level Level) string {
	return browserStyles[level]
}

// CustomStyle picks text and background colours from the palette.
// An empty Background leaves the background untouched.
type CustomStyle struct {
	Text       Color
	Background Color
}

func (c CustomStyle) ansi() string {
	text, ok := ansiText[c.Text]
	if !ok {
		text = ansiText[White]
	}
	return ansiBackground[c.Background] + text
}

func (c CustomStyle) css() string {
	text, ok := hexColors[c.Text]
	if !ok {
		text = hexColors[White]
	}
	css := fmt.Sprintf("color: %s;", text)
	if bg, ok := hexColors[c.Background]; ok {
		css += fmt.Sprintf(" background-color: %s;", bg)
	}
	return css
}
