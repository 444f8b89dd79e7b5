package consolefmt

// Mode is the environment an Output renders for.
type Mode int

const (
	// ServerMode embeds ANSI escape sequences in terminal text.
	ServerMode Mode = iota
	// BrowserMode passes a CSS directive next to a %c template.
	BrowserMode
)

// String returns the config name of m.
func (m Mode) String() string {
	switch m {
	case ServerMode:
		return "server"
	case BrowserMode:
		return "browser"
	default:
		return "unknown"
	}
}

// Entry is one formatted call, ready to be rendered by an Output.
type Entry struct {
	// Level selects the styling.
	Level Level
	// Target is the print method to emit to.
	Target Level
	// Message is the serialized values joined by single spaces.
	Message string
	// Pad adds one space on each side of the message.
	Pad bool
	// LineBreakStart emits a newline before the message.
	LineBreakStart bool
	// LineBreakEnd emits a newline after the message.
	LineBreakEnd bool
	// Custom overrides the level styling when set.
	Custom *CustomStyle
}

// Output renders entries for one environment. Emit must not fail and
// must emit each entry with a single call to the underlying printer.
type Output interface {
	Mode() Mode
	Emit(e Entry)
}

func (e Entry) padding() string {
	if e.Pad {
		return " "
	}
	return ""
}

func newline(on bool) string {
	if on {
		return "\n"
	}
	return ""
}
