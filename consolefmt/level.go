package consolefmt

// Level names a console print method. It selects the default styling and
// the default emit target of a call.
type Level string

const (
	// LevelLog is the generic print method and the fallback target.
	LevelLog Level = "log"
	// LevelInfo prints informational messages.
	LevelInfo Level = "info"
	// LevelWarn prints warnings.
	LevelWarn Level = "warn"
	// LevelError prints errors.
	LevelError Level = "error"
	// LevelDebug prints debug messages.
	LevelDebug Level = "debug"
	// LevelTrace prints trace messages.
	LevelTrace Level = "trace"
	// LevelTable prints tabular dumps.
	LevelTable Level = "table"
	// LevelAssert prints assertion messages.
	LevelAssert Level = "assert"

	// levelCustom is the styling key used by Formatter.Custom.
	levelCustom Level = "custom"
)

// AllLevels returns every supported level.
func AllLevels() []Level {
	return []Level{
		LevelLog,
		LevelInfo,
		LevelWarn,
		LevelError,
		LevelDebug,
		LevelTrace,
		LevelTable,
		LevelAssert,
	}
}

// Valid reports whether l is one of the supported levels.
func (l Level) Valid() bool {
	switch l {
	case LevelLog, LevelInfo, LevelWarn, LevelError,
		LevelDebug, LevelTrace, LevelTable, LevelAssert:
		return true
	default:
		return false
	}
}

func (l Level) String() string {
	return string(l)
}
