package consolefmt

// DefaultJSONSpacer is the indentation width used for structured values
// when no spacer is configured.
const DefaultJSONSpacer = 2

// maxJSONSpacer caps the indentation width, as JSON.stringify does.
const maxJSONSpacer = 10

// Options controls how one call is framed and where it is emitted.
// A nil field is unset and falls back to the formatter defaults, then to
// the mode defaults.
type Options struct {
	// Type overrides the print method the call is emitted to.
	// Default: the level of the call.
	Type Level `toml:"type" validate:"omitempty,level"`
	// LineBreakStart emits a newline before the message.
	// Default: true in server mode, false in browser mode.
	LineBreakStart *bool `toml:"line_break_start"`
	// LineBreakEnd emits a newline after the message.
	// Default: true in server mode, false in browser mode.
	LineBreakEnd *bool `toml:"line_break_end"`
	// Pad surrounds the message with one space on each side.
	// Default: false
	Pad *bool `toml:"pad"`
	// JSONSpacer is the indentation width for structured values, 0 for compact.
	// Default: 2
	JSONSpacer *int `toml:"json_spacer" validate:"omitempty,min=0,max=10"`
}

// Bool returns a pointer to b, for use in Options literals.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i, for use in Options literals.
func Int(i int) *int {
	return &i
}

// Merge returns o with every field that is set in over replacing its own.
func (o Options) Merge(over Options) Options {
	if over.Type != "" {
		o.Type = over.Type
	}
	if over.LineBreakStart != nil {
		o.LineBreakStart = over.LineBreakStart
	}
	if over.LineBreakEnd != nil {
		o.LineBreakEnd = over.LineBreakEnd
	}
	if over.Pad != nil {
		o.Pad = over.Pad
	}
	if over.JSONSpacer != nil {
		o.JSONSpacer = over.JSONSpacer
	}
	return o
}

// resolved is Options with every default applied.
type resolved struct {
	target         Level
	lineBreakStart bool
	lineBreakEnd   bool
	pad            bool
	jsonSpacer     int
}

// resolve applies the defaults for mode; level is the target when Type is unset.
func (o Options) resolve(level Level, mode Mode) resolved {
	lineBreak := mode == ServerMode
	r := resolved{
		target:         level,
		lineBreakStart: lineBreak,
		lineBreakEnd:   lineBreak,
		jsonSpacer:     DefaultJSONSpacer,
	}
	if o.Type != "" {
		r.target = o.Type
	}
	if o.LineBreakStart != nil {
		r.lineBreakStart = *o.LineBreakStart
	}
	if o.LineBreakEnd != nil {
		r.lineBreakEnd = *o.LineBreakEnd
	}
	if o.Pad != nil {
		r.pad = *o.Pad
	}
	if o.JSONSpacer != nil {
		r.jsonSpacer = clampSpacer(*o.JSONSpacer)
	}
	return r
}

func clampSpacer(n int) int {
	return max(0, min(n, maxJSONSpacer))
}
