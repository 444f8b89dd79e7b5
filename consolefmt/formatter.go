package consolefmt

import "strings"

// Formatter serializes values, frames them and emits one console line per
// call. It holds no per-call state and is safe for concurrent use when its
// Output is.
type Formatter struct {
	out      Output
	defaults Options
}

// NewFormatter returns a formatter emitting to out. defaults sit beneath
// the options of every call.
func NewFormatter(out Output, defaults Options) *Formatter {
	return &Formatter{out: out, defaults: defaults}
}

// Mode returns the mode of the formatter's output.
func (f *Formatter) Mode() Mode {
	return f.out.Mode()
}

// WithDefaults returns a formatter sharing f's output whose defaults are
// f's defaults overlaid with opts.
func (f *Formatter) WithDefaults(opts Options) *Formatter {
	return &Formatter{out: f.out, defaults: f.defaults.Merge(opts)}
}

// --- Values only ---

// Log prints values with the log styling (white text on a terminal).
func (f *Formatter) Log(values ...any) {
	f.write(LevelLog, Options{}, nil, values)
}

// Info prints values with the info styling (blue text on a terminal).
func (f *Formatter) Info(values ...any) {
	f.write(LevelInfo, Options{}, nil, values)
}

// Warn prints values with the warn styling (yellow text on a terminal).
func (f *Formatter) Warn(values ...any) {
	f.write(LevelWarn, Options{}, nil, values)
}

// Error prints values with the error styling (white on red on a terminal).
func (f *Formatter) Error(values ...any) {
	f.write(LevelError, Options{}, nil, values)
}

// --- Explicit options ---

// LogWith is Log with per-call options.
func (f *Formatter) LogWith(opts Options, values ...any) {
	f.write(LevelLog, opts, nil, values)
}

// InfoWith is Info with per-call options.
func (f *Formatter) InfoWith(opts Options, values ...any) {
	f.write(LevelInfo, opts, nil, values)
}

// WarnWith is Warn with per-call options.
func (f *Formatter) WarnWith(opts Options, values ...any) {
	f.write(LevelWarn, opts, nil, values)
}

// ErrorWith is Error with per-call options.
func (f *Formatter) ErrorWith(opts Options, values ...any) {
	f.write(LevelError, opts, nil, values)
}

// Print prints values at any level, including debug, trace, table and assert.
func (f *Formatter) Print(level Level, opts Options, values ...any) {
	f.write(level, opts, nil, values)
}

// Custom prints values with caller-picked palette colours. The entry is
// emitted to the log method unless opts.Type says otherwise.
func (f *Formatter) Custom(style CustomStyle, opts Options, values ...any) {
	if opts.Type == "" {
		opts.Type = LevelLog
	}
	f.write(levelCustom, opts, &style, values)
}

func (f *Formatter) write(level Level, opts Options, custom *CustomStyle, values []any) {
	r := f.defaults.Merge(opts).resolve(level, f.out.Mode())

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Stringify(v, r.jsonSpacer)
	}

	f.out.Emit(Entry{
		Level:          level,
		Target:         r.target,
		Message:        strings.Join(parts, " "),
		Pad:            r.pad,
		LineBreakStart: r.lineBreakStart,
		LineBreakEnd:   r.lineBreakEnd,
		Custom:         custom,
	})
}
