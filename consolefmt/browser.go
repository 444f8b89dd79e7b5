package consolefmt

// PrintFunc is one print method of a host console.
type PrintFunc func(args ...any)

// Console looks up the print methods of a browser-like host console.
type Console interface {
	// Method returns the print method called name, or false when the host
	// has no such callable method.
	Method(name Level) (PrintFunc, bool)
}

// ConsoleFuncs is a Console backed by a map of print methods.
type ConsoleFuncs map[Level]PrintFunc

// Method implements Console.
func (c ConsoleFuncs) Method(name Level) (PrintFunc, bool) {
	fn, ok := c[name]
	if !ok || fn == nil {
		return nil, false
	}
	return fn, true
}

// BrowserOutput renders entries as a %c template plus a CSS directive and
// hands both to the host console.
type BrowserOutput struct {
	console Console
}

// NewBrowserOutput returns a browser mode output printing to console.
func NewBrowserOutput(console Console) *BrowserOutput {
	return &BrowserOutput{console: console}
}

// Mode implements Output.
func (b *BrowserOutput) Mode() Mode {
	return BrowserMode
}

// Emit implements Output. A target the console lacks is printed with the
// log method; when that is missing too the entry is dropped.
func (b *BrowserOutput) Emit(e Entry) {
	fn, ok := b.console.Method(e.Target)
	if !ok {
		fn, ok = b.console.Method(LevelLog)
	}
	if !ok {
		return
	}
	template, style := b.Render(e)
	fn(template, style)
}

// Render returns the template and style directive Emit passes to the console.
func (b *BrowserOutput) Render(e Entry) (template, style string) {
	pad := e.padding()
	template = "%c" + newline(e.LineBreakStart) + pad + e.Message + pad + newline(e.LineBreakEnd)

	if e.Custom != nil {
		return template, e.Custom.css()
	}
	return template, BrowserStyle(e.Level)
}
