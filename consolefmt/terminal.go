package consolefmt

import (
	"io"
	"sync"

	"github.com/valyala/fasttemplate"
)

// terminalFrame lays out one server mode line. The trailing newline is the
// one a console print adds after its argument.
const terminalFrame = "{{start}}{{style}}{{pad}}{{message}}{{pad}}{{reset}}{{end}}\n"

// TerminalOutput renders entries as ANSI styled text for a terminal.
// Warnings, errors, traces and assertions go to the error stream,
// everything else to the standard stream.
// Thread-safe for concurrent use.
type TerminalOutput struct {
	mu       sync.Mutex
	streams  map[Level]io.Writer
	fallback io.Writer
	color    bool
	frame    *fasttemplate.Template
}

// NewTerminalOutput returns a server mode output writing to stdout and stderr.
// When color is false the style and reset sequences are omitted.
func NewTerminalOutput(stdout, stderr io.Writer, color bool) *TerminalOutput {
	return &TerminalOutput{
		streams: map[Level]io.Writer{
			LevelLog:    stdout,
			LevelInfo:   stdout,
			LevelDebug:  stdout,
			LevelTable:  stdout,
			LevelWarn:   stderr,
			LevelError:  stderr,
			LevelTrace:  stderr,
			LevelAssert: stderr,
		},
		fallback: stdout,
		color:    color,
		frame:    fasttemplate.New(terminalFrame, "{{", "}}"),
	}
}

// Mode implements Output.
func (t *TerminalOutput) Mode() Mode {
	return ServerMode
}

// Emit implements Output. Targets without a stream use the standard stream.
func (t *TerminalOutput) Emit(e Entry) {
	line := t.Render(e)

	w, ok := t.streams[e.Target]
	if !ok || w == nil {
		w = t.fallback
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = io.WriteString(w, line)
}

// Render returns the text Emit writes for e.
func (t *TerminalOutput) Render(e Entry) string {
	style, reset := "", ""
	if t.color {
		style, reset = t.style(e), Reset
	}
	return t.frame.ExecuteString(map[string]interface{}{
		"start":   newline(e.LineBreakStart),
		"style":   style,
		"pad":     e.padding(),
		"message": e.Message,
		"reset":   reset,
		"end":     newline(e.LineBreakEnd),
	})
}

func (t *TerminalOutput) style(e Entry) string {
	if e.Custom != nil {
		return e.Custom.ansi()
	}
	return ServerStyle(e.Level)
}
