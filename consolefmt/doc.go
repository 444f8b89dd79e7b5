// Package consolefmt formats console output with colour, padding,
// line-break framing and structured value serialization.
//
// # Console Output
//
// A Formatter renders through an Output chosen at construction time:
//
//   - TerminalOutput (server mode) embeds ANSI escape sequences and writes
//     log/info/debug/table to stdout, warn/error/trace/assert to stderr.
//   - BrowserOutput (browser mode) calls a host console method with a %c
//     template and a CSS style directive.
//
// # Features
//
//   - Explicit instances, no global state
//   - Strings, errors, numbers and booleans printed verbatim
//   - Everything else printed as indented JSON, with "[Unserialisable Object]"
//     for values that cannot be encoded
//   - Per-call options via the *With methods; defaults via Config.Defaults
//   - Emit target override and fallback to the log method
//   - Custom palette colours
//   - TOML configuration via LoadConfig
//
// # Usage
//
// Build once at startup and pass the formatter to the code that prints:
//
//	f, err := consolefmt.New(consolefmt.Config{})
//	if err != nil {
//	    return err
//	}
//	f.Info("listening on", 8080)
//	f.Error(err)
//
// Frame a single call:
//
//	f.WarnWith(consolefmt.Options{Pad: consolefmt.Bool(true)}, map[string]int{"retries": 3})
//
// Values are never mistaken for options: a map with a "pad" key passed to
// Info is printed as JSON.
//
// # Defaults
//
// Pad is off. Line breaks before and after the message are on in server
// mode and off in browser mode. Structured values are indented by 2 spaces.
package consolefmt
