//go:build js && wasm

package consolefmt

import "syscall/js"

// defaultMode is the mode picked when Config.Mode is auto.
func defaultMode() Mode {
	return BrowserMode
}

// hostConsole returns the global console of the JavaScript host.
func hostConsole() (Console, bool) {
	c := js.Global().Get("console")
	if c.IsUndefined() || c.IsNull() {
		return nil, false
	}
	return domConsole{v: c}, true
}

type domConsole struct {
	v js.Value
}

func (d domConsole) Method(name Level) (PrintFunc, bool) {
	if d.v.Get(string(name)).Type() != js.TypeFunction {
		return nil, false
	}
	return func(args ...any) {
		d.v.Call(string(name), args...)
	}, true
}
