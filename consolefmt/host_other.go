//go:build !(js && wasm)

package consolefmt

// defaultMode is the mode picked when Config.Mode is auto.
func defaultMode() Mode {
	return ServerMode
}

// hostConsole reports that no browser console exists outside js/wasm.
func hostConsole() (Console, bool) {
	return nil, false
}
