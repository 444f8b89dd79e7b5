// Package jsconsole connects consolefmt to a goja JavaScript runtime.
//
// New adapts the runtime's console object into a consolefmt.Console, so a
// browser mode Formatter prints through it. Register exposes a Formatter
// to scripts as console.fmt. Install defines a console object printing to
// Go writers for runtimes that have none.
//
// A goja.Runtime is not safe for concurrent use; neither are the values
// returned here.
package jsconsole

import (
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"
	"github.com/pkg/errors"

	"github.com/mordilloSan/go-consolefmt/consolefmt"
)

// Console is a consolefmt.Console backed by a runtime's console object.
type Console struct {
	vm  *goja.Runtime
	obj *goja.Object
}

// New returns the console object of vm as a consolefmt.Console.
func New(vm *goja.Runtime) (*Console, error) {
	obj, ok := globalConsole(vm)
	if !ok {
		return nil, errors.New("runtime has no console object")
	}
	return &Console{vm: vm, obj: obj}, nil
}

// Method implements consolefmt.Console. Properties that are not functions
// are reported as missing. Exceptions thrown by the method are discarded.
func (c *Console) Method(name consolefmt.Level) (consolefmt.PrintFunc, bool) {
	fn, ok := goja.AssertFunction(c.obj.Get(string(name)))
	if !ok {
		return nil, false
	}
	return func(args ...any) {
		vals := make([]goja.Value, len(args))
		for i, a := range args {
			vals[i] = c.vm.ToValue(a)
		}
		_, _ = fn(c.obj, vals...)
	}, true
}

// Register installs f as console.fmt, creating console when vm has none.
//
// console.fmt.log/info/warn/error take values only. console.fmt.with(opts)
// returns the same four methods bound to opts, where opts may carry type,
// pad, lineBreakStart, lineBreakEnd and jsonSpacer.
func Register(vm *goja.Runtime, f *consolefmt.Formatter) error {
	console, ok := globalConsole(vm)
	if !ok {
		console = vm.NewObject()
		if err := vm.Set("console", console); err != nil {
			return errors.Wrap(err, "define console")
		}
	}

	methods, err := bind(vm, f, consolefmt.Options{})
	if err != nil {
		return err
	}
	err = methods.Set("with", func(call goja.FunctionCall) goja.Value {
		bound, err := bind(vm, f, exportOptions(call.Argument(0)))
		if err != nil {
			panic(vm.NewGoError(err))
		}
		return bound
	})
	if err != nil {
		return errors.Wrap(err, "define console.fmt.with")
	}

	return errors.Wrap(console.Set("fmt", methods), "define console.fmt")
}

func bind(vm *goja.Runtime, f *consolefmt.Formatter, opts consolefmt.Options) (*goja.Object, error) {
	obj := vm.NewObject()
	levels := []consolefmt.Level{
		consolefmt.LevelLog,
		consolefmt.LevelInfo,
		consolefmt.LevelWarn,
		consolefmt.LevelError,
	}
	for _, level := range levels {
		level := level
		err := obj.Set(string(level), func(call goja.FunctionCall) goja.Value {
			f.Print(level, opts, exportArgs(call.Arguments)...)
			return goja.Undefined()
		})
		if err != nil {
			return nil, errors.Wrapf(err, "define console.fmt.%s", level)
		}
	}
	return obj, nil
}

// Install defines a console object on vm whose log, info, debug and table
// methods print to stdout and whose warn, error, trace and assert methods
// print to stderr. Arguments are joined by spaces; %c directives are
// removed together with the style argument they consume.
func Install(vm *goja.Runtime, stdout, stderr io.Writer) error {
	console := vm.NewObject()
	for _, level := range consolefmt.AllLevels() {
		w := stdout
		switch level {
		case consolefmt.LevelWarn, consolefmt.LevelError, consolefmt.LevelTrace, consolefmt.LevelAssert:
			w = stderr
		}
		err := console.Set(string(level), func(call goja.FunctionCall) goja.Value {
			fmt.Fprintln(w, joinArgs(call.Arguments))
			return goja.Undefined()
		})
		if err != nil {
			return errors.Wrapf(err, "define console.%s", level)
		}
	}
	return errors.Wrap(vm.Set("console", console), "define console")
}

func globalConsole(vm *goja.Runtime) (*goja.Object, bool) {
	v := vm.GlobalObject().Get("console")
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, false
	}
	obj, ok := v.(*goja.Object)
	return obj, ok
}

func joinArgs(args []goja.Value) string {
	parts := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		s := args[i].String()
		if n := strings.Count(s, "%c"); n > 0 {
			s = strings.ReplaceAll(s, "%c", "")
			i += n
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func exportArgs(args []goja.Value) []any {
	out := make([]any, len(args))
	for i, v := range args {
		out[i] = exportValue(v)
	}
	return out
}

// exportValue converts a JS value into what consolefmt.Stringify expects.
func exportValue(v goja.Value) any {
	switch {
	case v == nil || goja.IsUndefined(v):
		return "undefined"
	case goja.IsNull(v):
		return nil
	}
	if sym, ok := v.(*goja.Symbol); ok {
		return sym.String()
	}
	if obj, ok := v.(*goja.Object); ok && obj.ClassName() == "Error" {
		return errors.New(obj.Get("message").String())
	}
	return v.Export()
}

func exportOptions(v goja.Value) consolefmt.Options {
	var opts consolefmt.Options
	obj, ok := v.(*goja.Object)
	if !ok {
		return opts
	}

	if t, ok := field(obj, "type"); ok {
		opts.Type = consolefmt.Level(t.String())
	}
	if b, ok := field(obj, "lineBreakStart"); ok {
		opts.LineBreakStart = consolefmt.Bool(b.ToBoolean())
	}
	if b, ok := field(obj, "lineBreakEnd"); ok {
		opts.LineBreakEnd = consolefmt.Bool(b.ToBoolean())
	}
	if b, ok := field(obj, "pad"); ok {
		opts.Pad = consolefmt.Bool(b.ToBoolean())
	}
	if n, ok := field(obj, "jsonSpacer"); ok {
		opts.JSONSpacer = consolefmt.Int(int(n.ToInteger()))
	}
	return opts
}

func field(obj *goja.Object, name string) (goja.Value, bool) {
	v := obj.Get(name)
	if v == nil || goja.IsUndefined(v) {
		return nil, false
	}
	return v, true
}
