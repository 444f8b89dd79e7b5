package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dop251/goja"
	"github.com/rs/zerolog"

	"github.com/mordilloSan/go-consolefmt/consolefmt"
	"github.com/mordilloSan/go-consolefmt/consolefmt/jsconsole"
)

// Prints its arguments through consolefmt, or runs a script that can call
// console.fmt.
//
// Usage:
//
//	go-consolefmt [options] value...
//	go-consolefmt -level warn count: 5 '{"a":1}'
//	go-consolefmt -script demo.js
func main() {
	noColor := os.Getenv("NO_COLOR") != ""
	diag := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}).Level(zerolog.InfoLevel).With().Timestamp().Logger()

	var (
		configPath = flag.String("config", "", "Path to a TOML configuration file")
		mode       = flag.String("mode", "", "Output mode: auto, server or browser")
		color      = flag.String("color", "", "Colour: auto, always or never")
		level      = flag.String("level", string(consolefmt.LevelLog), "Level to print the arguments at")
		pad        = flag.Bool("pad", false, "Surround the message with spaces")
		spacer     = flag.Int("spacer", -1, "JSON indentation width (-1 keeps the configured value)")
		script     = flag.String("script", "", "JavaScript file to run with console.fmt available")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Console output formatter\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] value...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if !consolefmt.Level(*level).Valid() {
		diag.Fatal().Str("level", *level).Strs("valid", levelNames()).Msg("unknown level")
	}

	cfg := consolefmt.Config{}
	if *configPath != "" {
		var err error
		if cfg, err = consolefmt.LoadConfig(*configPath); err != nil {
			diag.Fatal().Err(err).Msg("failed to load configuration")
		}
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *color != "" {
		cfg.Color = *color
	}

	var vm *goja.Runtime
	if *script != "" || cfg.Mode == consolefmt.ModeBrowser {
		vm = goja.New()
		if err := jsconsole.Install(vm, os.Stdout, os.Stderr); err != nil {
			diag.Fatal().Err(err).Msg("failed to install script console")
		}
		console, err := jsconsole.New(vm)
		if err != nil {
			diag.Fatal().Err(err).Msg("failed to adapt script console")
		}
		cfg.Console = console
	}

	f, err := consolefmt.New(cfg)
	if err != nil {
		diag.Fatal().Err(err).Msg("invalid configuration")
	}

	if *script != "" {
		runScript(diag, vm, f, *script)
		return
	}

	opts := consolefmt.Options{}
	if *pad {
		opts.Pad = consolefmt.Bool(true)
	}
	if *spacer >= 0 {
		opts.JSONSpacer = consolefmt.Int(*spacer)
	}
	f.Print(consolefmt.Level(*level), opts, decodeArgs(flag.Args())...)
}

func runScript(diag zerolog.Logger, vm *goja.Runtime, f *consolefmt.Formatter, path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		diag.Fatal().Err(err).Str("script", path).Msg("failed to read script")
	}
	if err := jsconsole.Register(vm, f); err != nil {
		diag.Fatal().Err(err).Msg("failed to register console.fmt")
	}
	if _, err := vm.RunScript(path, string(src)); err != nil {
		diag.Fatal().Err(err).Str("script", path).Msg("script failed")
	}
}

// decodeArgs turns arguments that are JSON objects or arrays into values,
// so they are printed as structured data.
func decodeArgs(args []string) []any {
	values := make([]any, len(args))
	for i, a := range args {
		values[i] = a
		if a == "" || (a[0] != '{' && a[0] != '[') {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(a), &v); err == nil {
			values[i] = v
		}
	}
	return values
}

func levelNames() []string {
	levels := consolefmt.AllLevels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = string(l)
	}
	return names
}
