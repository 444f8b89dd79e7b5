package consolefmt

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Values accepted by Config.Mode.
const (
	// ModeAuto picks browser under js/wasm and server otherwise.
	ModeAuto = "auto"
	// ModeServer writes ANSI-styled text to streams.
	ModeServer = "server"
	// ModeBrowser calls a host console with a CSS directive.
	ModeBrowser = "browser"
)

// Values accepted by Config.Color.
const (
	// ColorAuto styles only terminals, unless NO_COLOR is set.
	ColorAuto = "auto"
	// ColorAlways styles every stream.
	ColorAlways = "always"
	// ColorNever writes plain text.
	ColorNever = "never"
)

// Config defines how New builds a Formatter.
type Config struct {
	// Mode selects the output strategy: auto, server or browser.
	// Default: "" (auto: browser under js/wasm, server otherwise)
	Mode string `toml:"mode" validate:"omitempty,oneof=auto server browser"`
	// Color controls ANSI styling in server mode: auto, always or never.
	// Auto enables it when stdout is a terminal and NO_COLOR is unset.
	// Default: "" (auto)
	Color string `toml:"color" validate:"omitempty,oneof=auto always never"`
	// Defaults apply to every call beneath its own options.
	Defaults Options `toml:"defaults"`

	// Stdout receives log, info, debug and table output in server mode.
	// Default: nil (process stdout)
	Stdout io.Writer `toml:"-" validate:"-"`
	// Stderr receives warn, error, trace and assert output in server mode.
	// Default: nil (process stderr)
	Stderr io.Writer `toml:"-" validate:"-"`
	// Console is the host console used in browser mode.
	// Default: nil (the js/wasm host console when available)
	Console Console `toml:"-" validate:"-"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("level", validateLevel); err != nil {
		panic(err)
	}

	// Report fields by their TOML key.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateLevel(fl validator.FieldLevel) bool {
	return Level(fl.Field().String()).Valid()
}

// ValidationError is one invalid configuration field.
type ValidationError struct {
	FieldPath string
	Message   string
}

// ValidationErrors is every invalid field of a Config.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("\n  %d. %s: %s", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

// Validate checks every field of c.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate config")
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		// Drop the root struct name from the namespace.
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		msg := fmt.Sprintf("invalid value %v (%s", fe.Value(), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out = append(out, ValidationError{FieldPath: path, Message: msg + ")"})
	}
	return out
}

// LoadConfig reads a TOML configuration file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, errors.Wrap(err, "read config file")
	}

	dec := toml.NewDecoder(bytes.NewReader(content)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, errors.Wrapf(err, "parse %s at line %d, column %d", path, row, col)
		}
		return cfg, errors.Wrapf(err, "parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// New validates cfg and returns a formatter for the selected mode.
func New(cfg Config) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mode := defaultMode()
	switch cfg.Mode {
	case ModeServer:
		mode = ServerMode
	case ModeBrowser:
		mode = BrowserMode
	}

	if mode == BrowserMode {
		console := cfg.Console
		if console == nil {
			var ok bool
			if console, ok = hostConsole(); !ok {
				return nil, errors.New("browser mode requires a console")
			}
		}
		return NewFormatter(NewBrowserOutput(console), cfg.Defaults), nil
	}

	stdout, stderr := cfg.Stdout, cfg.Stderr
	color := useColor(cfg.Color, stdout)
	if stdout == nil {
		stdout = colorable.NewColorableStdout()
	}
	if stderr == nil {
		stderr = colorable.NewColorableStderr()
	}
	return NewFormatter(NewTerminalOutput(stdout, stderr, color), cfg.Defaults), nil
}

// useColor resolves a Color setting against stdout, nil meaning os.Stdout.
func useColor(setting string, stdout io.Writer) bool {
	switch setting {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	f, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
