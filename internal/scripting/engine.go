package scripting

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/charmbracelet/log"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// ImportPath is the package scripts import to reach the level.
const ImportPath = "maryo"

// Standard packages scripts may import.
var allowedStdlib = []string{
	"errors/errors",
	"fmt/fmt",
	"math/math",
	"strconv/strconv",
	"strings/strings",
}

// LevelInfo describes the active level to scripts.
type LevelInfo struct {
	ID      string
	Name    string
	Width   float64
	Height  float64
	Objects int
}

// Engine runs level scripts written in Go. Each Run gets a fresh
// interpreter; state shared between scripts lives in the Runtime.
//
// A script is a main package that imports "maryo" and defines Init:
//
//	package main
//
//	import "maryo"
//
//	func Init() error {
//		s, err := maryo.New("Spika")
//		if err != nil {
//			return err
//		}
//		_, err = maryo.Send(s, "color=", maryo.Symbol("green"))
//		return err
//	}
type Engine struct {
	rt     *Runtime
	logger *log.Logger
}

// NewEngine creates an engine on top of rt. Script output goes to logger;
// nil discards it.
func NewEngine(rt *Runtime, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{rt: rt, logger: logger}
}

// Runtime returns the runtime scripts act on.
func (e *Engine) Runtime() *Runtime { return e.rt }

// RunFile runs the script at path.
func (e *Engine) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	return e.Run(path, string(src))
}

// Run evaluates src and calls its Init function, if defined.
// Errors returned by Init keep their type, so callers can match script
// errors with errors.As.
func (e *Engine) Run(name, src string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scripting: %s: panic: %v", name, r)
			e.logger.Error("script panicked", "script", name, "panic", r)
		}
	}()

	i := interp.New(interp.Options{})
	if err := i.Use(restrictedStdlib()); err != nil {
		return fmt.Errorf("scripting: %s: %w", name, err)
	}
	if err := i.Use(e.exports()); err != nil {
		return fmt.Errorf("scripting: %s: %w", name, err)
	}

	if _, err := i.Eval(src); err != nil {
		e.logger.Error("script failed to load", "script", name, "error", err)
		return fmt.Errorf("scripting: %s: %w", name, err)
	}

	v, evalErr := i.Eval("Init")
	if evalErr != nil {
		e.logger.Debug("script has no Init", "script", name)
		return nil
	}

	switch fn := v.Interface().(type) {
	case func() error:
		if err := fn(); err != nil {
			e.logger.Error("script Init failed", "script", name, "error", err)
			return fmt.Errorf("scripting: %s: %w", name, err)
		}
	case func():
		fn()
	default:
		return fmt.Errorf("scripting: %s: %w", name, errBadInit)
	}

	e.logger.Info("script loaded", "script", name)
	return nil
}

var errBadInit = errors.New("Init must be func() or func() error")

func restrictedStdlib() interp.Exports {
	restricted := interp.Exports{}
	for _, key := range allowedStdlib {
		if syms, ok := stdlib.Symbols[key]; ok {
			restricted[key] = syms
		}
	}
	return restricted
}

// exports builds the "maryo" package bound to this engine's runtime.
// Yaegi expects keys as "importPath/pkgName".
func (e *Engine) exports() interp.Exports {
	return interp.Exports{
		ImportPath + "/maryo": {
			"New": reflect.ValueOf(func(class string, args ...any) (*Object, error) {
				return e.rt.New(class, args...)
			}),
			"Send": reflect.ValueOf(func(obj *Object, method string, args ...any) (any, error) {
				return e.rt.Send(obj, method, args...)
			}),
			"RespondTo": reflect.ValueOf(e.rt.RespondTo),
			"Log": reflect.ValueOf(func(msg string, keyvals ...any) {
				e.logger.Info(msg, keyvals...)
			}),
			"Level":           reflect.ValueOf(e.levelInfo),
			"IsArgumentError": reflect.ValueOf(IsArgumentError),
			"IsRangeError":    reflect.ValueOf(IsRangeError),
			"IsTypeError":     reflect.ValueOf(IsTypeError),

			"Symbol":    reflect.ValueOf((*Symbol)(nil)),
			"Object":    reflect.ValueOf((*Object)(nil)),
			"LevelInfo": reflect.ValueOf((*LevelInfo)(nil)),
		},
	}
}

func (e *Engine) levelInfo() LevelInfo {
	lvl := e.rt.Level()
	if lvl == nil {
		return LevelInfo{}
	}
	return LevelInfo{
		ID:      lvl.ID,
		Name:    lvl.Settings.Name,
		Width:   lvl.Settings.Width,
		Height:  lvl.Settings.Height,
		Objects: lvl.Sprites.Len(),
	}
}
