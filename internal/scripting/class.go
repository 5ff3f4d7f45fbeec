// Package scripting exposes level objects to level scripts. A small
// class table gives scripts a dynamic object model (classes, methods and
// inheritance); Engine runs Go scripts through yaegi on top of it.
package scripting

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maryo/internal/level"
)

// Method implements one script method. self is the receiver.
type Method func(rt *Runtime, self *Object, args []Value) (Value, error)

// Arity is the number of arguments a method accepts.
type Arity struct {
	req int
}

// ArgsNone accepts no arguments.
func ArgsNone() Arity { return Arity{} }

// ArgsReq accepts exactly n arguments.
func ArgsReq(n int) Arity { return Arity{req: n} }

type methodEntry struct {
	fn    Method
	arity Arity
}

// Class is a named method table with an optional parent.
type Class struct {
	Name    string
	Parent  *Class
	methods map[string]methodEntry
}

// lookup finds a method on the class or its ancestors.
func (c *Class) lookup(name string) (methodEntry, bool) {
	for k := c; k != nil; k = k.Parent {
		if m, ok := k.methods[name]; ok {
			return m, true
		}
	}
	return methodEntry{}, false
}

// IsA reports whether c is name or inherits from it.
func (c *Class) IsA(name string) bool {
	for k := c; k != nil; k = k.Parent {
		if k.Name == name {
			return true
		}
	}
	return false
}

// Methods returns the names defined directly on the class, sorted.
func (c *Class) Methods() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Object is an instance of a script class. Data holds the native value
// the instance wraps.
type Object struct {
	Class *Class
	Data  any
}

func (o *Object) String() string {
	if o == nil || o.Class == nil {
		return "#<nil>"
	}
	return fmt.Sprintf("#<%s>", o.Class.Name)
}

// Runtime holds the class table and the level scripts act on.
type Runtime struct {
	classes map[string]*Class
	level   *level.Level
	logger  *log.Logger
}

// NewRuntime creates a runtime with the level object classes bound.
// A nil logger discards script output.
func NewRuntime(lvl *level.Level, logger *log.Logger) *Runtime {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := &Runtime{
		classes: make(map[string]*Class),
		level:   lvl,
		logger:  logger,
	}
	bindSprite(rt)
	bindEnemy(rt)
	bindSpika(rt)
	return rt
}

// Level returns the active level, or nil.
func (rt *Runtime) Level() *level.Level { return rt.level }

// SetLevel changes the active level.
func (rt *Runtime) SetLevel(lvl *level.Level) { rt.level = lvl }

// Logger returns the logger scripts write to.
func (rt *Runtime) Logger() *log.Logger { return rt.logger }

// DefineClass creates a class. Redefining a class returns the existing one.
func (rt *Runtime) DefineClass(name string, parent *Class) *Class {
	if c, ok := rt.classes[name]; ok {
		return c
	}
	c := &Class{Name: name, Parent: parent, methods: make(map[string]methodEntry)}
	rt.classes[name] = c
	return c
}

// Class returns a class by name, or nil.
func (rt *Runtime) Class(name string) *Class {
	return rt.classes[name]
}

// Classes returns the defined class names, sorted.
func (rt *Runtime) Classes() []string {
	names := make([]string, 0, len(rt.classes))
	for name := range rt.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefineMethod adds or replaces a method on c.
func (rt *Runtime) DefineMethod(c *Class, name string, fn Method, arity Arity) {
	c.methods[name] = methodEntry{fn: fn, arity: arity}
}

// New instantiates a class and calls its initialize method, if any.
func (rt *Runtime) New(className string, args ...Value) (*Object, error) {
	c := rt.classes[className]
	if c == nil {
		return nil, argumentErrorf("uninitialized constant %s", className)
	}
	obj := &Object{Class: c}
	if _, ok := c.lookup("initialize"); ok {
		if _, err := rt.Send(obj, "initialize", args...); err != nil {
			return nil, err
		}
	} else if len(args) > 0 {
		return nil, argumentErrorf("wrong number of arguments (given %d, expected 0)", len(args))
	}
	return obj, nil
}

// Send calls a method on obj, searching the class and its ancestors.
func (rt *Runtime) Send(obj *Object, name string, args ...Value) (Value, error) {
	if obj == nil || obj.Class == nil {
		return nil, &NoMethodError{Class: "NilClass", Method: name}
	}
	m, ok := obj.Class.lookup(name)
	if !ok {
		return nil, &NoMethodError{Class: obj.Class.Name, Method: name}
	}
	if len(args) != m.arity.req {
		return nil, argumentErrorf("wrong number of arguments (given %d, expected %d)", len(args), m.arity.req)
	}
	return m.fn(rt, obj, args)
}

// RespondTo reports whether obj has the named method.
func (rt *Runtime) RespondTo(obj *Object, name string) bool {
	if obj == nil || obj.Class == nil {
		return false
	}
	_, ok := obj.Class.lookup(name)
	return ok
}
