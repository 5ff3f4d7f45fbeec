package scripting

import (
	"errors"
	"strings"
	"testing"
)

func TestSendWalksParents(t *testing.T) {
	rt := NewRuntime(nil, nil)
	base := rt.DefineClass("Base", nil)
	child := rt.DefineClass("Child", base)

	rt.DefineMethod(base, "hello", func(*Runtime, *Object, []Value) (Value, error) {
		return "base", nil
	}, ArgsNone())

	obj, err := rt.New("Child")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := rt.Send(obj, "hello")
	if err != nil || got != "base" {
		t.Errorf("Send(hello) = %v, %v; want base", got, err)
	}

	rt.DefineMethod(child, "hello", func(*Runtime, *Object, []Value) (Value, error) {
		return "child", nil
	}, ArgsNone())
	if got, _ := rt.Send(obj, "hello"); got != "child" {
		t.Errorf("override not used, got %v", got)
	}
	if !child.IsA("Base") || base.IsA("Child") {
		t.Error("IsA does not follow the parent chain")
	}
}

func TestSendErrors(t *testing.T) {
	rt := NewRuntime(nil, nil)
	c := rt.DefineClass("Thing", nil)
	rt.DefineMethod(c, "two", func(*Runtime, *Object, []Value) (Value, error) {
		return nil, nil
	}, ArgsReq(2))
	obj, _ := rt.New("Thing")

	_, err := rt.Send(obj, "missing")
	var noMethod *NoMethodError
	if !errors.As(err, &noMethod) || noMethod.Method != "missing" || noMethod.Class != "Thing" {
		t.Errorf("Send(missing) error = %v, want NoMethodError", err)
	}

	_, err = rt.Send(obj, "two", 1)
	if !IsArgumentError(err) {
		t.Fatalf("Send(two, 1) error = %v, want ArgumentError", err)
	}
	if want := "wrong number of arguments (given 1, expected 2)"; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}

	if _, err := rt.Send(nil, "two"); !errors.As(err, &noMethod) {
		t.Errorf("Send on nil = %v, want NoMethodError", err)
	}
}

func TestNewUnknownClass(t *testing.T) {
	rt := NewRuntime(nil, nil)
	if _, err := rt.New("Dragon"); err == nil || !strings.Contains(err.Error(), "Dragon") {
		t.Errorf("New(Dragon) error = %v", err)
	}
}

func TestNewWithoutInitializeRejectsArgs(t *testing.T) {
	rt := NewRuntime(nil, nil)
	rt.DefineClass("Plain", nil)
	if _, err := rt.New("Plain", 1); !IsArgumentError(err) {
		t.Errorf("New(Plain, 1) error = %v, want ArgumentError", err)
	}
}

func TestGetArgs(t *testing.T) {
	var (
		sym Symbol
		f   float64
		i   int
		b   bool
		o   Value
	)

	if err := GetArgs([]Value{"green", 3, 7, nil, "x"}, "nfibo", &sym, &f, &i, &b, &o); err != nil {
		t.Fatalf("GetArgs: %v", err)
	}
	if sym != "green" || f != 3 || i != 7 || b || o != "x" {
		t.Errorf("got %v %v %v %v %v", sym, f, i, b, o)
	}

	tests := []struct {
		name   string
		args   []Value
		format string
		dst    any
		check  func(error) bool
	}{
		{"float from string", []Value{"fast"}, "f", &f, IsTypeError},
		{"symbol from number", []Value{1.5}, "n", &sym, IsTypeError},
		{"int from float", []Value{1.5}, "i", &i, IsTypeError},
		{"too few", []Value{}, "f", &f, IsArgumentError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetArgs(tt.args, tt.format, tt.dst)
			if !tt.check(err) {
				t.Errorf("GetArgs error = %v", err)
			}
		})
	}
}

func TestBoundClasses(t *testing.T) {
	rt := NewRuntime(nil, nil)
	spika := rt.Class("Spika")
	if spika == nil {
		t.Fatal("Spika class not defined")
	}
	if !spika.IsA("Enemy") || !spika.IsA("Sprite") {
		t.Error("Spika should derive from Enemy and Sprite")
	}

	want := []string{"color", "color=", "initialize", "speed", "speed="}
	got := spika.Methods()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Spika methods = %v, want %v", got, want)
	}
}
