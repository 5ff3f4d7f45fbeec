package scripting

import "fmt"

// Value is anything a script passes to or receives from a method:
// nil, bool, int, float64, string, Symbol or *Object.
type Value = any

// Symbol is an interned name such as :green.
type Symbol string

func (s Symbol) String() string { return ":" + string(s) }

// GetArgs checks args against format and stores them into dst.
// Each format character consumes one argument:
//
//	n  Symbol (a string is converted)  -> *Symbol
//	f  float (an integer is converted) -> *float64
//	i  integer                         -> *int
//	b  boolean                         -> *bool
//	o  any value                       -> *Value
func GetArgs(args []Value, format string, dst ...any) error {
	if len(format) != len(dst) {
		return fmt.Errorf("scripting: GetArgs format %q has %d destinations", format, len(dst))
	}
	if len(args) != len(format) {
		return argumentErrorf("wrong number of arguments (given %d, expected %d)", len(args), len(format))
	}

	for i, spec := range format {
		var err error
		switch spec {
		case 'n':
			*dst[i].(*Symbol), err = toSymbol(args[i])
		case 'f':
			*dst[i].(*float64), err = toFloat(args[i])
		case 'i':
			*dst[i].(*int), err = toInt(args[i])
		case 'b':
			*dst[i].(*bool), err = toBool(args[i])
		case 'o':
			*dst[i].(*Value) = args[i]
		default:
			return fmt.Errorf("scripting: unknown GetArgs format %q", spec)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func toSymbol(v Value) (Symbol, error) {
	switch x := v.(type) {
	case Symbol:
		return x, nil
	case string:
		return Symbol(x), nil
	default:
		return "", typeErrorf("%s is not a symbol nor a string", inspect(v))
	}
}

func toFloat(v Value) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	default:
		return 0, typeErrorf("%s cannot be converted to Float", inspect(v))
	}
}

func toInt(v Value) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case int32:
		return int(x), nil
	default:
		return 0, typeErrorf("%s cannot be converted to Integer", inspect(v))
	}
}

func toBool(v Value) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case nil:
		return false, nil
	default:
		return true, nil
	}
}

// inspect formats a value the way error messages show it.
func inspect(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", x)
	case Symbol:
		return x.String()
	case *Object:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
