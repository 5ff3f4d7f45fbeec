package scripting

import (
	"errors"

	"github.com/vovakirdan/tui-maryo/internal/enemies"
)

// ErrNoLevel is returned when an object is created without an active level.
var ErrNoLevel = errors.New("scripting: no active level")

func spikaOf(self *Object) (*enemies.Spika, error) {
	s, ok := self.Data.(*enemies.Spika)
	if !ok {
		return nil, typeErrorf("%s is not an initialized spika", self)
	}
	return s, nil
}

// bindSpika defines the Spika class:
//
//	Spika.new         creates a spika in the active level
//	color= (sym)      sets :orange, :green, :grey or :red and resets the speed
//	color             returns the color symbol
//	speed= (float)    sets the rolling speed, must be >= 0
//	speed             returns the rolling speed
func bindSpika(rt *Runtime) {
	c := rt.DefineClass("Spika", rt.Class("Enemy"))

	rt.DefineMethod(c, "initialize", spikaInitialize, ArgsNone())
	rt.DefineMethod(c, "color=", spikaSetColor, ArgsReq(1))
	rt.DefineMethod(c, "color", spikaColor, ArgsNone())
	rt.DefineMethod(c, "speed=", spikaSetSpeed, ArgsReq(1))
	rt.DefineMethod(c, "speed", spikaSpeed, ArgsNone())
}

// spikaInitialize creates the native spika. The level's sprite manager
// owns it from here on; it is marked spawned so saving the level skips it.
func spikaInitialize(rt *Runtime, self *Object, _ []Value) (Value, error) {
	lvl := rt.Level()
	if lvl == nil {
		return nil, ErrNoLevel
	}

	s := enemies.NewSpika(lvl.Config().Spika)
	s.SetSpawned(true)
	lvl.Sprites.Add(s)
	self.Data = s

	rt.Logger().Debug("spika created", "id", s.ID())
	return self, nil
}

func spikaSetColor(_ *Runtime, self *Object, args []Value) (Value, error) {
	var sym Symbol
	if err := GetArgs(args, "n", &sym); err != nil {
		return nil, err
	}
	s, err := spikaOf(self)
	if err != nil {
		return nil, err
	}

	c, ok := enemies.ParseColor(string(sym))
	if !ok {
		return nil, argumentErrorf("Invalid spika color %s", string(sym))
	}
	s.SetColor(c)
	return sym, nil
}

// spikaColor has no symbol for red; a red spika reports nil.
func spikaColor(_ *Runtime, self *Object, _ []Value) (Value, error) {
	s, err := spikaOf(self)
	if err != nil {
		return nil, err
	}

	switch s.Color() {
	case enemies.ColorOrange:
		return Symbol("orange"), nil
	case enemies.ColorGreen:
		return Symbol("green"), nil
	case enemies.ColorGrey:
		return Symbol("grey"), nil
	default:
		return nil, nil
	}
}

func spikaSetSpeed(_ *Runtime, self *Object, args []Value) (Value, error) {
	var speed float64
	if err := GetArgs(args, "f", &speed); err != nil {
		return nil, err
	}
	s, err := spikaOf(self)
	if err != nil {
		return nil, err
	}
	if err := s.SetSpeed(speed); err != nil {
		if errors.Is(err, enemies.ErrNegativeSpeed) {
			return nil, rangeErrorf("Spika speed must be >= 0")
		}
		return nil, err
	}
	return speed, nil
}

func spikaSpeed(_ *Runtime, self *Object, _ []Value) (Value, error) {
	s, err := spikaOf(self)
	if err != nil {
		return nil, err
	}
	return s.Speed(), nil
}
