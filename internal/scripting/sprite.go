package scripting

import "github.com/vovakirdan/tui-maryo/internal/level"

// scriptSprite is what every bound level object wraps.
type scriptSprite interface {
	level.Sprite
	Pos() (float64, float64)
	SetPos(x, y float64, newStart bool)
	SetSpawned(spawned bool)
}

func spriteOf(self *Object) (scriptSprite, error) {
	s, ok := self.Data.(scriptSprite)
	if !ok {
		return nil, typeErrorf("%s is not an initialized level object", self)
	}
	return s, nil
}

// bindSprite defines the Sprite class, the root of all level objects.
func bindSprite(rt *Runtime) {
	c := rt.DefineClass("Sprite", nil)

	rt.DefineMethod(c, "warp", spriteWarp, ArgsReq(2))
	rt.DefineMethod(c, "x", spriteX, ArgsNone())
	rt.DefineMethod(c, "y", spriteY, ArgsNone())
	rt.DefineMethod(c, "uid", spriteUID, ArgsNone())
	rt.DefineMethod(c, "spawned?", spriteSpawned, ArgsNone())
}

// warp(x, y) moves the object and makes the new position its start.
func spriteWarp(_ *Runtime, self *Object, args []Value) (Value, error) {
	var x, y float64
	if err := GetArgs(args, "ff", &x, &y); err != nil {
		return nil, err
	}
	s, err := spriteOf(self)
	if err != nil {
		return nil, err
	}
	s.SetPos(x, y, true)
	return nil, nil
}

func spriteX(_ *Runtime, self *Object, _ []Value) (Value, error) {
	s, err := spriteOf(self)
	if err != nil {
		return nil, err
	}
	x, _ := s.Pos()
	return x, nil
}

func spriteY(_ *Runtime, self *Object, _ []Value) (Value, error) {
	s, err := spriteOf(self)
	if err != nil {
		return nil, err
	}
	_, y := s.Pos()
	return y, nil
}

func spriteUID(_ *Runtime, self *Object, _ []Value) (Value, error) {
	s, err := spriteOf(self)
	if err != nil {
		return nil, err
	}
	return s.ID(), nil
}

func spriteSpawned(_ *Runtime, self *Object, _ []Value) (Value, error) {
	s, err := spriteOf(self)
	if err != nil {
		return nil, err
	}
	return s.IsSpawned(), nil
}
