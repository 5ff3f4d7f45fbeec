package scripting

// scriptEnemy is the native side of the Enemy class.
type scriptEnemy interface {
	scriptSprite
	Kill()
	Dead() bool
	FireResistant() bool
	SetFireResistant(v bool)
	IceResistance() float64
	SetIceResistance(v float64)
	KillPoints() int
	SetKillPoints(p int)
}

func enemyOf(self *Object) (scriptEnemy, error) {
	e, ok := self.Data.(scriptEnemy)
	if !ok {
		return nil, typeErrorf("%s is not an initialized enemy", self)
	}
	return e, nil
}

// bindEnemy defines the Enemy class. Enemy cannot be instantiated itself;
// concrete enemies derive from it.
func bindEnemy(rt *Runtime) {
	c := rt.DefineClass("Enemy", rt.Class("Sprite"))

	rt.DefineMethod(c, "kill", enemyKill, ArgsNone())
	rt.DefineMethod(c, "dead?", enemyDead, ArgsNone())
	rt.DefineMethod(c, "fire_resistant=", enemySetFireResistant, ArgsReq(1))
	rt.DefineMethod(c, "fire_resistant?", enemyFireResistant, ArgsNone())
	rt.DefineMethod(c, "ice_resistance=", enemySetIceResistance, ArgsReq(1))
	rt.DefineMethod(c, "ice_resistance", enemyIceResistance, ArgsNone())
	rt.DefineMethod(c, "kill_points=", enemySetKillPoints, ArgsReq(1))
	rt.DefineMethod(c, "kill_points", enemyKillPoints, ArgsNone())
}

func enemyKill(_ *Runtime, self *Object, _ []Value) (Value, error) {
	e, err := enemyOf(self)
	if err != nil {
		return nil, err
	}
	e.Kill()
	return nil, nil
}

func enemyDead(_ *Runtime, self *Object, _ []Value) (Value, error) {
	e, err := enemyOf(self)
	if err != nil {
		return nil, err
	}
	return e.Dead(), nil
}

func enemySetFireResistant(_ *Runtime, self *Object, args []Value) (Value, error) {
	var v bool
	if err := GetArgs(args, "b", &v); err != nil {
		return nil, err
	}
	e, err := enemyOf(self)
	if err != nil {
		return nil, err
	}
	e.SetFireResistant(v)
	return v, nil
}

func enemyFireResistant(_ *Runtime, self *Object, _ []Value) (Value, error) {
	e, err := enemyOf(self)
	if err != nil {
		return nil, err
	}
	return e.FireResistant(), nil
}

func enemySetIceResistance(_ *Runtime, self *Object, args []Value) (Value, error) {
	var v float64
	if err := GetArgs(args, "f", &v); err != nil {
		return nil, err
	}
	if v < 0 || v > 1 {
		return nil, rangeErrorf("Ice resistance must be between 0 and 1")
	}
	e, err := enemyOf(self)
	if err != nil {
		return nil, err
	}
	e.SetIceResistance(v)
	return v, nil
}

func enemyIceResistance(_ *Runtime, self *Object, _ []Value) (Value, error) {
	e, err := enemyOf(self)
	if err != nil {
		return nil, err
	}
	return e.IceResistance(), nil
}

func enemySetKillPoints(_ *Runtime, self *Object, args []Value) (Value, error) {
	var p int
	if err := GetArgs(args, "i", &p); err != nil {
		return nil, err
	}
	e, err := enemyOf(self)
	if err != nil {
		return nil, err
	}
	e.SetKillPoints(p)
	return p, nil
}

func enemyKillPoints(_ *Runtime, self *Object, _ []Value) (Value, error) {
	e, err := enemyOf(self)
	if err != nil {
		return nil, err
	}
	return e.KillPoints(), nil
}
