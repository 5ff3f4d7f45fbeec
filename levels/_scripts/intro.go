package main

import (
	"fmt"

	"maryo"
)

// Init adds a red spika guarding the flag and slows it down, since red
// ones are very fast.
func Init() error {
	lvl := maryo.Level()

	s, err := maryo.New("Spika")
	if err != nil {
		return err
	}
	if _, err := maryo.Send(s, "warp", lvl.Width-30, lvl.Height-4); err != nil {
		return err
	}
	if _, err := maryo.Send(s, "color=", maryo.Symbol("red")); err != nil {
		return err
	}
	if _, err := maryo.Send(s, "speed=", 6.0); err != nil {
		return err
	}
	if _, err := maryo.Send(s, "kill_points=", 2000); err != nil {
		return err
	}

	speed, err := maryo.Send(s, "speed")
	if err != nil {
		return err
	}
	maryo.Log("guard placed", "level", lvl.ID, "speed", fmt.Sprint(speed))
	return nil
}
