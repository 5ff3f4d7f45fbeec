package level

import "testing"

func TestSpriteManagerAddFindRemove(t *testing.T) {
	m := NewSpriteManager()
	a := newStubBox(0, 0)
	b := newStubBox(5, 0)

	m.Add(a)
	m.Add(b)
	m.Add(a) // duplicate is ignored

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", m.Len())
	}
	if m.Find(b.ID()) != b {
		t.Error("Find should return the added sprite")
	}
	if m.At(0) != a || m.At(5) != nil {
		t.Error("At should follow insertion order and return nil out of range")
	}

	if !m.Remove(a.ID()) {
		t.Error("Remove of a present sprite should succeed")
	}
	if m.Remove(a.ID()) {
		t.Error("Remove of an absent sprite should fail")
	}
	if m.Len() != 1 || m.Find(a.ID()) != nil {
		t.Error("removed sprite should be gone")
	}
}

func TestSpriteManagerPersistent(t *testing.T) {
	m := NewSpriteManager()
	placed := newStubBox(0, 0)
	spawned := newStubBox(1, 0)
	spawned.SetSpawned(true)

	m.Add(placed)
	m.Add(spawned)

	got := m.Persistent()
	if len(got) != 1 || got[0] != placed {
		t.Errorf("Persistent() = %v, expected only the placed sprite", got)
	}
}

func TestBaseIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		b := NewBase("x", 1, 1)
		if seen[b.ID()] {
			t.Fatalf("duplicate ID %s", b.ID())
		}
		seen[b.ID()] = true
	}
}

func TestBasePositions(t *testing.T) {
	b := NewBase("x", 2, 3)
	b.SetPos(4, 5, true)
	b.Move(1, 1)

	if x, y := b.Pos(); x != 5 || y != 6 {
		t.Errorf("Pos() = (%v, %v), expected (5, 6)", x, y)
	}
	if x, y := b.StartPos(); x != 4 || y != 5 {
		t.Errorf("StartPos() = (%v, %v), expected (4, 5)", x, y)
	}

	var p Properties
	b.SavePos(&p)
	if v, _ := p.Get("posx"); v != "4" {
		t.Errorf("saved posx = %q, expected the start position", v)
	}
}
