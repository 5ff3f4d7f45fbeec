package level

import "testing"

func TestAttributesParsing(t *testing.T) {
	a := Attributes{
		"posx":    "12.5",
		"count":   "-1",
		"flag":    "1",
		"bad":     "x",
		"empty":   "",
		"message": "a < b & \"c\"",
	}

	if v, err := a.Float("posx", 0); err != nil || v != 12.5 {
		t.Errorf("Float(posx) = %v, %v", v, err)
	}
	if v, err := a.Int("count", 0); err != nil || v != -1 {
		t.Errorf("Int(count) = %v, %v", v, err)
	}
	if v, err := a.Bool("flag", false); err != nil || !v {
		t.Errorf("Bool(flag) = %v, %v", v, err)
	}
	if v, err := a.Float("missing", 7); err != nil || v != 7 {
		t.Errorf("Float(missing) = %v, %v, expected default", v, err)
	}
	if v, err := a.Int("empty", 3); err != nil || v != 3 {
		t.Errorf("Int(empty) = %v, %v, expected default", v, err)
	}
	if _, err := a.Float("bad", 0); err == nil {
		t.Error("Float(bad) should fail")
	}
	if _, err := a.Bool("bad", false); err == nil {
		t.Error("Bool(bad) should fail")
	}
	if got := a.String("message", ""); got != "a < b & \"c\"" {
		t.Errorf("String(message) = %q", got)
	}
}

func TestPropertiesOrderAndLookup(t *testing.T) {
	var p Properties
	p.AddFloat("posx", 3)
	p.AddInt("count", -1)
	p.AddBool("invisible", false)
	p.Add("text", "hi")
	p.Add("text", "again")

	if p[0].Name != "posx" || p[0].Value != "3" {
		t.Errorf("first property = %+v", p[0])
	}
	if v, _ := p.Get("invisible"); v != "0" {
		t.Errorf("invisible = %q, expected \"0\"", v)
	}
	if v, _ := p.Get("text"); v != "again" {
		t.Errorf("Get returns %q, expected the last value", v)
	}
	if _, ok := p.Get("nope"); ok {
		t.Error("Get of a missing name should report false")
	}
	if a := p.Attributes(); a["text"] != "again" || a["count"] != "-1" {
		t.Errorf("Attributes() = %v", a)
	}
}
