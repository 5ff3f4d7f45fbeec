package level

import (
	"fmt"
	"strconv"
)

// Attributes holds the properties of one object as read from a level file.
type Attributes map[string]string

// String returns the named value or def when absent.
func (a Attributes) String(name, def string) string {
	if v, ok := a[name]; ok {
		return v
	}
	return def
}

// Float parses the named value, returning def when absent.
func (a Attributes) Float(name string, def float64) (float64, error) {
	v, ok := a[name]
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("property %s: %w", name, err)
	}
	return f, nil
}

// Int parses the named value, returning def when absent.
func (a Attributes) Int(name string, def int) (int, error) {
	v, ok := a[name]
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("property %s: %w", name, err)
	}
	return n, nil
}

// Bool parses the named value ("1"/"0", "true"/"false"), returning def when absent.
func (a Attributes) Bool(name string, def bool) (bool, error) {
	v, ok := a[name]
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("property %s: %w", name, err)
	}
	return b, nil
}

// Property is one saved name/value pair.
type Property struct {
	Name  string
	Value string
}

// Properties is an ordered list of saved properties.
type Properties []Property

// Add appends a string property.
func (p *Properties) Add(name, value string) {
	*p = append(*p, Property{Name: name, Value: value})
}

// AddFloat appends a float property in its shortest exact form.
func (p *Properties) AddFloat(name string, v float64) {
	p.Add(name, strconv.FormatFloat(v, 'f', -1, 64))
}

// AddInt appends an integer property.
func (p *Properties) AddInt(name string, v int) {
	p.Add(name, strconv.Itoa(v))
}

// AddBool appends a boolean property as "1" or "0".
func (p *Properties) AddBool(name string, v bool) {
	if v {
		p.Add(name, "1")
		return
	}
	p.Add(name, "0")
}

// Get returns the last value stored under name.
func (p Properties) Get(name string) (string, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Name == name {
			return p[i].Value, true
		}
	}
	return "", false
}

// Attributes converts the list to a lookup map. Later entries win.
func (p Properties) Attributes() Attributes {
	a := make(Attributes, len(p))
	for _, prop := range p {
		a[prop.Name] = prop.Value
	}
	return a
}
