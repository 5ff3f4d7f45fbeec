// Package levelfile reads and writes the XML level format:
//
//	<level>
//	  <settings name="..." width="200" height="24" time_limit="300" start_x="2" start_y="0"/>
//	  <object type="box">
//	    <property name="posx" value="40"/>
//	    ...
//	  </object>
//	</level>
//
// Objects are built through the registry, so every object package that
// should be loadable must be imported for its side effects.
package levelfile

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/level"
	"github.com/vovakirdan/tui-maryo/internal/registry"
)

type xmlLevel struct {
	XMLName  xml.Name    `xml:"level"`
	Settings xmlSettings `xml:"settings"`
	Objects  []xmlObject `xml:"object"`
}

// xmlSettings mirrors level.Settings field for field.
type xmlSettings struct {
	Name      string  `xml:"name,attr"`
	Width     float64 `xml:"width,attr"`
	Height    float64 `xml:"height,attr"`
	TimeLimit int     `xml:"time_limit,attr"`
	StartX    float64 `xml:"start_x,attr"`
	StartY    float64 `xml:"start_y,attr"`
}

type xmlObject struct {
	Type       string        `xml:"type,attr"`
	Properties []xmlProperty `xml:"property"`
}

type xmlProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Loader builds levels from level files.
type Loader struct {
	cfg    config.GameConfig
	logger *log.Logger
}

// NewLoader creates a loader. A nil logger discards warnings.
func NewLoader(cfg config.GameConfig, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{cfg: cfg, logger: logger}
}

// Load reads a level. Objects of unknown type are skipped with a warning
// and kept in Level.Unknown; an object that fails to build aborts the load.
func (l *Loader) Load(r io.Reader, id string) (*level.Level, error) {
	doc := xmlLevel{Settings: xmlSettings(level.DefaultSettings())}
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("levelfile: decode %s: %w", id, err)
	}

	settings := level.Settings(doc.Settings)
	if settings.Width <= 0 || settings.Height <= 0 {
		return nil, fmt.Errorf("levelfile: %s: invalid size %vx%v", id, settings.Width, settings.Height)
	}

	lvl := level.New(id, settings, l.cfg)
	for i, obj := range doc.Objects {
		if !registry.Exists(obj.Type) {
			l.logger.Warn("skipping unknown object", "level", id, "index", i, "type", obj.Type)
			raw := level.RawObject{Index: i, Type: obj.Type}
			for _, p := range obj.Properties {
				raw.Properties.Add(p.Name, p.Value)
			}
			lvl.Unknown = append(lvl.Unknown, raw)
			continue
		}
		s, err := registry.Create(obj.Type, attributes(obj.Properties), l.cfg)
		if err != nil {
			return nil, fmt.Errorf("levelfile: %s: object %d: %w", id, i, err)
		}
		lvl.Sprites.Add(s)
	}

	l.logger.Debug("level loaded", "level", id, "objects", lvl.Sprites.Len())
	return lvl, nil
}

// LoadFile reads a level from path. The level ID is the file name
// without extension.
func (l *Loader) LoadFile(path string) (*level.Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("levelfile: %w", err)
	}
	defer f.Close()

	return l.Load(f, LevelID(path))
}

// LevelID derives a level ID from a file path.
func LevelID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ObjectAt returns the sprite built from the index-th object of the level
// file. It fails for objects that were skipped on load.
func ObjectAt(lvl *level.Level, index int) (level.Sprite, error) {
	skipped := 0
	for _, raw := range lvl.Unknown {
		if raw.Index == index {
			return nil, fmt.Errorf("levelfile: %s: object %d has unknown type %q", lvl.ID, index, raw.Type)
		}
		if raw.Index < index {
			skipped++
		}
	}

	sprites := lvl.Sprites.Persistent()
	if i := index - skipped; i >= 0 && i < len(sprites) {
		return sprites[i], nil
	}
	return nil, fmt.Errorf("levelfile: %s: no object %d", lvl.ID, index)
}

// Save writes the settings and every object that was not spawned at
// runtime, with properties in the order the objects saved them. Objects
// skipped on load go back to their original positions.
func Save(w io.Writer, lvl *level.Level) error {
	doc := xmlLevel{Settings: xmlSettings(lvl.Settings)}

	sprites := lvl.Sprites.Persistent()
	unknown := lvl.Unknown
	for len(sprites) > 0 || len(unknown) > 0 {
		if len(unknown) > 0 && (len(sprites) == 0 || unknown[0].Index <= len(doc.Objects)) {
			doc.Objects = append(doc.Objects, newXMLObject(unknown[0].Type, unknown[0].Properties))
			unknown = unknown[1:]
			continue
		}
		doc.Objects = append(doc.Objects, newXMLObject(sprites[0].TypeName(), sprites[0].Save()))
		sprites = sprites[1:]
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("levelfile: write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("levelfile: encode %s: %w", lvl.ID, err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("levelfile: write: %w", err)
	}
	return nil
}

// SaveFile writes the level to path, replacing it atomically.
func SaveFile(path string, lvl *level.Level) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".level-*.xml")
	if err != nil {
		return fmt.Errorf("levelfile: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Save(tmp, lvl); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("levelfile: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("levelfile: %w", err)
	}
	return nil
}

func newXMLObject(typeName string, props level.Properties) xmlObject {
	obj := xmlObject{Type: typeName}
	for _, p := range props {
		obj.Properties = append(obj.Properties, xmlProperty{Name: p.Name, Value: p.Value})
	}
	return obj
}

func attributes(props []xmlProperty) level.Attributes {
	a := make(level.Attributes, len(props))
	for _, p := range props {
		a[p.Name] = p.Value
	}
	return a
}
