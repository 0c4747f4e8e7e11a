package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// The compiled format carries no header, so dimensions travel in the file
// name: <name>_<W>x<H>.2bpp, e.g. ship_40x16.2bpp. The loader validates the
// declared size against the data length and rejects mismatches.

// SpriteRegistry holds all compiled sprites loaded from an assets directory,
// keyed by base name.
type SpriteRegistry struct {
	sprites map[string]*Sprite
}

// NewSpriteRegistry loads every .2bpp file in dir.
func NewSpriteRegistry(dir string) (*SpriteRegistry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read sprites dir %s: %w", dir, err)
	}

	reg := &SpriteRegistry{sprites: make(map[string]*Sprite)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".2bpp") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		name, s, err := LoadSpriteFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		reg.sprites[name] = s
	}
	return reg, nil
}

// Sprite returns the named sprite, or nil if it was not loaded.
func (r *SpriteRegistry) Sprite(name string) *Sprite {
	return r.sprites[name]
}

// Names returns the base names of all loaded sprites.
func (r *SpriteRegistry) Names() []string {
	names := make([]string, 0, len(r.sprites))
	for name := range r.sprites {
		names = append(names, name)
	}
	return names
}

// Add registers a sprite under the given name, replacing any previous entry.
func (r *SpriteRegistry) Add(name string, s *Sprite) {
	r.sprites[name] = s
}

// LoadSpriteFile reads one compiled sprite, returning its base name and the
// validated sprite view.
func LoadSpriteFile(path string) (string, *Sprite, error) {
	name, w, h, err := ParseSpriteName(filepath.Base(path))
	if err != nil {
		return "", nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	s, err := NewSprite(w, h, data)
	if err != nil {
		return "", nil, err
	}
	return name, s, nil
}

// ParseSpriteName splits a file name of the form <name>_<W>x<H>.2bpp into
// its base name and declared dimensions.
func ParseSpriteName(filename string) (string, int, int, error) {
	stem := strings.TrimSuffix(filename, ".2bpp")
	if stem == filename {
		return "", 0, 0, fmt.Errorf("%s: not a .2bpp file", filename)
	}

	sep := strings.LastIndex(stem, "_")
	if sep < 1 {
		return "", 0, 0, fmt.Errorf("%s: want <name>_<W>x<H>.2bpp", filename)
	}

	dims := strings.SplitN(stem[sep+1:], "x", 2)
	if len(dims) != 2 {
		return "", 0, 0, fmt.Errorf("%s: want <name>_<W>x<H>.2bpp", filename)
	}

	w, err := strconv.Atoi(dims[0])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%s: bad width %q", filename, dims[0])
	}
	h, err := strconv.Atoi(dims[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%s: bad height %q", filename, dims[1])
	}
	return stem[:sep], w, h, nil
}

// SpriteFileName builds the canonical file name for a compiled sprite.
func SpriteFileName(name string, w, h int) string {
	return fmt.Sprintf("%s_%dx%d.2bpp", name, w, h)
}
