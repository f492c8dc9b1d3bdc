// Package fonts implements theme fonts on top of golang.org/x/image/font,
// with the Go font family bundled and a fixed 7x13 bitmap fallback.
package fonts

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultCacheSize is the number of measurements each face remembers.
const DefaultCacheSize = 4096

// Face measures text for one font at any pixel size.
type Face struct {
	name string
	src  *opentype.Font // nil for the bitmap fallback

	mu    sync.Mutex
	faces map[uint]font.Face
	cache *measureCache
}

// Parse loads an OpenType or TrueType font.
func Parse(name string, data []byte) (*Face, error) {
	src, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", name, err)
	}
	return &Face{
		name:  name,
		src:   src,
		faces: make(map[uint]font.Face),
		cache: newMeasureCache(DefaultCacheSize),
	}, nil
}

// Basic returns a face backed by the 7x13 bitmap font, scaled linearly
// to the requested size.
func Basic() *Face {
	return &Face{
		name:  "basic",
		faces: make(map[uint]font.Face),
		cache: newMeasureCache(DefaultCacheSize),
	}
}

// Name returns the name the face was registered with.
func (f *Face) Name() string { return f.name }

// Measure returns the advance width of the widest line and the total
// height of all lines at the given pixel size.
func (f *Face) Measure(text string, size uint) (width, height float32) {
	if size == 0 {
		return 0, 0
	}
	key := measureKey{size: size, text: text}
	if w, h, ok := f.cache.get(key); ok {
		return w, h
	}

	face, scale, err := f.face(size)
	if err != nil {
		log.WithError(err).WithField("font", f.name).Warn("failed to build face")
		return 0, 0
	}

	lines := strings.Split(text, "\n")
	for _, line := range lines {
		width = max(width, toFloat(font.MeasureString(face, line))*scale)
	}
	height = toFloat(face.Metrics().Height) * scale * float32(len(lines))

	f.cache.put(key, width, height)
	return width, height
}

// face returns the x/image face for size plus the factor its metrics must
// be scaled by.
func (f *Face) face(size uint) (font.Face, float32, error) {
	if f.src == nil {
		return basicfont.Face7x13, float32(size) / float32(basicfont.Face7x13.Height), nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face, 1, nil
	}
	face, err := opentype.NewFace(f.src, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, 0, err
	}
	f.faces[size] = face
	return face, 1, nil
}

func toFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
