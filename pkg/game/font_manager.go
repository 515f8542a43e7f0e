package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle selects one of the embedded Go font families.
type FontStyle int

const (
	// FontRegular is used for body text (subtitle, taglines, descriptions).
	FontRegular FontStyle = iota
	// FontBold is used for headings, metric values and product names.
	FontBold
	// FontMono is used for tag pills and metric labels.
	FontMono
)

// String returns the style name used in cache keys and logs.
func (s FontStyle) String() string {
	switch s {
	case FontBold:
		return "bold"
	case FontMono:
		return "mono"
	default:
		return "regular"
	}
}

// FontManager is responsible for centralized management of text faces.
// The page ships no font files; all faces are built from the Go fonts
// bundled with golang.org/x/image, so loading never touches the filesystem
// and works the same on desktop, mobile and wasm.
//
// Face sources are parsed once per style. Faces are cached with a key
// combining style and size, so the layout and render systems can ask for the
// same size every frame without allocating.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop.
//
// Usage:
//
//	fm, err := NewFontManager()
//	if err != nil {
//	    return err
//	}
//	title := fm.Face(FontBold, 52)
type FontManager struct {
	sources   map[FontStyle]*text.GoTextFaceSource // Parsed font sources: style -> source
	faceCache map[string]*text.GoTextFace          // Cache for text faces: "style:size" -> face
}

// NewFontManager parses the embedded Go fonts and returns a ready FontManager.
//
// Returns:
//   - A pointer to a FontManager with all styles parsed.
//   - An error if any embedded font cannot be parsed.
func NewFontManager() (*FontManager, error) {
	fonts := map[FontStyle][]byte{
		FontRegular: goregular.TTF,
		FontBold:    gobold.TTF,
		FontMono:    gomono.TTF,
	}

	fm := &FontManager{
		sources:   make(map[FontStyle]*text.GoTextFaceSource, len(fonts)),
		faceCache: make(map[string]*text.GoTextFace),
	}
	for style, data := range fonts {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", style, err)
		}
		fm.sources[style] = source
	}
	return fm, nil
}

// Face returns a cached text face for the given style and size, creating it on
// first use. Unknown styles fall back to FontRegular.
//
// Parameters:
//   - style: The font family.
//   - size: The font size in pixels.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
func (fm *FontManager) Face(style FontStyle, size float64) *text.GoTextFace {
	source, ok := fm.sources[style]
	if !ok {
		style = FontRegular
		source = fm.sources[FontRegular]
	}

	cacheKey := fmt.Sprintf("%s:%.1f", style, size)
	if face, exists := fm.faceCache[cacheKey]; exists {
		return face
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fm.faceCache[cacheKey] = face
	return face
}

// CachedFaces returns the number of faces created so far.
func (fm *FontManager) CachedFaces() int {
	return len(fm.faceCache)
}
