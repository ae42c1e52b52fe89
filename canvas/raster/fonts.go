package raster

import (
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/midbel/pitchcharts"
)

// DefaultFaces is the number of font faces kept by a surface. A chart uses
// three or four sizes per frame.
const DefaultFaces = 16

var (
	parseOnce sync.Once
	regular   *opentype.Font
	bold      *opentype.Font
	parseErr  error
)

func parseFonts() error {
	parseOnce.Do(func() {
		regular, parseErr = opentype.Parse(goregular.TTF)
		if parseErr != nil {
			return
		}
		bold, parseErr = opentype.Parse(gobold.TTF)
	})
	return parseErr
}

type faceKey struct {
	size float64
	bold bool
}

// fontBook caches the faces of one surface. Faces are not safe for
// concurrent use so books are never shared between surfaces.
type fontBook struct {
	cache *simplelru.LRU
}

func newFontBook(size int) *fontBook {
	if size <= 0 {
		size = DefaultFaces
	}
	cache, _ := simplelru.NewLRU(size, nil)
	return &fontBook{
		cache: cache,
	}
}

func (b *fontBook) face(f charts.Font, scale float64) font.Face {
	key := faceKey{
		size: f.Size * scale,
		bold: f.Bold(),
	}
	if v, ok := b.cache.Get(key); ok {
		return v.(font.Face)
	}
	if err := parseFonts(); err != nil || key.size <= 0 {
		return basicfont.Face7x13
	}
	fnt := regular
	if key.bold {
		fnt = bold
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	b.cache.Add(key, face)
	return face
}

func (b *fontBook) measure(str string, f charts.Font) float64 {
	adv := font.MeasureString(b.face(f, 1), str)
	return fixedToFloat(adv)
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
