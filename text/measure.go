package text

import (
	"bytes"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/euclid/internal/cache"
)

// referenceSize is the pixel size strings are shaped at before scaling to
// the measurer's em size. Shaping at tiny sizes loses precision in 26.6
// fixed point.
const referenceSize = 64

// fallbackAdvance is the advance, in ems, used per rune when no font could
// be parsed.
const fallbackAdvance = 0.6

// Extent is the measured size of a string, in the units of the measurer's
// em size.
type Extent struct {
	Width  float64
	Height float64
}

// Measurer measures strings by shaping them with HarfBuzz.
//
// Measurer is safe for concurrent use. Results are cached per string.
type Measurer struct {
	size float64
	font *font.Font // nil when the font failed to parse

	// shaperPool pools HarfbuzzShaper instances, which keep internal
	// buffers and are not safe for concurrent use.
	shaperPool sync.Pool

	extents *cache.Cache[string, Extent]
}

var defaultFont = sync.OnceValues(func() (*font.Font, error) {
	return parseFont(goregular.TTF)
})

// NewMeasurer creates a Measurer for the Go Regular font with em size size.
func NewMeasurer(size float64) *Measurer {
	f, err := defaultFont()
	if err != nil {
		f = nil
	}
	return newMeasurer(f, size)
}

// NewMeasurerFromFont creates a Measurer for the TrueType/OpenType font in
// data with em size size.
func NewMeasurerFromFont(data []byte, size float64) (*Measurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := parseFont(data)
	if err != nil {
		return nil, &FontError{Reason: "parse font", Err: err}
	}
	return newMeasurer(f, size), nil
}

func newMeasurer(f *font.Font, size float64) *Measurer {
	return &Measurer{
		size: size,
		font: f,
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		extents: cache.New[string, Extent](cache.DefaultCapacity),
	}
}

func parseFont(data []byte) (*font.Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return face.Font, nil
}

// Size returns the em size.
func (m *Measurer) Size() float64 { return m.size }

// Measure returns the width and height of s.
func (m *Measurer) Measure(s string) (width, height float64) {
	e := m.Extent(s)
	return e.Width, e.Height
}

// Extent returns the measured extent of s. The empty string measures zero.
func (m *Measurer) Extent(s string) Extent {
	if s == "" {
		return Extent{}
	}
	return m.extents.GetOrCreate(s, func() Extent { return m.shape(s) })
}

// CacheStats returns statistics of the extent cache.
func (m *Measurer) CacheStats() cache.Stats {
	return m.extents.Stats()
}

func (m *Measurer) shape(s string) Extent {
	runes := []rune(s)
	if m.font == nil {
		return Extent{Width: fallbackAdvance * m.size * float64(len(runes)), Height: m.size}
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: Direction(s),
		Face:      font.NewFace(m.font),
		Size:      fixed.I(referenceSize),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)

	scale := m.size / referenceSize
	width := math.Abs(fixedToFloat(out.Advance)) * scale
	height := fixedToFloat(out.LineBounds.Ascent-out.LineBounds.Descent) * scale
	if height <= 0 {
		height = m.size
	}
	return Extent{Width: width, Height: height}
}

// Direction returns the shaping direction of s: right-to-left when its
// first bidi run is right-to-left, left-to-right otherwise.
func Direction(s string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
