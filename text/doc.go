// Package text measures label strings for euclid.
//
// Strings are shaped with HarfBuzz (github.com/go-text/typesetting) so that
// kerning and complex scripts are measured the way they will be drawn. The
// default font is Go Regular from golang.org/x/image; the paragraph
// direction is detected with golang.org/x/text/unicode/bidi.
//
//	m := text.NewMeasurer(0.4) // em size in drawing units
//	w, h := m.Measure("A")
package text
