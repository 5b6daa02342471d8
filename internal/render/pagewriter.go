// internal/render/pagewriter.go
package render

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

// Layout constants, in points (72 per inch) on a US Letter portrait page.
const (
	fontFamily = "Helvetica"

	leftMargin   = 0.75 * 72
	bottomMargin = 0.75 * 72 // from the page bottom
	topOffset    = 10.5 * 72 // cursor reset, measured from the page bottom
)

// pageWriter flows text down a page, opening a new page whenever the
// cursor passes the bottom margin. It remembers the active font so the
// same face survives a page break.
type pageWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string

	x     float64
	y     float64 // distance from the page top
	pageH float64

	style string
	size  float64
}

func newPageWriter(pdf *fpdf.Fpdf, tr func(string) string) *pageWriter {
	_, pageH := pdf.GetPageSize()
	return &pageWriter{pdf: pdf, tr: tr, x: leftMargin, pageH: pageH}
}

// setFont selects a face of the Helvetica family and records it for
// reselection after page breaks.
func (w *pageWriter) setFont(style string, size float64) {
	w.style, w.size = style, size
	w.pdf.SetFont(fontFamily, style, size)
}

// text draws a single line at the current cursor without wrapping or
// page-break checks. Section headers use this.
func (w *pageWriter) text(s string) {
	w.pdf.Text(w.x, w.y, w.tr(s))
}

// writeWrapped wraps text to width using the current font metrics and
// flows the lines down the page, breaking to a new page before any line
// that would land below the bottom margin. Returns the cursor after the
// last line.
func (w *pageWriter) writeWrapped(text string, width, leading float64) float64 {
	for _, line := range w.wrap(text, width) {
		if w.y > w.pageH-bottomMargin {
			w.pdf.AddPage()
			w.y = w.pageH - topOffset
			w.pdf.SetFont(fontFamily, w.style, w.size)
		}
		w.pdf.Text(w.x, w.y, w.tr(line))
		w.y += leading
	}
	return w.y
}

// lineWidth measures s in the active font. Measurement happens on the
// code-page form, which is what actually gets drawn.
func (w *pageWriter) lineWidth(s string) float64 {
	return w.pdf.GetStringWidth(w.tr(s))
}

// wrap splits text into lines no wider than width. Explicit newlines are
// kept; words are broken greedily at spaces, and a word wider than the
// whole column is split mid-word.
func (w *pageWriter) wrap(text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, w.wrapPara(para, width)...)
	}
	return lines
}

func (w *pageWriter) wrapPara(s string, width float64) []string {
	if w.lineWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	line := ""
	for _, word := range strings.Split(s, " ") {
		cand := word
		if line != "" {
			cand = line + " " + word
		}
		if w.lineWidth(cand) <= width {
			line = cand
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		for w.lineWidth(word) > width {
			r := []rune(word)
			// Largest prefix that still fits; at least one rune to make progress.
			lo, hi := 1, len(r)-1
			for lo < hi {
				mid := (lo + hi + 1) / 2
				if w.lineWidth(string(r[:mid])) <= width {
					lo = mid
				} else {
					hi = mid - 1
				}
			}
			lines = append(lines, string(r[:lo]))
			word = string(r[lo:])
		}
		line = word
	}
	return append(lines, line)
}
