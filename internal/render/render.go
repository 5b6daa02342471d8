// internal/render/render.go
package render

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"custpdf/internal/flatten"
	"custpdf/internal/record"
)

const (
	titleY     = 0.9 * 72
	generatedY = 1.15 * 72
	fieldsTopY = 1.6 * 72

	sectionGap    = 0.25 * 72
	rawGap        = 0.2 * 72
	rawMinSpace   = 1.2 * 72 // force a page break below this much room
	columnMargins = 1.5 * 72 // left + right

	fieldLeading = 12
	rawLeading   = 11
)

// Renderer builds one PDF document per record.
type Renderer struct {
	// Now supplies the generation timestamp; nil means time.Now.
	Now func() time.Time
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Document renders rec as a PDF at path and returns the page count.
// Layout: title and timestamp, a Fields section with one wrapped line
// group per field, then the record's indented raw JSON. Both sections
// paginate; nothing is truncated however long the record is.
func (r *Renderer) Document(collection, id string, rec *record.Record, path string) (int, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	colW := pageW - columnMargins

	w := newPageWriter(pdf, tr)

	w.setFont("B", 16)
	w.y = titleY
	w.text(collection + " • " + id)

	w.setFont("", 10)
	w.y = generatedY
	w.text("Generated: " + r.now().Format("2006-01-02T15:04:05"))

	w.y = fieldsTopY
	w.setFont("B", 12)
	w.text("Fields")
	w.y += sectionGap

	w.setFont("", 10)
	for _, p := range flatten.Pairs(rec) {
		w.writeWrapped(p.Key+": "+p.Value, colW, fieldLeading)
	}

	w.y += rawGap
	if w.y > pageH-rawMinSpace {
		pdf.AddPage()
		w.y = titleY
	}

	w.setFont("B", 12)
	w.text("Raw JSON")
	w.y += sectionGap

	raw, err := rec.Indent()
	if err != nil {
		return 0, err
	}
	w.setFont("", 9)
	w.writeWrapped(string(raw), colW, rawLeading)

	pages := pdf.PageCount()
	if err := pdf.OutputFileAndClose(path); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return pages, nil
}
