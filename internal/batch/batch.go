// internal/batch/batch.go
package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"custpdf/internal/identify"
	"custpdf/internal/record"
	"custpdf/internal/render"
)

// Options configures one batch run.
type Options struct {
	Collections []string // processed in this order
	IDKeys      []string // identifier candidates, in priority order
	OutDir      string
}

// Result summarizes a completed run.
type Result struct {
	Count int
	Files []string
}

// Run renders one PDF per record of every configured collection into
// opt.OutDir, sequentially: each document is fully written before the
// next record starts. Collections that are absent (or were not arrays in
// the source) are skipped, as are array elements that are not objects;
// neither counts as an error. Two records resolving to the same file
// name silently overwrite, last writer wins.
func Run(src *record.Source, opt Options, rend *render.Renderer, log zerolog.Logger) (Result, error) {
	if err := os.MkdirAll(opt.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	var res Result
	for _, name := range opt.Collections {
		items, ok := src.Collection(name)
		if !ok {
			log.Debug().Str("collection", name).Msg("collection absent, skipped")
			continue
		}
		processed := 0
		for _, raw := range items {
			rec, isObject, err := record.Parse(raw)
			if err != nil || !isObject {
				log.Debug().Str("collection", name).Msg("non-object element skipped")
				continue
			}
			id := identify.Resolve(rec, opt.IDKeys)
			file := identify.Filename(name, id) + ".pdf"
			path := filepath.Join(opt.OutDir, file)

			pages, err := rend.Document(name, id, rec, path)
			if err != nil {
				return res, fmt.Errorf("render %s: %w", file, err)
			}
			log.Debug().Str("file", file).Int("pages", pages).Msg("rendered")

			res.Files = append(res.Files, path)
			res.Count++
			processed++
		}
		log.Info().Str("collection", name).Int("records", processed).Msg("collection processed")
	}
	return res, nil
}
