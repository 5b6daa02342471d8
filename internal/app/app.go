// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"custpdf/internal/archive"
	"custpdf/internal/batch"
	"custpdf/internal/cli"
	"custpdf/internal/logging"
	"custpdf/internal/record"
	"custpdf/internal/render"
	"custpdf/internal/version"
	"custpdf/internal/writers"
)

// RunContext is the full program: parse flags, load the source document,
// render every configured record to a PDF, build the archive, print the
// summary. The whole run is synchronous; ctx exists for shell parity and
// is not consulted mid-batch.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	_ = ctx

	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("custpdf")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "custpdf version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	log := logging.New(stderr, opts.LogLevel)
	log.Info().
		Str("input", opts.Input).
		Str("out_dir", opts.OutDir).
		Str("zip", opts.ZipPath).
		Msg("starting export")

	src, err := record.Load(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	res, err := batch.Run(src, batch.Options{
		Collections: opts.Collections,
		IDKeys:      opts.IDKeys,
		OutDir:      opts.OutDir,
	}, &render.Renderer{}, log)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	if err := archive.Build(opts.ZipPath, opts.OutDir); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	_, _ = fmt.Fprintf(outw, "Done. PDFs created: %d\n", res.Count)
	_, _ = fmt.Fprintf(outw, "Folder: %s\n", opts.OutDir)
	_, _ = fmt.Fprintf(outw, "Zip: %s\n", opts.ZipPath)
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
