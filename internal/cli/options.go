// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"custpdf/internal/version"
)

// DefaultCollections is the processing order used when --collections is
// not given.
var DefaultCollections = []string{"persons", "vehicles", "first_info_reports", "cases", "trips"}

// DefaultIDKeys is the identifier candidate order used when --id-keys is
// not given.
var DefaultIDKeys = []string{"person_id", "vehicle_id", "first_info_id", "case_id", "trip_id", "id"}

// Options holds all CLI flags and arguments.
type Options struct {
	// Input / output locations
	Input   string
	OutDir  string
	ZipPath string

	// Processing order
	Collections []string
	IDKeys      []string

	// Diagnostics
	LogLevel string
	Quiet    bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: export JSON record collections as PDFs, one per record, zipped

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Input, "input", "", "source JSON file (collection name -> array of records) [*]")
	fs.StringVar(&opt.OutDir, "out-dir", "out_pdfs", "directory for the generated PDFs [out_pdfs]")
	fs.StringVar(&opt.ZipPath, "zip", "", "archive path (default: <out-dir>.zip)")

	var collections, idKeys stringSlice
	fs.Var(&collections, "collections", "collection to process, in order (repeatable) ["+strings.Join(DefaultCollections, ",")+"]")
	fs.Var(&idKeys, "id-keys", "identifier field candidate, in priority order (repeatable) ["+strings.Join(DefaultIDKeys, ",")+"]")

	fs.StringVar(&opt.LogLevel, "log-level", "warn", "log level: debug | info | warn | error [warn]")
	fs.BoolVar(&opt.Quiet, "q", false, "errors only (shorthand) [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "errors only [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	opt.Collections = collections
	if len(opt.Collections) == 0 {
		opt.Collections = DefaultCollections
	}
	opt.IDKeys = idKeys
	if len(opt.IDKeys) == 0 {
		opt.IDKeys = DefaultIDKeys
	}
	if opt.ZipPath == "" {
		opt.ZipPath = opt.OutDir + ".zip"
	}
	if opt.Quiet {
		opt.LogLevel = "error"
	}

	// Validation
	if opt.Input == "" {
		return opt, errors.New("--input is required")
	}
	switch opt.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return opt, fmt.Errorf("invalid --log-level %q", opt.LogLevel)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
