package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-j2m/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds HTML rendering flags (html command only).
type renderFlags struct {
	lineBreaks         bool
	gfm                bool
	escapeHTML         bool
	smartTypography    bool
	preserveBlankLines bool
	highlightStyle     string
}

// convertFlags holds all flags for a conversion command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	from       string
	standalone bool
	title      string
	render     renderFlags

	// changed records the flags given explicitly, so that boolean flags
	// left at their default do not override the config file.
	changed map[string]bool
}

// set reports whether the named flag was given on the command line.
func (f *convertFlags) set(name string) bool {
	return f.changed[name]
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed output")
}

// addRenderFlags adds HTML rendering flags. Defaults mirror config.DefaultConfig.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	defaults := config.DefaultConfig().Render
	fs.BoolVar(&f.lineBreaks, "line-breaks", defaults.LineBreaks, "render single newlines as <br>")
	fs.BoolVar(&f.gfm, "gfm", defaults.GFM, "enable GitHub Flavored Markdown")
	fs.BoolVar(&f.escapeHTML, "escape-html", defaults.EscapeHTML, "escape raw HTML instead of passing it through")
	fs.BoolVar(&f.smartTypography, "smart", defaults.SmartTypography, "smart quotes and dashes")
	fs.BoolVar(&f.preserveBlankLines, "preserve-blank-lines", defaults.PreserveExtraBlankLines, "keep extra blank lines in wiki input")
	fs.StringVar(&f.highlightStyle, "highlight", defaults.HighlightStyle, "chroma style for fenced code (empty = off)")
}

// parseConvertFlags parses flags for cmd and returns positional args.
func parseConvertFlags(cmd *command, args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	if cmd.forceable() {
		fs.StringVar(&f.from, "from", "", "input dialect (default: by extension)")
	}

	addCommonFlags(fs, &f.common)

	if cmd.target == DialectHTML {
		fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a complete HTML document")
		fs.StringVar(&f.title, "title", "", "title of standalone documents (default: file name)")
		addRenderFlags(fs, &f.render)
	}

	fs.Usage = func() { printCommandUsage(usage, cmd) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.changed = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })

	if f.from != "" {
		d, err := parseDialect(f.from)
		if err != nil {
			return nil, nil, err
		}
		if d != DialectUnknown && !cmd.accepts(d) {
			return nil, nil, fmt.Errorf("%w: %s cannot read %s", ErrUnsupportedDialect, cmd.name, d)
		}
	}

	return f, fs.Args(), nil
}

// parseConfigFlags parses flags for the config command.
func parseConfigFlags(args []string, usage io.Writer) (*commonFlags, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &commonFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")

	fs.Usage = func() { printConfigUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return f, nil
}
