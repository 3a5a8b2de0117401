package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	flag "github.com/spf13/pflag"

	j2m "github.com/alnah/go-j2m"
	"github.com/alnah/go-j2m/internal/config"
	"github.com/alnah/go-j2m/internal/fileutil"
	"github.com/alnah/go-j2m/internal/hints"
	"github.com/alnah/go-j2m/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage                 = errors.New("invalid usage")
	ErrUnknownCommand        = errors.New("unknown command")
	ErrUnsupportedDialect    = errors.New("unsupported input dialect")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrReadInput             = errors.New("failed to read input")
	ErrWriteOutput           = errors.New("failed to write output")
	ErrNoFiles               = errors.New("no convertible files found")
	ErrConversionFailed      = errors.New("conversion failed")
)

// Document is one unit of input for a Converter.
type Document struct {
	Content string
	Dialect Dialect
	Title   string // used by standalone HTML output
}

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, doc Document) (string, error)
}

// Compile-time interface implementation check.
var _ Converter = (*documentConverter)(nil)

// documentConverter converts documents into a single target dialect.
// It is safe for concurrent use: the renderer is goroutine-safe and the
// text pipelines are pure functions.
type documentConverter struct {
	target     Dialect
	renderer   *j2m.Renderer // nil unless target is DialectHTML
	standalone bool
	title      string
}

// newDocumentConverter builds the converter for cmd from the merged config.
func newDocumentConverter(cmd *command, cfg *config.Config) (*documentConverter, error) {
	c := &documentConverter{
		target:     cmd.target,
		standalone: cfg.Output.Standalone,
		title:      cfg.Output.Title,
	}

	if cmd.target == DialectHTML {
		r, err := j2m.NewRenderer(renderOptions(cfg.Render)...)
		if err != nil {
			if errors.Is(err, j2m.ErrUnknownHighlightStyle) {
				return nil, fmt.Errorf("%w%s", err, hints.ForHighlightStyle(styles.Names()))
			}
			return nil, err
		}
		c.renderer = r
	}

	return c, nil
}

// Convert converts doc into the converter's target dialect.
func (c *documentConverter) Convert(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch c.target {
	case DialectMarkdown:
		if doc.Dialect == DialectWiki {
			return j2m.ToMarkdown(doc.Content), nil
		}
	case DialectWiki:
		switch doc.Dialect {
		case DialectMarkdown:
			return j2m.ToJira(doc.Content), nil
		case DialectHTML:
			return j2m.HTMLToJira(doc.Content)
		}
	case DialectHTML:
		return c.renderHTML(ctx, doc)
	}

	return "", fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, doc.Dialect, c.target)
}

// renderHTML renders a wiki or Markdown document, wrapping it when standalone.
func (c *documentConverter) renderHTML(ctx context.Context, doc Document) (string, error) {
	var fragment string
	var err error

	switch doc.Dialect {
	case DialectWiki:
		fragment, err = c.renderer.WikiToHTML(ctx, doc.Content)
	case DialectMarkdown:
		fragment, err = c.renderer.MarkdownToHTML(ctx, doc.Content)
	default:
		return "", fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, doc.Dialect, c.target)
	}
	if err != nil {
		return "", err
	}

	if !c.standalone {
		return fragment, nil
	}

	title := c.title
	if title == "" {
		title = doc.Title
	}
	return pipeline.WrapDocument(fragment, title), nil
}

// renderOptions maps the render config section onto library options.
func renderOptions(r config.RenderConfig) []j2m.Option {
	return []j2m.Option{
		j2m.WithLineBreaks(r.LineBreaks),
		j2m.WithGFM(r.GFM),
		j2m.WithEscapeHTML(r.EscapeHTML),
		j2m.WithSmartTypography(r.SmartTypography),
		j2m.WithPreserveExtraBlankLines(r.PreserveExtraBlankLines),
		j2m.WithHighlightStyle(r.HighlightStyle),
	}
}

// runConvert orchestrates a conversion command.
func runConvert(ctx context.Context, cmd *command, paths []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags.common.config, env)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return withConfigHints(err)
	}

	forced, err := resolveForcedDialect(cmd, flags.from, cfg)
	if err != nil {
		return err
	}

	conv, err := newDocumentConverter(cmd, cfg)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		source := forced
		if source == DialectUnknown {
			source = cmd.sources[0]
		}
		return convertStream(ctx, conv, source, flags.output, flags.common.quiet, env)
	}

	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverAll(paths, outputDir, cmd, forced)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoFiles, strings.Join(paths, ", "),
			hints.ForUnsupportedInput(cmd.extensions(), cmd.forceable()))
	}

	workers := min(resolvePoolSize(cfg.Workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	results := convertBatch(ctx, conv, files, workers)

	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, failed, len(results))
	}

	return nil
}

// resolveConfig loads the config named by the flag or J2M_CONFIG, then
// applies J2M_* environment overrides.
func resolveConfig(name string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg, err := loadConfig(name, env)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// loadConfig loads a config by name or path, falling back to a copy of the
// environment's base config when name is empty.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	if name == "" {
		if env.Config == nil {
			return config.DefaultConfig(), nil
		}
		cfg := *env.Config
		return &cfg, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", withConfigHints(err))
	}
	return cfg, nil
}

// withConfigHints appends hints to config validation errors that have one.
func withConfigHints(err error) error {
	if errors.Is(err, config.ErrInvalidStyle) {
		return fmt.Errorf("%w%s", err, hints.ForHighlightStyle(styles.Names()))
	}
	return err
}

// mergeFlags applies explicitly set CLI flags over config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}

	// Output flags
	if flags.set("standalone") {
		cfg.Output.Standalone = flags.standalone
	}
	if flags.title != "" {
		cfg.Output.Title = flags.title
	}

	// Render flags
	r := &cfg.Render
	if flags.set("line-breaks") {
		r.LineBreaks = flags.render.lineBreaks
	}
	if flags.set("gfm") {
		r.GFM = flags.render.gfm
	}
	if flags.set("escape-html") {
		r.EscapeHTML = flags.render.escapeHTML
	}
	if flags.set("smart") {
		r.SmartTypography = flags.render.smartTypography
	}
	if flags.set("preserve-blank-lines") {
		r.PreserveExtraBlankLines = flags.render.preserveBlankLines
	}
	if flags.set("highlight") {
		r.HighlightStyle = flags.render.highlightStyle
	}
}

// resolveForcedDialect returns the dialect all inputs are read as, or
// DialectUnknown to choose by extension. The --from flag wins over
// render.from, which only applies to HTML rendering.
func resolveForcedDialect(cmd *command, flagFrom string, cfg *config.Config) (Dialect, error) {
	from := flagFrom
	if from == "" && cmd.target == DialectHTML {
		from = cfg.Render.From
	}

	d, err := parseDialect(from)
	if err != nil {
		return DialectUnknown, err
	}
	if d != DialectUnknown && !cmd.accepts(d) {
		return DialectUnknown, fmt.Errorf("%w: %s cannot read %s", ErrUnsupportedDialect, cmd.name, d)
	}
	return d, nil
}

// convertStream converts stdin to stdout, or to outputPath when given.
func convertStream(ctx context.Context, conv Converter, source Dialect, outputPath string, quiet bool, env *Environment) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	out, err := conv.Convert(ctx, Document{Content: string(content), Dialect: source})
	if err != nil {
		return err
	}

	if outputPath == "" {
		if _, err := io.WriteString(env.Stdout, out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := writeOutput(outputPath, out); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	cfg, err := resolveConfig(flags.config, env)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return withConfigHints(err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := env.Stdout.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// documentTitle derives a standalone title from a file name.
func documentTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
