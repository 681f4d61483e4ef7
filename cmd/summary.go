// Summary pipeline for the root command.
// Orchestrates one run: fetch → (extract → normalize) → render → write.
// Normalization is skipped for the default text output, which only needs
// the title and the plain extract.

package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/gaurav-prasanna/wikipage/core"
	"github.com/gaurav-prasanna/wikipage/core/extract"
	"github.com/gaurav-prasanna/wikipage/core/fetch"
	"github.com/gaurav-prasanna/wikipage/core/normalize"
	"github.com/gaurav-prasanna/wikipage/core/output"
	"github.com/gaurav-prasanna/wikipage/core/render"
	"github.com/gaurav-prasanna/wikipage/core/wrap"
)

type outputFormat string

const (
	formatText     outputFormat = "text"
	formatMarkdown outputFormat = "markdown"
	formatJSON     outputFormat = "json"
	formatPDF      outputFormat = "pdf"
)

var outputFormats = []outputFormat{formatText, formatMarkdown, formatJSON, formatPDF}

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }
func (f *outputFormat) Type() string   { return "format" }

func (f *outputFormat) Set(v string) error {
	for _, known := range outputFormats {
		if outputFormat(v) == known {
			*f = known
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", formatNames())
}

func formatNames() string {
	names := make([]string, len(outputFormats))
	for i, f := range outputFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func runSummary(ctx context.Context, cfg core.Config, opts *options, d deps) error {
	log := newLogger(d.stderr, opts.verbose)
	ctx = log.WithContext(ctx)

	renderer := selectRenderer(opts)
	fetcher := fetch.New(d.transport, cfg)

	page, err := processPage(ctx, opts.language, fetcher, extract.New(), normalize.New(), opts.format != formatText, d.now)
	if err != nil {
		return err
	}

	data, err := renderer.Render(page)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	// PDF is binary, so it always goes to a file.
	if opts.outputDir == "" && opts.format != formatPDF {
		_, err := d.stdout.Write(data)
		return err
	}

	writer, err := output.New(opts.outputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(page.Language, page.Summary.Title, data, renderer.Extension())
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("Wrote output")
	fmt.Fprintf(d.stdout, "Written: %s\n", path)
	return nil
}

// processPage fetches one summary and builds the Page handed to renderers.
// The fetch error is returned unwrapped; it already names the request.
func processPage(
	ctx context.Context,
	language string,
	fetcher core.Fetcher,
	extractor core.Extractor,
	normalizer core.Normalizer,
	withMarkdown bool,
	now func() time.Time,
) (*core.Page, error) {
	summary, err := fetcher.Fetch(ctx, language)
	if err != nil {
		return nil, err
	}

	// Some editions return only extract_html for certain pages.
	if strings.TrimSpace(summary.Extract) == "" && summary.ExtractHTML != "" {
		text, err := extractor.Text(summary.ExtractHTML)
		if err != nil {
			return nil, fmt.Errorf("extract: %w", err)
		}
		summary.Extract = text
	}

	page := &core.Page{
		Summary:   *summary,
		Language:  language,
		FetchedAt: now().UTC().Format(time.RFC3339),
	}
	if !withMarkdown {
		return page, nil
	}

	content, err := extractor.Extract(summary.ExtractHTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	markdown, err := normalizer.Normalize(content)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	page.Markdown = markdown
	return page, nil
}

// validateFlags rejects combinations that would silently do nothing.
func validateFlags(opts *options) error {
	if opts.extract && opts.format != formatText {
		return fmt.Errorf("--extract only applies to --format %s", formatText)
	}
	return nil
}

// selectRenderer creates the Renderer for the chosen format.
func selectRenderer(opts *options) core.Renderer {
	switch opts.format {
	case formatMarkdown:
		return render.NewMarkdownRenderer()
	case formatJSON:
		return render.NewJSONRenderer()
	case formatPDF:
		return render.NewPDFRenderer()
	default:
		return render.NewTextRenderer(opts.extract, wrap.DefaultWidth)
	}
}
