// Package cmd implements the wikipage command line using Cobra.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/wikipage/core"
	"github.com/gaurav-prasanna/wikipage/core/fetch"
)

// version is overridden at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

// deps are the collaborators a run needs from the outside world.
type deps struct {
	transport core.Transport
	stdout    io.Writer
	stderr    io.Writer
	now       func() time.Time
}

// options holds the parsed flag values of one invocation.
type options struct {
	language  string
	extract   bool
	format    outputFormat
	outputDir string
	verbose   bool
}

func newRootCmd(d deps) *cobra.Command {
	cfg := core.DefaultConfig()
	opts := &options{
		language: cfg.Language,
		format:   formatText,
	}

	cmd := &cobra.Command{
		Use:   "wikipage",
		Short: "Print the title of a random Wikipedia article",
		Long: `wikipage fetches the summary of one random article from a Wikipedia
language edition and prints its title.

Examples:
  wikipage
  wikipage --language=pl
  wikipage --extract
  wikipage --format markdown --output_dir ./out`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFlags(opts); err != nil {
				return err
			}
			return runSummary(cmd.Context(), cfg, opts, d)
		},
	}
	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)

	cmd.Flags().StringVarP(&opts.language, "language", "l", cfg.Language, "Language edition of Wikipedia")
	cmd.Flags().BoolVarP(&opts.extract, "extract", "e", false, "Also print the wrapped article extract")
	cmd.Flags().Var(&opts.format, "format", "Output format: "+formatNames())
	cmd.Flags().StringVar(&opts.outputDir, "output_dir", "", "Write output to a file in this directory instead of stdout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log request details to stderr")

	return cmd
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, d deps) int {
	cmd := newRootCmd(d)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(d.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Execute runs the root command and exits the process with its status.
func Execute() {
	cfg := core.DefaultConfig()
	os.Exit(run(context.Background(), os.Args[1:], deps{
		transport: fetch.NewHTTPTransport(cfg.UserAgent),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		now:       time.Now,
	}))
}

// newLogger returns a console logger on w. Request details are only
// shown at debug level, which --verbose enables.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}).Level(level).With().Timestamp().Logger()
}
