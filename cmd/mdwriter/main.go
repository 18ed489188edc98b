// Command mdwriter renders JSON document descriptions to Markdown.
//
// Usage:
//
//	mdwriter [flags] <doc.json|glob>...
//
// Flags:
//
//	-o, --output string   Write the single input to this path ("-" for stdout)
//	    --out-dir string  Directory for generated files (default: next to each input)
//	-p, --preview         Preview the single input instead of writing it
//	-w, --width int       Preview width when not in a terminal (0 uses terminal width)
//	-q, --quiet           Do not report written files
//	    --version         Print version and exit
//
// Patterns support ** for recursive matching; every x.json becomes x.md.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("github.com/fwojciec/mdwriter")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "mdwriter: %v\n", err)
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	inputs  []string
	output  string
	outDir  string
	preview bool
	width   int
	quiet   bool
	version bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	flags := pflag.NewFlagSet("mdwriter", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&cfg.output, "output", "o", "", `Write the single input to this path ("-" for stdout)`)
	flags.StringVar(&cfg.outDir, "out-dir", "", "Directory for generated files (default: next to each input)")
	flags.BoolVarP(&cfg.preview, "preview", "p", false, "Preview the single input instead of writing it")
	flags.IntVarP(&cfg.width, "width", "w", 0, "Preview width when not in a terminal (0 uses terminal width)")
	flags.BoolVarP(&cfg.quiet, "quiet", "q", false, "Do not report written files")
	flags.BoolVar(&cfg.version, "version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintln(stderr, "Usage: mdwriter [flags] <doc.json|glob>...")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return config{}, err
	}
	cfg.inputs = flags.Args()
	if cfg.version {
		return cfg, nil
	}
	if len(cfg.inputs) == 0 {
		flags.Usage()
		return config{}, errors.New("no inputs")
	}
	if cfg.output != "" && cfg.outDir != "" {
		return config{}, errors.New("--output and --out-dir are mutually exclusive")
	}
	if cfg.width < 0 {
		return config{}, fmt.Errorf("width must be non-negative, got %d", cfg.width)
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.version {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return nil
	}

	inputs, err := expandInputs(cfg.inputs)
	if err != nil {
		return err
	}
	if (cfg.output != "" || cfg.preview) && len(inputs) > 1 {
		return fmt.Errorf("--output and --preview take a single input, got %d", len(inputs))
	}

	if cfg.preview {
		return preview(ctx, inputs[0], cfg.width, stdout)
	}

	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		dest := cfg.output
		if dest == "" {
			dest = outputPath(in, cfg.outDir)
		}
		if err := generate(in, dest, stdout); err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
		if !cfg.quiet && dest != "-" {
			fmt.Fprintf(stderr, "wrote %s\n", dest)
		}
	}
	return nil
}
