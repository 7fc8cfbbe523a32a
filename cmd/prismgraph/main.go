// Package main provides the CLI entry point for prismgraph.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/compiler"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/input"
	"go.uber.org/zap"
)

var (
	inputPath    string
	outputPath   string
	format       string
	pretty       bool
	engine       string
	configPath   string
	watch        bool
	verbose      bool
	batchSurface bool

	logger = zap.NewNop()
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prismgraph",
		Short: "Plot free-text math expressions",
		Long: `prismgraph turns free-text commands such as "y = sin(x) for x from 0 to 2pi"
into sampled 2D series or 3D surfaces and writes them as JSON, CSV, XLSX, SVG or text.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&inputPath, "file", "f", "", "Read the command from a file (default: args or stdin)")
	pf.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	pf.StringVar(&format, "format", "json", "Output format: json, csv, xlsx, svg, text")
	pf.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	pf.StringVar(&engine, "engine", "", "Expression engine: govaluate, expr (default from config)")
	pf.StringVar(&configPath, "config", "", "YAML file with engine and sampling limits")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	plotCmd := &cobra.Command{
		Use:   "plot [expression...]",
		Short: "Plot one or more curves y = f(x)",
		RunE:  runGraph(prismgraph.Variant2D),
	}
	plotCmd.Flags().BoolVar(&watch, "watch", false, "Re-plot whenever --file changes")

	surfaceCmd := &cobra.Command{
		Use:   "surface [expression...]",
		Short: "Plot a surface z = f(x, y)",
		RunE:  runGraph(prismgraph.Variant3D),
	}
	surfaceCmd.Flags().BoolVar(&watch, "watch", false, "Re-plot whenever --file changes")

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Plot one command per line of --file (text or xlsx) or stdin",
		Args:  cobra.NoArgs,
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&batchSurface, "surface", false, "Treat every line as a 3D command")

	rootCmd.AddCommand(plotCmd, surfaceCmd, batchCmd)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	switch format {
	case "json", "csv", "xlsx", "svg", "text":
	default:
		return fmt.Errorf("invalid format: %s (must be json, csv, xlsx, svg, or text)", format)
	}

	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = l
	return nil
}

// options merges --config and --engine into prismgraph.Options.
func options() (prismgraph.Options, error) {
	cfg := prismgraph.DefaultConfig()
	if configPath != "" {
		loaded, err := prismgraph.LoadConfig(configPath)
		if err != nil {
			return prismgraph.Options{}, err
		}
		cfg = loaded
	}

	opts := cfg.Options()
	if engine != "" {
		if _, err := compiler.New(compiler.Engine(engine)); err != nil {
			return opts, err
		}
		opts.Engine = compiler.Engine(engine)
	}
	opts.Logger = logger
	return opts, nil
}

func runGraph(variant prismgraph.Variant) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if watch && inputPath == "" {
			return fmt.Errorf("--watch requires --file")
		}
		if variant == prismgraph.Variant3D && format == "svg" {
			return fmt.Errorf("svg output is only available for 2D plots")
		}

		opts, err := options()
		if err != nil {
			return err
		}

		render := func() error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), func(w io.Writer) error {
				return renderGraph(w, variant, text, opts)
			})
		}

		if err := render(); err != nil {
			if !watch {
				return err
			}
			logger.Warn("Plot failed", zap.Error(err))
		}

		if watch {
			return watchFile(cmd.Context(), inputPath, render)
		}
		return nil
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	switch format {
	case "json", "text":
	default:
		return fmt.Errorf("batch supports json and text output, got %s", format)
	}

	opts, err := options()
	if err != nil {
		return err
	}

	inputs, err := readBatch(cmd.InOrStdin())
	if err != nil {
		return err
	}

	variant := prismgraph.Variant2D
	if batchSurface {
		variant = prismgraph.Variant3D
	}

	items, err := prismgraph.PlotBatch(cmd.Context(), inputs, variant, opts)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), func(w io.Writer) error {
		return renderBatch(w, items)
	})
}

// readInput returns the command text from args, --file, or stdin.
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// readBatch returns the commands of --file or stdin. Workbooks are read
// row by row from their first sheet.
func readBatch(stdin io.Reader) ([]string, error) {
	if inputPath == "" {
		commands, err := input.ReadLines(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return commands, nil
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	if input.IsWorkbook(inputPath) {
		return input.ReadXLSX(f, "")
	}
	commands, err := input.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return commands, nil
}

// writeOutput runs write against --output, or stdout when unset.
func writeOutput(stdout io.Writer, write func(io.Writer) error) error {
	if outputPath == "" {
		return write(stdout)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
