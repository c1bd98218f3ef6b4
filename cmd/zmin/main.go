// zmin - JSON minifier CLI
//
// Usage:
//
//	zmin [input] [output]        Minify a file (or stdin to stdout)
//	zmin -m turbo big.json out.json
//	zmin validate [input]        Check validity, exit 1 if invalid
//	zmin version                 Print version info
//
// Files ending in .gz are read and written gzip-compressed.
// If no input is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/hydepwns/zmin-go/zmin"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "zmin:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		modeName string
		stats    bool
	)

	root := &cobra.Command{
		Use:   "zmin [input] [output]",
		Short: "High-performance JSON minifier",
		Long: `zmin removes insignificant whitespace from JSON without altering
semantic content. Three modes trade speed against memory:

  eco    minimal memory usage
  sport  balanced performance (default)
  turbo  maximum speed on large inputs`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMinify(args, modeName, stats)
		},
	}
	root.Flags().StringVarP(&modeName, "mode", "m", zmin.DefaultMode.String(),
		"processing mode (eco, sport, turbo)")
	root.Flags().BoolVar(&stats, "stats", false, "log timing statistics to stderr")

	root.AddCommand(newValidateCmd(), newVersionCmd())
	return root
}

func runMinify(args []string, modeName string, stats bool) error {
	mode, err := zmin.ParseMode(modeName)
	if err != nil {
		return err
	}

	inputPath := ""
	outputPath := ""
	if len(args) > 0 {
		inputPath = args[0]
	}
	if len(args) > 1 {
		outputPath = args[1]
	}

	data, err := readInput(inputPath)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := zmin.Minify(data, mode)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	if err := writeOutput(outputPath, out); err != nil {
		return err
	}

	if stats {
		mb := float64(len(data)) / (1 << 20)
		logger.Info("minified",
			"mode", mode.String(),
			"input_bytes", len(data),
			"output_bytes", len(out),
			"saved_pct", fmt.Sprintf("%.1f", 100*float64(len(data)-len(out))/float64(len(data))),
			"elapsed", elapsed,
			"throughput_mbps", fmt.Sprintf("%.1f", mb/elapsed.Seconds()),
		)
	}
	return nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "validate [input]",
		Short:         "Check whether the input is valid JSON",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return err
			}
			if !zmin.Valid(data) {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return fmt.Errorf("input is not valid JSON")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zmin %s\n", zmin.Version)
		},
	}
}

// readInput reads a file, stdin for "" or "-", gunzipping *.gz.
func readInput(path string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gunzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return io.ReadAll(r)
}

// writeOutput writes to a file, stdout for "", gzipping *.gz.
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if strings.HasSuffix(path, ".gz") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		zw := gzip.NewWriter(f)
		if _, err := zw.Write(data); err != nil {
			f.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return os.WriteFile(path, data, 0o644)
}
