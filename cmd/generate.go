package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathex/internal/problemgen"
	"github.com/abhisek/mathex/internal/store"
	"github.com/abhisek/mathex/internal/worksheet"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an exercise worksheet and its answer key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	f := generateCmd.Flags()
	f.IntP("count", "n", 0, "Number of exercises (default from config, 10)")
	f.IntP("range", "r", 0, "Exclusive bound for naturals, whole parts and denominators (default from config, 10)")
	f.Uint64("seed", 0, "Seed for reproducible worksheets")
	f.String("dir", "", "Output directory (default from config, .)")
	f.Bool("json", false, "Also write a JSON bundle")
}

// generateOptions are the resolved inputs of one generate run.
type generateOptions struct {
	Count  int
	Range  int
	Seed   uint64
	Dir    string
	Names  worksheet.Names
	Bundle string // bundle file name; empty to skip
}

func runGenerate(cmd *cobra.Command) error {
	opts := generateOptions{
		Count: intFlag(cmd, "count", cfg.Count),
		Range: intFlag(cmd, "range", cfg.Range),
		Seed:  seedFlag(cmd),
		Dir:   stringFlag(cmd, "dir", cfg.OutputDir),
		Names: worksheet.Names{Exercises: cfg.ExercisesFile, Answers: cfg.AnswersFile},
	}
	if cmd.Flags().Lookup("json") != nil {
		if withJSON, _ := cmd.Flags().GetBool("json"); withJSON {
			opts.Bundle = cfg.BundleFile
		}
	}

	res, seed, err := generateWorksheet(cmd.Context(), opts, logger, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}

	recordRun(cmd.Context(), store.RunEventData{
		Kind:      store.RunGenerate,
		Requested: res.Requested,
		Produced:  len(res.Exercises),
		Attempts:  res.Attempts,
		Range:     opts.Range,
		Seed:      seed,
		Source:    opts.Dir,
	})
	return nil
}

// generateWorksheet generates the exercises and writes the worksheet files.
// A zero opts.Seed is replaced by a drawn one; the seed actually used is
// returned and written to the bundle. A short result is reported as a
// warning on errOut, not as an error.
func generateWorksheet(ctx context.Context, opts generateOptions, log *slog.Logger, out, errOut io.Writer) (*problemgen.Result, uint64, error) {
	seed := resolveSeed(opts.Seed)
	gen := problemgen.New(problemgen.DefaultConfig(),
		problemgen.WithSeed(seed),
		problemgen.WithLogger(log),
	)

	res, err := gen.Generate(ctx, opts.Count, opts.Range)
	if err != nil {
		return nil, 0, fmt.Errorf("generate exercises: %w", err)
	}
	if res.Shortfall > 0 {
		fmt.Fprintf(errOut, "warning: only %d of %d exercises could be generated with range %d\n",
			len(res.Exercises), res.Requested, opts.Range)
	}

	exPath, ansPath, err := worksheet.SaveFiles(opts.Dir, opts.Names, res.Exercises)
	if err != nil {
		return nil, 0, fmt.Errorf("save worksheet: %w", err)
	}
	fmt.Fprintf(out, "Exercises: %s (%d)\n", exPath, len(res.Exercises))
	fmt.Fprintf(out, "Answers:   %s\n", ansPath)

	if opts.Bundle != "" {
		path := filepath.Join(opts.Dir, opts.Bundle)
		if err := writeBundleFile(path, worksheet.NewBundle(res.Exercises, opts.Range, seed)); err != nil {
			return nil, 0, err
		}
		fmt.Fprintf(out, "Bundle:    %s\n", path)
	}
	fmt.Fprintf(out, "Seed:      %d\n", seed)
	return res, seed, nil
}

func writeBundleFile(path string, b worksheet.Bundle) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}
	if err := worksheet.WriteBundle(f, b); err != nil {
		f.Close()
		return fmt.Errorf("write bundle: %w", err)
	}
	return f.Close()
}
