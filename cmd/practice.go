package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathex/internal/practice"
	"github.com/abhisek/mathex/internal/problemgen"
	"github.com/abhisek/mathex/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Answer freshly generated exercises in the terminal",
	RunE:  runPractice,
}

func init() {
	f := practiceCmd.Flags()
	f.IntP("count", "n", 0, "Number of exercises (default from config, 10)")
	f.IntP("range", "r", 0, "Exclusive bound for naturals, whole parts and denominators (default from config, 10)")
	f.Uint64("seed", 0, "Seed for a reproducible session")
}

func runPractice(cmd *cobra.Command, args []string) error {
	count := intFlag(cmd, "count", cfg.Count)
	rangeBound := intFlag(cmd, "range", cfg.Range)
	seed := resolveSeed(seedFlag(cmd))

	gen := problemgen.New(problemgen.DefaultConfig(),
		problemgen.WithSeed(seed),
		problemgen.WithLogger(logger),
	)
	res, err := gen.Generate(cmd.Context(), count, rangeBound)
	if err != nil {
		return fmt.Errorf("generate exercises: %w", err)
	}
	if len(res.Exercises) == 0 {
		return fmt.Errorf("no exercises could be generated with range %d", rangeBound)
	}

	report, err := practice.Run(res.Exercises)
	if err != nil {
		return err
	}
	printReport(os.Stdout, report)

	recordRun(cmd.Context(), store.RunEventData{
		Kind:      store.RunPractice,
		Requested: res.Requested,
		Produced:  len(res.Exercises),
		Attempts:  res.Attempts,
		Correct:   len(report.Correct),
		Wrong:     len(report.Wrong),
		Range:     rangeBound,
		Seed:      seed,
	})
	return nil
}
