package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathex/internal/grader"
	"github.com/abhisek/mathex/internal/rational"
	"github.com/abhisek/mathex/internal/store"
	"github.com/abhisek/mathex/internal/ui/theme"
	"github.com/abhisek/mathex/internal/worksheet"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade an answers file against an exercises file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGrade(cmd)
	},
}

func init() {
	f := gradeCmd.Flags()
	f.StringP("exercises", "e", "", "Exercises file, or a JSON bundle with --json (default from config)")
	f.StringP("answers", "a", "", "Answers file (default from config)")
	f.StringP("output", "o", "", "Grade file (default from config, Grade.txt)")
	f.Bool("json", false, "Read exercises from a JSON bundle")
}

// gradeOptions are the resolved inputs of one grade run.
type gradeOptions struct {
	ExercisesFile string
	AnswersFile   string
	GradeFile     string
	FromBundle    bool
}

func runGrade(cmd *cobra.Command) error {
	opts := gradeOptions{
		ExercisesFile: stringFlag(cmd, "exercises", cfg.ExercisesFile),
		AnswersFile:   stringFlag(cmd, "answers", cfg.AnswersFile),
		GradeFile:     stringFlag(cmd, "output", cfg.GradeFile),
	}
	if cmd.Flags().Lookup("json") != nil {
		opts.FromBundle, _ = cmd.Flags().GetBool("json")
		if opts.FromBundle && !cmd.Flags().Changed("exercises") {
			opts.ExercisesFile = filepath.Join(cfg.OutputDir, cfg.BundleFile)
		}
	}

	report, err := gradeWorksheet(opts, os.Stdout)
	if err != nil {
		return err
	}

	recordRun(cmd.Context(), store.RunEventData{
		Kind:    store.RunGrade,
		Correct: len(report.Correct),
		Wrong:   len(report.Wrong),
		Source:  opts.ExercisesFile,
	})
	return nil
}

// gradeWorksheet grades the answers file, writes the grade file and prints
// the report.
func gradeWorksheet(opts gradeOptions, out io.Writer) (grader.Report, error) {
	expressions, err := readExpressions(opts)
	if err != nil {
		return grader.Report{}, err
	}
	answers, err := worksheet.ReadFile(opts.AnswersFile)
	if err != nil {
		return grader.Report{}, fmt.Errorf("read answers: %w", err)
	}

	verdicts, err := grader.Grade(expressions, answers)
	if err != nil {
		return grader.Report{}, fmt.Errorf("grade %s against %s: %w", opts.AnswersFile, opts.ExercisesFile, err)
	}
	report := grader.Summarize(verdicts)

	if err := worksheet.SaveGrade(opts.GradeFile, report); err != nil {
		return grader.Report{}, fmt.Errorf("save grade: %w", err)
	}

	printReport(out, report)
	fmt.Fprintf(out, "Grade:   %s\n", opts.GradeFile)
	return report, nil
}

func readExpressions(opts gradeOptions) ([]string, error) {
	if !opts.FromBundle {
		lines, err := worksheet.ReadFile(opts.ExercisesFile)
		if err != nil {
			return nil, fmt.Errorf("read exercises: %w", err)
		}
		return lines, nil
	}

	f, err := os.Open(opts.ExercisesFile)
	if err != nil {
		return nil, fmt.Errorf("read exercises: %w", err)
	}
	defer f.Close()

	_, exercises, err := worksheet.ReadBundle(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.ExercisesFile, err)
	}
	expressions := make([]string, len(exercises))
	for i, ex := range exercises {
		expressions[i] = ex.Expression
	}
	return expressions, nil
}

// printReport writes the two report lines and the score.
func printReport(out io.Writer, r grader.Report) {
	lines := strings.SplitN(r.String(), "\n", 2)
	fmt.Fprintln(out, theme.Paint(theme.Correct, lines[0]))
	fmt.Fprintln(out, theme.Paint(theme.Incorrect, lines[1]))
	if r.Total() == 0 {
		return
	}
	fmt.Fprintf(out, "Score:   %s%%\n", scorePercent(len(r.Correct), r.Total()))
}

// scorePercent renders correct/total as a percentage with one decimal.
func scorePercent(correct, total int) string {
	ratio, err := rational.New(int64(correct)*100, int64(total))
	if err != nil {
		return "?"
	}
	d, err := ratio.Decimal(1)
	if err != nil {
		return "?"
	}
	return d.StringFixed(1)
}
