package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathex/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generate, grade and practice runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		switch store.RunKind(kind) {
		case "", store.RunGenerate, store.RunGrade, store.RunPractice:
		default:
			return fmt.Errorf("unknown run kind %q (want generate, grade or practice)", kind)
		}

		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryRuns(cmd.Context(), store.QueryOpts{
			Limit: limit,
			Kind:  store.RunKind(kind),
		})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}

		printHistory(os.Stdout, events)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to show")
	historyCmd.Flags().String("kind", "", "Only show runs of this kind (generate, grade, practice)")
}

func printHistory(w io.Writer, events []store.RunEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-19s  %-8s  %-9s  %-9s  %-5s  %s\n",
		"Seq", "Timestamp", "Kind", "Exercises", "Score", "Range", "ID")
	fmt.Fprintln(w, strings.Repeat("─", 76))

	for _, e := range events {
		exercises := "-"
		if e.Requested > 0 {
			exercises = fmt.Sprintf("%d/%d", e.Produced, e.Requested)
		}
		score := "-"
		if e.Correct+e.Wrong > 0 {
			score = fmt.Sprintf("%d/%d", e.Correct, e.Correct+e.Wrong)
		}
		rng := "-"
		if e.Range > 0 {
			rng = fmt.Sprintf("%d", e.Range)
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-8s  %-9s  %-9s  %-5s  %s\n",
			e.Sequence,
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Kind,
			exercises,
			score,
			rng,
			e.ID.String()[:8],
		)
	}
}
