package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathex/internal/config"
	"github.com/abhisek/mathex/internal/store"
	"github.com/abhisek/mathex/internal/ui/theme"
)

// Resolved once per invocation by setup.
var (
	cfg    = config.DefaultConfig()
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "mathex",
	Short: "Fraction arithmetic worksheets",
	Long: `mathex generates primary-school arithmetic worksheets over naturals,
proper fractions and mixed numbers, and grades answer files against them.

  mathex -n 10 -r 10                        write Exercises.txt and Answers.txt
  mathex -e Exercises.txt -a Answers.txt    write Grade.txt`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runLegacy,
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (overrides MATHEX_CONFIG env var)")
	pf.String("db", "", "Path to the run-history database (overrides MATHEX_DB env var)")
	pf.Bool("no-history", false, "Do not record this run in the history database")
	pf.String("color", "", "Color output: auto, always or never")
	pf.BoolP("verbose", "v", false, "Log debug details to stderr")

	f := rootCmd.Flags()
	f.IntP("count", "n", 0, "Number of exercises to generate")
	f.IntP("range", "r", 0, "Exclusive bound for naturals, whole parts and denominators")
	f.StringP("exercises", "e", "", "Exercises file to grade")
	f.StringP("answers", "a", "", "Answers file to grade")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, applies global flags and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if off, _ := cmd.Flags().GetBool("no-history"); off {
		cfg.History = false
	}
	if c, _ := cmd.Flags().GetString("color"); c != "" {
		cfg.Color = c
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	theme.Enabled = colorEnabled(cfg.Color, os.Stdout.Fd())
	return nil
}

func colorEnabled(mode string, fd uintptr) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runLegacy handles the bare flag set without a subcommand:
// -n/-r generate, -e/-a grade.
func runLegacy(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	switch {
	case f.Changed("count") && f.Changed("range"):
		return runGenerate(cmd)
	case f.Changed("exercises") && f.Changed("answers"):
		return runGrade(cmd)
	case f.Changed("count") || f.Changed("range"):
		return fmt.Errorf("-n and -r must be given together")
	case f.Changed("exercises") || f.Changed("answers"):
		return fmt.Errorf("-e and -a must be given together")
	}
	return cmd.Help()
}

// resolveDBPath returns the database path using --db flag or config
// (highest priority), then MATHEX_DB env var, then the default XDG path.
func resolveDBPath() (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// recordRun appends a run to the history database. Failures are logged,
// never returned: history must not break the command it describes.
func recordRun(ctx context.Context, data store.RunEventData) {
	if !cfg.History {
		return
	}

	dbPath, err := resolveDBPath()
	if err != nil {
		logger.Warn("run history unavailable", "error", err)
		return
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logger.Warn("run history unavailable", "path", dbPath, "error", err)
		return
	}
	defer st.Close()

	ev, err := st.EventRepo().AppendRun(ctx, data)
	if err != nil {
		logger.Warn("record run", "error", err)
		return
	}
	logger.Debug("run recorded", "id", ev.ID, "sequence", ev.Sequence, "kind", ev.Kind)
}

// intFlag returns the flag value when it was set, fallback otherwise.
func intFlag(cmd *cobra.Command, name string, fallback int) int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}
	return fallback
}

// stringFlag returns the flag value when it was set, fallback otherwise.
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}

// resolveSeed returns seed, or a freshly drawn non-zero seed when it is 0,
// so every run can be reproduced from what it recorded.
func resolveSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

// seedFlag returns --seed when set, else the configured seed.
func seedFlag(cmd *cobra.Command) uint64 {
	if cmd.Flags().Lookup("seed") != nil && cmd.Flags().Changed("seed") {
		v, _ := cmd.Flags().GetUint64("seed")
		return v
	}
	return cfg.Seed
}
