package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathex/internal/expr"
	"github.com/abhisek/mathex/internal/ui/theme"
)

var calcCmd = &cobra.Command{
	Use:   "calc [expression]",
	Short: "Evaluate fraction expressions exactly",
	Long: `Evaluate an expression such as "1'1/2 × (2/3 - 1/6)". With no argument
an interactive prompt reads one expression per line; "quit" or Ctrl-D exits.`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().Bool("strict", false, "Reject negative operands and negative differences")
}

func runCalc(cmd *cobra.Command, args []string) error {
	policy := expr.Lenient
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		policy = expr.Strict
	}

	if len(args) > 0 {
		if !evalLine(os.Stdout, strings.Join(args, " "), policy) {
			return fmt.Errorf("could not evaluate expression")
		}
		return nil
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		return calcInteractive(policy)
	}
	return calcScan(os.Stdin, os.Stdout, policy)
}

func calcInteractive(policy expr.Policy) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if isQuit(input) {
			return nil
		}
		line.AppendHistory(input)
		evalLine(os.Stdout, input, policy)
	}
}

// calcScan evaluates one expression per input line until EOF or quit.
func calcScan(r io.Reader, w io.Writer, policy expr.Policy) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		input := strings.TrimSpace(sc.Text())
		if input == "" {
			continue
		}
		if isQuit(input) {
			return nil
		}
		evalLine(w, input, policy)
	}
	return sc.Err()
}

func isQuit(s string) bool {
	return s == "quit" || s == "exit"
}

// evalLine prints the exact value of one expression and a decimal
// approximation when the value is not whole. It reports whether the
// expression evaluated.
func evalLine(w io.Writer, line string, policy expr.Policy) bool {
	v, err := expr.EvaluateWith(line, policy)
	if err != nil {
		fmt.Fprintln(w, theme.Paint(theme.Incorrect, "error: "+err.Error()))
		return false
	}
	if v.Numerator() == 0 {
		fmt.Fprintln(w, v.String())
		return true
	}
	d, err := v.Decimal(4)
	if err != nil {
		fmt.Fprintln(w, v.String())
		return true
	}
	fmt.Fprintf(w, "%s  (≈ %s)\n", v, d.String())
	return true
}
