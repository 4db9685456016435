// Package worksheet reads and writes the flat files exchanged with
// learners: Exercises.txt, Answers.txt, Grade.txt and JSON bundles.
package worksheet

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/abhisek/mathex/internal/grader"
	"github.com/abhisek/mathex/internal/problemgen"
)

// Default file names, relative to the working directory.
const (
	DefaultExercisesFile = "Exercises.txt"
	DefaultAnswersFile   = "Answers.txt"
	DefaultGradeFile     = "Grade.txt"
	DefaultBundleFile    = "Exercises.json"
)

// ordinalRe matches a leading "12. " line number.
var ordinalRe = regexp.MustCompile(`^\s*\d+\.\s+`)

// WriteExercises writes one expression per line, in slice order.
func WriteExercises(w io.Writer, exercises []problemgen.Exercise) error {
	bw := bufio.NewWriter(w)
	for _, ex := range exercises {
		if _, err := fmt.Fprintln(bw, ex.Expression); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteAnswers writes one canonical answer per line, in slice order.
func WriteAnswers(w io.Writer, exercises []problemgen.Exercise) error {
	bw := bufio.NewWriter(w)
	for _, ex := range exercises {
		if _, err := fmt.Fprintln(bw, ex.Answer.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteGrade writes the two-line grade report.
func WriteGrade(w io.Writer, r grader.Report) error {
	_, err := fmt.Fprintln(w, r.String())
	return err
}

// ReadLines returns every line of r in order. Trailing "\r" and a leading
// ordinal are stripped; blank lines are kept so line numbers line up.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		lines = append(lines, StripOrdinal(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// StripOrdinal removes a leading "12. " line number, if present.
func StripOrdinal(line string) string {
	return ordinalRe.ReplaceAllString(line, "")
}

// ReadFile reads the lines of the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// Names are the output file names used by SaveFiles.
type Names struct {
	Exercises string
	Answers   string
}

// DefaultNames returns the conventional Exercises.txt / Answers.txt pair.
func DefaultNames() Names {
	return Names{Exercises: DefaultExercisesFile, Answers: DefaultAnswersFile}
}

// SaveFiles writes the exercise and answer files into dir and returns
// their paths. dir is created if needed.
func SaveFiles(dir string, names Names, exercises []problemgen.Exercise) (exercisesPath, answersPath string, err error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", "", fmt.Errorf("create output directory: %w", err)
		}
	}

	exercisesPath = filepath.Join(dir, names.Exercises)
	if err := writeFile(exercisesPath, func(w io.Writer) error {
		return WriteExercises(w, exercises)
	}); err != nil {
		return "", "", err
	}

	answersPath = filepath.Join(dir, names.Answers)
	if err := writeFile(answersPath, func(w io.Writer) error {
		return WriteAnswers(w, exercises)
	}); err != nil {
		return "", "", err
	}
	return exercisesPath, answersPath, nil
}

// SaveGrade writes the grade report to path.
func SaveGrade(path string, r grader.Report) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteGrade(w, r)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
