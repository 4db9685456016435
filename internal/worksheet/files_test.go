package worksheet

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathex/internal/grader"
	"github.com/abhisek/mathex/internal/problemgen"
	"github.com/abhisek/mathex/internal/rational"
)

func sampleExercises() []problemgen.Exercise {
	return []problemgen.Exercise{
		{Expression: "1/2 + 1/3 =", Answer: rational.MustNew(5, 6), Index: 1},
		{Expression: "1'1/2 × 2 =", Answer: rational.Int(3), Index: 2},
		{Expression: "(1/2 + 1/2) ÷ 1/4 =", Answer: rational.Int(4), Index: 3},
	}
}

func TestWriteExercisesAndAnswers(t *testing.T) {
	var ex, ans bytes.Buffer
	require.NoError(t, WriteExercises(&ex, sampleExercises()))
	require.NoError(t, WriteAnswers(&ans, sampleExercises()))

	assert.Equal(t, "1/2 + 1/3 =\n1'1/2 × 2 =\n(1/2 + 1/2) ÷ 1/4 =\n", ex.String())
	assert.Equal(t, "5/6\n3\n4\n", ans.String())
}

func TestReadLines(t *testing.T) {
	in := "1. 1/2 + 1/3 =\r\n2. 1'1/2 × 2 =\r\n\r\n4/5\n"
	lines, err := ReadLines(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"1/2 + 1/3 =", "1'1/2 × 2 =", "", "4/5"}, lines)
}

func TestStripOrdinal(t *testing.T) {
	tests := map[string]string{
		"12. 1/2 + 1 =": "1/2 + 1 =",
		"3.  5/6":       "5/6",
		"1/2 + 1 =":     "1/2 + 1 =",
		"5/6":           "5/6",
		"1'1/2":         "1'1/2",
		"3.5":           "3.5",
	}
	for in, want := range tests {
		if got := StripOrdinal(in); got != want {
			t.Errorf("StripOrdinal(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteGrade(t *testing.T) {
	var buf bytes.Buffer
	r := grader.Summarize(map[int]bool{1: true, 2: false, 3: true})
	require.NoError(t, WriteGrade(&buf, r))
	assert.Equal(t, "Correct: 2 (1, 3)\nWrong: 1 (2)\n", buf.String())
}

func TestSaveFiles_RoundTripsThroughGrader(t *testing.T) {
	dir := t.TempDir()

	exPath, ansPath, err := SaveFiles(filepath.Join(dir, "out"), DefaultNames(), sampleExercises())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", DefaultExercisesFile), exPath)

	expressions, err := ReadFile(exPath)
	require.NoError(t, err)
	answers, err := ReadFile(ansPath)
	require.NoError(t, err)

	verdicts, err := grader.Grade(expressions, answers)
	require.NoError(t, err)
	report := grader.Summarize(verdicts)
	assert.Equal(t, []int{1, 2, 3}, report.Correct)
	assert.Empty(t, report.Wrong)

	gradePath := filepath.Join(dir, DefaultGradeFile)
	require.NoError(t, SaveGrade(gradePath, report))
	data, err := os.ReadFile(gradePath)
	require.NoError(t, err)
	assert.Equal(t, "Correct: 3 (1, 2, 3)\nWrong: 0 ()\n", string(data))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
