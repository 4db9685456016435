// Package practice runs an interactive worksheet in the terminal: one
// exercise at a time, checked as the learner answers.
package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathex/internal/grader"
	"github.com/abhisek/mathex/internal/problemgen"
	"github.com/abhisek/mathex/internal/ui/components"
	"github.com/abhisek/mathex/internal/ui/layout"
	"github.com/abhisek/mathex/internal/ui/theme"
)

// Phase is where the session is.
type Phase int

const (
	PhaseAnswer   Phase = iota // waiting for an answer
	PhaseFeedback              // showing ✓/✗ for the last answer
	PhaseDone                  // summary
)

// Model is the Bubble Tea model for a practice session.
type Model struct {
	exercises []problemgen.Exercise
	current   int
	verdicts  map[int]bool

	input     components.AnswerInput
	phase     Phase
	lastInput string
	quitting  bool

	width  int
	height int
}

// New creates a session over exercises.
func New(exercises []problemgen.Exercise) Model {
	m := Model{
		exercises: exercises,
		verdicts:  make(map[int]bool, len(exercises)),
		input:     components.NewAnswerInput("e.g. 1'1/2", 24),
	}
	if len(exercises) == 0 {
		m.phase = PhaseDone
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == PhaseAnswer {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.phase == PhaseDone {
			return m, tea.Quit
		}
		m.phase = PhaseDone
		return m, nil
	case "enter":
		switch m.phase {
		case PhaseAnswer:
			return m.submit(), nil
		case PhaseFeedback:
			return m.next(), nil
		case PhaseDone:
			return m, tea.Quit
		}
	}

	if m.phase == PhaseAnswer {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submit grades the current input. Blank input is ignored.
func (m Model) submit() Model {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return m
	}
	ex := m.exercises[m.current]
	ok := problemgen.CheckAnswer(value, ex)
	m.verdicts[ex.Index] = ok
	m.lastInput = value
	m.input.Submit(ok)
	m.phase = PhaseFeedback
	return m
}

// next advances to the following exercise or to the summary.
func (m Model) next() Model {
	m.current++
	m.input.Reset()
	if m.current >= len(m.exercises) {
		m.phase = PhaseDone
		return m
	}
	m.phase = PhaseAnswer
	return m
}

// Phase returns the current phase.
func (m Model) Phase() Phase { return m.phase }

// Quitting reports whether the session was aborted with Ctrl+C.
func (m Model) Quitting() bool { return m.quitting }

// Report summarizes the answered exercises. Unanswered exercises are left
// out.
func (m Model) Report() grader.Report {
	return grader.Summarize(m.verdicts)
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	r := m.Report()
	header := layout.RenderHeader("Practice", len(r.Correct), len(r.Wrong), m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	var content string
	if m.phase == PhaseDone {
		content = m.renderSummary(r)
	} else {
		content = m.renderExercise()
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) keyHints() []layout.KeyHint {
	switch m.phase {
	case PhaseFeedback:
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Finish"}}
	case PhaseDone:
		return []layout.KeyHint{{Key: "Enter", Description: "Quit"}}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Check"}, {Key: "Esc", Description: "Finish"}, {Key: "Ctrl+C", Description: "Quit"}}
}

func (m Model) renderExercise() string {
	ex := m.exercises[m.current]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar(m.current, len(m.exercises), m.width-8).View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Exercise %d", ex.Index)))
	b.WriteString("\n\n")
	b.WriteString(theme.Expression.Render(ex.Expression) + " " + m.input.View())
	b.WriteString("\n\n")

	if m.phase == PhaseFeedback {
		if m.verdicts[ex.Index] {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
			b.WriteString(" ")
			b.WriteString(theme.Hint.Render(fmt.Sprintf("You wrote %s; the answer is %s.", m.lastInput, ex.Answer)))
		}
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (m Model) renderSummary(r grader.Report) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Answered %d of %d\n\n", r.Total(), len(m.exercises)))
	b.WriteString(r.String())
	return theme.Card.Render(b.String())
}

// Run starts the practice program and returns the final report.
func Run(exercises []problemgen.Exercise) (grader.Report, error) {
	final, err := tea.NewProgram(New(exercises)).Run()
	if err != nil {
		return grader.Report{}, fmt.Errorf("run practice session: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return grader.Report{}, fmt.Errorf("unexpected final model %T", final)
	}
	return m.Report(), nil
}
