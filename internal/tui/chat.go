// Package tui provides the interactive chat surface over the answer
// pipeline. It renders the session's chat history most-recent-first and
// issues one synchronous pipeline run per submitted question.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/orgbrain-labs/orgbrain/internal/pipeline"
	"github.com/orgbrain-labs/orgbrain/internal/prompt"
	"github.com/orgbrain-labs/orgbrain/internal/session"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F780FF"))
	questionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")).Italic(true)
	answerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E9E9F4"))
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).Italic(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	historyBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBox       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	confidenceTint = map[pipeline.Confidence]lipgloss.Style{
		pipeline.ConfidenceHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")),
		pipeline.ConfidenceMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C")),
		pipeline.ConfidenceLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")),
	}
)

// Model is the Bubble Tea model for the chat session.
type Model struct {
	sess     *session.Session
	pipe     *pipeline.Pipeline
	mode     prompt.Mode
	debug    bool
	input    textinput.Model
	viewport viewport.Model
	status   string
	ready    bool
}

// New creates a chat model over an initialized session.
func New(sess *session.Session, pipe *pipeline.Pipeline, mode prompt.Mode, debug bool) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question about your documents"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)

	status := "Ready. Type a question and press Enter."
	if sess.Index == nil {
		status = "No index available. Upload documents and run `orgbrain chat` again."
	}
	return Model{sess: sess, pipe: pipe, mode: mode, debug: debug, input: ti, viewport: vp, status: status}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, hh := historyBox.GetFrameSize()
		_, ih := inputBox.GetFrameSize()
		reserved := 2 + 1 + ih + 1 // header + spacer + input frame + status
		vh := msg.Height - reserved - hh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderHistory())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.ask(question)
			m.input.SetValue("")
			m.viewport.SetContent(m.renderHistory())
			m.viewport.GotoTop()
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) ask(question string) {
	if m.sess.Index == nil {
		m.status = "No index available. Please upload documents first."
		return
	}
	result, err := m.pipe.AnswerQuestion(context.Background(), m.sess.Index, question, m.mode, m.debug)
	if err != nil {
		m.status = errorStyle.Render("Error: " + err.Error() + " (press Enter to retry)")
		return
	}
	m.sess.Append(question, result)
	m.status = fmt.Sprintf("Answered with %s confidence.", result.Confidence)
}

// View renders the chat layout: header, history, input, status.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("OrgBrain") + metaStyle.Render(fmt.Sprintf("  mode: %s", m.mode))
	legend := metaStyle.Render("Confidence: High = reliable, Medium = okay, Low = verify with a human")
	history := historyBox.Render(m.viewport.View())
	input := inputBox.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + legend + "\n" + history + "\n" + input + "\n" + status
}

// renderHistory formats the chat history most-recent-first.
func (m Model) renderHistory() string {
	if len(m.sess.History) == 0 {
		return metaStyle.Render("No questions asked yet.")
	}

	var b strings.Builder
	for i := len(m.sess.History) - 1; i >= 0; i-- {
		entry := m.sess.History[i]
		b.WriteString(RenderEntry(entry, m.debug))
		if i > 0 {
			b.WriteString("\n" + metaStyle.Render(strings.Repeat("-", 40)) + "\n\n")
		}
	}
	return b.String()
}

// RenderEntry formats one history entry: answer, confidence, interpreted
// query, follow-ups, sources and optionally the raw debug chunks. Shared
// with the one-shot ask command.
func RenderEntry(entry session.HistoryEntry, debug bool) string {
	result := entry.Result

	var b strings.Builder
	b.WriteString(questionStyle.Render("You: "+entry.Question) + "\n")
	b.WriteString(answerStyle.Render(result.Answer) + "\n\n")

	tint, ok := confidenceTint[result.Confidence]
	if !ok {
		tint = metaStyle
	}
	b.WriteString("Confidence: " + tint.Render(string(result.Confidence)) + "\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("Interpreted as: %q", result.RewrittenQuery)) + "\n")

	if len(result.Followups) > 0 {
		b.WriteString("\nSuggested follow-up questions:\n")
		for _, q := range result.Followups {
			b.WriteString("  - " + q + "\n")
		}
	}

	b.WriteString("\nSources used:\n")
	if len(result.Sources) == 0 {
		b.WriteString(metaStyle.Render("  - No sources (answer may be uncertain)") + "\n")
	}
	for _, s := range result.Sources {
		b.WriteString(fmt.Sprintf("  - %s (similarity score: %s)\n", s.DocID, formatScore(s.Score)))
	}

	if debug && result.DebugChunks != nil {
		b.WriteString("\nRetrieved chunks (debug):\n")
		for i, chunk := range result.DebugChunks {
			b.WriteString(metaStyle.Render(fmt.Sprintf("Chunk %d - %s (score %s)", i+1, chunk.DocID, formatScore(chunk.Score))) + "\n")
			b.WriteString(chunk.Text + "\n")
		}
	}
	return b.String()
}

func formatScore(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *score)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
