package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devakitechdata/nexus-analytics/internal/assistant"
)

var (
	styleUser      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleAssistant = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleDim       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleRoute     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
)

// chatModel is the interactive shell: a transcript plus a single-line input.
// One request is in flight at a time; the session itself rejects overlapping
// sends, so the model simply disables input while waiting.
type chatModel struct {
	session *assistant.Session
	input   textinput.Model
	lines   []string
	waiting bool
	quit    bool
}

// replyMsg carries the assistant's reply back into the update loop.
type replyMsg struct {
	reply assistant.Reply
	err   error
}

func newChatModel(session *assistant.Session) *chatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask about alumni engagement..."
	ti.Focus()
	ti.CharLimit = 500

	return &chatModel{
		session: session,
		input:   ti,
		lines: []string{
			styleDim.Render(fmt.Sprintf("Connected as %s. Type a question, or ctrl+c to quit.", session.Role())),
		},
	}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			m.lines = append(m.lines, styleUser.Render("You: ")+text)
			m.waiting = true
			return m, m.sendCmd(text)
		}

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.lines = append(m.lines, styleDim.Render("(send failed: "+msg.err.Error()+")"))
			return m, nil
		}
		m.lines = append(m.lines, styleAssistant.Render("Nexus: ")+msg.reply.Text)
		if msg.reply.Route != "" {
			m.lines = append(m.lines, styleRoute.Render("→ navigating to "+msg.reply.Route))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.session.SendMessage(context.Background(), text)
		return replyMsg{reply: reply, err: err}
	}
}

func (m *chatModel) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.waiting {
		b.WriteString(styleDim.Render("thinking..."))
		b.WriteString("\n")
	}
	b.WriteString("\n> ")
	b.WriteString(m.input.View())
	return b.String()
}

// runChatShell resolves the caller identity (prompting when it was not set
// from the environment) and runs the bubbletea chat loop.
func runChatShell(app *App) error {
	id := app.Identity
	if id.Role == "" {
		picked, err := pickIdentity()
		if err != nil {
			return fmt.Errorf("selecting identity: %w", err)
		}
		id = picked
	}

	session := assistant.NewSession(app.Router, id)
	program := tea.NewProgram(newChatModel(session))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running chat shell: %w", err)
	}
	return nil
}
