package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dd0wney/wija/pkg/lontara"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive Lontara preview while typing",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(
				newPreviewModel(a.engine),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			_, err := p.Run()
			return err
		},
	}
}

type previewKeyMap struct {
	Keyboard key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

var previewKeys = previewKeyMap{
	Keyboard: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "keyboard"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Keyboard, k.Clear, k.Quit}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// previewModel re-transliterates the input on every keystroke and shows the
// trace below the preview.
type previewModel struct {
	engine       *lontara.Engine
	input        textinput.Model
	trace        table.Model
	help         help.Model
	keys         previewKeyMap
	result       lontara.Result
	showKeyboard bool
	width        int
}

func newPreviewModel(engine *lontara.Engine) previewModel {
	ti := textinput.New()
	ti.Placeholder = "Ketik nama dalam huruf Latin..."
	ti.CharLimit = 120
	ti.Width = 50
	ti.Focus()

	columns := []table.Column{
		{Title: "Pos", Width: 4},
		{Title: "Latin", Width: 8},
		{Title: "Lontara", Width: 8},
		{Title: "Category", Width: 12},
		{Title: "Note", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#0D9488")).
		BorderBottom(true).
		Bold(true)
	t.SetStyles(s)

	return previewModel{
		engine: engine,
		input:  ti,
		trace:  t,
		help:   help.New(),
		keys:   previewKeys,
		result: lontara.Transliterate(""),
	}
}

func (m previewModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Keyboard):
			m.showKeyboard = !m.showKeyboard
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m *previewModel) refresh() {
	m.result = m.engine.Transliterate(m.input.Value())

	rows := make([]table.Row, 0, len(m.result.Details))
	for _, d := range m.result.Details {
		rows = append(rows, table.Row{
			strconv.Itoa(d.Pos),
			strconv.Quote(d.Latin),
			d.Lontara,
			string(d.Category),
			d.Note,
		})
	}
	m.trace.SetRows(rows)
}

func (m previewModel) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("ᨓᨗᨍ  Lontara"))
	s.WriteString("\n\n  ")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")

	preview := m.result.Lontara
	if preview == "" {
		preview = mutedStyle.Render("…")
	}
	s.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(previewStyle.Render(preview)))
	s.WriteString("\n\n")

	if m.showKeyboard {
		s.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(renderKeyboard()))
	} else {
		s.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(m.trace.View()))
	}

	if m.result.Dropped > 0 {
		s.WriteString("\n")
		s.WriteString(helpStyle.Render(fmt.Sprintf("%d character(s) not recognised", m.result.Dropped)))
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return s.String()
}
