package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/calebcase/fxprint/snapshot"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var browseCmd = &cobra.Command{
	Use:   "browse SNAPSHOT",
	Short: "Browse the variables of a snapshot interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, v, err := openSnapshot(args[0])
		if err != nil {
			return err
		}

		p := tea.NewProgram(newBrowseModel(args[0], s, v), tea.WithAltScreen())
		_, err = p.Run()

		return err
	},
}

type row struct {
	name     string
	typeName string
	pretty   string
	plain    string
	err      error
}

type browseModel struct {
	filename string
	rows     []row
	selected int
	raw      bool
}

func newBrowseModel(filename string, s *snapshot.Snapshot, v *snapshot.Viewer) *browseModel {
	m := &browseModel{
		filename: filename,
	}

	for _, variable := range s.Variables {
		pretty, err := v.Display(variable.Value)

		m.rows = append(m.rows, row{
			name:     variable.Name,
			typeName: variable.Value.TypeName,
			pretty:   pretty,
			plain:    snapshot.Dump(variable.Value),
			err:      err,
		})
	}

	return m
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
	case "tab", "r":
		m.raw = !m.raw
	}

	return m, nil
}

func (m *browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fxprint"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString("No variables.\n\n")
	}

	for i, r := range m.rows {
		text := r.pretty
		if m.raw {
			text = r.plain
		}

		line := fmt.Sprintf("%s = %s", nameStyle.Render(r.name), text)
		if i == m.selected {
			line = selectedStyle.Render("> " + r.name + " = " + text)
		} else {
			line = "  " + line
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.rows) > 0 {
		r := m.rows[m.selected]

		b.WriteString("\n")
		b.WriteString(typeStyle.Render(r.typeName))
		b.WriteString("\n")
		if r.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", r.err)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • tab raw/pretty • q quit"))

	return b.String()
}
