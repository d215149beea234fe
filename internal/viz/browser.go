package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const monthDays = 30

// Browser steps through the days of a run's daily series.
type Browser struct {
	title   string
	columns []string
	data    map[string][]float64
	days    int

	day, column int
	theme       int
	width       int
}

// NewBrowser browses the named columns of data. The time column, if
// present, is shown in the header rather than as a row.
func NewBrowser(title string, columns []string, data map[string][]float64) *Browser {
	b := &Browser{title: title, data: data, width: 80}
	for _, name := range columns {
		if name == "time" {
			continue
		}
		b.columns = append(b.columns, name)
		b.days = max(b.days, len(data[name]))
	}
	return b
}

// SetTheme selects the named color theme, falling back to the first.
func (b *Browser) SetTheme(name string) {
	th := GetTheme(name)
	for i, t := range Themes {
		if t.Name == th.Name {
			b.theme = i
		}
	}
}

func (b *Browser) Theme() string { return Themes[b.theme].Name }

func (b *Browser) Day() int       { return b.day }
func (b *Browser) Column() string { return b.columns[b.column] }

func (b *Browser) Init() tea.Cmd { return nil }

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "right", "l":
			b.step(1)
		case "left", "h":
			b.step(-1)
		case "pgdown":
			b.step(monthDays)
		case "pgup":
			b.step(-monthDays)
		case "home", "g":
			b.day = 0
		case "end", "G":
			b.day = max(b.days-1, 0)
		case "down", "j":
			if b.column < len(b.columns)-1 {
				b.column++
			}
		case "up", "k":
			if b.column > 0 {
				b.column--
			}
		case "t":
			b.theme = (b.theme + 1) % len(Themes)
		}
	case tea.WindowSizeMsg:
		b.width = msg.Width
	}
	return b, nil
}

func (b *Browser) step(n int) {
	b.day = max(0, min(b.day+n, b.days-1))
}

func (b *Browser) View() string {
	th := Themes[b.theme]
	title := lipgloss.NewStyle().Bold(true).Foreground(th.Primary)
	label := lipgloss.NewStyle().Foreground(th.Muted)
	value := lipgloss.NewStyle().Foreground(th.Text)
	selected := lipgloss.NewStyle().Bold(true).Foreground(th.Accent)

	var s strings.Builder
	s.WriteString(title.Render(b.title))
	s.WriteString("\n")
	s.WriteString(label.Render(fmt.Sprintf("year %d  day %d/%d  (day of year %d)",
		b.day/365+1, b.day+1, b.days, b.day%365+1)))
	s.WriteString("\n\n")

	if b.days == 0 {
		s.WriteString(Subtle.Render("(no data)"))
		return s.String()
	}

	width := 0
	for _, name := range b.columns {
		width = max(width, len(name))
	}
	for i, name := range b.columns {
		col := b.data[name]
		v := "-"
		if b.day < len(col) {
			v = fmt.Sprintf("%.6g", col[b.day])
		}
		line := fmt.Sprintf("  %-*s  %s", width, name, value.Render(v))
		if i == b.column {
			line = selected.Render(fmt.Sprintf("▸ %-*s  %s", width, name, v))
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	sparkWidth := max(b.width-4, 10)
	col := b.data[b.Column()]
	s.WriteString(Separator(sparkWidth))
	s.WriteString("\n")
	s.WriteString(Sparkline(col, sparkWidth))
	s.WriteString("\n")
	if len(col) > 0 {
		pos := b.day * sparkWidth / len(col)
		s.WriteString(strings.Repeat(" ", min(pos, sparkWidth-1)) + selected.Render("▲"))
	}
	s.WriteString("\n\n")
	s.WriteString(KeyHint.Render("←/→ day  PgUp/PgDn month  ↑/↓ column  t theme (" + b.Theme() + ")  q quit"))
	return s.String()
}

// Run starts the browser on the terminal and blocks until it quits.
func (b *Browser) Run() error {
	_, err := tea.NewProgram(b, tea.WithAltScreen()).Run()
	return err
}
