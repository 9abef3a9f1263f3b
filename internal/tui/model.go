// Package tui implements the live countdown view for the watch command.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/systemconf/iftar-cli/internal/api"
	"github.com/systemconf/iftar-cli/internal/prayer"
)

// Mode selects which countdown the view tracks.
type Mode int

const (
	ModeIftar Mode = iota
	ModeSahur
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	clockStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	bannerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TickMsg advances the clock once per second.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model drives the live countdown screen.
type Model struct {
	Timings  api.Timings
	DateInfo api.DateInfo
	Location string
	Lang     string
	Mode     Mode

	now   time.Time
	width int
}

// NewModel builds the watch model for a day's timings.
func NewModel(timings api.Timings, dateInfo api.DateInfo, location, lang string) Model {
	return Model{
		Timings:  timings,
		DateInfo: dateInfo,
		Location: location,
		Lang:     lang,
		Mode:     ModeIftar,
		now:      time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case TickMsg:
		m.now = time.Time(typed)
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil

	case tea.KeyMsg:
		switch typed.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "t":
			if m.Mode == ModeIftar {
				m.Mode = ModeSahur
			} else {
				m.Mode = ModeIftar
			}
			return m, nil
		}
	}

	return m, nil
}

// target returns the timing string the current mode counts down to.
func (m Model) target() string {
	if m.Mode == ModeSahur {
		return m.Timings.Imsak
	}
	return m.Timings.Maghrib
}

func (m Model) title() string {
	if m.Lang == "tr" {
		if m.Mode == ModeSahur {
			return "Sahura Kalan Süre"
		}
		return "İftara Kalan Süre"
	}
	if m.Mode == ModeSahur {
		return "Time Until Sahur"
	}
	return "Time Until Iftar"
}

func (m Model) banner() string {
	if !prayer.Celebrating(m.target(), m.now) {
		return ""
	}
	if m.Mode == ModeSahur {
		if m.Lang == "tr" {
			return "🌙 Sahur vakti! Hayırlı sahurlar."
		}
		return "🌙 It is sahur time!"
	}
	if m.Lang == "tr" {
		return "🎉 İftar vakti! Allah kabul etsin."
	}
	return "🎉 It is iftar time!"
}

func (m Model) View() string {
	var b strings.Builder

	header := titleStyle.Render(m.title())
	if m.Location != "" {
		header += "  " + locationStyle.Render(m.Location)
	}
	b.WriteString(header + "\n")

	if hijri := m.DateInfo.Hijri.Format(); hijri != "" {
		b.WriteString(locationStyle.Render(hijri) + "\n")
	}
	b.WriteString("\n")

	if secs, err := prayer.Countdown(m.target(), m.now); err == nil {
		d := prayer.FormatDuration(secs)
		clock := fmt.Sprintf("%s : %s : %s", d.Hours, d.Minutes, d.Seconds)
		b.WriteString(clockStyle.Render(clock) + "\n\n")
	}

	if banner := m.banner(); banner != "" {
		b.WriteString(bannerStyle.Render(banner) + "\n\n")
	}

	active := prayer.ActivePrayer(&m.Timings, m.now)
	for _, name := range prayer.MainPrayers {
		raw, ok := prayer.TimeFor(m.Timings, name)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s %-14s %s",
			prayer.Icon(name),
			prayer.DisplayName(name, m.Lang),
			prayer.Normalize(raw))
		if name == active {
			b.WriteString(activeStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(rowStyle.Render("  "+line) + "\n")
		}
	}

	b.WriteString("\n" + footerStyle.Render("tab: iftar/sahur • q: quit") + "\n")

	return b.String()
}
