package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/distsim/internal/report"
	"github.com/san-kum/distsim/internal/storage"
)

const visibleRows = 15

// Model is the interactive stage-table browser for a saved run.
type Model struct {
	meta   storage.RunMetadata
	rows   []report.Row
	cursor int
	offset int
}

func NewModel(meta storage.RunMetadata, rows []report.Row) Model {
	return Model{meta: meta, rows: rows}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "pgup":
		m.cursor -= visibleRows
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "pgdown":
		m.cursor += visibleRows
		if m.cursor > len(m.rows)-1 {
			m.cursor = len(m.rows) - 1
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.rows) - 1
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  (%d stages, reflux %.4f)", m.meta.ID, m.meta.Stages, m.meta.RefluxRatio)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%5s %10s %12s %10s %12s %10s %10s",
		"STAGE", "TEMP (K)", "PRESS (kPa)", "REFLUX", "ENERGY", "VAPOR", "LIQUID")))
	b.WriteString("\n")

	end := m.offset + visibleRows
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		line := fmt.Sprintf("%5d %10.2f %12.3f %10.4f %12.4f %10.4f %10.4f",
			r.Stage, r.Temperature, r.Pressure, r.RefluxRatio, r.EnergyBalance, r.TotalVapor, r.TotalLiquid)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(valueStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	temps := make([]float64, len(m.rows))
	energies := make([]float64, len(m.rows))
	for i, r := range m.rows {
		temps[i] = r.Temperature
		energies[i] = r.EnergyBalance
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("temperature ") + Sparkline(temps, 60))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("energy      ") + Sparkline(energies, 60))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("up/down scroll · pgup/pgdown page · g/G ends · q quit"))
	b.WriteString("\n")

	return b.String()
}

// Browse runs the stage browser until the user quits.
func Browse(meta storage.RunMetadata, rows []report.Row) error {
	p := tea.NewProgram(NewModel(meta, rows))
	_, err := p.Run()
	return err
}
