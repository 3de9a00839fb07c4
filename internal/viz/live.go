package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vparth/truepole/internal/astrotime"
	"github.com/vparth/truepole/internal/frames"
	"github.com/vparth/truepole/internal/nutation"
)

const historyCapacity = 600

type TickMsg time.Time

// Model steps a Julian Date forward in time and charts the nutation
// angles as it goes.
type Model struct {
	cfg      nutation.Config
	jd       float64 // current instant, Julian Date TT
	stepDays float64
	paused   bool
	err      error

	dpsi, deps    float64 // arcsec, at jd
	trueEps       float64 // radians, at jd
	dpsiHistory   []float64
	width, height int
}

// NewModel starts a live view at the given Julian Date.
func NewModel(cfg nutation.Config, jd, stepDays float64) Model {
	return Model{
		cfg:      cfg,
		jd:       jd,
		stepDays: stepDays,
		width:    72,
		height:   10,
	}
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "up", "+":
			m.stepDays *= 2
		case "down", "-":
			m.stepDays /= 2
		case "r":
			m.stepDays = -m.stepDays
		}
		return m, nil

	case TickMsg:
		if !m.paused {
			m.jd += m.stepDays
			m.compute()
		}
		return m, tick()

	case tea.WindowSizeMsg:
		if msg.Width > 10 {
			m.width = msg.Width - 8
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) compute() {
	T := astrotime.CenturiesJ2000(m.jd)
	a, err := nutation.Calc(T, m.cfg)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.dpsi, m.deps = a.Arcsec()
	m.trueEps = frames.MeanObliquity(T, m.cfg.Method) + a.Obliquity

	m.dpsiHistory = append(m.dpsiHistory, m.dpsi)
	if len(m.dpsiHistory) > historyCapacity {
		m.dpsiHistory = m.dpsiHistory[len(m.dpsiHistory)-historyCapacity:]
	}
}

func (m Model) View() string {
	header := headerStyle.Render("truepole live — " + m.cfg.Method.String())

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(label), valueStyle.Render(value))
	}

	status := "running"
	if m.paused {
		status = pausedStyle.Render("paused")
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		row("date (UTC)", astrotime.JDToTime(m.jd).Format("2006-01-02 15:04")),
		row("JD (TT)", fmt.Sprintf("%.4f", m.jd)),
		row("step", fmt.Sprintf("%+g d", m.stepDays)),
		row("Δψ", fmt.Sprintf("%+.4f\"", m.dpsi)),
		row("Δε", fmt.Sprintf("%+.4f\"", m.deps)),
		row("true obliquity", fmt.Sprintf("%.6f rad", m.trueEps)),
		row("status", status),
	)

	body := stats
	if m.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, stats,
			errorStyle.Render("error: "+m.err.Error()))
	} else if len(m.dpsiHistory) > 1 {
		graph := Plot(m.dpsiHistory, "Δψ [arcsec]", m.width, m.height)
		body = lipgloss.JoinVertical(lipgloss.Left, stats, graphStyle.Render(graph))
	}

	help := helpStyle.Render("space pause · +/- step size · r reverse · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}
