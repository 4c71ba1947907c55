package tui

import (
	"context"
	"strings"
	"time"

	"ganttui/internal/config"
	"ganttui/internal/database"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppState selects the top-level screen.
type AppState int

const (
	StateWelcome AppState = iota
	StateChart
)

// MainModel routes between the first-run welcome screen and the chart
// dashboard.
type MainModel struct {
	state AppState

	repo      database.Repository
	projectID int64

	welcomeInput textinput.Model
	welcomeErr   string

	chart ChartModel

	width, height int
}

// NewMainModel starts on the chart when tasks already exist, otherwise on
// the welcome prompt.
func NewMainModel(repo database.Repository, projectID int64) MainModel {
	m := MainModel{
		state:     StateChart,
		repo:      repo,
		projectID: projectID,
	}

	tasks, err := repo.GetTasks(context.Background(), projectID)
	if err == nil && len(tasks) == 0 {
		m.state = StateWelcome
		m.welcomeInput = textinput.New()
		m.welcomeInput.Placeholder = "First task name"
		m.welcomeInput.CharLimit = config.MaxTaskNameLength
		m.welcomeInput.Width = 40
		m.welcomeInput.Focus()
		return m
	}

	m.chart = NewChartModel(repo, projectID)
	return m
}

func (m MainModel) Init() tea.Cmd {
	if m.state == StateWelcome {
		return textinput.Blink
	}
	return m.chart.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	if m.state == StateWelcome {
		return m.updateWelcome(msg)
	}

	next, cmd := m.chart.Update(msg)
	if chart, ok := next.(ChartModel); ok {
		m.chart = chart
		return m, cmd
	}
	return next, cmd
}

func (m MainModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			name := strings.TrimSpace(m.welcomeInput.Value())
			if name == "" {
				m.welcomeErr = "Enter a task name to get started"
				return m, nil
			}
			today := time.Now().UTC().Truncate(24 * time.Hour)
			_, err := m.repo.AddTask(context.Background(), m.projectID, database.TaskSeed{
				Name:  name,
				Start: today,
				End:   today.AddDate(0, 0, config.DefaultTaskSpanDays),
			})
			if err != nil {
				m.welcomeErr = err.Error()
				return m, nil
			}
			m.state = StateChart
			m.chart = NewChartModel(m.repo, m.projectID)
			next, cmd := m.chart.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			if chart, ok := next.(ChartModel); ok {
				m.chart = chart
			}
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.welcomeInput, cmd = m.welcomeInput.Update(msg)
	return m, cmd
}

func (m MainModel) View() string {
	if m.state != StateWelcome {
		return m.chart.View()
	}

	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("ganttui"))
	b.WriteString("\n\n")
	b.WriteString("No tasks yet. Name the first one:\n\n")
	b.WriteString(m.welcomeInput.View())
	if m.welcomeErr != "" {
		b.WriteString("\n\n" + CurrentTheme.Error.Render(m.welcomeErr))
	}
	b.WriteString("\n\n" + CurrentTheme.Dim.Render("enter create · esc quit"))

	card := CurrentTheme.Input.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
