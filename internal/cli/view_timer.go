package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/alexanderramin/streax/internal/service"
	"github.com/alexanderramin/streax/internal/timer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	timerTickInterval = time.Second
	timerBarMaxWidth  = 48
)

type timerTickMsg time.Time

type timerUpdatedMsg struct {
	upd *service.TimerUpdate
}

type timerErrMsg struct {
	err error
}

type timerKeyMap struct {
	Toggle key.Binding
	Stop   key.Binding
	Quit   key.Binding
}

func defaultTimerKeys() timerKeyMap {
	return timerKeyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/resume")),
		Stop:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop & log")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit (timer keeps running)")),
	}
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Stop, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// timerModel shows the persisted pomodoro timer. Every tick goes through
// TimerService.Tick, so phase changes and session logging happen in the
// service even while the view is open.
type timerModel struct {
	ctx    context.Context
	timers service.TimerService

	keys timerKeyMap
	help help.Model
	bar  progress.Model

	state    *timer.State
	status   string
	err      error
	stopping bool
	quitting bool
}

func newTimerModel(ctx context.Context, timers service.TimerService) *timerModel {
	return &timerModel{
		ctx:    ctx,
		timers: timers,
		keys:   defaultTimerKeys(),
		help:   help.New(),
		bar:    progress.New(progress.WithSolidFill(string(formatter.ColorRed)), progress.WithWidth(timerBarMaxWidth)),
	}
}

func timerTick() tea.Cmd {
	return tea.Tick(timerTickInterval, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (m *timerModel) call(op func(context.Context) (*service.TimerUpdate, error)) tea.Cmd {
	return func() tea.Msg {
		upd, err := op(m.ctx)
		if err != nil {
			return timerErrMsg{err: err}
		}
		return timerUpdatedMsg{upd: upd}
	}
}

func (m *timerModel) Init() tea.Cmd {
	return tea.Batch(m.call(m.timers.Current), timerTick())
}

func (m *timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(msg.Width-4, timerBarMaxWidth))
		m.help.Width = msg.Width
		return m, nil

	case timerTickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.call(m.timers.Tick), timerTick())

	case timerUpdatedMsg:
		m.apply(msg.upd)
		return m, nil

	case timerErrMsg:
		m.err = msg.err
		m.stopping = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			switch {
			case m.state == nil:
				return m, nil
			case m.state.Phase == timer.PhasePaused:
				return m, m.call(m.timers.Resume)
			case m.state.Running():
				return m, m.call(m.timers.Pause)
			}
		case key.Matches(msg, m.keys.Stop):
			if m.state == nil || m.state.Phase == timer.PhaseIdle {
				return m, nil
			}
			m.stopping = true
			return m, m.call(m.timers.Stop)
		}
	}
	return m, nil
}

func (m *timerModel) apply(upd *service.TimerUpdate) {
	m.err = nil
	m.state = upd.State
	tr := upd.Transition

	switch {
	case upd.Logged != nil:
		l := upd.Logged.Log
		m.status = fmt.Sprintf("Session logged · today %s / %s",
			formatter.FormatMinutes(l.ProductiveMinutes), formatter.FormatMinutes(l.GoalMinutes))
		if upd.Logged.Outcome.Counted {
			m.status += " · goal met! ✨"
		}
	case m.stopping:
		m.status = "Stopped under a minute, nothing logged."
	case tr.FocusCompleted:
		m.status = "Focus complete! Take your break."
	}
	m.stopping = false

	color := formatter.ColorRed
	if m.state != nil && m.state.ActivePhase() == timer.PhaseBreak {
		color = formatter.ColorGreen
	}
	m.bar.FullColor = string(color)
}

func (m *timerModel) View() string {
	var b strings.Builder

	st := m.state
	if st == nil || st.Phase == timer.PhaseIdle {
		b.WriteString(formatter.PhaseLabel(timer.NewState(time.Time{})) + "\n\n")
		b.WriteString(formatter.Dim("No timer running. Start one with: streax timer start --task NAME") + "\n")
	} else {
		b.WriteString(formatter.PhaseLabel(st) + "  " + formatter.Dim(st.Preset().Name) + "\n\n")
		clock := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(formatter.FormatClock(st.RemainingSeconds))
		b.WriteString(clock + "\n")
		b.WriteString(m.bar.ViewAs(st.Progress(st.LastUpdate)) + "\n\n")
		b.WriteString("Task: " + formatter.Bold(st.TaskName) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + formatter.StyleGreen.Render(m.status) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))

	return formatter.RenderBox("Pomodoro", b.String())
}
