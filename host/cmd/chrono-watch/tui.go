package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"syschrono/host/config"
	"syschrono/host/device"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			PaddingLeft(2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2).
			MarginLeft(2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B")).
			Bold(true)

	stoppedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB800")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF5555")).
			Foreground(lipgloss.Color("#FF5555")).
			Padding(0, 2).
			MarginTop(1).
			MarginLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			PaddingTop(1).
			PaddingLeft(2)
)

// Messages
type sampleMsg struct {
	time      device.TimeSample
	stopwatch device.StopwatchSample
	uptime    int64
	err       error
}

type controlDoneMsg struct {
	action string
	err    error
}

type tickMsg struct{}

// Model holds the state of the TUI
type model struct {
	dev *device.Device
	cfg *config.HostConfig

	width  int
	height int

	// Latest device readings
	time      device.TimeSample
	stopwatch device.StopwatchSample
	uptime    int64
	samples   int
	sampleErr error

	// One command on the wire at a time; the serial console is
	// single-threaded and interleaved polls would corrupt framing
	busy       bool
	lastAction string
}

func initialModel(dev *device.Device, cfg *config.HostConfig) model {
	return model{
		dev:  dev,
		cfg:  cfg,
		busy: true, // Init issues the first poll
	}
}

func (m model) Init() tea.Cmd {
	return poll(m.dev)
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

// poll gathers one full sample from the device
func poll(dev *device.Device) tea.Cmd {
	return func() tea.Msg {
		ts, err := dev.QueryTime()
		if err != nil {
			return sampleMsg{err: err}
		}
		sw, err := dev.QueryStopwatch()
		if err != nil {
			return sampleMsg{err: err}
		}
		up, err := dev.QueryUptime()
		if err != nil {
			return sampleMsg{err: err}
		}
		return sampleMsg{time: ts, stopwatch: sw, uptime: up}
	}
}

func control(dev *device.Device, action string) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch action {
		case "start":
			err = dev.StopwatchStart()
		case "stop":
			err = dev.StopwatchStop()
		case "resume":
			err = dev.StopwatchResume()
		case "reset":
			err = dev.StopwatchReset()
		}
		return controlDoneMsg{action: action, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sampleMsg:
		m.busy = false
		m.sampleErr = msg.err
		if msg.err == nil {
			m.time = msg.time
			m.stopwatch = msg.stopwatch
			m.uptime = msg.uptime
			m.samples++
		}
		return m, tick(time.Duration(m.cfg.PollInterval) * time.Millisecond)

	case controlDoneMsg:
		m.sampleErr = msg.err
		m.lastAction = msg.action
		// Refresh immediately so the new state shows up
		return m, poll(m.dev)

	case tickMsg:
		if m.busy {
			// A control command owns the port; it re-polls when done
			return m, nil
		}
		m.busy = true
		return m, poll(m.dev)
	}

	return m, nil
}

func (m model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "s", "x", "r", "c":
		if m.busy {
			return m, nil
		}
		m.busy = true
		switch msg.String() {
		case "s":
			return m, control(m.dev, "start")
		case "x":
			return m, control(m.dev, "stop")
		case "r":
			return m, control(m.dev, "resume")
		case "c":
			return m, control(m.dev, "reset")
		}
	}
	return m, nil
}

func (m model) View() string {
	s := titleStyle.Render("⏱  chrono-watch — "+m.cfg.Device) + "\n\n"

	if m.samples == 0 {
		s += panelStyle.Render("Waiting for first sample...") + "\n"
	} else {
		s += panelStyle.Render(m.renderReadings()) + "\n"
	}

	if m.sampleErr != nil {
		s += errorStyle.Render("Error: "+m.sampleErr.Error()) + "\n"
	}

	s += helpStyle.Render("s start • x stop • r resume • c reset • q quit")
	return s
}

func (m model) renderReadings() string {
	state := stoppedStyle.Render("stopped")
	if m.stopwatch.Running {
		state = runningStyle.Render("running")
	}

	return fmt.Sprintf("%s %s\n%s %s\n%s %s\n\n%s %s  %s\n\n%s %s",
		labelStyle.Render("micros64: "),
		valueStyle.Render(fmt.Sprintf("%20d", m.time.Micros)),
		labelStyle.Render("millis64: "),
		valueStyle.Render(fmt.Sprintf("%20d", m.time.Millis)),
		labelStyle.Render("seconds64:"),
		valueStyle.Render(fmt.Sprintf("%20d", m.time.Seconds)),
		labelStyle.Render("stopwatch:"),
		valueStyle.Render(m.stopwatch.Formatted),
		state,
		labelStyle.Render("uptime:   "),
		valueStyle.Render(fmt.Sprintf("%ds (%d samples)", m.uptime, m.samples)),
	)
}

func startTUI(dev *device.Device, cfg *config.HostConfig) error {
	m := initialModel(dev, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
