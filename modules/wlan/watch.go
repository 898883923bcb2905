// wlaninfo/modules/wlan/watch.go
package wlan

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wlaninfo/tui"
)

type watchSnapshot struct {
	reports []Report
	rates   map[string]RateSample
	taken   time.Time
}

type watchTickMsg time.Time

type watchModel struct {
	collector *Collector
	ifaces    []string
	interval  time.Duration
	privacy   bool
	spin      spinner.Model
	snap      *watchSnapshot
	width     int
	err       error
}

// NewWatchModel builds the live-monitor model for the given interfaces.
func NewWatchModel(c *Collector, ifaces []string, interval time.Duration, privacy bool) tea.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(tui.HeaderColor)
	return watchModel{
		collector: c,
		ifaces:    ifaces,
		interval:  interval,
		privacy:   privacy,
		spin:      s,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refresh())
}

func (m watchModel) refresh() tea.Cmd {
	c := m.collector
	ifaces := m.ifaces
	interval := m.interval
	return func() tea.Msg {
		snap := watchSnapshot{rates: map[string]RateSample{}, taken: time.Now()}
		for _, iface := range ifaces {
			snap.reports = append(snap.reports, c.Collect(iface))
			// pcap sampling needs privileges; counters always work
			rate, err := SampleThroughput(iface, interval/4)
			if err != nil {
				rate, err = c.SampleCounters(iface, interval/4)
			}
			if err == nil {
				snap.rates[iface] = rate
			}
		}
		return &snap
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r":
			return m, m.refresh()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case *watchSnapshot:
		m.snap = msg
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg {
			return watchTickMsg(t)
		})
	case watchTickMsg:
		return m, m.refresh()
	}

	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m watchModel) View() string {
	var b strings.Builder
	if m.snap == nil {
		b.WriteString(m.spin.View())
		b.WriteString(" collecting...")
		return lipgloss.NewStyle().Margin(1, 2).Render(b.String())
	}
	for _, r := range m.snap.reports {
		if m.privacy {
			r = Redact(r)
		}
		if rate, ok := m.snap.rates[r.Interface]; ok {
			r.Throughput = rate.Format()
		}
		b.WriteString(Render(r))
		b.WriteString("\n")
	}
	b.WriteString(tui.RenderHelp(fmt.Sprintf("updated %s • r: refresh • q: quit",
		m.snap.taken.Format("15:04:05"))))
	return lipgloss.NewStyle().Margin(1, 2).Render(b.String())
}
