package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MichaelCho6556/cardgrid/internal/logger"
	"github.com/MichaelCho6556/cardgrid/pkg/virtualgrid"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w, h := m.gridSize()
		m.resizeFeed.Emit(virtualgrid.Size{Width: w, Height: h})
		m.clampScrollTarget()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		m.stepFrame()
		return m, frameCmd()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		logger.Info("catalog loaded", "records", len(m.records))
		m.applyCollection()
		return m, nil
	}

	return m, nil
}

// stepFrame advances the scroll spring and flushes the engine's coalesced
// recomputation. This is the single per-frame boundary: however many
// signals arrived since the last frame, at most one recomputation runs.
func (m *Model) stepFrame() {
	target := float64(m.scrollTarget)
	if m.scrollPos != target {
		m.scrollPos, m.scrollVel = m.spring.Update(m.scrollPos, m.scrollVel, target)
		if math.Abs(m.scrollPos-target) < 0.5 && math.Abs(m.scrollVel) < 0.5 {
			m.scrollPos = target
			m.scrollVel = 0
		}
	}

	if offset := int(math.Round(m.scrollPos)); offset != m.lastEmitted {
		m.lastEmitted = offset
		m.scrollFeed.Emit(offset)
	}

	m.sched.Flush()
}

// clampScrollTarget keeps the animation target inside the scrollable
// extent, e.g. after the collection shrank or the viewport grew.
func (m *Model) clampScrollTarget() {
	_, h := m.gridSize()
	max := m.engine.Layout().MaxScroll(h)
	if m.scrollTarget > max {
		m.scrollTarget = max
	}
	if m.scrollTarget < 0 {
		m.scrollTarget = 0
	}
}
